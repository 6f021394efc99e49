package cli

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"

	"github.com/custodia-labs/repofolio/internal/core/ports/driven"
	"github.com/custodia-labs/repofolio/internal/logger"
)

// progressAware is implemented by services that accept a progress reporter.
type progressAware interface {
	SetProgressReporter(p driven.ProgressReporter)
}

// progressBar reports enrichment progress with a terminal progress bar.
type progressBar struct {
	out io.Writer
	bar *pb.ProgressBar
}

func newProgressBar(out io.Writer) *progressBar {
	return &progressBar{out: out}
}

func (p *progressBar) Start(total int) {
	p.bar = pb.Full.New(total).SetWriter(p.out).Start()
}

func (p *progressBar) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progressBar) Finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}

// attachProgress installs a progress bar on stderr when it is a terminal and
// verbose output is off. The returned func detaches it.
func attachProgress(svc any) func() {
	aware, ok := svc.(progressAware)
	if !ok || logger.IsVerbose() || !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}
	aware.SetProgressReporter(newProgressBar(os.Stderr))
	return func() { aware.SetProgressReporter(nil) }
}
