package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repofolio/internal/adapters/driven/config/file"
	"github.com/custodia-labs/repofolio/internal/adapters/driven/output"
	"github.com/custodia-labs/repofolio/internal/core/ports/driven"
)

// Output flag values shared by generate and repo.
var (
	flagOutput string
	flagFile   string
)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output mode: console or file (default from config, else console)")
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "output file in file mode (default from config, else portfolio.json)")
}

// newSink picks the sink from flags over the configured output section.
func newSink(stdout io.Writer) (driven.PortfolioSink, error) {
	out := settings.Config.Output
	if flagOutput != "" {
		out.Mode = flagOutput
	}
	if flagFile != "" {
		out.File = flagFile
		if flagOutput == "" {
			out.Mode = file.OutputFile
		}
	}

	cfg := settings.Config
	cfg.Output = out
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if out.Mode == file.OutputFile {
		return output.NewFileSink(out.File), nil
	}
	return output.NewConsoleSink(stdout), nil
}

// writeDocument writes v and, for file output, reports the destination on stderr.
func writeDocument(cmd *cobra.Command, sink driven.PortfolioSink, v any) error {
	if err := sink.Write(v); err != nil {
		return err
	}
	if fs, ok := sink.(*output.FileSink); ok {
		cmd.PrintErrf("Portfolio data written to %s\n", fs.Path())
	}
	return nil
}
