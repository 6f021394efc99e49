package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/repofolio/internal/core/domain"
	"github.com/custodia-labs/repofolio/internal/core/ports/driven"
)

// mockPortfolioService implements driving.PortfolioService for testing.
type mockPortfolioService struct {
	repos    []domain.PortfolioRepository
	repo     *domain.PortfolioRepository
	summary  *domain.RepositorySummary
	quota    domain.Quota
	err      error
	subjects []string
	progress driven.ProgressReporter
}

func (m *mockPortfolioService) Generate(_ context.Context, subject string) ([]domain.PortfolioRepository, error) {
	m.subjects = append(m.subjects, subject)
	return m.repos, m.err
}

func (m *mockPortfolioService) GenerateOne(_ context.Context, owner, name string) (*domain.PortfolioRepository, error) {
	m.subjects = append(m.subjects, owner+"/"+name)
	return m.repo, m.err
}

func (m *mockPortfolioService) Summarize(_ context.Context, subject string) (*domain.RepositorySummary, error) {
	m.subjects = append(m.subjects, subject)
	return m.summary, m.err
}

func (m *mockPortfolioService) Quota(_ context.Context) (domain.Quota, error) {
	return m.quota, m.err
}

func (m *mockPortfolioService) SetProgressReporter(p driven.ProgressReporter) {
	m.progress = p
}

// resetFlags restores every flag variable to its zero value.
func resetFlags() {
	flagToken, flagUser, flagConfigDir, flagInput = "", "", "", ""
	flagVerbose = false
	flagOutput, flagFile = "", ""
	flagAuthenticated = false
	flagStatsJSON = false
}

// setupCLITest installs svc and isolates configuration and environment.
func setupCLITest(t *testing.T, svc *mockPortfolioService) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_USER", "")

	oldService, oldFactory, oldSettings := portfolioService, serviceFactory, settings
	portfolioService = nil
	if svc != nil {
		portfolioService = svc
	}
	resetFlags()

	t.Cleanup(func() {
		portfolioService, serviceFactory, settings = oldService, oldFactory, oldSettings
		resetFlags()
		rootCmd.SetArgs(nil)
	})
}

// execute runs the root command with an isolated config dir and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))

	err := rootCmd.Execute()
	return buf.String(), err
}

func sampleRepository() domain.PortfolioRepository {
	return domain.PortfolioRepository{
		ID:         1,
		Name:       "x",
		FullName:   "alice/x",
		Visibility: "public",
		Topics:     []string{"react"},
		Tags:       []string{"React"},
		PortfolioFlags: &domain.PortfolioFlags{
			Featured: true, Priority: 3, ShowInPortfolio: true, HighlightColor: "#D1D5DB",
		},
	}
}
