package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

var flagStatsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count the user's repositories",
	Long: `Counts the repositories owned by the user: total, forks, public, private,
archived and active.`,
	Annotations: map[string]string{annotationService: "true"},
	Args:        cobra.NoArgs,
	RunE:        runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsJSON, "json", false, "print the summary as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if portfolioService == nil {
		return errors.New("portfolio service not configured")
	}

	subject, err := resolveSubject()
	if err != nil {
		return err
	}

	summary, err := portfolioService.Summarize(cmd.Context(), subject)
	if err != nil {
		return fmt.Errorf("summarise repositories: %w", err)
	}

	if flagStatsJSON {
		sink, err := newSink(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return writeDocument(cmd, sink, summary)
	}

	cmd.Println(renderSummary(summary))
	return nil
}

func renderSummary(s *domain.RepositorySummary) string {
	title := "Repositories"
	if s.Subject != "" {
		title = "Repositories of " + s.Subject
	}
	return renderRows(title, [][2]string{
		{"Total", strconv.Itoa(s.Total)},
		{"Forks", strconv.Itoa(s.Forks)},
		{"Non-forks", strconv.Itoa(s.NonForks)},
		{"Public", strconv.Itoa(s.Public)},
		{"Private", strconv.Itoa(s.Private)},
		{"Archived", strconv.Itoa(s.Archived)},
		{"Active", strconv.Itoa(s.Active)},
	})
}
