package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

var repoCmd = &cobra.Command{
	Use:         "repo <owner/name>",
	Short:       "Generate the portfolio record of one repository",
	Annotations: map[string]string{annotationService: "true"},
	Args:        cobra.ExactArgs(1),
	RunE:        runRepo,
}

func init() {
	addOutputFlags(repoCmd)
	rootCmd.AddCommand(repoCmd)
}

func runRepo(cmd *cobra.Command, args []string) error {
	if portfolioService == nil {
		return errors.New("portfolio service not configured")
	}

	owner, name, ok := domain.SplitFullName(args[0])
	if !ok {
		return fmt.Errorf("%w: %q is not owner/name", domain.ErrInvalidInput, args[0])
	}

	sink, err := newSink(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	repo, err := portfolioService.GenerateOne(cmd.Context(), owner, name)
	if err != nil {
		return err
	}
	return writeDocument(cmd, sink, repo)
}
