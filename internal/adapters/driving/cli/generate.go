package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var flagAuthenticated bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the portfolio document",
	Long: `Fetches every repository owned by the user, transforms each one into the
portfolio schema, enriches it and writes the resulting JSON array.

The user comes from --user, GITHUB_USER or the config file. With
--authenticated, or when no user is configured, the repositories owned by the
token's account are listed instead.`,
	Annotations: map[string]string{annotationService: "true"},
	Args:        cobra.NoArgs,
	RunE:        runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagAuthenticated, "authenticated", false,
		"list repositories of the authenticated account instead of --user")
	addOutputFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if portfolioService == nil {
		return errors.New("portfolio service not configured")
	}

	subject, err := resolveSubject()
	if err != nil {
		return err
	}

	sink, err := newSink(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	detach := attachProgress(portfolioService)
	repos, err := portfolioService.Generate(cmd.Context(), subject)
	detach()
	if err != nil {
		return fmt.Errorf("generate portfolio: %w", err)
	}

	return writeDocument(cmd, sink, repos)
}

// resolveSubject returns the user to list, or "" for the authenticated account.
func resolveSubject() (string, error) {
	cfg := settings.Config.GitHub
	if flagAuthenticated || cfg.Username == "" {
		if cfg.Token == "" && settings.InputPath == "" {
			return "", errors.New("no user configured: pass --user, set GITHUB_USER, or provide a token")
		}
		return "", nil
	}
	return cfg.Username, nil
}
