package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repofolio/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Long: `Shows the effective configuration after flags, environment and the config
file have been applied.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Println(configStore.Path())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg := settings.Config

	cmd.Printf("Config file:         %s\n", configStore.Path())
	cmd.Printf("Token:               %s\n", maskToken(cfg.GitHub.Token))
	cmd.Printf("User:                %s\n", orNone(cfg.GitHub.Username))
	cmd.Printf("Output mode:         %s\n", cfg.Output.Mode)
	cmd.Printf("Output file:         %s\n", cfg.Output.File)
	cmd.Printf("Requests per second: %s\n", pacing(cfg.Client.RequestsPerSecond))
	if cfg.Client.BaseURL != "" {
		cmd.Printf("API base URL:        %s\n", cfg.Client.BaseURL)
	}

	if _, err := cfg.BuildTaxonomy(); err != nil {
		cmd.Printf("Taxonomy:            invalid (%v)\n", err)
	} else if taxonomyOverridden(cfg.Taxonomy) {
		cmd.Println("Taxonomy:            custom")
	} else {
		cmd.Println("Taxonomy:            default")
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if configStore.Exists() {
		return fmt.Errorf("%s already exists", configStore.Path())
	}
	if err := configStore.Save(file.DefaultConfig()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	cmd.Printf("Wrote %s\n", configStore.Path())
	return nil
}

// maskToken shows only the last four characters of a token.
func maskToken(token string) string {
	switch {
	case token == "":
		return "(none)"
	case len(token) <= 4:
		return "****"
	default:
		return "****" + token[len(token)-4:]
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func pacing(rps float64) string {
	if rps == 0 {
		return "unpaced"
	}
	return fmt.Sprintf("%g", rps)
}

func taxonomyOverridden(t file.TaxonomyConfig) bool {
	return len(t.Palette) > 0 || len(t.Languages) > 0 || len(t.Topics) > 0 || len(t.DisplayNames) > 0
}
