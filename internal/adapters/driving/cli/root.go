// Package cli implements the repofolio command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/repofolio/internal/adapters/driven/config/file"
	"github.com/custodia-labs/repofolio/internal/core/ports/driving"
	"github.com/custodia-labs/repofolio/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Persistent flag values.
var (
	flagToken     string
	flagUser      string
	flagConfigDir string
	flagInput     string
	flagVerbose   bool
)

// Settings is the resolved configuration handed to the service factory.
type Settings struct {
	Config file.Config

	// InputPath, when set, names a JSON dump of raw repositories to read
	// instead of calling the API.
	InputPath string
}

// ServiceFactory builds the portfolio service for resolved settings.
type ServiceFactory func(ctx context.Context, settings Settings) (driving.PortfolioService, error)

var (
	serviceFactory   ServiceFactory
	portfolioService driving.PortfolioService
	settings         Settings
	configStore      *file.ConfigStore
)

// SetServiceFactory installs the factory used to build the portfolio service.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

var rootCmd = &cobra.Command{
	Use:   "repofolio",
	Short: "Generate a portfolio document from GitHub repositories",
	Long: `repofolio fetches a user's repositories from GitHub, normalises them into a
stable portfolio schema and enriches each one with its language mix, tech stack,
README text, screenshots and display flags.

The token and user are read from flags, then GITHUB_TOKEN and GITHUB_USER
(a .env file in the working directory is loaded first), then the config file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagToken, "token", "", "GitHub access token")
	pf.StringVarP(&flagUser, "user", "u", "", "GitHub user whose repositories are listed")
	pf.StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.repofolio)")
	pf.StringVar(&flagInput, "input", "", "read repositories from a JSON file instead of GitHub")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "print each fetch and enrichment step")
}

// setup resolves configuration and builds the service before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)
	logger.SetRunID(uuid.NewString())

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("ignoring .env: %v", err)
	}

	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	configStore = store

	cfg := store.Config()
	cfg.ApplyEnv(os.LookupEnv)
	if flagToken != "" {
		cfg.GitHub.Token = flagToken
	}
	if flagUser != "" {
		cfg.GitHub.Username = flagUser
	}
	settings = Settings{Config: cfg, InputPath: flagInput}
	logger.Debug("config: %s (exists: %t)", store.Path(), store.Exists())

	if !needsService(cmd) || portfolioService != nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if serviceFactory == nil {
		return errors.New("portfolio service not configured")
	}

	svc, err := serviceFactory(cmd.Context(), settings)
	if err != nil {
		return err
	}
	portfolioService = svc
	return nil
}

// needsService reports whether cmd talks to the portfolio service.
func needsService(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationService] == "true"
}

const annotationService = "service"

// Execute runs the root command and prints a single error line on failure.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
