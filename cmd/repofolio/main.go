// Command repofolio generates a portfolio document from GitHub repositories.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/repofolio/internal/adapters/driving/cli"
	"github.com/custodia-labs/repofolio/internal/connectors/github"
	"github.com/custodia-labs/repofolio/internal/connectors/memory"
	"github.com/custodia-labs/repofolio/internal/core/ports/driven"
	"github.com/custodia-labs/repofolio/internal/core/ports/driving"
	"github.com/custodia-labs/repofolio/internal/core/services"
	"github.com/custodia-labs/repofolio/internal/logger"
)

func main() {
	cli.SetServiceFactory(newPortfolioService)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// newPortfolioService wires the pipeline for the resolved settings.
func newPortfolioService(ctx context.Context, s cli.Settings) (driving.PortfolioService, error) {
	taxonomy, err := s.Config.BuildTaxonomy()
	if err != nil {
		return nil, err
	}

	source, err := newSource(ctx, s)
	if err != nil {
		return nil, err
	}
	return services.NewPortfolioService(source, taxonomy), nil
}

func newSource(ctx context.Context, s cli.Settings) (driven.RepositorySource, error) {
	if s.InputPath != "" {
		f, err := os.Open(s.InputPath)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()

		logger.Info("reading repositories from %s", s.InputPath)
		source, err := memory.NewSourceFromJSON(f)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return source, nil
	}

	if s.Config.GitHub.Token == "" {
		logger.Warn("no GitHub token configured, using the unauthenticated limit of 60 calls per hour")
	}
	client, err := github.NewClientWithToken(ctx, s.Config.GitHub.Token, github.Config{
		BaseURL:           s.Config.Client.BaseURL,
		RequestsPerSecond: s.Config.Client.RequestsPerSecond,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
