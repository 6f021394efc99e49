package driving

import (
	"context"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

// PortfolioService builds portfolio documents for external actors (the CLI).
type PortfolioService interface {
	// Generate fetches, transforms and enriches every repository of subject.
	// An empty subject means the authenticated identity.
	Generate(ctx context.Context, subject string) ([]domain.PortfolioRepository, error)

	// GenerateOne builds the portfolio record for a single repository.
	GenerateOne(ctx context.Context, owner, name string) (*domain.PortfolioRepository, error)

	// Summarize counts the repositories owned by subject.
	Summarize(ctx context.Context, subject string) (*domain.RepositorySummary, error)

	// Quota reports the remaining remote calls.
	Quota(ctx context.Context) (domain.Quota, error)
}
