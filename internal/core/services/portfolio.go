package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/repofolio/internal/core/domain"
	"github.com/custodia-labs/repofolio/internal/core/ports/driven"
	"github.com/custodia-labs/repofolio/internal/core/ports/driving"
	"github.com/custodia-labs/repofolio/internal/logger"
)

// Ensure PortfolioService implements the interface.
var _ driving.PortfolioService = (*PortfolioService)(nil)

// PortfolioService runs the fetch, transform and enrich pipeline.
type PortfolioService struct {
	source      driven.RepositorySource
	transformer *Transformer
	enricher    *Enricher
}

// NewPortfolioService wires a pipeline around source.
// A nil taxonomy selects the default classification tables.
func NewPortfolioService(source driven.RepositorySource, taxonomy *domain.Taxonomy) *PortfolioService {
	return &PortfolioService{
		source:      source,
		transformer: NewTransformer(),
		enricher:    NewEnricher(source, taxonomy),
	}
}

// SetProgressReporter forwards a progress reporter to the enricher.
func (s *PortfolioService) SetProgressReporter(p driven.ProgressReporter) {
	s.enricher.SetProgressReporter(p)
}

// Generate builds the portfolio for every repository of subject.
func (s *PortfolioService) Generate(ctx context.Context, subject string) ([]domain.PortfolioRepository, error) {
	logger.Section("Fetch")
	raws, err := s.source.ListRepositories(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	logger.Info("fetched %d repositories", len(raws))

	logger.Section("Transform")
	repos, err := s.transformer.TransformMany(raws)
	if err != nil {
		return nil, err
	}

	logger.Section("Enrich")
	enriched, err := s.enricher.EnrichMany(ctx, repos)
	if err != nil {
		return nil, err
	}
	logger.Info("enriched %d repositories", len(enriched))

	return enriched, nil
}

// GenerateOne builds the portfolio record for owner/name.
func (s *PortfolioService) GenerateOne(ctx context.Context, owner, name string) (*domain.PortfolioRepository, error) {
	raw, err := s.source.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("get repository: %w", err)
	}

	repo, err := s.transformer.TransformOne(raw)
	if err != nil {
		return nil, fmt.Errorf("transform repository: %w", err)
	}

	enriched := s.enricher.EnrichOne(ctx, repo)
	return &enriched, nil
}

// Summarize counts repositories owned by subject.
// For the authenticated identity (empty subject) every listed repository counts.
func (s *PortfolioService) Summarize(ctx context.Context, subject string) (*domain.RepositorySummary, error) {
	raws, err := s.source.ListRepositories(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}

	summary := domain.Summarize(subject, raws)
	return &summary, nil
}

// Quota reports the remaining remote calls.
func (s *PortfolioService) Quota(ctx context.Context) (domain.Quota, error) {
	return s.source.CheckQuota(ctx)
}
