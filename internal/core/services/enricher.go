package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/custodia-labs/repofolio/internal/core/domain"
	"github.com/custodia-labs/repofolio/internal/core/ports/driven"
	"github.com/custodia-labs/repofolio/internal/logger"
)

// ScreenshotsDir is the repository directory searched for screenshots.
const ScreenshotsDir = "screenshots"

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var errMalformedFullName = errors.New("full_name is not owner/name")

// Enricher augments portfolio records with data fetched per repository.
// Records are processed one at a time; a failing step degrades its own field only.
type Enricher struct {
	source   driven.RepositorySource
	taxonomy *domain.Taxonomy
	progress driven.ProgressReporter
}

// NewEnricher creates an enricher. A nil taxonomy selects the default tables.
func NewEnricher(source driven.RepositorySource, taxonomy *domain.Taxonomy) *Enricher {
	if taxonomy == nil {
		taxonomy = domain.DefaultTaxonomy()
	}
	return &Enricher{source: source, taxonomy: taxonomy}
}

// SetProgressReporter installs an optional progress reporter for EnrichMany.
func (e *Enricher) SetProgressReporter(p driven.ProgressReporter) {
	e.progress = p
}

// EnrichOne returns an enriched copy of repo. It never fails: sub-fetch errors
// degrade the affected field, and a panic degrades the whole record while
// portfolio flags are still derived from the original stats.
func (e *Enricher) EnrichOne(ctx context.Context, repo domain.PortfolioRepository) (enriched domain.PortfolioRepository) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("enrichment of %s aborted: %v", repo.FullName, r)
			enriched = e.degraded(repo)
		}
	}()

	enriched = repo
	owner, name, ok := domain.SplitFullName(repo.FullName)

	languages := attempt(func() (map[string]int, error) {
		if !ok {
			return nil, errMalformedFullName
		}
		return e.source.GetLanguages(ctx, owner, name)
	})
	if languages.err != nil {
		logger.Debug("languages for %s unavailable: %v", repo.FullName, languages.err)
	}
	enriched.Languages = languages.orDefault(nil)

	readme := attempt(func() (*string, error) {
		if !ok {
			return nil, errMalformedFullName
		}
		return e.source.GetReadmeText(ctx, owner, name)
	})
	if readme.err != nil {
		logger.Debug("readme for %s unavailable: %v", repo.FullName, readme.err)
	}
	enriched.LongDescription = readme.orDefault(nil)

	enriched.TechStack = e.taxonomy.DeriveTechStack(enriched.Languages, repo.Topics)
	enriched.Tags = domain.DeriveTags(repo.Topics)

	screenshots := attempt(func() ([]string, error) {
		if !ok {
			return nil, errMalformedFullName
		}
		return e.screenshots(ctx, owner, name), nil
	})
	enriched.Media = &domain.Media{
		Screenshots: screenshots.orDefault([]string{}),
		VideoDemo:   nil,
	}

	enriched.PortfolioFlags = e.flags(repo)
	return enriched
}

// EnrichMany enriches records sequentially, preserving order and length.
// Only a nil slice is rejected.
func (e *Enricher) EnrichMany(ctx context.Context, repos []domain.PortfolioRepository) ([]domain.PortfolioRepository, error) {
	if repos == nil {
		return nil, fmt.Errorf("%w: expected a sequence of repositories", domain.ErrInvalidInput)
	}

	if e.progress != nil {
		e.progress.Start(len(repos))
		defer e.progress.Finish()
	}

	out := make([]domain.PortfolioRepository, 0, len(repos))
	for _, repo := range repos {
		logger.Debug("enriching %s", repo.FullName)
		out = append(out, e.EnrichOne(ctx, repo))
		if e.progress != nil {
			e.progress.Increment()
		}
	}
	return out, nil
}

// screenshots lists image files in the screenshots directory.
func (e *Enricher) screenshots(ctx context.Context, owner, name string) []string {
	urls := []string{}
	for _, entry := range e.source.ListDirectory(ctx, owner, name, ScreenshotsDir) {
		if entry.Type != "file" || !isImage(entry.Name) {
			continue
		}
		urls = append(urls, entry.DownloadURL)
	}
	return urls
}

func (e *Enricher) flags(repo domain.PortfolioRepository) *domain.PortfolioFlags {
	flags := e.taxonomy.ComputePortfolioFlags(repo.Stats.Stars, repo.IsPrivate)
	return &flags
}

// degraded is the fallback record: original fields, nothing derived except flags.
func (e *Enricher) degraded(repo domain.PortfolioRepository) domain.PortfolioRepository {
	repo.Languages = nil
	repo.LongDescription = nil
	repo.TechStack = nil
	repo.Tags = []string{}
	repo.Media = nil
	repo.PortfolioFlags = e.flags(repo)
	return repo
}

func isImage(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}
