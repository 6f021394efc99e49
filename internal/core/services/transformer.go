package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

// Transformer maps raw repositories onto the canonical portfolio schema.
// It is pure: no remote calls, no shared state beyond the validator.
type Transformer struct {
	validate *validator.Validate
}

// NewTransformer creates a transformer with the identity-shape rules registered.
func NewTransformer() *Transformer {
	v := validator.New(validator.WithRequiredStructEnabled())
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		_, _, ok := domain.SplitFullName(fl.Field().String())
		return ok
	})
	return &Transformer{validate: v}
}

// TransformOne produces a portfolio record from a raw repository.
// Fails with domain.ErrInvalidInput when the identity shape is missing.
func (t *Transformer) TransformOne(raw *domain.RawRepository) (domain.PortfolioRepository, error) {
	if raw == nil {
		return domain.PortfolioRepository{}, fmt.Errorf("%w: nil repository", domain.ErrInvalidInput)
	}
	if err := t.validate.Struct(raw); err != nil {
		return domain.PortfolioRepository{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(err))
	}

	topics := raw.Topics
	if topics == nil {
		topics = []string{}
	}

	repo := domain.PortfolioRepository{
		ID:          raw.ID,
		Name:        raw.Name,
		FullName:    raw.FullName,
		Visibility:  visibility(raw),
		IsPrivate:   raw.Private,
		Description: nonEmpty(raw.Description),
		Topics:      append([]string{}, topics...),
		Tags:        []string{},
		Links: domain.Links{
			RepoURL:  nonEmpty(raw.HTMLURL),
			Homepage: nonEmpty(raw.Homepage),
		},
		Stats: domain.Stats{
			Stars:       raw.StargazersCount,
			Forks:       raw.ForksCount,
			Watchers:    raw.WatchersCount,
			OpenIssues:  raw.OpenIssuesCount,
			LastUpdated: raw.UpdatedAt,
			CreatedAt:   raw.CreatedAt,
		},
	}

	if raw.Owner != nil {
		repo.Owner = &domain.Owner{
			Username:   nonEmpty(raw.Owner.Login),
			ProfileURL: nonEmpty(raw.Owner.HTMLURL),
			Avatar:     nonEmpty(raw.Owner.AvatarURL),
		}
	}

	return repo, nil
}

// TransformMany transforms every raw repository in order.
// A nil slice is rejected, and the first invalid element aborts the whole batch.
func (t *Transformer) TransformMany(raws []domain.RawRepository) ([]domain.PortfolioRepository, error) {
	if raws == nil {
		return nil, fmt.Errorf("%w: expected a sequence of repositories", domain.ErrInvalidInput)
	}

	repos := make([]domain.PortfolioRepository, 0, len(raws))
	for i := range raws {
		repo, err := t.TransformOne(&raws[i])
		if err != nil {
			return nil, fmt.Errorf("transform repository %d: %w", i, err)
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// nonEmpty copies s, mapping an empty string to null.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func visibility(raw *domain.RawRepository) string {
	if raw.Visibility != nil && *raw.Visibility != "" {
		return *raw.Visibility
	}
	if raw.Private {
		return "private"
	}
	return "public"
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
