package driven

import (
	"context"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

// RepositorySource fetches repository data from a code-hosting API.
// Every quota-consuming call checks the quota first and fails fast when none remains.
type RepositorySource interface {
	// CheckQuota returns the remaining calls and reset time.
	// Fails with a domain.QuotaCheckError if the introspection call fails.
	CheckQuota(ctx context.Context) (domain.Quota, error)

	// ListRepositories returns every repository owned by subject, across all pages.
	// An empty subject means the authenticated identity.
	ListRepositories(ctx context.Context, subject string) ([]domain.RawRepository, error)

	// GetRepository returns a single repository.
	GetRepository(ctx context.Context, owner, name string) (*domain.RawRepository, error)

	// GetLanguages returns language name to byte count for one repository.
	GetLanguages(ctx context.Context, owner, name string) (map[string]int, error)

	// GetReadmeText returns the decoded README, or nil when the repository has none.
	GetReadmeText(ctx context.Context, owner, name string) (*string, error)

	// ListDirectory returns the entries at path.
	// It never fails: a missing path or any error yields an empty slice.
	ListDirectory(ctx context.Context, owner, name, path string) []domain.DirectoryEntry
}
