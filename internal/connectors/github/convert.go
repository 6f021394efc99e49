package github

import (
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

// toRawRepository maps a go-github repository onto the domain's raw record.
// Absent optional fields stay nil.
func toRawRepository(r *gh.Repository) domain.RawRepository {
	raw := domain.RawRepository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Private:         r.GetPrivate(),
		Visibility:      r.Visibility,
		Description:     r.Description,
		Topics:          r.Topics,
		HTMLURL:         r.HTMLURL,
		Homepage:        r.Homepage,
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		WatchersCount:   r.GetWatchersCount(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		Fork:            r.GetFork(),
		Archived:        r.GetArchived(),
		CreatedAt:       timestamp(r.CreatedAt),
		UpdatedAt:       timestamp(r.UpdatedAt),
	}

	if r.Owner != nil {
		raw.Owner = &domain.RawOwner{
			Login:     r.Owner.Login,
			HTMLURL:   r.Owner.HTMLURL,
			AvatarURL: r.Owner.AvatarURL,
		}
	}
	return raw
}

func timestamp(ts *gh.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
