package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func sampleRaw() domain.RawRepository {
	created := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return domain.RawRepository{
		ID:              1,
		Name:            "x",
		FullName:        "alice/x",
		Description:     strPtr("demo app"),
		Topics:          []string{"react", "docker"},
		HTMLURL:         strPtr("https://github.com/alice/x"),
		Homepage:        strPtr("https://x.example.com"),
		StargazersCount: 25,
		ForksCount:      3,
		WatchersCount:   25,
		OpenIssuesCount: 2,
		CreatedAt:       &created,
		UpdatedAt:       &updated,
		Owner: &domain.RawOwner{
			Login:     strPtr("alice"),
			HTMLURL:   strPtr("https://github.com/alice"),
			AvatarURL: strPtr("https://avatars.example.com/alice"),
		},
	}
}

func TestTransformer_TransformOne(t *testing.T) {
	tr := NewTransformer()

	t.Run("maps every field", func(t *testing.T) {
		raw := sampleRaw()

		repo, err := tr.TransformOne(&raw)

		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.ID)
		assert.Equal(t, "x", repo.Name)
		assert.Equal(t, "alice/x", repo.FullName)
		assert.Equal(t, "public", repo.Visibility)
		assert.False(t, repo.IsPrivate)
		assert.Equal(t, "demo app", *repo.Description)
		assert.Nil(t, repo.LongDescription)
		assert.Equal(t, []string{"react", "docker"}, repo.Topics)
		assert.Equal(t, []string{}, repo.Tags)
		assert.Nil(t, repo.TechStack)
		assert.Nil(t, repo.Languages)
		assert.Nil(t, repo.Media)
		assert.Nil(t, repo.PortfolioFlags)
		assert.Equal(t, "https://github.com/alice/x", *repo.Links.RepoURL)
		assert.Equal(t, "https://x.example.com", *repo.Links.Homepage)
		assert.Nil(t, repo.Links.LiveDemo)
		assert.Nil(t, repo.Links.Docs)
		assert.Equal(t, domain.Stats{
			Stars:       25,
			Forks:       3,
			Watchers:    25,
			OpenIssues:  2,
			LastUpdated: raw.UpdatedAt,
			CreatedAt:   raw.CreatedAt,
		}, repo.Stats)
		require.NotNil(t, repo.Owner)
		assert.Equal(t, "alice", *repo.Owner.Username)
		assert.Equal(t, "https://github.com/alice", *repo.Owner.ProfileURL)
		assert.Equal(t, "https://avatars.example.com/alice", *repo.Owner.Avatar)
	})

	t.Run("full name is preserved and splits in two", func(t *testing.T) {
		raw := sampleRaw()

		repo, err := tr.TransformOne(&raw)
		require.NoError(t, err)

		assert.Equal(t, raw.FullName, repo.FullName)
		parts := strings.Split(repo.FullName, "/")
		require.Len(t, parts, 2)
		assert.NotEmpty(t, parts[0])
		assert.NotEmpty(t, parts[1])
	})

	t.Run("visibility", func(t *testing.T) {
		tests := []struct {
			name       string
			visibility *string
			private    bool
			want       string
		}{
			{"explicit field wins", strPtr("internal"), false, "internal"},
			{"private flag", nil, true, "private"},
			{"public by default", nil, false, "public"},
			{"empty explicit field falls back", strPtr(""), true, "private"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				raw := sampleRaw()
				raw.Visibility = tt.visibility
				raw.Private = tt.private

				repo, err := tr.TransformOne(&raw)

				require.NoError(t, err)
				assert.Equal(t, tt.want, repo.Visibility)
				assert.Equal(t, tt.private, repo.IsPrivate)
			})
		}
	})

	t.Run("absent fields become null or empty", func(t *testing.T) {
		raw := domain.RawRepository{ID: 7, Name: "bare", FullName: "bob/bare"}

		repo, err := tr.TransformOne(&raw)

		require.NoError(t, err)
		assert.NotNil(t, repo.Topics)
		assert.Empty(t, repo.Topics)
		assert.NotNil(t, repo.Tags)
		assert.Empty(t, repo.Tags)
		assert.Nil(t, repo.Description)
		assert.Nil(t, repo.Owner)
		assert.Nil(t, repo.Links.RepoURL)
		assert.Nil(t, repo.Stats.CreatedAt)
		assert.Equal(t, 0, repo.Stats.Stars)
	})

	t.Run("empty strings become null", func(t *testing.T) {
		raw := sampleRaw()
		raw.Description = strPtr("")
		raw.Homepage = strPtr("")
		raw.HTMLURL = strPtr("")
		raw.Owner = &domain.RawOwner{
			Login:     strPtr(""),
			HTMLURL:   strPtr(""),
			AvatarURL: strPtr(""),
		}

		repo, err := tr.TransformOne(&raw)

		require.NoError(t, err)
		assert.Nil(t, repo.Description)
		assert.Nil(t, repo.Links.Homepage)
		assert.Nil(t, repo.Links.RepoURL)
		require.NotNil(t, repo.Owner)
		assert.Nil(t, repo.Owner.Username)
		assert.Nil(t, repo.Owner.ProfileURL)
		assert.Nil(t, repo.Owner.Avatar)

		data, err := json.Marshal(repo)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"description":null`)
		assert.Contains(t, string(data), `"homepage":null`)
	})

	t.Run("pointers are not shared with the raw record", func(t *testing.T) {
		raw := sampleRaw()
		repo, err := tr.TransformOne(&raw)
		require.NoError(t, err)

		*raw.Description = "changed"

		assert.Equal(t, "demo app", *repo.Description)
	})

	t.Run("topics are copied", func(t *testing.T) {
		raw := sampleRaw()
		repo, err := tr.TransformOne(&raw)
		require.NoError(t, err)

		raw.Topics[0] = "vue"

		assert.Equal(t, "react", repo.Topics[0])
	})

	t.Run("rejects malformed identity", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*domain.RawRepository)
		}{
			{"zero id", func(r *domain.RawRepository) { r.ID = 0 }},
			{"missing name", func(r *domain.RawRepository) { r.Name = "" }},
			{"missing full name", func(r *domain.RawRepository) { r.FullName = "" }},
			{"full name without owner", func(r *domain.RawRepository) { r.FullName = "x" }},
			{"full name with two separators", func(r *domain.RawRepository) { r.FullName = "a/b/c" }},
			{"full name with empty owner", func(r *domain.RawRepository) { r.FullName = "/x" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				raw := sampleRaw()
				tt.mutate(&raw)

				_, err := tr.TransformOne(&raw)

				assert.True(t, errors.Is(err, domain.ErrInvalidInput), "got %v", err)
			})
		}
	})

	t.Run("rejects nil", func(t *testing.T) {
		_, err := tr.TransformOne(nil)

		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestTransformer_TransformMany(t *testing.T) {
	tr := NewTransformer()

	t.Run("keeps order", func(t *testing.T) {
		a, b := sampleRaw(), sampleRaw()
		b.ID, b.Name, b.FullName = 2, "y", "alice/y"

		repos, err := tr.TransformMany([]domain.RawRepository{a, b})

		require.NoError(t, err)
		require.Len(t, repos, 2)
		assert.Equal(t, "alice/x", repos[0].FullName)
		assert.Equal(t, "alice/y", repos[1].FullName)
	})

	t.Run("empty batch", func(t *testing.T) {
		repos, err := tr.TransformMany([]domain.RawRepository{})

		require.NoError(t, err)
		assert.NotNil(t, repos)
		assert.Empty(t, repos)
	})

	t.Run("nil batch is not a sequence", func(t *testing.T) {
		_, err := tr.TransformMany(nil)

		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("one bad element aborts the batch", func(t *testing.T) {
		good, bad := sampleRaw(), sampleRaw()
		bad.FullName = "nope"

		repos, err := tr.TransformMany([]domain.RawRepository{good, bad})

		assert.Nil(t, repos)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Contains(t, err.Error(), "repository 1")
	})
}
