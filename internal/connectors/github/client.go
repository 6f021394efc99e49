package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/repofolio/internal/core/domain"
	"github.com/custodia-labs/repofolio/internal/core/ports/driven"
	"github.com/custodia-labs/repofolio/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RepositorySource = (*Client)(nil)

// Client wraps the go-github client with quota checks and domain mapping.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
	pageSize    int
}

// NewClientWithToken creates a GitHub client with a static access token.
// Works for both PAT and OAuth access tokens. An empty token yields an
// unauthenticated client.
func NewClientWithToken(ctx context.Context, token string, cfg Config) (*Client, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}
	httpClient.Timeout = cfg.Timeout

	return newClient(httpClient, cfg)
}

// NewClientWithHTTPClient creates a GitHub client with a custom http.Client.
// The caller's client is responsible for authentication.
func NewClientWithHTTPClient(httpClient *http.Client, cfg Config) (*Client, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	return newClient(httpClient, cfg)
}

func newClient(httpClient *http.Client, cfg Config) (*Client, error) {
	client := gh.NewClient(httpClient)
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base URL %q", ErrConfigInvalid, cfg.BaseURL)
	}
	client.BaseURL = base

	return &Client{
		gh:          client,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
		pageSize:    PageSize,
	}, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// CheckQuota reads the core rate limit. The /rate_limit call is not counted
// against the quota.
func (c *Client) CheckQuota(ctx context.Context) (domain.Quota, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return domain.Quota{}, &domain.QuotaCheckError{Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	limits, resp, err := c.gh.RateLimit.Get(ctx)
	if err != nil {
		return domain.Quota{}, &domain.QuotaCheckError{Err: wrapError(err)}
	}
	c.updateRateLimitFromResponse(resp)

	core := limits.GetCore()
	if core == nil {
		return domain.Quota{}, &domain.QuotaCheckError{Err: fmt.Errorf("response has no core rate limit")}
	}

	quota := domain.Quota{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		ResetAt:   core.Reset.Time,
	}
	logger.Debug("quota: %d/%d remaining, resets at %s",
		quota.Remaining, quota.Limit, quota.ResetAt.Format("15:04:05"))
	return quota, nil
}

// ensureQuota fails fast when no calls remain.
func (c *Client) ensureQuota(ctx context.Context) error {
	quota, err := c.CheckQuota(ctx)
	if err != nil {
		return err
	}
	if quota.Exhausted() {
		return &domain.QuotaExceededError{Limit: quota.Limit, ResetAt: quota.ResetAt}
	}
	return c.rateLimiter.Wait(ctx)
}

// ListRepositories returns every repository owned by subject.
// An empty subject lists the repositories owned by the authenticated user.
// Pages are requested until one comes back short.
func (c *Client) ListRepositories(ctx context.Context, subject string) ([]domain.RawRepository, error) {
	operation := "list repositories"
	all := []domain.RawRepository{}

	for page := 1; ; page++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.ensureQuota(ctx); err != nil {
			return nil, err
		}

		repos, resp, err := c.listPage(ctx, subject, page)
		if err != nil {
			return nil, &domain.FetchError{Operation: operation, Resource: subject, Err: wrapError(err)}
		}
		c.updateRateLimitFromResponse(resp)

		for _, repo := range repos {
			all = append(all, toRawRepository(repo))
		}
		logger.Debug("page %d: %d repositories", page, len(repos))

		if len(repos) < c.pageSize {
			break
		}
	}

	return all, nil
}

func (c *Client) listPage(ctx context.Context, subject string, page int) ([]*gh.Repository, *gh.Response, error) {
	listOpts := gh.ListOptions{Page: page, PerPage: c.pageSize}

	if subject == "" {
		return c.gh.Repositories.ListByAuthenticatedUser(ctx, &gh.RepositoryListByAuthenticatedUserOptions{
			Affiliation: "owner",
			Sort:        "updated",
			ListOptions: listOpts,
		})
	}
	return c.gh.Repositories.ListByUser(ctx, subject, &gh.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		ListOptions: listOpts,
	})
}

// GetRepository fetches a single repository.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*domain.RawRepository, error) {
	if err := c.ensureQuota(ctx); err != nil {
		return nil, err
	}

	repo, resp, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, &domain.FetchError{Operation: "get repository", Resource: owner + "/" + name, Err: wrapError(err)}
	}
	c.updateRateLimitFromResponse(resp)

	raw := toRawRepository(repo)
	return &raw, nil
}

// GetLanguages returns language name to byte count.
func (c *Client) GetLanguages(ctx context.Context, owner, name string) (map[string]int, error) {
	if err := c.ensureQuota(ctx); err != nil {
		return nil, err
	}

	languages, resp, err := c.gh.Repositories.ListLanguages(ctx, owner, name)
	if err != nil {
		return nil, &domain.FetchError{Operation: "get languages", Resource: owner + "/" + name, Err: wrapError(err)}
	}
	c.updateRateLimitFromResponse(resp)

	if languages == nil {
		languages = map[string]int{}
	}
	return languages, nil
}

// GetReadmeText returns the decoded README, or nil when the repository has none.
func (c *Client) GetReadmeText(ctx context.Context, owner, name string) (*string, error) {
	if err := c.ensureQuota(ctx); err != nil {
		return nil, err
	}

	resource := owner + "/" + name
	readme, resp, err := c.gh.Repositories.GetReadme(ctx, owner, name, nil)
	if err != nil {
		wrapped := wrapError(err)
		if IsNotFound(wrapped) {
			return nil, nil
		}
		return nil, &domain.FetchError{Operation: "get readme", Resource: resource, Err: wrapped}
	}
	c.updateRateLimitFromResponse(resp)

	text, err := readme.GetContent()
	if err != nil {
		return nil, &domain.FetchError{Operation: "decode readme", Resource: resource, Err: err}
	}
	return &text, nil
}

// ListDirectory returns the entries at path. Any failure, including an
// exhausted quota or a path that is a file, yields an empty slice.
func (c *Client) ListDirectory(ctx context.Context, owner, name, path string) []domain.DirectoryEntry {
	entries := []domain.DirectoryEntry{}
	resource := owner + "/" + name + "/" + path

	if err := c.ensureQuota(ctx); err != nil {
		logger.Debug("list %s skipped: %v", resource, err)
		return entries
	}

	_, dir, resp, err := c.gh.Repositories.GetContents(ctx, owner, name, path, nil)
	if err != nil {
		logger.Debug("list %s: %v", resource, wrapError(err))
		return entries
	}
	c.updateRateLimitFromResponse(resp)

	for _, item := range dir {
		entries = append(entries, domain.DirectoryEntry{
			Type:        item.GetType(),
			Name:        item.GetName(),
			DownloadURL: item.GetDownloadURL(),
		})
	}
	return entries
}

// updateRateLimitFromResponse records rate limit headers from a response.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}
