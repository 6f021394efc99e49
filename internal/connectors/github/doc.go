// Package github implements a RepositorySource backed by the GitHub REST API.
//
// # Architecture
//
// The package comprises the following components:
//
//   - Client: issues API calls through go-github and maps results onto the
//     domain model
//   - RateLimiter: optional request pacing plus tracking of the last observed
//     X-RateLimit headers
//   - Config: base URL, timeout and pacing settings
//
// # Quota
//
// Every quota-consuming call first reads /rate_limit, which is itself free.
// When no calls remain the client fails fast with a domain.QuotaExceededError.
// It never sleeps until the window resets and never retries.
//
// # Authentication
//
// A personal access token or OAuth access token is sent as a bearer token.
// Without a token the client runs unauthenticated with the public limit of
// 60 requests per hour.
package github
