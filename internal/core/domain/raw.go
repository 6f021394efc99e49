package domain

import "time"

// RawRepository is a repository record as returned verbatim by the hosting API.
// Field names follow the GitHub REST payload so fixtures can be decoded directly.
type RawRepository struct {
	ID              int64      `json:"id" validate:"required,gt=0"`
	Name            string     `json:"name" validate:"required"`
	FullName        string     `json:"full_name" validate:"required,fullname"`
	Private         bool       `json:"private"`
	Visibility      *string    `json:"visibility,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Topics          []string   `json:"topics,omitempty"`
	HTMLURL         *string    `json:"html_url,omitempty"`
	Homepage        *string    `json:"homepage,omitempty"`
	StargazersCount int        `json:"stargazers_count"`
	ForksCount      int        `json:"forks_count"`
	WatchersCount   int        `json:"watchers_count"`
	OpenIssuesCount int        `json:"open_issues_count"`
	Fork            bool       `json:"fork"`
	Archived        bool       `json:"archived"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	Owner           *RawOwner  `json:"owner,omitempty"`
}

// RawOwner is the owner block embedded in a raw repository.
type RawOwner struct {
	Login     *string `json:"login,omitempty"`
	HTMLURL   *string `json:"html_url,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// OwnerLogin returns the owner's login or an empty string when unknown.
func (r RawRepository) OwnerLogin() string {
	if r.Owner == nil || r.Owner.Login == nil {
		return ""
	}
	return *r.Owner.Login
}

// DirectoryEntry is one entry of a repository directory listing.
type DirectoryEntry struct {
	Type        string
	Name        string
	DownloadURL string
}
