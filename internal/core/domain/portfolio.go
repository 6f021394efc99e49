package domain

import (
	"strings"
	"time"
)

// Tech-stack categories. Every TechStack carries all four, possibly empty.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryTools    = "tools"
)

// Categories returns the fixed tech-stack categories in display order.
func Categories() []string {
	return []string{CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryTools}
}

// PortfolioRepository is the canonical portfolio record.
// It is created by the transformer and replaced copy-on-write by the enricher.
// Its JSON encoding is the output contract consumers depend on.
type PortfolioRepository struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	FullName   string `json:"full_name"`
	Visibility string `json:"visibility"`
	IsPrivate  bool   `json:"is_private"`

	Description     *string `json:"description"`
	LongDescription *string `json:"long_description"`

	Topics []string `json:"topics"`
	Tags   []string `json:"tags"`

	TechStack *TechStack     `json:"tech_stack"`
	Languages map[string]int `json:"languages"`

	Media *Media `json:"media"`
	Links Links  `json:"links"`
	Stats Stats  `json:"stats"`
	Owner *Owner `json:"owner"`

	PortfolioFlags *PortfolioFlags `json:"portfolio_flags"`
}

// TechStack groups technologies by category. Order within a bucket is insertion order.
type TechStack struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Database []string `json:"database"`
	Tools    []string `json:"tools"`
}

// NewTechStack returns a TechStack with every category present and empty.
func NewTechStack() *TechStack {
	return &TechStack{
		Frontend: []string{},
		Backend:  []string{},
		Database: []string{},
		Tools:    []string{},
	}
}

// Bucket returns a pointer to the slice backing category, or nil for an unknown category.
func (t *TechStack) Bucket(category string) *[]string {
	switch category {
	case CategoryFrontend:
		return &t.Frontend
	case CategoryBackend:
		return &t.Backend
	case CategoryDatabase:
		return &t.Database
	case CategoryTools:
		return &t.Tools
	}
	return nil
}

// Media holds screenshot links and an optional video demo.
type Media struct {
	Screenshots []string `json:"screenshots"`
	VideoDemo   *string  `json:"video_demo"`
}

// Links holds the outward links of a repository.
type Links struct {
	RepoURL  *string `json:"repo_url"`
	Homepage *string `json:"homepage"`
	LiveDemo *string `json:"live_demo"`
	Docs     *string `json:"docs"`
}

// Stats holds repository counters and timestamps.
type Stats struct {
	Stars       int        `json:"stars"`
	Forks       int        `json:"forks"`
	Watchers    int        `json:"watchers"`
	OpenIssues  int        `json:"open_issues"`
	LastUpdated *time.Time `json:"last_updated"`
	CreatedAt   *time.Time `json:"created_at"`
}

// Owner describes the repository owner.
type Owner struct {
	Username   *string `json:"username"`
	ProfileURL *string `json:"profile_url"`
	Avatar     *string `json:"avatar"`
}

// PortfolioFlags controls how a repository is displayed in a portfolio.
type PortfolioFlags struct {
	Featured        bool   `json:"featured"`
	Priority        int    `json:"priority"`
	ShowInPortfolio bool   `json:"show_in_portfolio"`
	HighlightColor  string `json:"highlight_color"`
}

// SplitFullName splits "owner/name" into its two parts.
// ok is false unless there is exactly one separator and both parts are non-empty.
func SplitFullName(fullName string) (owner, name string, ok bool) {
	owner, name, found := strings.Cut(fullName, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}
