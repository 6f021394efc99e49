package domain

import (
	"unicode"
	"unicode/utf8"
)

const (
	// FeaturedStarThreshold is the star count a repository must exceed to be featured.
	FeaturedStarThreshold = 20

	// MinPriority and MaxPriority bound PortfolioFlags.Priority.
	MinPriority = 1
	MaxPriority = 5

	starsPerPriority = 10
)

// Priority maps a star count onto [MinPriority, MaxPriority].
func Priority(stars int) int {
	if stars < 0 {
		stars = 0
	}
	p := stars/starsPerPriority + 1
	return min(max(p, MinPriority), MaxPriority)
}

// ComputePortfolioFlags derives display flags from stars and privacy only.
func (t *Taxonomy) ComputePortfolioFlags(stars int, isPrivate bool) PortfolioFlags {
	priority := Priority(stars)
	return PortfolioFlags{
		Featured:        stars > FeaturedStarThreshold,
		Priority:        priority,
		ShowInPortfolio: !isPrivate || stars > 0,
		HighlightColor:  t.HighlightColor(priority),
	}
}

// DeriveTags upper-cases the first character of each topic, keeping order.
// The result is never nil.
func DeriveTags(topics []string) []string {
	tags := make([]string, 0, len(topics))
	for _, topic := range topics {
		tags = append(tags, upperFirst(topic))
	}
	return tags
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
