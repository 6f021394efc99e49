package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PaletteSize is the number of highlight colours, one per priority level.
const PaletteSize = 5

// TaxonomyTables is the raw form of the classification tables.
// Category keys must be one of Categories().
type TaxonomyTables struct {
	// Languages maps a category to the language names that belong to it.
	Languages map[string][]string

	// Topics maps a category to the (lower-case) topics that belong to it.
	Topics map[string][]string

	// DisplayNames maps a lower-case topic to its canonical display name.
	DisplayNames map[string]string

	// Palette holds one highlight colour per priority, index 0 is priority 1.
	Palette []string
}

// Taxonomy is an immutable set of classification tables.
// Build one with NewTaxonomy or DefaultTaxonomy; it is safe to share.
type Taxonomy struct {
	languages    map[string][]string
	topics       map[string][]string
	displayNames map[string]string
	palette      []string
}

// DefaultTaxonomyTables returns the built-in classification tables.
func DefaultTaxonomyTables() TaxonomyTables {
	return TaxonomyTables{
		Languages: map[string][]string{
			CategoryFrontend: {"JavaScript", "TypeScript", "HTML", "CSS", "React", "Vue", "Angular", "Svelte"},
			CategoryBackend:  {"Node.js", "Python", "Java", "Go", "Ruby", "PHP", "C#", "Rust"},
			CategoryDatabase: {"MongoDB", "PostgreSQL", "MySQL", "SQLite", "Redis"},
			CategoryTools:    {"Docker", "Kubernetes", "AWS", "Azure", "GitHub Actions", "Jenkins"},
		},
		Topics: map[string][]string{
			CategoryFrontend: {"react", "vue", "angular", "frontend", "ui", "ux"},
			CategoryBackend:  {"node", "express", "django", "flask", "spring", "backend", "api"},
			CategoryDatabase: {"mongodb", "postgres", "mysql", "sqlite", "database"},
			CategoryTools:    {"docker", "aws", "azure", "ci-cd", "github-actions", "deployment"},
		},
		DisplayNames: map[string]string{
			"react":    "React",
			"vue":      "Vue.js",
			"angular":  "Angular",
			"node":     "Node.js",
			"express":  "Express.js",
			"mongodb":  "MongoDB",
			"postgres": "PostgreSQL",
			"mysql":    "MySQL",
			"docker":   "Docker",
			"aws":      "AWS",
			"azure":    "Azure",
		},
		Palette: []string{"#6B7280", "#9CA3AF", "#D1D5DB", "#F59E0B", "#10B981"},
	}
}

var defaultTaxonomy = mustTaxonomy(DefaultTaxonomyTables())

// DefaultTaxonomy returns the shared built-in taxonomy.
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy
}

func mustTaxonomy(tables TaxonomyTables) *Taxonomy {
	t, err := NewTaxonomy(tables)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTaxonomy validates tables and returns an immutable copy of them.
func NewTaxonomy(tables TaxonomyTables) (*Taxonomy, error) {
	if len(tables.Palette) != PaletteSize {
		return nil, fmt.Errorf("%w: palette needs %d colours, got %d",
			ErrInvalidInput, PaletteSize, len(tables.Palette))
	}

	languages, err := copyCategoryTable("languages", tables.Languages, false)
	if err != nil {
		return nil, err
	}
	topics, err := copyCategoryTable("topics", tables.Topics, true)
	if err != nil {
		return nil, err
	}

	displayNames := make(map[string]string, len(tables.DisplayNames))
	for topic, name := range tables.DisplayNames {
		displayNames[strings.ToLower(topic)] = name
	}

	return &Taxonomy{
		languages:    languages,
		topics:       topics,
		displayNames: displayNames,
		palette:      append([]string(nil), tables.Palette...),
	}, nil
}

func copyCategoryTable(table string, in map[string][]string, lower bool) (map[string][]string, error) {
	out := make(map[string][]string, len(Categories()))
	for category, values := range in {
		if !isCategory(category) {
			return nil, fmt.Errorf("%w: unknown %s category %q", ErrInvalidInput, table, category)
		}
		copied := make([]string, 0, len(values))
		for _, v := range values {
			if lower {
				v = strings.ToLower(v)
			}
			copied = append(copied, v)
		}
		out[category] = copied
	}
	return out, nil
}

func isCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// Tables returns a copy of the tables backing t.
func (t *Taxonomy) Tables() TaxonomyTables {
	tables := TaxonomyTables{
		Languages:    make(map[string][]string, len(t.languages)),
		Topics:       make(map[string][]string, len(t.topics)),
		DisplayNames: make(map[string]string, len(t.displayNames)),
		Palette:      append([]string(nil), t.palette...),
	}
	for k, v := range t.languages {
		tables.Languages[k] = append([]string(nil), v...)
	}
	for k, v := range t.topics {
		tables.Topics[k] = append([]string(nil), v...)
	}
	for k, v := range t.displayNames {
		tables.DisplayNames[k] = v
	}
	return tables
}

// DeriveTechStack classifies languages and topics into the four categories.
//
// Languages are visited by byte count, largest first, ties broken by name, so the
// result does not depend on map iteration order. Topics are matched
// case-insensitively and translated through the display-name table, falling back
// to the topic itself. Entries are appended once per bucket.
func (t *Taxonomy) DeriveTechStack(languages map[string]int, topics []string) *TechStack {
	stack := NewTechStack()

	for _, lang := range orderedLanguages(languages) {
		for _, category := range Categories() {
			if contains(t.languages[category], lang) {
				appendUnique(stack.Bucket(category), lang)
			}
		}
	}

	for _, topic := range topics {
		key := strings.ToLower(topic)
		for _, category := range Categories() {
			if !contains(t.topics[category], key) {
				continue
			}
			tech, ok := t.displayNames[key]
			if !ok {
				tech = topic
			}
			appendUnique(stack.Bucket(category), tech)
		}
	}

	return stack
}

// HighlightColor returns the palette colour for a priority.
// Out-of-range priorities get the highest colour.
func (t *Taxonomy) HighlightColor(priority int) string {
	if priority >= 1 && priority <= len(t.palette) {
		return t.palette[priority-1]
	}
	return t.palette[len(t.palette)-1]
}

func orderedLanguages(languages map[string]int) []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

func appendUnique(bucket *[]string, v string) {
	if !contains(*bucket, v) {
		*bucket = append(*bucket, v)
	}
}
