package file

import (
	"fmt"

	"github.com/custodia-labs/repofolio/internal/core/domain"
)

// Environment variables consulted after command-line flags.
const (
	EnvToken = "GITHUB_TOKEN"
	EnvUser  = "GITHUB_USER"
)

// Output modes.
const (
	OutputConsole = "console"
	OutputFile    = "file"
)

// DefaultOutputFile is the document written in file mode.
const DefaultOutputFile = "portfolio.json"

// Config is the typed content of config.toml.
type Config struct {
	GitHub   GitHubConfig   `toml:"github"`
	Output   OutputConfig   `toml:"output"`
	Client   ClientConfig   `toml:"client"`
	Taxonomy TaxonomyConfig `toml:"taxonomy"`
}

// GitHubConfig holds credentials and the default subject.
type GitHubConfig struct {
	Token    string `toml:"token,omitempty"`
	Username string `toml:"username,omitempty"`
}

// OutputConfig selects where the portfolio document goes.
type OutputConfig struct {
	Mode string `toml:"mode"`
	File string `toml:"file"`
}

// ClientConfig tunes the fetch client.
type ClientConfig struct {
	// RequestsPerSecond spaces out API calls. Zero disables pacing.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// BaseURL overrides the REST endpoint, e.g. for GitHub Enterprise.
	BaseURL string `toml:"base_url,omitempty"`
}

// TaxonomyConfig overrides the built-in classification tables.
// A category present here replaces that category's default list.
type TaxonomyConfig struct {
	Palette      []string            `toml:"palette,omitempty"`
	Languages    map[string][]string `toml:"languages,omitempty"`
	Topics       map[string][]string `toml:"topics,omitempty"`
	DisplayNames map[string]string   `toml:"display_names,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Mode: OutputConsole,
			File: DefaultOutputFile,
		},
	}
}

// ApplyEnv overlays environment values onto c.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvToken); ok && v != "" {
		c.GitHub.Token = v
	}
	if v, ok := lookup(EnvUser); ok && v != "" {
		c.GitHub.Username = v
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Output.Mode {
	case OutputConsole, OutputFile:
	default:
		return fmt.Errorf("%w: output mode %q, want %q or %q",
			domain.ErrInvalidInput, c.Output.Mode, OutputConsole, OutputFile)
	}
	if c.Output.Mode == OutputFile && c.Output.File == "" {
		return fmt.Errorf("%w: output file is empty", domain.ErrInvalidInput)
	}
	if c.Client.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests_per_second must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// BuildTaxonomy merges the overrides onto the default tables.
func (c *Config) BuildTaxonomy() (*domain.Taxonomy, error) {
	tables := domain.DefaultTaxonomyTables()
	o := c.Taxonomy

	if len(o.Palette) > 0 {
		tables.Palette = o.Palette
	}
	for category, values := range o.Languages {
		tables.Languages[category] = values
	}
	for category, values := range o.Topics {
		tables.Topics[category] = values
	}
	for topic, name := range o.DisplayNames {
		tables.DisplayNames[topic] = name
	}

	taxonomy, err := domain.NewTaxonomy(tables)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}
	return taxonomy, nil
}
