package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.toml"

// ConfigStore reads and writes config.toml.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// NewConfigStore creates a store and loads the file if present.
// If configDir is empty, defaults to ~/.repofolio.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".repofolio")
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, FileName),
		config:   DefaultConfig(),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns a copy of the loaded configuration.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Load reads the TOML file over the defaults. A missing file is not an error.
// Unknown keys are rejected so typos surface early.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file yet - that's fine, use defaults
			s.config = DefaultConfig()
			return nil
		}
		return err
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	s.config = cfg
	return nil
}

// Save writes cfg to disk, creating the directory if needed.
func (s *ConfigStore) Save(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}

	// Write with restricted permissions, the file may hold a token
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return err
	}
	s.config = cfg
	return nil
}

// Exists reports whether the configuration file is present.
func (s *ConfigStore) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
