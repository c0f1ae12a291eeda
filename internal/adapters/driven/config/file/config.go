package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all application settings.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Tags    TagsConfig    `toml:"tags"`
	Parser  ParserConfig  `toml:"parser"`
}

// StorageConfig controls draft persistence.
type StorageConfig struct {
	// DataDir is the directory holding the drafts database.
	// Empty means ~/.inkforge/data.
	DataDir string `toml:"data_dir"`
}

// TagsConfig controls the remote tag suggestion service.
type TagsConfig struct {
	// BaseURL of the suggestion service. Empty disables tag suggestion.
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds bounds each suggestion request.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RequestsPerSecond throttles outgoing requests.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// ParserConfig controls markup parsing.
type ParserConfig struct {
	// MinImageWidth is the lower bound of the image width clamp.
	MinImageWidth int `toml:"min_image_width"`

	// MaxImageWidth is the upper bound of the image width clamp.
	MaxImageWidth int `toml:"max_image_width"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() Config {
	return Config{
		Tags: TagsConfig{
			TimeoutSeconds:    10,
			RequestsPerSecond: 2,
		},
		Parser: ParserConfig{
			MinImageWidth: 0,
			MaxImageWidth: 2000,
		},
	}
}

// ConfigStore loads and saves the TOML configuration file.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// NewConfigStore creates a config store rooted at configDir.
// If configDir is empty, defaults to ~/.inkforge/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".inkforge")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		config:   DefaultConfig(),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Config returns the current settings.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Update replaces the settings and persists them.
func (s *ConfigStore) Update(cfg Config) error {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	return s.Save()
}

// Load reads the config file from disk. Keys absent from the file keep
// their default values.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}
	s.config = cfg
	return nil
}

// Save writes the config file to disk.
func (s *ConfigStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := toml.Marshal(s.config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
