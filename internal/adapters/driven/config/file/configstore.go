package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/config"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.toml"

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore reads settings from config.toml. The file is never written
// and a missing file yields an empty configuration.
type ConfigStore struct {
	path string

	mu     sync.RWMutex
	values map[string]any
}

// DefaultDir returns ~/.bikeshare.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".bikeshare"), nil
}

// NewConfigStore loads config.toml from configDir, or from DefaultDir when
// configDir is empty.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	s := &ConfigStore{path: filepath.Join(configDir, FileName)}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) GetString(key string) string {
	v, _ := s.Get(key)
	str, _ := config.AsString(v)
	return str
}

func (s *ConfigStore) GetInt(key string) int {
	v, _ := s.Get(key)
	n, _ := config.AsInt(v)
	return n
}

func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return config.SortedKeys(s.values)
}

// Load re-reads the file. Syntax errors are reported with their line and column.
func (s *ConfigStore) Load() error {
	raw, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("No config file at %s, using defaults", s.path)
		raw = nil
	case err != nil:
		return fmt.Errorf("read config: %w", err)
	}

	tree := make(map[string]any)
	if err := toml.Unmarshal(raw, &tree); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%s:%d:%d: %w", s.path, row, col, err)
		}
		return fmt.Errorf("parse %s: %w", s.path, err)
	}

	values := config.Flatten(tree)

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()

	logger.Debug("Loaded %d settings from %s", len(values), s.path)
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.path
}
