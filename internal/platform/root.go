package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quire/pkg/i18n"
)

// ConfigFileNames are the per-project settings files, in lookup order.
var ConfigFileNames = []string{".quire.yaml", ".quire.yml"}

// ErrNoConfig is returned by FindConfig when no settings file exists.
var ErrNoConfig = errors.New("config file not found")

// FileConfig is the content of a settings file.
type FileConfig struct {
	Language    string `yaml:"language"`
	ReadOnly    bool   `yaml:"read_only"`
	EventBuffer int    `yaml:"event_buffer"`
}

// FindConfig looks upwards from startDir for a settings file and returns its
// absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range ConfigFileNames {
			if hasFile(dir, name) {
				return filepath.Join(dir, name), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrNoConfig
}

// LoadConfig parses the settings file at path.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the settings into editor options.
func (c FileConfig) Options() ([]Option, error) {
	var opts []Option
	if c.Language != "" {
		lang, err := i18n.ParseLanguage(c.Language)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLanguage(lang))
	}
	if c.ReadOnly {
		opts = append(opts, WithReadOnly(true))
	}
	if c.EventBuffer > 0 {
		opts = append(opts, WithEventBuffer(c.EventBuffer))
	}
	return opts, nil
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
