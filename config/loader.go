package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "ontogen.yaml"
	// UserConfigDir is the directory for user-level config, relative to home
	UserConfigDir = ".config/ontogen"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// layer is one config file on top of the defaults.
type layer struct {
	name string
	path string
	// relative resolves paths in the file against its directory
	relative bool
	// required turns a read failure into an error instead of a warning
	required bool
}

// Loader builds a Config from the defaults, the user config and the
// nearest project config, later layers overriding earlier ones.
type Loader struct {
	logger  *slog.Logger
	workDir string
	homeDir string
	sources []string
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Sources returns the files merged by the last Load, in merge order.
func (l *Loader) Sources() []string {
	return l.sources
}

// Load merges the layers and validates the result. A missing layer is
// skipped. Relative ontology and output paths of the project config are
// resolved against the directory holding it.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()
	l.sources = nil

	for _, ly := range l.layers() {
		if ly.path == "" {
			continue
		}
		next, err := readLayer(ly.path)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist):
			continue
		case ly.required:
			return nil, err
		default:
			l.logger.Warn("Ignoring unreadable config",
				slog.String("layer", ly.name),
				slog.String("path", ly.path),
				slog.String("error", err.Error()))
			continue
		}
		if ly.relative {
			next.resolvePaths(filepath.Dir(ly.path))
		}
		cfg.Merge(next)
		l.sources = append(l.sources, ly.path)
		l.logger.Debug("Merged config", slog.String("layer", ly.name), slog.String("path", ly.path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// readLayer parses path without filling in defaults, so that only the
// values the file sets override earlier layers.
func readLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func (l *Loader) layers() []layer {
	return []layer{
		{name: "user", path: l.userConfigPath()},
		{name: "project", path: l.findProjectConfig(), relative: true, required: true},
	}
}

// EnsureUserConfig writes the default config to the user config path
// unless a file is already there.
func (l *Loader) EnsureUserConfig() error {
	path := l.userConfigPath()
	if path == "" {
		return errors.New("cannot determine home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := DefaultConfig().SaveToFile(path); err != nil {
		return err
	}
	l.logger.Info("Created default user config", slog.String("path", path))
	return nil
}

func (l *Loader) userConfigPath() string {
	home := l.homeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig walks up from the working directory to the first
// directory holding ProjectConfigFile.
func (l *Loader) findProjectConfig() string {
	dir := l.workDir
	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return ""
		}
	}
	for {
		path := filepath.Join(dir, ProjectConfigFile)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// resolvePaths makes the file system paths of c absolute against base.
func (c *Config) resolvePaths(base string) {
	for _, p := range []*string{&c.Ontology.Dir, &c.Ontology.Schema, &c.Compiler.OutputDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}
