package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "lvms.yaml"
	// UserConfigDir is the directory for user-level config, relative to home
	UserConfigDir = ".config/lvms"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger  *slog.Logger
	homeDir string
	workDir string
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithHomeDir overrides the home directory used to find the user config.
func WithHomeDir(dir string) LoaderOption {
	return func(l *Loader) { l.homeDir = dir }
}

// WithWorkDir overrides the directory the project config search starts from.
func WithWorkDir(dir string) LoaderOption {
	return func(l *Loader) { l.workDir = dir }
}

// NewLoader creates a configuration loader. A nil logger uses slog.Default.
func NewLoader(logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{logger: logger}
	for _, opt := range opts {
		opt(l)
	}
	if l.homeDir == "" {
		l.homeDir, _ = os.UserHomeDir()
	}
	if l.workDir == "" {
		l.workDir, _ = os.Getwd()
	}

	return l
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/lvms/config.yaml)
// 3. Project config (lvms.yaml in the working directory or its parents)
// 4. explicitPath, when not empty; a missing explicit file is an error
func (l *Loader) Load(explicitPath string) (*Config, error) {
	config := DefaultConfig()

	if path := l.userConfigPath(); path != "" {
		if layer, err := readLayer(path); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", path))
			config.Merge(layer)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", path), slog.String("error", err.Error()))
		}
	}

	if path := l.findProjectConfig(); path != "" {
		if layer, err := readLayer(path); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", path))
			config.Merge(layer)
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", path), slog.String("error", err.Error()))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	if explicitPath != "" {
		layer, err := readLayer(explicitPath)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config", slog.String("path", explicitPath))
		config.Merge(layer)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// EnsureUserConfig writes the default config to the user config path if no
// file exists there yet and reports whether it created one.
func (l *Loader) EnsureUserConfig() (bool, error) {
	path := l.userConfigPath()
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := DefaultConfig().SaveToFile(path); err != nil {
		return false, err
	}

	l.logger.Info("Created default user config", slog.String("path", path))
	return true, nil
}

// UserConfigPath returns the user config location, empty when the home
// directory is unknown.
func (l *Loader) UserConfigPath() string { return l.userConfigPath() }

func (l *Loader) userConfigPath() string {
	if l.homeDir == "" {
		return ""
	}
	return filepath.Join(l.homeDir, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for lvms.yaml in the working directory and its parents
func (l *Loader) findProjectConfig() string {
	if l.workDir == "" {
		return ""
	}

	dir := l.workDir
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
