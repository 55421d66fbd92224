// Package config provides the configuration loader for scenecache.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// supportedVersion is the only config schema version understood by this loader.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     afero.Fs
}

// NewLoader creates a new Loader with the given logger, reading through fsys.
func NewLoader(logger ports.Logger, fsys afero.Fs) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load discovers the nearest config file at or above cwd and returns the merged settings.
// Without a config file the defaults are returned.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	configPath, ok := l.findConfiguration(cwd)
	if !ok {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultSettings(), nil
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the settings from configPath, applying them over the defaults.
func (l *Loader) LoadFile(configPath string) (domain.Settings, error) {
	var scenefile Scenefile
	if err := readAndUnmarshalYAML(l.fs, configPath, &scenefile); err != nil {
		return domain.Settings{}, err
	}

	if scenefile.Version != "" && scenefile.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("unknown config version %q in %s, reading it as version %s",
			scenefile.Version, configPath, supportedVersion))
	}

	settings, err := apply(domain.DefaultSettings(), &scenefile)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "config", configPath)
	}

	l.Logger.Debug("loaded settings from " + configPath)
	return settings, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.fs.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func apply(s domain.Settings, f *Scenefile) (domain.Settings, error) {
	if f.CheckFrequency != nil {
		if *f.CheckFrequency < 1 {
			return s, zerr.With(domain.ErrInvalidCheckFrequency, "check_frequency", *f.CheckFrequency)
		}
		s.CheckFrequency = *f.CheckFrequency
	}

	if f.Jobs != nil {
		if *f.Jobs < 1 {
			return s, zerr.With(domain.ErrInvalidJobs, "jobs", *f.Jobs)
		}
		s.Jobs = *f.Jobs
	}

	if f.Staleness != "" {
		mode, err := domain.ParseStalenessMode(f.Staleness)
		if err != nil {
			return s, err
		}
		s.Staleness = mode
	}

	if f.LogFormat != "" {
		format, err := domain.ParseLogFormat(f.LogFormat)
		if err != nil {
			return s, err
		}
		s.LogFormat = format
	}

	if f.LogLevel != "" {
		s.LogLevel = domain.ParseLogLevel(f.LogLevel)
	}

	if f.Debounce != "" {
		d, err := time.ParseDuration(f.Debounce)
		if err != nil || d < 0 {
			return s, zerr.With(domain.ErrInvalidDebounce, "debounce", f.Debounce)
		}
		s.Debounce = d
	}

	return s, nil
}

func readAndUnmarshalYAML[T any](fsys afero.Fs, configPath string, target *T) error {
	configFile, err := afero.ReadFile(fsys, configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "config", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "config", configPath)
	}

	return nil
}
