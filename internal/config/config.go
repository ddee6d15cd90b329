// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and writes the leetlist.yaml configuration file.
// Values are layered: defaults, then the first leetlist.yaml found in the
// user config dir, the system dir or the working directory (or the file
// named by --config), then LEETLIST_* environment variables, then flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/toeirei/leetlist/internal/mutate"
)

const appName = "leetlist"

// Config is the on-disk configuration.
type Config struct {
	Language string           `mapstructure:"language" yaml:"language"`
	Theme    string           `mapstructure:"theme" yaml:"theme"`
	Years    mutate.YearRange `mapstructure:"years" yaml:"years"`
	Output   struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"output" yaml:"output"`
	Generate struct {
		MaxCandidates int `mapstructure:"max_candidates" yaml:"max_candidates"`
	} `mapstructure:"generate" yaml:"generate"`
	Substitutions struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"substitutions" yaml:"substitutions"`
	History struct {
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"history" yaml:"history"`
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Log struct {
		Level string `mapstructure:"level" yaml:"level"`
	} `mapstructure:"log" yaml:"log"`
}

// Defaults returns the default value for every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"language":                "en",
		"theme":                   "dark",
		"years.start":             mutate.DefaultYears.Start,
		"years.end":               mutate.DefaultYears.End,
		"output.path":             "wordlist.txt",
		"generate.max_candidates": 0,
		"substitutions.file":      "",
		"history.enabled":         true,
		"database.type":           "sqlite",
		"database.dsn":            defaultDSN(),
		"log.level":               "warn",
	}
}

// defaultDSN places the history database next to the user config file,
// falling back to the working directory.
func defaultDSN() string {
	if p, err := GetConfigPath(false); err == nil {
		return filepath.Join(filepath.Dir(p), "history.db")
	}
	return "./leetlist.db"
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Leetlist")
		default:
			configDir = "/etc/leetlist"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig resolves configuration into T. When no file exists the defaults
// are still unmarshalled and a viper.ConfigFileNotFoundError is returned
// alongside them, so callers can decide whether to write a default file.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	// An explicit --config path wins over the search paths.
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Only flags named after a config key are bound; subcommand flags such
	// as --years would otherwise shadow nested keys.
	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if _, ok := defaults[f.Name]; ok && bindErr == nil {
				bindErr = v.BindPFlag(f.Name, f)
			}
		})
		if bindErr != nil {
			return c, bindErr
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// WriteConfigFile marshals c into the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo marshals c into path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// May contain a database DSN with credentials.
	return os.WriteFile(path, data, 0o600)
}
