// Package config loads relay configuration from the environment and an
// optional config file. Every value has a default; a missing config file is
// not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment and config file identity
const (
	EnvPrefix      = "RELAY"
	ConfigFileName = "relay-config"
	ConfigFileType = "yaml"
)

// Configuration keys
const (
	KeyListenAddr    = "listen_addr"
	KeyStagingDir    = "staging_dir"
	KeySecretsDir    = "secrets_dir"
	KeyEngineTimeout = "engine_timeout"
	KeyReapGrace     = "reap_grace"
	KeyReapInterval  = "reap_interval"
	KeyHistoryFile   = "history_file"
	KeyDebug         = "debug"
	KeyEnableCORS    = "enable_cors"
)

// Default values
const (
	DefaultListenAddr    = ":8080"
	DefaultSecretsDir    = "/etc/secrets"
	DefaultEngineTimeout = 15 * time.Minute
	DefaultReapGrace     = 1 * time.Hour
	DefaultReapInterval  = 15 * time.Minute
	DefaultDebug         = false
	DefaultEnableCORS    = true
)

// Config holds the relay's process-wide configuration. All values are
// read-only after Load.
type Config struct {
	ListenAddr    string
	StagingDir    string
	SecretsDir    string
	EngineTimeout time.Duration
	ReapGrace     time.Duration
	ReapInterval  time.Duration
	HistoryFile   string
	Debug         bool
	EnableCORS    bool
}

// Load reads configuration from RELAY_* environment variables and an
// optional relay-config file in the working directory or home directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyListenAddr, DefaultListenAddr)
	v.SetDefault(KeyStagingDir, defaultStagingDir())
	v.SetDefault(KeySecretsDir, DefaultSecretsDir)
	v.SetDefault(KeyEngineTimeout, DefaultEngineTimeout)
	v.SetDefault(KeyReapGrace, DefaultReapGrace)
	v.SetDefault(KeyReapInterval, DefaultReapInterval)
	v.SetDefault(KeyHistoryFile, defaultHistoryFile())
	v.SetDefault(KeyDebug, DefaultDebug)
	v.SetDefault(KeyEnableCORS, DefaultEnableCORS)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		ListenAddr:    v.GetString(KeyListenAddr),
		StagingDir:    v.GetString(KeyStagingDir),
		SecretsDir:    v.GetString(KeySecretsDir),
		EngineTimeout: v.GetDuration(KeyEngineTimeout),
		ReapGrace:     v.GetDuration(KeyReapGrace),
		ReapInterval:  v.GetDuration(KeyReapInterval),
		HistoryFile:   v.GetString(KeyHistoryFile),
		Debug:         v.GetBool(KeyDebug),
		EnableCORS:    v.GetBool(KeyEnableCORS),
	}
	if cfg.StagingDir == "" {
		return nil, fmt.Errorf("staging directory must not be empty")
	}
	return cfg, nil
}

// defaultStagingDir places staged artifacts under the system temp dir.
func defaultStagingDir() string {
	return filepath.Join(os.TempDir(), "relay-staging")
}

// defaultHistoryFile places the download history under the user config dir,
// falling back to the temp dir when that is unavailable.
func defaultHistoryFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "relay", "download_history.json")
	}
	return filepath.Join(dir, "relay", "download_history.json")
}
