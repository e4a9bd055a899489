package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/ytplugin-labs/ytplugin/internal/automation"
	"github.com/ytplugin-labs/ytplugin/internal/branding"
	"github.com/ytplugin-labs/ytplugin/internal/platform"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyAutomationBaseURL = "automation.base_url"
	KeyAutomationAPIKey  = "automation.api_key"
	KeyRepoRoot          = "repo.root"
)

// Dir returns the path to the config directory (~/.ytplugin/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.ytplugin/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist. The
// directory is private to the user because the file may hold an API key.
func EnsureDir() error {
	dir := Dir()
	if err := platform.SecureDir(dir); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Environment variables use the YTPLUGIN_ prefix with dots replaced by
// underscores (YTPLUGIN_REPO_ROOT). The automation settings also read the
// NOVFLUX_API_BASE and NOVFLUX_API_KEY variables.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv(KeyAutomationBaseURL, branding.EnvVar("AUTOMATION_BASE_URL"), automation.EnvBaseURL)
	_ = viper.BindEnv(KeyAutomationAPIKey, branding.EnvVar("AUTOMATION_API_KEY"), automation.EnvAPIKey)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// AutomationBaseURL returns the configured NovaFlux base URL, or "".
func AutomationBaseURL() string { return Get(KeyAutomationBaseURL) }

// AutomationAPIKey returns the configured NovaFlux API key, or "".
func AutomationAPIKey() string { return Get(KeyAutomationAPIKey) }

// RepoRoot returns the configured starter repository root, or "".
func RepoRoot() string { return Get(KeyRepoRoot) }

// Set writes a config key-value pair and saves the config file. Only
// values stored in the file are written back; environment overrides are
// never persisted.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	fileOnly := viper.New()
	fileOnly.SetConfigFile(configFile)
	fileOnly.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := fileOnly.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	fileOnly.Set(key, value)
	if err := fileOnly.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := platform.SecureFile(configFile); err != nil {
		return fmt.Errorf("securing config file %s: %w", configFile, err)
	}

	viper.Set(key, value)
	return nil
}
