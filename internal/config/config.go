// Package config provides configuration for the hcg-setup CLI.
//
// Viper stays contained in this package and the rest of the codebase
// receives the explicit Config struct. Sources are resolved in this order:
// flags > environment > config file > defaults. Defaults reproduce the
// stock Homecooked Games setup, so a config file is never required.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Fixed CI principal and role used when no override is configured.
const (
	DefaultServiceAccount = "ci-distribution@hcgamesfirebase.iam.gserviceaccount.com"
	DefaultDistroRole     = "roles/firebaseappdistro.admin"
)

// Config is the explicit configuration struct consumed by the rest of the
// codebase.
type Config struct {
	SettingsPath   string   // Unity settings document, relative to the project root
	OutputDir      string   // destination for downloaded Firebase config artifacts
	ServiceAccount string   // CI principal granted distribution access on new projects
	DistroRole     string   // IAM role bound to the CI principal
	ProjectPrefix  string   // namespace tag prepended to project slugs
	MinNodeMajor   int      // oldest Node.js major version the Firebase CLI accepts
	PriorityPaths  []string // directories forced to the front of the search path
	ExtraPaths     []string // directories appended to the search path when absent
	DryRun         bool     // print external commands instead of running them
	Debug          bool     // enable debug logging
}

// Init initializes viper with defaults, the env binding, and the optional
// config file. When cfgFile is empty, `.hcg-setup.yaml` is looked up in the
// current directory and $HOME and its absence is not an error. An explicit
// --config file that cannot be read is an error.
func Init(cfgFile string) error {
	home, _ := os.UserHomeDir()

	viper.SetDefault("settings-path", filepath.Join("ProjectSettings", "ProjectSettings.asset"))
	viper.SetDefault("output-dir", filepath.Join("Assets", "Settings"))
	viper.SetDefault("service-account", DefaultServiceAccount)
	viper.SetDefault("distro-role", DefaultDistroRole)
	viper.SetDefault("project-prefix", "hcg-")
	viper.SetDefault("min-node-major", 20)
	viper.SetDefault("priority-paths", []string{"/opt/homebrew/bin", "/opt/homebrew/sbin"})
	viper.SetDefault("extra-paths", []string{"/usr/local/bin", filepath.Join(home, ".npm-global", "bin")})
	viper.SetDefault("dry-run", false)
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("HCG_SETUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
		return nil
	}

	viper.SetConfigName(".hcg-setup")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home != "" {
		viper.AddConfigPath(home)
	}

	// A missing config file is fine; a present but broken one is not.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// Load reads from all sources and returns the explicit Config.
func Load() (*Config, error) {
	cfg := &Config{
		SettingsPath:   viper.GetString("settings-path"),
		OutputDir:      viper.GetString("output-dir"),
		ServiceAccount: viper.GetString("service-account"),
		DistroRole:     viper.GetString("distro-role"),
		ProjectPrefix:  viper.GetString("project-prefix"),
		MinNodeMajor:   viper.GetInt("min-node-major"),
		PriorityPaths:  viper.GetStringSlice("priority-paths"),
		ExtraPaths:     viper.GetStringSlice("extra-paths"),
		DryRun:         viper.GetBool("dry-run"),
		Debug:          viper.GetBool("debug"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures the config is usable before any external command runs.
func (c *Config) Validate() error {
	if c.SettingsPath == "" {
		return fmt.Errorf("settings-path must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output-dir must not be empty")
	}
	if c.ServiceAccount == "" {
		return fmt.Errorf("service-account must not be empty")
	}
	if c.DistroRole == "" {
		return fmt.Errorf("distro-role must not be empty")
	}
	if c.ProjectPrefix == "" {
		return fmt.Errorf("project-prefix must not be empty")
	}
	if c.MinNodeMajor < 1 {
		return fmt.Errorf("invalid min-node-major: %d", c.MinNodeMajor)
	}
	return nil
}
