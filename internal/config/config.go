package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds tool configuration.
type Config struct {
	Profiles   ProfilesConfig
	Activation ActivationConfig
	UI         UIConfig
	History    HistoryConfig
}

// ProfilesConfig locates the profile store.
type ProfilesConfig struct {
	Path string
}

// ActivationConfig holds pointer-file and shell-output settings.
type ActivationConfig struct {
	PointerPath string `mapstructure:"pointer_path"`
	Shell       string
}

// UIConfig holds selector presentation settings.
type UIConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// HistoryConfig holds activation-history settings.
type HistoryConfig struct {
	Enabled bool
	Path    string
}

// Load reads configuration from file and env. Env var overrides use prefix PULUMI_PROFILE_SELECTOR_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")

	// default values
	v.SetDefault("profiles.path", filepath.Join(home, ".pulumi", "profiles.json"))
	v.SetDefault("activation.pointer_path", filepath.Join(home, ".pulumi", "current_profile"))
	v.SetDefault("activation.shell", "auto")
	v.SetDefault("ui.page_size", 10)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(home, ".local", "share", "pulumi-profile-selector", "history.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PULUMI_PROFILE_SELECTOR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "pulumi-profile-selector"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PULUMI_PROFILE_SELECTOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.PageSize < 1 {
		c.UI.PageSize = 1
	}
	return c, nil
}
