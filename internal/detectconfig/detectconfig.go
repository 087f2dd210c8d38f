// Package detectconfig is the detector's host configuration layer
// (spec.md §6), loaded via spf13/viper the way gzh-cli's
// internal/config.NewConfigService wires Viper: config-name/search-path
// discovery, a "DETECT_" environment prefix, and dotted-key env
// overrides.
package detectconfig

import (
	"strings"

	"github.com/spf13/viper"
)

// Mode selects how much of the stack registry participates in a run.
type Mode string

const (
	ModeStatic Mode = "static"
	ModeLLM    Mode = "llm"
	ModeFull   Mode = "full"
)

// Config is the host configuration record: run mode, scan limits, and
// the LLM client settings used only when Mode is llm or full.
type Config struct {
	Mode Mode `mapstructure:"mode"`

	MaxScanDepth   int `mapstructure:"max_scan_depth"`
	MaxScanEntries int `mapstructure:"max_scan_entries"`
	MaxReadBytes   int `mapstructure:"max_read_bytes"`

	LLM LLMConfig `mapstructure:"llm"`

	Concurrency int `mapstructure:"concurrency"`
}

// LLMConfig configures the optional language-model client used by
// llm/full modes.
type LLMConfig struct {
	Provider    string `mapstructure:"provider"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Default returns the detector's built-in configuration defaults,
// mirroring gzh-cli's DefaultConfigServiceOptions pattern.
func Default() *Config {
	return &Config{
		Mode:           ModeStatic,
		MaxScanDepth:   24,
		MaxScanEntries: 50000,
		MaxReadBytes:   1 << 20,
		Concurrency:    8,
		LLM: LLMConfig{
			Provider:    "none",
			TimeoutSecs: 30,
		},
	}
}

// Load builds a Viper instance scoped to the detector, searching
// configPath if given and otherwise the conventional locations, then
// layering "DETECT_"-prefixed environment overrides on top.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	applyDefaults(v, Default())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("detect")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/universalbuild")
		v.AddConfigPath("/etc/universalbuild")
	}

	v.SetEnvPrefix("DETECT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("mode", string(cfg.Mode))
	v.SetDefault("max_scan_depth", cfg.MaxScanDepth)
	v.SetDefault("max_scan_entries", cfg.MaxScanEntries)
	v.SetDefault("max_read_bytes", cfg.MaxReadBytes)
	v.SetDefault("concurrency", cfg.Concurrency)
	v.SetDefault("llm.provider", cfg.LLM.Provider)
	v.SetDefault("llm.timeout_secs", cfg.LLM.TimeoutSecs)
}
