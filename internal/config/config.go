package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type ViewerConfig struct {
	Command string
	Args    []string
}

type AppConfig struct {
	Environment string
	API         APIConfig
	Viewer      ViewerConfig
	DownloadDir string
	LogFile     string
}

// Load reads config.yaml (working dir or ./config) and TURNTABLE_* env vars.
// A missing config file is fine; env overrides always apply, so
// TURNTABLE_API_BASEURL alone is enough to point at a remote service.
func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("TURNTABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	// Empty baseurl means the locally running service.
	v.SetDefault("api.baseurl", "http://localhost:8080")
	v.SetDefault("api.timeout", "120s")

	v.SetDefault("viewer.command", "")

	v.SetDefault("downloaddir", defaultDownloadDir())
	v.SetDefault("logfile", "")
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
