// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server needs to talk to its collaborators.
type Config struct {
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	CMSBaseURL string        `mapstructure:"cms_base_url"`
	CMSToken   string        `mapstructure:"cms_token"`
	CMSTimeout time.Duration `mapstructure:"cms_timeout"`

	PartnerBaseURL    string        `mapstructure:"partner_base_url"`
	PartnerAPIKey     string        `mapstructure:"partner_api_key"`
	PartnerTimeout    time.Duration `mapstructure:"partner_timeout"`
	EnrollmentTimeout time.Duration `mapstructure:"enrollment_timeout"`

	GeoBaseURL  string        `mapstructure:"geo_base_url"`
	GeoTimeout  time.Duration `mapstructure:"geo_timeout"`
	GeoCacheTTL time.Duration `mapstructure:"geo_cache_ttl"`

	DefaultPerPage int `mapstructure:"default_per_page"`
}

// Load reads configuration from environment variables, falling back to the
// defaults below. Every key is overridable via its upper-case env name
// (e.g. CMS_BASE_URL).
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")

	v.SetDefault("cms_base_url", "http://localhost:1337")
	v.SetDefault("cms_token", "")
	v.SetDefault("cms_timeout", 5*time.Second)

	v.SetDefault("partner_base_url", "http://localhost:9000")
	v.SetDefault("partner_api_key", "")
	v.SetDefault("partner_timeout", 15*time.Second)
	v.SetDefault("enrollment_timeout", 10*time.Second)

	v.SetDefault("geo_base_url", "http://localhost:9100")
	v.SetDefault("geo_timeout", 3*time.Second)
	v.SetDefault("geo_cache_ttl", time.Hour)

	v.SetDefault("default_per_page", 12)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &cfg, nil
}
