// Package config loads a small typed set of chunking options ("a
// profile"), generalizing the configuration-file/env-var loading
// pattern the pack's service repos use (spf13/viper) down to the
// handful of ints a sum.Processor actually needs.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Profile names a chunk-size preset.
type Profile struct {
	Name    string `mapstructure:"name"`
	AvgSize int    `mapstructure:"avg_size"`
}

// DefaultProfile is used when no configuration source overrides it.
var DefaultProfile = Profile{Name: "default", AvgSize: 1024}

// Load resolves a Profile from, in precedence order: the
// ISCCSUM_AVG_SIZE / ISCCSUM_NAME environment variables, an explicit
// configPath (if non-empty), and finally DefaultProfile.
func Load(configPath string) (Profile, error) {
	v := viper.New()
	v.SetEnvPrefix("isccsum")
	v.AutomaticEnv()
	v.SetDefault("name", DefaultProfile.Name)
	v.SetDefault("avg_size", DefaultProfile.AvgSize)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Profile{}, fmt.Errorf("config: read %s: %w", configPath, err)
		}
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return Profile{}, fmt.Errorf("config: unmarshal profile: %w", err)
	}

	if p.AvgSize <= 0 {
		return Profile{}, fmt.Errorf("config: avg_size must be positive, got %d", p.AvgSize)
	}

	return p, nil
}
