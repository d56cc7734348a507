// SPDX-License-Identifier: GPL-2.0-or-later

// Package config loads spingen.yaml and SPINGEN_* environment overrides.
package config

import (
	"errors"
	"strings"
	"time"

	perrors "github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	envVarPrefix = "SPINGEN"
	fileName     = "spingen"
)

type Config struct {
	// Minimum level of a log required to be written. Options: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`
	// File logs are appended to. Blank writes to stderr.
	LogFilePath string `mapstructure:"log_file_path"`
	// PLAYPAL to use when no loaded archive carries one.
	PaletteFile string `mapstructure:"palette_file"`

	Render struct {
		Scale  float32 `mapstructure:"scale"`
		Delay  uint16  `mapstructure:"delay"`
		Mirror bool    `mapstructure:"mirror"`
		// Sprite drawn as skin thumbnail and the one tried when it is missing.
		ThumbnailSprite   string `mapstructure:"thumbnail_sprite"`
		ThumbnailFallback string `mapstructure:"thumbnail_fallback"`
		// Edge length of one ramp entry in spray previews.
		SwatchSize int `mapstructure:"swatch_size"`
	} `mapstructure:"render"`

	Server struct {
		Address      string        `mapstructure:"address"`
		CacheTTL     time.Duration `mapstructure:"cache_ttl"`
		CacheCleanup time.Duration `mapstructure:"cache_cleanup"`
	} `mapstructure:"server"`

	Export struct {
		// Number of sprites rendered at once.
		Workers int `mapstructure:"workers"`
	} `mapstructure:"export"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file_path", "")
	v.SetDefault("palette_file", "")
	v.SetDefault("render.scale", 1.0)
	v.SetDefault("render.delay", 20)
	v.SetDefault("render.mirror", false)
	v.SetDefault("render.thumbnail_sprite", "STINA2")
	v.SetDefault("render.thumbnail_fallback", "STINA2A8")
	v.SetDefault("render.swatch_size", 8)
	v.SetDefault("server.address", "localhost:8080")
	v.SetDefault("server.cache_ttl", 10*time.Minute)
	v.SetDefault("server.cache_cleanup", time.Minute)
	v.SetDefault("export.workers", 4)
}

// Load reads spingen.yaml from dir. A missing file is not an error, the
// defaults and environment apply.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, perrors.Wrapf(err, "reading config in %s", dir)
		}
	}

	// Nested keys are set through the environment as e.g.
	// SPINGEN_SERVER_ADDRESS.
	for _, k := range v.AllKeys() {
		env := envVarPrefix + "_" + strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := v.BindEnv(k, env); err != nil {
			return nil, perrors.Wrapf(err, "binding %s to %s", k, env)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, perrors.Wrap(err, "decoding config")
	}
	return c, nil
}
