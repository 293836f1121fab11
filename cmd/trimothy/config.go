package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iostrovok/trimothy/logger/level"
	"github.com/iostrovok/trimothy/server"
)

const envPrefix = "TRIMOTHY"

// Config is the merged view of defaults, trimothy.yaml, TRIMOTHY_*
// environment variables and command line flags, in increasing priority.
type Config struct {
	LogLevel string `mapstructure:"log-level"`

	Text   bool   `mapstructure:"text"`
	Cutset string `mapstructure:"cutset"`
	Lossy  bool   `mapstructure:"lossy"`

	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
	MaxBodySize     int           `mapstructure:"max-body-size"`

	// Users enables basic auth on the server. Only read from the config
	// file; user names come out lower-cased.
	Users map[string]string `mapstructure:"users"`

	level level.Level
}

func (cfg *Config) Level() level.Level {
	return cfg.level
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault("log-level", level.InfoLevel.String())
	v.SetDefault("addr", "")
	v.SetDefault("shutdown-timeout", server.DefaultShutdownTimeOut)
	v.SetDefault("max-body-size", server.DefaultMaxBodySize)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("trimothy")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	return v
}

// LoadConfig reads the configuration for a command whose flags are flags.
// A missing trimothy.yaml is not an error, a missing explicit file is.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper(configFile)

	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	lvl, err := level.Parse(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.level = lvl

	return cfg, nil
}
