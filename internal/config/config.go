// Package config resolves cembed settings.
// Precedence: command-line flags > environment variables (CEMBED_*) > config file > defaults.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables and config files.
const (
	KeyInput           = "input"
	KeyOutput          = "output"
	KeyName            = "name"
	KeyHeader          = "header"
	KeyLogLevel        = "log-level"
	KeyAddr            = "addr"
	KeyContentType     = "content-type"
	KeyContentEncoding = "content-encoding"
)

// EnvPrefix is prepended to every environment variable (CEMBED_INPUT, CEMBED_LOG_LEVEL, ...).
const EnvPrefix = "CEMBED"

// Config holds the resolved settings.
type Config struct {
	Input  string
	Output string
	// Name is the array identifier. Empty means derived from Output.
	Name     string
	LogLevel logrus.Level

	Preview Preview
}

// Preview configures the preview server.
type Preview struct {
	Header          string
	Addr            string
	ContentType     string
	ContentEncoding string
}

// Defaults reproduce the firmware build layout: index.html.gz -> index_html_gz.h.
var defaults = map[string]interface{}{
	KeyInput:           "index.html.gz",
	KeyOutput:          "index_html_gz.h",
	KeyName:            "",
	KeyHeader:          "",
	KeyLogLevel:        "info",
	KeyAddr:            ":8080",
	KeyContentType:     "text/html",
	KeyContentEncoding: "gzip",
}

// New returns a viper instance with defaults and environment lookups set up.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load binds flags to v, reads the optional config file and resolves the settings.
// flags may be nil. An explicitly named config file that cannot be read is an error.
func Load(v *viper.Viper, flags *pflag.FlagSet, configFile string) (*Config, error) {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %q", configFile)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	return &Config{
		Input:    v.GetString(KeyInput),
		Output:   v.GetString(KeyOutput),
		Name:     v.GetString(KeyName),
		LogLevel: level,
		Preview: Preview{
			Header:          v.GetString(KeyHeader),
			Addr:            v.GetString(KeyAddr),
			ContentType:     v.GetString(KeyContentType),
			ContentEncoding: v.GetString(KeyContentEncoding),
		},
	}, nil
}

// HeaderPath returns the header served by the preview server, falling back to Output.
func (c *Config) HeaderPath() string {
	if c.Preview.Header != "" {
		return c.Preview.Header
	}
	return c.Output
}
