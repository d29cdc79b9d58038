package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/de-tools/data-explain/pkg/services/i18n"
	"github.com/de-tools/data-explain/pkg/services/report"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. EXPLAIN_REPORT_FORMAT.
	EnvPrefix = "EXPLAIN"
	// DefaultName is the config file looked up in the working directory.
	DefaultName = "data-explain"
)

type Config struct {
	Report ReportConfig `mapstructure:"report"`
	I18n   I18nConfig   `mapstructure:"i18n"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
}

type ReportConfig struct {
	InsertHeaders bool   `mapstructure:"insert_headers"`
	Format        string `mapstructure:"format" validate:"required,oneof=txt xml json pdf"`
	// ImageDir resolves relative image references.
	ImageDir string `mapstructure:"image_dir"`
	// PDFFont is a TrueType font file enabling full Unicode text in pdf reports.
	PDFFont string `mapstructure:"pdf_font" validate:"omitempty,file"`
}

type I18nConfig struct {
	// Dir holds the translation files. Localization is off when empty.
	Dir      string `mapstructure:"dir"`
	Basename string `mapstructure:"basename" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("report.insert_headers", true)
	v.SetDefault("report.format", "txt")
	v.SetDefault("report.image_dir", "")
	v.SetDefault("report.pdf_font", "")
	v.SetDefault("i18n.dir", "")
	v.SetDefault("i18n.basename", i18n.DefaultBasename)
	v.SetDefault("log.level", "info")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
}

// Load reads defaults, then the config file, then EXPLAIN_* environment
// variables. An empty path looks for data-explain.{yaml,json,toml} in the
// working directory and tolerates its absence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName(DefaultName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Options turns the report section into report builder options.
func (c ReportConfig) Options() report.Options {
	opts := report.DefaultOptions()
	opts.InsertHeaders = c.InsertHeaders
	opts.Images = report.NewImageResolver(c.ImageDir)
	opts.FontFile = c.PDFFont
	return opts
}

// Bundle loads the translation files, or returns nil when localization is off.
func (c I18nConfig) Bundle() (*i18n.Bundle, error) {
	if c.Dir == "" {
		return nil, nil
	}
	return i18n.LoadBundle(c.Dir, c.Basename)
}

// Logger builds the process logger at the configured level.
func (c LogConfig) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
