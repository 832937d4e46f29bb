package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for mosaic.
type Config struct {
	Canvas CanvasConfig `mapstructure:"canvas" yaml:"canvas"`
	Dither DitherConfig `mapstructure:"dither" yaml:"dither"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// CanvasConfig sets the output canvas size. Zero means "use the terminal".
type CanvasConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// DitherConfig holds the dither option keys and tuning values.
type DitherConfig struct {
	Antialias  string  `mapstructure:"antialias" yaml:"antialias"`
	Color      string  `mapstructure:"color" yaml:"color"`
	Charset    string  `mapstructure:"charset" yaml:"charset"`
	Algorithm  string  `mapstructure:"algorithm" yaml:"algorithm"`
	Gamma      float64 `mapstructure:"gamma" yaml:"gamma"`
	Brightness float64 `mapstructure:"brightness" yaml:"brightness"`
	Contrast   float64 `mapstructure:"contrast" yaml:"contrast"`
	Seed       uint64  `mapstructure:"seed" yaml:"seed"`
}

// RenderConfig configures terminal output.
type RenderConfig struct {
	TrueColor bool `mapstructure:"truecolor" yaml:"truecolor"`
}

// LogConfig configures the optional log file.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Loader wraps Viper configuration loading for mosaic.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("MOSAIC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/mosaic")
	v.AddConfigPath("$HOME/.mosaic")

	l := &Loader{v: v}
	l.SetDefaults()
	return l
}

// Viper exposes the underlying Viper instance for flag binding and defaults.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration and unmarshals it into a Config struct.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
