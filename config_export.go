package mosaic

import "pkt.systems/mosaic/internal/config"

// Config mirrors the mosaic configuration.
type Config = config.Config

// CanvasConfig sets the output canvas size.
type CanvasConfig = config.CanvasConfig

// DitherConfig holds dither option keys and tuning values.
type DitherConfig = config.DitherConfig

// RenderConfig configures terminal output.
type RenderConfig = config.RenderConfig

// LogConfig configures the log file.
type LogConfig = config.LogConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = config.DefaultConfigDirName
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = config.DefaultConfigFileName
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = config.DefaultLogFileName

	// DefaultCanvasWidth is the fallback canvas width.
	DefaultCanvasWidth = config.DefaultCanvasWidth
	// DefaultCanvasHeight is the fallback canvas height.
	DefaultCanvasHeight = config.DefaultCanvasHeight
	// DefaultAntialias is the default antialias key.
	DefaultAntialias = config.DefaultAntialias
	// DefaultColorMode is the default colour mode key.
	DefaultColorMode = config.DefaultColorMode
	// DefaultCharset is the default charset key.
	DefaultCharset = config.DefaultCharset
	// DefaultAlgorithm is the default algorithm key.
	DefaultAlgorithm = config.DefaultAlgorithm
	// DefaultSeed seeds random dithering.
	DefaultSeed = config.DefaultSeed
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}

// DefaultConfig returns the default mosaic configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	return config.DefaultConfigDir()
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default log path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}
