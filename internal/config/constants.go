package config

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".mosaic"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "mosaic.log"

	// DefaultCanvasWidth is the canvas width used when no terminal is attached.
	DefaultCanvasWidth = 80
	// DefaultCanvasHeight is the canvas height used when no terminal is attached.
	DefaultCanvasHeight = 24

	// DefaultAntialias is the default dither antialias key.
	DefaultAntialias = "prefilter"
	// DefaultColorMode is the default dither colour mode key.
	DefaultColorMode = "full16"
	// DefaultCharset is the default dither charset key.
	DefaultCharset = "ascii"
	// DefaultAlgorithm is the default dither algorithm key.
	DefaultAlgorithm = "fstein"
	// DefaultGamma is the default dither gamma.
	DefaultGamma = 1.0
	// DefaultBrightness is the default dither brightness.
	DefaultBrightness = 1.0
	// DefaultContrast is the default dither contrast.
	DefaultContrast = 1.0
	// DefaultSeed seeds the random dither algorithm.
	DefaultSeed = 1
)
