package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  DefaultCanvasWidth,
			Height: DefaultCanvasHeight,
		},
		Dither: DitherConfig{
			Antialias:  DefaultAntialias,
			Color:      DefaultColorMode,
			Charset:    DefaultCharset,
			Algorithm:  DefaultAlgorithm,
			Gamma:      DefaultGamma,
			Brightness: DefaultBrightness,
			Contrast:   DefaultContrast,
			Seed:       DefaultSeed,
		},
		Log: LogConfig{
			File: DefaultLogPath(),
		},
	}
}

// SetDefaults registers the DefaultConfig values on the loader so keys
// missing from the config file still unmarshal to sane values.
func (l *Loader) SetDefaults() {
	def := DefaultConfig()
	v := l.v
	v.SetDefault("canvas.width", def.Canvas.Width)
	v.SetDefault("canvas.height", def.Canvas.Height)
	v.SetDefault("dither.antialias", def.Dither.Antialias)
	v.SetDefault("dither.color", def.Dither.Color)
	v.SetDefault("dither.charset", def.Dither.Charset)
	v.SetDefault("dither.algorithm", def.Dither.Algorithm)
	v.SetDefault("dither.gamma", def.Dither.Gamma)
	v.SetDefault("dither.brightness", def.Dither.Brightness)
	v.SetDefault("dither.contrast", def.Dither.Contrast)
	v.SetDefault("dither.seed", def.Dither.Seed)
	v.SetDefault("render.truecolor", def.Render.TrueColor)
	v.SetDefault("log.file", def.Log.File)
}
