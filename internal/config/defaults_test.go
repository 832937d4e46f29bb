package config

import (
	"testing"
)

func TestDefaultConfigUsesConstants(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()

	if cfg.Canvas.Width != DefaultCanvasWidth || cfg.Canvas.Height != DefaultCanvasHeight {
		t.Fatalf("Canvas = %dx%d, want %dx%d", cfg.Canvas.Width, cfg.Canvas.Height, DefaultCanvasWidth, DefaultCanvasHeight)
	}
	if cfg.Dither.Antialias != DefaultAntialias {
		t.Fatalf("Antialias = %q, want %q", cfg.Dither.Antialias, DefaultAntialias)
	}
	if cfg.Dither.Color != DefaultColorMode {
		t.Fatalf("Color = %q, want %q", cfg.Dither.Color, DefaultColorMode)
	}
	if cfg.Dither.Charset != DefaultCharset {
		t.Fatalf("Charset = %q, want %q", cfg.Dither.Charset, DefaultCharset)
	}
	if cfg.Dither.Algorithm != DefaultAlgorithm {
		t.Fatalf("Algorithm = %q, want %q", cfg.Dither.Algorithm, DefaultAlgorithm)
	}
	if cfg.Dither.Gamma != DefaultGamma || cfg.Dither.Brightness != DefaultBrightness || cfg.Dither.Contrast != DefaultContrast {
		t.Fatalf("Dither tuning = %+v", cfg.Dither)
	}
	if cfg.Render.TrueColor {
		t.Fatalf("Render.TrueColor defaults to true")
	}
	if cfg.Log.File != DefaultLogPath() {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, DefaultLogPath())
	}
}
