package mosaic

import (
	"context"
	"fmt"
	"image"

	"pkt.systems/mosaic/internal/dither"
	"pkt.systems/mosaic/internal/errs"
	"pkt.systems/pslog"
)

// ConfigureDither applies the option keys and tuning values of cfg to d.
// Empty keys leave the current setting alone; zero tuning values are
// treated as unset.
func ConfigureDither(d *Dither, cfg DitherConfig) error {
	if d == nil {
		return fmt.Errorf("nil dither: %w", errs.ErrInvalidArgument)
	}
	if cfg.Antialias != "" {
		if err := d.SetAntialiasName(cfg.Antialias); err != nil {
			return err
		}
	}
	if cfg.Color != "" {
		if err := d.SetColorModeName(cfg.Color); err != nil {
			return err
		}
	}
	if cfg.Charset != "" {
		if err := d.SetCharsetName(cfg.Charset); err != nil {
			return err
		}
	}
	if cfg.Algorithm != "" {
		if err := d.SetAlgorithmName(cfg.Algorithm); err != nil {
			return err
		}
	}
	if cfg.Gamma != 0 {
		if err := d.SetGamma(cfg.Gamma); err != nil {
			return err
		}
	}
	if cfg.Brightness != 0 {
		if err := d.SetBrightness(cfg.Brightness); err != nil {
			return err
		}
	}
	if cfg.Contrast != 0 {
		if err := d.SetContrast(cfg.Contrast); err != nil {
			return err
		}
	}
	d.SetSeed(cfg.Seed)
	return nil
}

// DitherImage draws img over the whole of c using the settings in cfg.
func DitherImage(ctx context.Context, c *Canvas, img image.Image, cfg DitherConfig) error {
	if c == nil || img == nil {
		return fmt.Errorf("dither image: %w", errs.ErrInvalidArgument)
	}
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("dither image: empty image: %w", errs.ErrInvalidArgument)
	}
	format, pixels := dither.FromImage(img)
	d, err := dither.New(format)
	if err != nil {
		return err
	}
	if err := ConfigureDither(d, cfg); err != nil {
		return err
	}
	w, h := c.Size()
	pslog.Ctx(ctx).Debug("dither image",
		"image_width", b.Dx(), "image_height", b.Dy(),
		"width", w, "height", h,
		"color", d.ColorMode().String(), "algorithm", d.Algorithm().String(), "charset", d.Charset().String())
	d.Bitmap(c, 0, 0, w, h, pixels)
	return nil
}

// AntialiasOptions lists the antialias keys.
func AntialiasOptions() []DitherOption { return dither.AntialiasOptions() }

// ColorModeOptions lists the colour mode keys.
func ColorModeOptions() []DitherOption { return dither.ColorModeOptions() }

// CharsetOptions lists the charset keys.
func CharsetOptions() []DitherOption { return dither.CharsetOptions() }

// AlgorithmOptions lists the algorithm keys.
func AlgorithmOptions() []DitherOption { return dither.AlgorithmOptions() }
