package main

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/mosaic"
	"pkt.systems/pslog"
)

// NewDitherCommand builds the command drawing an image on the terminal.
func NewDitherCommand(loader *mosaic.Loader) *cobra.Command {
	var width, height int
	var antialias, colorMode, charset, algorithm string
	var gamma, brightness, contrast float64
	var seed uint64
	var trueColor bool
	var logFile string

	cmd := &cobra.Command{
		Use:   "dither <image>",
		Short: "Dither an image into coloured text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("antialias") {
				cfg.Dither.Antialias = antialias
			}
			if flags.Changed("color") {
				cfg.Dither.Color = colorMode
			}
			if flags.Changed("charset") {
				cfg.Dither.Charset = charset
			}
			if flags.Changed("algorithm") {
				cfg.Dither.Algorithm = algorithm
			}
			if flags.Changed("gamma") {
				cfg.Dither.Gamma = gamma
			}
			if flags.Changed("brightness") {
				cfg.Dither.Brightness = brightness
			}
			if flags.Changed("contrast") {
				cfg.Dither.Contrast = contrast
			}
			if flags.Changed("seed") {
				cfg.Dither.Seed = seed
			}
			if flags.Changed("truecolor") {
				cfg.Render.TrueColor = trueColor
			}
			if flags.Changed("log-file") {
				cfg.Log.File = logFile
			}

			logger, closer, err := openLogger(cfg.Log.File, pslog.Ctx(cmd.Context()))
			if err != nil {
				return err
			}
			defer func() {
				_ = closer.Close()
			}()
			logger = logger.With("component", "dither")
			ctx := pslog.ContextWithLogger(cmd.Context(), logger)

			img, err := mosaic.LoadImage(args[0])
			if err != nil {
				return err
			}

			w, h := cfg.Canvas.Width, cfg.Canvas.Height
			out := cmd.OutOrStdout()
			if tw, th, ok := terminalSize(out); ok {
				w, h = tw, th-1
			}
			switch {
			case flags.Changed("width") && flags.Changed("height"):
				w, h = width, height
			case flags.Changed("width"):
				w, h = width, cellHeight(img.Bounds(), width)
			case flags.Changed("height"):
				h = height
			}
			if w <= 0 || h <= 0 {
				return fmt.Errorf("invalid output size %dx%d: %w", w, h, mosaic.ErrInvalidArgument)
			}

			c, err := mosaic.NewCanvas(w, h, mosaic.WithLogger(logger))
			if err != nil {
				return err
			}
			defer func() {
				_ = c.Close()
			}()
			if err := mosaic.DitherImage(ctx, c, img, cfg.Dither); err != nil {
				return err
			}
			if err := mosaic.Render(out, c, mosaic.RenderOptions{TrueColor: cfg.Render.TrueColor}); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&width, "width", mosaic.DefaultCanvasWidth, "output width in cells")
	flags.IntVar(&height, "height", mosaic.DefaultCanvasHeight, "output height in cells")
	flags.StringVar(&antialias, "antialias", mosaic.DefaultAntialias, "antialias mode (see mosaic options)")
	flags.StringVar(&colorMode, "color", mosaic.DefaultColorMode, "colour mode (see mosaic options)")
	flags.StringVar(&charset, "charset", mosaic.DefaultCharset, "glyph charset (see mosaic options)")
	flags.StringVar(&algorithm, "algorithm", mosaic.DefaultAlgorithm, "dither algorithm (see mosaic options)")
	flags.Float64Var(&gamma, "gamma", 1, "gamma correction, negative inverts")
	flags.Float64Var(&brightness, "brightness", 1, "brightness multiplier")
	flags.Float64Var(&contrast, "contrast", 1, "contrast multiplier")
	flags.Uint64Var(&seed, "seed", mosaic.DefaultSeed, "seed for random dithering")
	flags.BoolVar(&trueColor, "truecolor", false, "emit 24-bit colour escapes")
	flags.StringVar(&logFile, "log-file", mosaic.DefaultLogPath(), "log file path, empty logs to stderr")

	return cmd
}

// terminalSize returns the size of w when it is a terminal.
func terminalSize(w io.Writer) (int, int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 1 {
		return 0, 0, false
	}
	return cols, rows, true
}

// cellHeight keeps the image aspect ratio for a given width, assuming cells
// twice as tall as they are wide.
func cellHeight(b image.Rectangle, width int) int {
	if b.Dx() == 0 {
		return 1
	}
	return max(width*b.Dy()/b.Dx()/2, 1)
}
