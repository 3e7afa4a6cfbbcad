// Command bgblur applies the background-blur pipeline to a region of an
// image file and writes the result as PNG.
package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/nvr-ai/go-toolkit/images"
	"github.com/nvr-ai/go-toolkit/toolkit"
)

func main() {
	var (
		inPath    = flag.String("in", "", "input image (png or jpeg)")
		outPath   = flag.String("out", "out.png", "output image (png)")
		cropX     = flag.Int("x", 0, "crop region x offset")
		cropY     = flag.Int("y", 0, "crop region y offset")
		cropW     = flag.Int("w", 0, "crop region width (0 = full width)")
		cropH     = flag.Int("h", 0, "crop region height (0 = full height)")
		radius    = flag.Int("radius", 15, "blur radius (1-25)")
		scale     = flag.Float64("scale", 0.25, "downscale factor in (0,1]")
		direction = flag.String("direction", "none", "progressive fade: none, top-to-bottom, bottom-to-top, edges")
		fadeStart = flag.Float64("fade-start", 0, "normalized fade start position")
		fadeEnd   = flag.Float64("fade-end", 1, "normalized fade end position")
		maxWidth  = flag.Int("max-width", 0, "shrink input to fit this width before processing (0 = off)")
		maxHeight = flag.Int("max-height", 0, "shrink input to fit this height before processing (0 = off)")
		threads   = flag.Int("threads", 0, "worker threads (0 = GOMAXPROCS)")
		debug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := initLogger(*debug)
	if *inPath == "" {
		logger.Fatal("missing -in path")
	}

	dir, ok := parseDirection(*direction)
	if !ok {
		logger.Fatalf("unknown direction %q", *direction)
	}

	f, err := os.Open(*inPath)
	if err != nil {
		logger.WithError(err).Fatal("opening input")
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		logger.WithError(err).Fatal("decoding input")
	}

	if *maxWidth > 0 || *maxHeight > 0 {
		mw, mh := *maxWidth, *maxHeight
		if mw == 0 {
			mw = img.Bounds().Dx()
		}
		if mh == 0 {
			mh = img.Bounds().Dy()
		}
		img = images.Fit(img, mw, mh)
	}

	src, srcW, srcH := images.FromImage(img)
	crop := images.Region{X: *cropX, Y: *cropY, Width: *cropW, Height: *cropH}
	if crop.Width == 0 {
		crop.Width = srcW - crop.X
	}
	if crop.Height == 0 {
		crop.Height = srcH - crop.Y
	}

	logger.WithFields(logrus.Fields{
		"format":    format,
		"size":      image.Pt(srcW, srcH),
		"crop":      crop,
		"radius":    *radius,
		"scale":     *scale,
		"direction": dir.String(),
	}).Info("blurring")

	tk := toolkit.New(toolkit.WithThreads(*threads), toolkit.WithLogger(logger))
	defer tk.Close()

	dst := make([]byte, crop.Width*crop.Height*4)
	ok = tk.BackgroundBlur(src, dst, toolkit.BackgroundBlurParams{
		SrcWidth:  srcW,
		SrcHeight: srcH,
		Crop:      crop,
		Radius:    *radius,
		Scale:     float32(*scale),
		Direction: dir,
		FadeStart: float32(*fadeStart),
		FadeEnd:   float32(*fadeEnd),
	})
	if !ok {
		logger.Fatal("background blur rejected the parameters")
	}

	// Composite the blurred region back into the frame.
	for y := 0; y < crop.Height; y++ {
		so := y * crop.Width * 4
		do := ((crop.Y+y)*srcW + crop.X) * 4
		copy(src[do:do+crop.Width*4], dst[so:so+crop.Width*4])
	}

	out, err := os.Create(*outPath)
	if err != nil {
		logger.WithError(err).Fatal("creating output")
	}
	defer out.Close()
	if err := png.Encode(out, images.ToImage(src, srcW, srcH)); err != nil {
		logger.WithError(err).Fatal("encoding output")
	}
	logger.WithField("path", *outPath).Info("done")
}

func parseDirection(s string) (toolkit.ProgressiveDirection, bool) {
	switch s {
	case "none":
		return toolkit.ProgressiveNone, true
	case "top-to-bottom":
		return toolkit.ProgressiveTopToBottom, true
	case "bottom-to-top":
		return toolkit.ProgressiveBottomToTop, true
	case "edges":
		return toolkit.ProgressiveEdges, true
	default:
		return toolkit.ProgressiveNone, false
	}
}

func initLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
