// Command mkframe renders the orrery at a given tick into a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"orrery/app"
	"orrery/hal"
)

const defaultOutPath = "frame.png"

type options struct {
	ticks  uint64
	out    string
	width  int
	height int
	cfg    app.Config
}

func main() {
	opts := options{cfg: app.DefaultConfig()}
	flag.Uint64Var(&opts.ticks, "ticks", 0, "Advance the scene N ticks before rendering.")
	flag.StringVar(&opts.out, "out", defaultOutPath, "Output PNG path.")
	flag.IntVar(&opts.width, "w", 800, "Image width in pixels.")
	flag.IntVar(&opts.height, "h", 600, "Image height in pixels.")
	flag.Float64Var(&opts.cfg.CameraDistance, "camera", opts.cfg.CameraDistance, "Camera distance from the orbital centre.")
	flag.Float64Var(&opts.cfg.TiltDegrees, "tilt", opts.cfg.TiltDegrees, "Orbital plane tilt in degrees.")
	flag.IntVar(&opts.cfg.RingSamples, "samples", opts.cfg.RingSamples, "Points per orbit ring.")
	flag.BoolVar(&opts.cfg.ClosedRings, "closed-rings", false, "Join the last ring point back to the first.")
	flag.BoolVar(&opts.cfg.Labels, "labels", opts.cfg.Labels, "Draw body names.")
	flag.Parse()

	if opts.out == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if opts.width <= 0 || opts.height <= 0 {
		fmt.Fprintln(os.Stderr, "error: -w and -h must be positive")
		os.Exit(2)
	}

	if err := run(opts, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(opts options, log io.Writer) error {
	// A dropped frame would leave an older tick in the image.
	opts.cfg.Strict = true

	h := hal.NewWithLog(opts.width, opts.height, log)
	sys, err := app.New(h, opts.cfg)
	if err != nil {
		return err
	}
	for i := uint64(0); i < opts.ticks; i++ {
		if err := sys.Step(); err != nil {
			return fmt.Errorf("tick %d: %w", i+1, err)
		}
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %q: %w", opts.out, err)
	}
	img := hal.Snapshot(h.Display().Framebuffer())
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(opts.out)
		return fmt.Errorf("encode %q: %w", opts.out, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(opts.out)
		return fmt.Errorf("close %q: %w", opts.out, err)
	}

	tick, _, _ := sys.Frame()
	fmt.Fprintf(log, "wrote %s (%dx%d, tick %d)\n", opts.out, opts.width, opts.height, tick)
	return nil
}
