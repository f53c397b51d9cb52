package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"orrery/api"
	"orrery/app"
	"orrery/hal"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		serve    string
		origins  string
	)
	cfg := app.DefaultConfig()

	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 25, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&window.Width, "w", 800, "Viewport width in pixels.")
	flag.IntVar(&window.Height, "h", 600, "Viewport height in pixels.")
	flag.IntVar(&window.Scale, "scale", 1, "Window scale factor.")
	flag.Float64Var(&cfg.CameraDistance, "camera", cfg.CameraDistance, "Camera distance from the orbital centre.")
	flag.Float64Var(&cfg.TiltDegrees, "tilt", cfg.TiltDegrees, "Orbital plane tilt in degrees.")
	flag.IntVar(&cfg.RingSamples, "samples", cfg.RingSamples, "Points per orbit ring.")
	flag.BoolVar(&cfg.ClosedRings, "closed-rings", false, "Join the last ring point back to the first.")
	flag.BoolVar(&cfg.Labels, "labels", cfg.Labels, "Draw body names.")
	flag.BoolVar(&cfg.Strict, "strict", false, "Stop on the first dropped frame instead of holding the last one.")
	flag.Uint64Var(&cfg.LogEvery, "log-every", 0, "Log frame statistics every N ticks (0 = off).")
	flag.StringVar(&serve, "serve", "", "Serve the JSON API on this address, e.g. :8080.")
	flag.StringVar(&origins, "cors", "", "Comma-separated origins allowed to call the API.")
	flag.Parse()

	window.TPS = headless.Hz
	headless.Width, headless.Height = window.Width, window.Height

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newApp := func(h hal.HAL) (func() error, error) {
		sys, err := app.New(h, cfg)
		if err != nil {
			return nil, err
		}
		if serve != "" {
			r := api.NewRouter(sys, splitOrigins(origins))
			go func() {
				if err := api.Serve(ctx, serve, r); err != nil {
					h.Logger().WriteLineString("api: " + err.Error())
				}
			}()
			h.Logger().WriteLineString("api: listening on " + serve)
		}
		return sys.Step, nil
	}

	var err error
	if headless.Enabled {
		err = hal.RunHeadless(ctx, newApp, headless)
	} else {
		err = hal.RunWindow(window, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
