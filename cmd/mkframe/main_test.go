package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orrery/app"
	"orrery/sim/orbitgl"
)

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	var log bytes.Buffer
	opts := options{ticks: 10, out: out, width: 200, height: 150, cfg: app.DefaultConfig()}
	if err := run(opts, &log); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("bounds = %v, want 200x150", b)
	}
	r, g, b, _ := img.At(100, 75).RGBA()
	if r>>8 != 0xFF || g>>8 != 0xFF || b>>8 != 0 {
		t.Fatalf("centre = %02x%02x%02x, want sun yellow", r>>8, g>>8, b>>8)
	}
	if !strings.Contains(log.String(), "tick 10") {
		t.Fatalf("log = %q, want tick 10", log.String())
	}
}

func TestRunRejectsDegenerateCamera(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.CameraDistance = 100
	opts := options{out: filepath.Join(t.TempDir(), "frame.png"), width: 64, height: 48, cfg: cfg}
	err := run(opts, &bytes.Buffer{})
	if !errors.Is(err, orbitgl.ErrDegenerateProjection) {
		t.Fatalf("run() error = %v, want ErrDegenerateProjection", err)
	}
	if _, statErr := os.Stat(opts.out); !os.IsNotExist(statErr) {
		t.Fatalf("output written despite error")
	}
}

func TestRunRemovesOutputOnEncodeError(t *testing.T) {
	// png rejects empty images, so a 0x0 viewport fails after the file exists.
	opts := options{out: filepath.Join(t.TempDir(), "frame.png"), width: 0, height: 0, cfg: app.DefaultConfig()}
	if err := run(opts, &bytes.Buffer{}); err == nil {
		t.Fatal("run() with an empty viewport succeeded, want encode error")
	}
	if _, err := os.Stat(opts.out); !os.IsNotExist(err) {
		t.Fatalf("partial output left behind: stat err = %v", err)
	}
}
