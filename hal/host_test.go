package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPresentPublishesBackBuffer(t *testing.T) {
	h := NewWithLog(4, 3, &bytes.Buffer{})
	fb := h.Display().Framebuffer()
	if fb.Width() != 4 || fb.Height() != 3 || fb.StrideBytes() != 8 {
		t.Fatalf("fb = %dx%d stride %d, want 4x3 stride 8", fb.Width(), fb.Height(), fb.StrideBytes())
	}

	fb.ClearRGB(0xFF, 0, 0)
	img := Snapshot(fb)
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Fatalf("snapshot before Present shows red %d", r>>8)
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	img = Snapshot(fb)
	c := img.RGBAAt(3, 2)
	if c.R != 0xFF || c.G != 0 || c.B != 0 || c.A != 0xFF {
		t.Fatalf("pixel = %+v, want opaque red", c)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{0xFF, 0xFF, 0x00, 0xFFE0},
		{0x00, 0x00, 0xFF, 0x001F},
	}
	for _, tt := range tests {
		p := rgb565(tt.r, tt.g, tt.b)
		if p != tt.want {
			t.Fatalf("rgb565(%d,%d,%d) = %#04x, want %#04x", tt.r, tt.g, tt.b, p, tt.want)
		}
		r, g, b := rgb888From565(p)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("rgb888From565(%#04x) = %d,%d,%d, want %d,%d,%d", p, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLog(1, 1, &buf).Logger()
	l.WriteLineString("hello")
	l.WriteLineBytes([]byte("world"))
	if got := buf.String(); got != "hello\nworld\n" {
		t.Fatalf("log = %q", got)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	cfg := HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 5, Width: 8, Height: 8, Log: &bytes.Buffer{}}
	err := RunHeadless(context.Background(), func(h HAL) (func() error, error) {
		if fb := h.Display().Framebuffer(); fb.Width() != 8 {
			t.Fatalf("width = %d, want 8", fb.Width())
		}
		return func() error { steps++; return nil }, nil
	}, cfg)
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestRunHeadlessErrors(t *testing.T) {
	boom := errors.New("boom")
	cfg := HeadlessConfig{Hz: 1000, Log: &bytes.Buffer{}}

	err := RunHeadless(context.Background(), func(HAL) (func() error, error) { return nil, boom }, cfg)
	if !errors.Is(err, boom) {
		t.Fatalf("setup error = %v, want boom", err)
	}

	err = RunHeadless(context.Background(), func(HAL) (func() error, error) {
		return func() error { return boom }, nil
	}, cfg)
	if !errors.Is(err, boom) {
		t.Fatalf("step error = %v, want boom", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = RunHeadless(ctx, func(h HAL) (func() error, error) {
		h.Logger().WriteLineString("started")
		return nil, nil
	}, HeadlessConfig{Hz: 10, Log: &bytes.Buffer{}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("cancel error = %v, want deadline exceeded", err)
	}
}

func TestWindowConfigDefaults(t *testing.T) {
	c := WindowConfig{}.withDefaults()
	if c.Width != 800 || c.Height != 600 || c.Scale != 1 || c.TPS != 25 {
		t.Fatalf("defaults = %+v", c)
	}
	if !strings.Contains(c.Title, "Orrery") {
		t.Fatalf("title = %q", c.Title)
	}
}
