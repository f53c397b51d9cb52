package hal

import (
	"io"
	"os"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  int
	TPS    int // ticks per second; each tick advances the scene once
	Log    io.Writer
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "Orrery"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 25
	}
	return c
}

func (c WindowConfig) logOut() io.Writer {
	if c.Log == nil {
		return os.Stdout
	}
	return c.Log
}
