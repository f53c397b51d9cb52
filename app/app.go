package app

import (
	"errors"
	"fmt"
	"sync"

	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/sim/orbitgl"
	"orrery/sim/palette"
)

// Config is the host-tunable part of the simulation.
type Config struct {
	CameraDistance float64
	TiltDegrees    float64
	RingSamples    int
	ClosedRings    bool

	Central orbitgl.CentralParams
	Bodies  []orbitgl.BodyParams

	Background orbitgl.ColorKey
	Ring       orbitgl.Color // alpha is blended against Background
	Labels     bool

	// Preflight rejects configurations whose camera could touch an orbit.
	Preflight bool
	// Strict makes Step return degenerate-frame errors instead of holding
	// the last good frame.
	Strict bool
	// LogEvery logs frame statistics every N ticks; 0 disables.
	LogEvery uint64
}

// DefaultConfig returns the reference scene and view.
func DefaultConfig() Config {
	return Config{
		CameraDistance: orbitgl.ReferenceCameraDistance,
		TiltDegrees:    orbitgl.ReferenceTiltDegrees,
		RingSamples:    orbitgl.ReferenceRingSamples,
		Central:        orbitgl.ReferenceCentral,
		Bodies:         orbitgl.ReferenceBodies(),
		Background:     "black",
		Ring:           orbitgl.RGBA(100, 100, 100, 100),
		Labels:         true,
		Preflight:      true,
	}
}

// Stats describes the frame loop.
type Stats struct {
	Tick      uint64 // ticks advanced so far
	FrameTick uint64 // tick of the frame being shown
	Skipped   uint64 // frames dropped because of a degenerate projection
	LastError string
}

// System is the host side of the orrery: it owns the scene, advances it once
// per Step, builds the draw list and paints it into the HAL framebuffer.
//
// Step and the read accessors may be called from different goroutines.
type System struct {
	mu sync.Mutex

	log hal.Logger
	fb  hal.Framebuffer
	cfg Config

	scene   *orbitgl.Scene
	comp    *orbitgl.Compositor
	pal     *palette.Palette
	painter orbitgl.Painter
	target  orbitgl.RGB565Target
	labels  *labeler

	frame     []orbitgl.Instruction
	frameTick uint64
	tick      uint64
	skipped   uint64
	lastErr   error
}

// New builds the scene described by cfg and renders tick 0.
func New(h hal.HAL, cfg Config) (*System, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	scene, err := orbitgl.NewScene(cfg.Central, cfg.Bodies)
	if err != nil {
		return nil, fmt.Errorf("app: scene: %w", err)
	}
	comp, err := orbitgl.NewCompositor(orbitgl.View{
		CameraDistance: cfg.CameraDistance,
		Tilt:           orbitgl.Radians(cfg.TiltDegrees),
		RingSamples:    cfg.RingSamples,
		ClosedRings:    cfg.ClosedRings,
	})
	if err != nil {
		return nil, fmt.Errorf("app: view: %w", err)
	}
	if cfg.Preflight {
		if err := comp.Check(scene); err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
	}

	s := &System{
		log:   h.Logger(),
		cfg:   cfg,
		scene: scene,
		comp:  comp,
		pal:   palette.New(),
	}
	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if s.fb != nil && s.fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", s.fb.Format())
	}

	bg := s.pal.Resolve(cfg.Background)
	s.painter = orbitgl.Painter{
		Background: bg,
		Ring:       palette.Blend(cfg.Ring, bg),
		Resolve:    s.pal.Resolve,
	}
	if s.fb != nil {
		s.target = orbitgl.RGB565Target{
			Buf:    s.fb.Buffer(),
			Stride: s.fb.StrideBytes(),
			W:      s.fb.Width(),
			H:      s.fb.Height(),
		}
		if cfg.Labels {
			s.labels = newLabeler(s.fb)
		}
		s.fb.ClearRGB(bg.R, bg.G, bg.B)
	}

	s.logf("%s", buildinfo.String())
	s.logf("orrery: %d bodies, camera %v, tilt %v°, %d ring samples", scene.Len(), cfg.CameraDistance, cfg.TiltDegrees, cfg.RingSamples)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.render(); err != nil && cfg.Strict {
		return nil, err
	}
	return s, nil
}

// Step advances the scene by one tick and renders the new frame.
func (s *System) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scene.Advance()
	s.tick++
	err := s.render()
	if err != nil && s.cfg.Strict {
		return err
	}
	if s.cfg.LogEvery > 0 && s.tick%s.cfg.LogEvery == 0 {
		s.logStats()
	}
	return nil
}

// render builds and paints the frame for the current tick. A failed build
// keeps the previous frame on screen.
func (s *System) render() error {
	w, h := s.viewport()
	frame, err := s.comp.BuildFrame(s.scene, float64(w/2), float64(h/2))
	if err != nil {
		s.skipped++
		if s.lastErr == nil {
			s.logf("tick %d: frame dropped, holding tick %d: %v", s.tick, s.frameTick, err)
		}
		s.lastErr = err
		return err
	}
	if s.lastErr != nil {
		s.logf("tick %d: frames resumed after %d dropped", s.tick, s.skipped)
		s.lastErr = nil
	}
	s.frame = frame
	s.frameTick = s.tick
	s.paint()
	return nil
}

func (s *System) paint() {
	if s.fb == nil {
		return
	}
	s.painter.Paint(&s.target, s.frame)
	if s.labels != nil {
		s.labels.draw(orbitgl.Discs(s.frame))
	}
	if err := s.fb.Present(); err != nil {
		s.logf("present: %v", err)
	}
}

func (s *System) viewport() (w, h int) {
	if s.fb == nil {
		return orbitgl.ReferenceWidth, orbitgl.ReferenceHeight
	}
	return s.fb.Width(), s.fb.Height()
}

func (s *System) logStats() {
	discs := orbitgl.Discs(s.frame)
	nearest := ""
	if len(discs) > 0 {
		nearest = discs[len(discs)-1].Body
	}
	s.logf("tick %d: %d instructions, nearest %s, dropped %d", s.tick, len(s.frame), nearest, s.skipped)
}

func (s *System) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Bodies returns a snapshot of the orbiting bodies.
func (s *System) Bodies() []orbitgl.Body {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene.Bodies()
}

// Central returns the central body parameters.
func (s *System) Central() orbitgl.CentralParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene.Central()
}

// Frame returns the last good frame and the tick it was built for.
// ok is false until a frame has been built.
func (s *System) Frame() (tick uint64, frame []orbitgl.Instruction, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frame == nil {
		return 0, nil, false
	}
	out := make([]orbitgl.Instruction, len(s.frame))
	copy(out, s.frame)
	return s.frameTick, out, true
}

// Stats returns the frame loop counters.
func (s *System) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Tick: s.tick, FrameTick: s.frameTick, Skipped: s.skipped}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

// Resolve maps a colour key to RGB for external consumers.
func (s *System) Resolve(k orbitgl.ColorKey) orbitgl.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pal.Resolve(k)
}
