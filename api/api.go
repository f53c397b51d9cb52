// Package api serves a read-only JSON view of a running orrery.
package api

import (
	"fmt"
	"net/http"
	"strings"

	"orrery/app"
	"orrery/internal/buildinfo"
	"orrery/sim/orbitgl"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Source is what the handlers read from. *app.System implements it.
type Source interface {
	Bodies() []orbitgl.Body
	Central() orbitgl.CentralParams
	Frame() (tick uint64, frame []orbitgl.Instruction, ok bool)
	Stats() app.Stats
	Resolve(orbitgl.ColorKey) orbitgl.Color
}

// NewRouter returns a gin engine with the /api routes registered.
// An empty allowOrigins disables CORS.
func NewRouter(src Source, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(allowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins,
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: false,
		}))
	}

	h := &handlers{src: src}
	g := r.Group("/api")
	{
		g.GET("/health", h.health)
		g.GET("/bodies", h.bodies)
		g.GET("/bodies/:name", h.body)
		g.GET("/frame", h.frame)
	}
	return r
}

type handlers struct {
	src Source
}

type vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type bodyJSON struct {
	Name         string  `json:"name"`
	OrbitRadius  float64 `json:"orbitRadius"`
	AngularSpeed float64 `json:"angularSpeed"`
	Angle        float64 `json:"angle"`
	Size         float64 `json:"size"`
	Color        string  `json:"color"`
	RGB          string  `json:"rgb"`
	Position     vec     `json:"position"`
}

type ringJSON struct {
	Body   string       `json:"body"`
	Closed bool         `json:"closed"`
	Points [][2]float64 `json:"points"`
}

type discJSON struct {
	Body     string  `json:"body"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Diameter float64 `json:"diameter"`
	Depth    float64 `json:"depth"`
	Color    string  `json:"color"`
	RGB      string  `json:"rgb"`
}

type frameJSON struct {
	Tick  uint64     `json:"tick"`
	Rings []ringJSON `json:"rings"`
	Discs []discJSON `json:"discs"`
}

func (h *handlers) health(c *gin.Context) {
	st := h.src.Stats()
	status := "ok"
	if st.LastError != "" {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"version":   buildinfo.Short(),
		"tick":      st.Tick,
		"frameTick": st.FrameTick,
		"skipped":   st.Skipped,
		"lastError": st.LastError,
	})
}

func (h *handlers) bodies(c *gin.Context) {
	bodies := h.src.Bodies()
	out := make([]bodyJSON, 0, len(bodies))
	for _, b := range bodies {
		out = append(out, h.bodyJSON(b))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  out,
		"count": len(out),
	})
}

func (h *handlers) body(c *gin.Context) {
	name := strings.ToLower(c.Param("name"))

	if central := h.src.Central(); strings.ToLower(central.Name) == name {
		c.JSON(http.StatusOK, gin.H{"data": bodyJSON{
			Name:  central.Name,
			Size:  central.Size,
			Color: string(central.Color),
			RGB:   hex(h.src.Resolve(central.Color)),
		}})
		return
	}
	for _, b := range h.src.Bodies() {
		if strings.ToLower(b.Name()) == name {
			c.JSON(http.StatusOK, gin.H{"data": h.bodyJSON(b)})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Body not found"})
}

func (h *handlers) frame(c *gin.Context) {
	tick, frame, ok := h.src.Frame()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No frame rendered yet"})
		return
	}

	out := frameJSON{Tick: tick, Rings: []ringJSON{}, Discs: []discJSON{}}
	for _, in := range frame {
		switch in := in.(type) {
		case orbitgl.Polyline:
			pts := make([][2]float64, len(in.Points))
			for i, p := range in.Points {
				pts[i] = [2]float64{p.X, p.Y}
			}
			out.Rings = append(out.Rings, ringJSON{Body: in.Body, Closed: in.Closed, Points: pts})
		case orbitgl.Disc:
			out.Discs = append(out.Discs, discJSON{
				Body:     in.Body,
				X:        in.X,
				Y:        in.Y,
				Diameter: in.Diameter,
				Depth:    in.Depth,
				Color:    string(in.Color),
				RGB:      hex(h.src.Resolve(in.Color)),
			})
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (h *handlers) bodyJSON(b orbitgl.Body) bodyJSON {
	bp := b.Params()
	p := b.WorldPosition()
	return bodyJSON{
		Name:         bp.Name,
		OrbitRadius:  bp.OrbitRadius,
		AngularSpeed: bp.AngularSpeed,
		Angle:        bp.InitialAngle,
		Size:         bp.Size,
		Color:        string(bp.Color),
		RGB:          hex(h.src.Resolve(bp.Color)),
		Position:     vec{X: p.X, Y: p.Y, Z: p.Z},
	}
}

func hex(c orbitgl.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
