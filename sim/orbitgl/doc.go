// Package orbitgl provides the geometry core of the orrery: circular orbits,
// a fixed orbital-plane tilt, a perspective projection and a painter's
// algorithm draw list.
//
// Pipeline (fixed, once per tick):
//
//	Scene.Advance → Body.WorldPosition → Tilt → Project → depth sort → []Instruction.
//
// Orbit rings are sampled into polylines and always precede the depth-sorted
// discs in the output. The package holds no timers or goroutines; the host
// serializes Advance and BuildFrame and rasterizes the result, either with its
// own primitives or with the software Painter in this package.
package orbitgl
