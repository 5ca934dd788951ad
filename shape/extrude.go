// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/panelcut/csg"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// minArea is the profile area below which an extrusion is empty.
const minArea = 1e-12

// ExtrudeOptions are the parameters of [Extrude].
type ExtrudeOptions struct {

	// Depth is the distance the profile is swept along +Z.
	Depth float64

	// Steps is the number of bands each side wall is split into
	// along the extrusion axis.
	Steps int
}

// Extrude sweeps the closed polygon profile, in the XY plane, linearly
// from z = 0 to z = Depth. The caps are triangulated and the side walls
// have one quad per profile edge and step.
//
// A profile with (nearly) zero area or a non-positive depth gives an
// empty solid. A profile that cannot be triangulated returns
// [ErrDegenerate].
func Extrude(profile []r2.Vec, opts ExtrudeOptions) (*csg.Solid, error) {
	s := &csg.Solid{}
	area := Area(profile)
	if opts.Depth <= 0 || len(profile) < 3 || math.Abs(area) < minArea || math.IsNaN(area) {
		return s, nil
	}
	pts := profile
	if area < 0 {
		pts = slices.Clone(profile)
		slices.Reverse(pts)
	}
	tris, err := Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("shape.Extrude: %w", err)
	}
	depth := opts.Depth
	steps := max(opts.Steps, 1)

	down := r3.Vec{Z: -1}
	up := r3.Vec{Z: 1}
	capVertex := func(p r2.Vec, z float64, nrm r3.Vec) csg.Vertex {
		return csg.Vertex{Pos: r3.Vec{X: p.X, Y: p.Y, Z: z}, Normal: nrm, UV: p}
	}
	for _, tr := range tris {
		a, b, c := pts[tr[0]], pts[tr[1]], pts[tr[2]]
		s.AddPolygon(capVertex(a, 0, down), capVertex(c, 0, down), capVertex(b, 0, down))
		s.AddPolygon(capVertex(a, depth, up), capVertex(b, depth, up), capVertex(c, depth, up))
	}

	n := len(pts)
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		d := r2.Sub(b, a)
		nrm := r3.Unit(r3.Vec{X: d.Y, Y: -d.X})
		// side walls are textured along their dominant profile axis
		ua, ub := a.Y, b.Y
		if math.Abs(d.Y) < math.Abs(d.X) {
			ua, ub = a.X, b.X
		}
		for k := range steps {
			z0 := depth * float64(k) / float64(steps)
			z1 := depth * float64(k+1) / float64(steps)
			s.AddPolygon(
				csg.Vertex{Pos: r3.Vec{X: a.X, Y: a.Y, Z: z0}, Normal: nrm, UV: r2.Vec{X: ua, Y: 1 - z0}},
				csg.Vertex{Pos: r3.Vec{X: b.X, Y: b.Y, Z: z0}, Normal: nrm, UV: r2.Vec{X: ub, Y: 1 - z0}},
				csg.Vertex{Pos: r3.Vec{X: b.X, Y: b.Y, Z: z1}, Normal: nrm, UV: r2.Vec{X: ub, Y: 1 - z1}},
				csg.Vertex{Pos: r3.Vec{X: a.X, Y: a.Y, Z: z1}, Normal: nrm, UV: r2.Vec{X: ua, Y: 1 - z1}},
			)
		}
	}
	return s, nil
}
