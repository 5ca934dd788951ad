// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"cogentcore.org/panelcut/csg"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder returns a closed cylinder with the given radius and height,
// centered on the origin with its axis along Y. The circle is
// approximated by radialSegs sides (32 is a reasonable default),
// starting at the -X side. A non-positive radius or height or fewer
// than 3 segments gives an empty solid.
func Cylinder(radius, height float64, radialSegs int) *csg.Solid {
	s := &csg.Solid{}
	if radius <= 0 || height <= 0 || radialSegs < 3 {
		return s
	}
	hh := height / 2
	ring := make([]r3.Vec, radialSegs)
	for i := range ring {
		ang := 2 * math.Pi * float64(i) / float64(radialSegs)
		ring[i] = r3.Vec{X: -radius * math.Cos(ang), Z: radius * math.Sin(ang)}
	}
	at := func(p r3.Vec, y float64) r3.Vec {
		return r3.Vec{X: p.X, Y: y, Z: p.Z}
	}

	for i, p := range ring {
		q := ring[(i+1)%radialSegs]
		u0 := float64(i) / float64(radialSegs)
		u1 := float64(i+1) / float64(radialSegs)
		np, nq := r3.Unit(p), r3.Unit(q)
		s.AddPolygon(
			csg.Vertex{Pos: at(p, -hh), Normal: np, UV: r2.Vec{X: u0, Y: 0}},
			csg.Vertex{Pos: at(q, -hh), Normal: nq, UV: r2.Vec{X: u1, Y: 0}},
			csg.Vertex{Pos: at(q, hh), Normal: nq, UV: r2.Vec{X: u1, Y: 1}},
			csg.Vertex{Pos: at(p, hh), Normal: np, UV: r2.Vec{X: u0, Y: 1}},
		)
	}

	capUV := func(p r3.Vec) r2.Vec {
		return r2.Vec{X: 0.5 + p.X/(2*radius), Y: 0.5 + p.Z/(2*radius)}
	}
	top := make([]csg.Vertex, radialSegs)
	bottom := make([]csg.Vertex, radialSegs)
	for i, p := range ring {
		top[i] = csg.Vertex{Pos: at(p, hh), Normal: r3.Vec{Y: 1}, UV: capUV(p)}
		// reversed so that the bottom cap faces -Y
		j := radialSegs - 1 - i
		bottom[j] = csg.Vertex{Pos: at(p, -hh), Normal: r3.Vec{Y: -1}, UV: capUV(p)}
	}
	s.AddPolygon(top...)
	s.AddPolygon(bottom...)
	return s
}

// PolygonArea returns the area of a regular polygon with the given
// circumradius and number of sides, which is the cross-section of a
// [Cylinder].
func PolygonArea(radius float64, sides int) float64 {
	return 0.5 * float64(sides) * radius * radius * math.Sin(2*math.Pi/float64(sides))
}
