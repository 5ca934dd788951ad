// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape builds [csg.Solid] brushes from simple parametric
// shapes: closed 2D paths extruded into prisms, and cylinders.
package shape

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// pointTol is the distance below which consecutive path points are merged.
const pointTol = 1e-10

type segmentKind int

const (
	lineSegment segmentKind = iota
	quadSegment
)

type segment struct {
	kind           segmentKind
	from, ctrl, to r2.Vec
}

// at returns the point at parameter t in [0, 1] along the segment.
func (sg segment) at(t float64) r2.Vec {
	if sg.kind == lineSegment {
		return r2.Add(sg.from, r2.Scale(t, r2.Sub(sg.to, sg.from)))
	}
	u := 1 - t
	p := r2.Scale(u*u, sg.from)
	p = r2.Add(p, r2.Scale(2*u*t, sg.ctrl))
	return r2.Add(p, r2.Scale(t*t, sg.to))
}

// Path is a single open or closed 2D outline made of straight lines and
// quadratic Bézier curves. Build it with [Path.MoveTo] followed by
// [Path.LineTo] and [Path.QuadraticCurveTo] calls.
type Path struct {
	segments []segment
	current  r2.Vec
}

// NewPath returns a new empty path starting at the origin.
func NewPath() *Path {
	return &Path{}
}

// MoveTo sets the current point without adding a segment.
func (p *Path) MoveTo(x, y float64) *Path {
	p.current = r2.Vec{X: x, Y: y}
	return p
}

// LineTo adds a straight segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	to := r2.Vec{X: x, Y: y}
	p.segments = append(p.segments, segment{kind: lineSegment, from: p.current, to: to})
	p.current = to
	return p
}

// QuadraticCurveTo adds a quadratic Bézier curve from the current point
// to (x, y) with control point (cx, cy).
func (p *Path) QuadraticCurveTo(cx, cy, x, y float64) *Path {
	to := r2.Vec{X: x, Y: y}
	p.segments = append(p.segments, segment{kind: quadSegment, from: p.current, ctrl: r2.Vec{X: cx, Y: cy}, to: to})
	p.current = to
	return p
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// Points tessellates the path into a polygon. Lines contribute their end
// point and curves contribute the given number of evenly spaced points.
// Coincident consecutive points are merged, and a final point equal to
// the first one is dropped, so a closed path returns each corner once.
func (p *Path) Points(divisions int) []r2.Vec {
	divisions = max(divisions, 1)
	var pts []r2.Vec
	add := func(v r2.Vec) {
		if n := len(pts); n > 0 && samePoint(pts[n-1], v) {
			return
		}
		pts = append(pts, v)
	}
	for _, sg := range p.segments {
		n := 1
		if sg.kind == quadSegment {
			n = divisions
		}
		for i := 0; i <= n; i++ {
			add(sg.at(float64(i) / float64(n)))
		}
	}
	if n := len(pts); n > 1 && samePoint(pts[0], pts[n-1]) {
		pts = pts[:n-1]
	}
	return pts
}

func samePoint(a, b r2.Vec) bool {
	return scalar.EqualWithinAbs(a.X, b.X, pointTol) && scalar.EqualWithinAbs(a.Y, b.Y, pointTol)
}

// Area returns the signed area of the polygon, positive when
// the points wind counter-clockwise.
func Area(pts []r2.Vec) float64 {
	a := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
