// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Epsilon is the distance below which a point is considered
// to lie on a plane.
const Epsilon = 1e-5

// Vertex is a polygon corner. Normal and UV are carried through
// splits by linear interpolation; only Pos affects the geometry.
type Vertex struct {
	Pos    r3.Vec
	Normal r3.Vec
	UV     r2.Vec
}

func (v Vertex) flip() Vertex {
	v.Normal = r3.Scale(-1, v.Normal)
	return v
}

// lerp returns the vertex at fraction t of the way from v to o.
func (v Vertex) lerp(o Vertex, t float64) Vertex {
	return Vertex{
		Pos:    r3.Add(v.Pos, r3.Scale(t, r3.Sub(o.Pos, v.Pos))),
		Normal: r3.Add(v.Normal, r3.Scale(t, r3.Sub(o.Normal, v.Normal))),
		UV:     r2.Add(v.UV, r2.Scale(t, r2.Sub(o.UV, v.UV))),
	}
}

// Plane is the set of points p where Normal·p == W.
type Plane struct {
	Normal r3.Vec
	W      float64
}

func (pl Plane) flip() Plane {
	return Plane{Normal: r3.Scale(-1, pl.Normal), W: -pl.W}
}

// Distance returns the signed distance of p from the plane,
// positive on the side the normal points to.
func (pl Plane) Distance(p r3.Vec) float64 {
	return r3.Dot(pl.Normal, p) - pl.W
}

// Polygon is a planar convex polygon with counter-clockwise winding
// when viewed from the front (outside) of its plane.
type Polygon struct {
	Vertices []Vertex
	Plane    Plane
}

// NewPolygon returns a polygon for the given vertices, computing its
// plane with Newell's method. It returns false if the vertices do not
// span a plane (fewer than 3 or zero area).
func NewPolygon(vs ...Vertex) (*Polygon, bool) {
	if len(vs) < 3 {
		return nil, false
	}
	var n, c r3.Vec
	for i, v := range vs {
		w := vs[(i+1)%len(vs)].Pos
		p := v.Pos
		n.X += (p.Y - w.Y) * (p.Z + w.Z)
		n.Y += (p.Z - w.Z) * (p.X + w.X)
		n.Z += (p.X - w.X) * (p.Y + w.Y)
		c = r3.Add(c, p)
	}
	l := r3.Norm(n)
	if l < Epsilon*Epsilon || math.IsNaN(l) {
		return nil, false
	}
	n = r3.Scale(1/l, n)
	c = r3.Scale(1/float64(len(vs)), c)
	return &Polygon{Vertices: vs, Plane: Plane{Normal: n, W: r3.Dot(n, c)}}, true
}

// Clone returns a copy that shares nothing with p.
func (p *Polygon) Clone() *Polygon {
	return &Polygon{Vertices: slices.Clone(p.Vertices), Plane: p.Plane}
}

// flip reverses the winding and all normals in place.
func (p *Polygon) flip() {
	slices.Reverse(p.Vertices)
	for i := range p.Vertices {
		p.Vertices[i] = p.Vertices[i].flip()
	}
	p.Plane = p.Plane.flip()
}

// Area returns the area of the polygon.
func (p *Polygon) Area() float64 {
	var sum r3.Vec
	v0 := p.Vertices[0].Pos
	for i := 1; i+1 < len(p.Vertices); i++ {
		sum = r3.Add(sum, r3.Cross(r3.Sub(p.Vertices[i].Pos, v0), r3.Sub(p.Vertices[i+1].Pos, v0)))
	}
	return r3.Norm(sum) / 2
}

// classification of a point or polygon relative to a plane
const (
	coplanar = 0
	front    = 1
	back     = 2
	spanning = front | back
)

// split sorts p into one of the four lists by its position relative
// to pl, splitting it in two if it spans the plane. Coplanar polygons go
// to coFront or coBack depending on their facing.
func (pl Plane) split(p *Polygon, coFront, coBack, fronts, backs *[]*Polygon) {
	ptype := 0
	types := make([]int, len(p.Vertices))
	for i, v := range p.Vertices {
		t := pl.Distance(v.Pos)
		vt := coplanar
		switch {
		case t < -Epsilon:
			vt = back
		case t > Epsilon:
			vt = front
		}
		ptype |= vt
		types[i] = vt
	}
	switch ptype {
	case coplanar:
		if r3.Dot(pl.Normal, p.Plane.Normal) > 0 {
			*coFront = append(*coFront, p)
		} else {
			*coBack = append(*coBack, p)
		}
	case front:
		*fronts = append(*fronts, p)
	case back:
		*backs = append(*backs, p)
	default:
		var f, b []Vertex
		n := len(p.Vertices)
		for i := range n {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := p.Vertices[i], p.Vertices[j]
			if ti != back {
				f = append(f, vi)
			}
			if ti != front {
				b = append(b, vi)
			}
			if ti|tj == spanning {
				t := (pl.W - r3.Dot(pl.Normal, vi.Pos)) / r3.Dot(pl.Normal, r3.Sub(vj.Pos, vi.Pos))
				v := vi.lerp(vj, t)
				f = append(f, v)
				b = append(b, v)
			}
		}
		if len(f) >= 3 {
			*fronts = append(*fronts, &Polygon{Vertices: f, Plane: p.Plane})
		}
		if len(b) >= 3 {
			*backs = append(*backs, &Polygon{Vertices: b, Plane: p.Plane})
		}
	}
}
