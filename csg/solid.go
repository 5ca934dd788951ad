// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csg provides constructive solid geometry on polygon meshes:
// boolean union, subtraction and intersection of closed solids using
// binary space partitioning trees.
//
// A [Solid] is a list of convex planar polygons that together bound a
// closed volume, wound counter-clockwise when viewed from outside.
// Operations never modify their operands.
package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is a closed polygonal boundary. The zero value is an empty solid.
type Solid struct {
	Polygons []*Polygon
}

// FromPolygons returns a solid bounded by the given polygons.
func FromPolygons(polys []*Polygon) *Solid {
	return &Solid{Polygons: polys}
}

// AddPolygon appends the polygon with the given vertices, returning
// false (and adding nothing) if they do not span a plane.
func (s *Solid) AddPolygon(vs ...Vertex) bool {
	p, ok := NewPolygon(vs...)
	if ok {
		s.Polygons = append(s.Polygons, p)
	}
	return ok
}

// Clone returns a deep copy of the solid.
func (s *Solid) Clone() *Solid {
	cl := &Solid{Polygons: make([]*Polygon, len(s.Polygons))}
	for i, p := range s.Polygons {
		cl.Polygons[i] = p.Clone()
	}
	return cl
}

// Empty returns whether the solid has no polygons.
func (s *Solid) Empty() bool {
	return len(s.Polygons) == 0
}

// NumTriangles returns the number of triangles needed to
// render the solid as triangle fans.
func (s *Solid) NumTriangles() int {
	n := 0
	for _, p := range s.Polygons {
		n += len(p.Vertices) - 2
	}
	return n
}

// Volume returns the enclosed volume, using the divergence theorem
// over a fan triangulation of each polygon.
func (s *Solid) Volume() float64 {
	vol := 0.0
	for _, p := range s.Polygons {
		v0 := p.Vertices[0].Pos
		for i := 1; i+1 < len(p.Vertices); i++ {
			vol += r3.Dot(v0, r3.Cross(p.Vertices[i].Pos, p.Vertices[i+1].Pos))
		}
	}
	return vol / 6
}

// Bounds returns the axis-aligned bounding box of all vertices.
// It is the zero box for an empty solid.
func (s *Solid) Bounds() r3.Box {
	if s.Empty() {
		return r3.Box{}
	}
	inf := math.Inf(1)
	bb := r3.Box{Min: r3.Vec{X: inf, Y: inf, Z: inf}, Max: r3.Vec{X: -inf, Y: -inf, Z: -inf}}
	for _, p := range s.Polygons {
		for _, v := range p.Vertices {
			bb.Min.X = min(bb.Min.X, v.Pos.X)
			bb.Min.Y = min(bb.Min.Y, v.Pos.Y)
			bb.Min.Z = min(bb.Min.Z, v.Pos.Z)
			bb.Max.X = max(bb.Max.X, v.Pos.X)
			bb.Max.Y = max(bb.Max.Y, v.Pos.Y)
			bb.Max.Z = max(bb.Max.Z, v.Pos.Z)
		}
	}
	return bb
}

// Translate returns a copy of the solid moved by d.
func (s *Solid) Translate(d r3.Vec) *Solid {
	cl := s.Clone()
	for _, p := range cl.Polygons {
		for i := range p.Vertices {
			p.Vertices[i].Pos = r3.Add(p.Vertices[i].Pos, d)
		}
		p.Plane.W += r3.Dot(p.Plane.Normal, d)
	}
	return cl
}

// Rotate returns a copy of the solid rotated by rot about the origin.
func (s *Solid) Rotate(rot r3.Rotation) *Solid {
	cl := s.Clone()
	for _, p := range cl.Polygons {
		for i := range p.Vertices {
			v := &p.Vertices[i]
			v.Pos = rot.Rotate(v.Pos)
			v.Normal = rot.Rotate(v.Normal)
		}
		p.Plane.Normal = rot.Rotate(p.Plane.Normal)
	}
	return cl
}

// Cube returns an axis-aligned box with the given center and size.
func Cube(center, size r3.Vec) *Solid {
	faces := []struct {
		idx    [4]int
		normal r3.Vec
	}{
		{[4]int{0, 4, 6, 2}, r3.Vec{X: -1}},
		{[4]int{1, 3, 7, 5}, r3.Vec{X: 1}},
		{[4]int{0, 1, 5, 4}, r3.Vec{Y: -1}},
		{[4]int{2, 6, 7, 3}, r3.Vec{Y: 1}},
		{[4]int{0, 2, 3, 1}, r3.Vec{Z: -1}},
		{[4]int{4, 5, 7, 6}, r3.Vec{Z: 1}},
	}
	uvs := [4]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	half := r3.Scale(0.5, size)
	corner := func(i int) r3.Vec {
		return r3.Vec{
			X: center.X + half.X*float64(2*(i&1)-1),
			Y: center.Y + half.Y*float64((i&2)-1),
			Z: center.Z + half.Z*float64((i&4)/2-1),
		}
	}
	s := &Solid{}
	for _, f := range faces {
		vs := make([]Vertex, 4)
		for k, i := range f.idx {
			vs[k] = Vertex{Pos: corner(i), Normal: f.normal, UV: uvs[k]}
		}
		s.AddPolygon(vs...)
	}
	return s
}
