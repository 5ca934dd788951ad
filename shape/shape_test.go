// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func square() []r2.Vec {
	return []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func lipProfile(w, d, c float64) *Path {
	return NewPath().
		MoveTo(0, 0).
		LineTo(0, w).
		LineTo(d, w).
		LineTo(d, 0.8*w).
		QuadraticCurveTo(d+c, 0.5*w, d, 0.2*w).
		LineTo(d, 0).
		LineTo(0, 0)
}

func triArea(pts []r2.Vec, tr [3]int) float64 {
	return cross(pts[tr[0]], pts[tr[1]], pts[tr[2]]) / 2
}

func TestPathLines(t *testing.T) {
	p := NewPath().MoveTo(0, 0).LineTo(1, 0).LineTo(1, 1).LineTo(0, 1).LineTo(0, 0)
	assert.Equal(t, 4, p.Len())
	pts := p.Points(200)
	assert.Equal(t, square(), pts)
	tolassert.EqualTol(t, 1, Area(pts), 1e-12)
}

func TestPathQuadratic(t *testing.T) {
	p := NewPath().MoveTo(0, 0).QuadraticCurveTo(1, 2, 2, 0)
	pts := p.Points(2)
	require.Len(t, pts, 3)
	assert.Equal(t, r2.Vec{X: 1, Y: 1}, pts[1])
	assert.Equal(t, r2.Vec{X: 2, Y: 0}, pts[2])

	// the duplicate start of each segment is merged
	p.LineTo(0, 0)
	assert.Len(t, p.Points(10), 11)
}

func TestLipProfilePoints(t *testing.T) {
	w, d, c := 6.0, 0.25, 6.26*0.55228
	pts := lipProfile(w, d, c).Points(200)
	require.Len(t, pts, 205)
	assert.Equal(t, r2.Vec{X: 0, Y: 0}, pts[0])
	assert.Equal(t, r2.Vec{X: 0, Y: w}, pts[1])
	assert.Equal(t, r2.Vec{X: d, Y: w}, pts[2])
	assert.Equal(t, r2.Vec{X: d, Y: 0.8 * w}, pts[3])
	assert.Equal(t, r2.Vec{X: d, Y: 0}, pts[204])
	// apex of the lip at t = 0.5
	tolassert.EqualTol(t, d+c/2, pts[103].X, 1e-12)
	tolassert.EqualTol(t, 0.5*w, pts[103].Y, 1e-12)

	// traced clockwise; area is the rectangle plus 2/3 of the control triangle
	want := w*d + 0.2*w*c
	tolassert.EqualTol(t, -want, Area(pts), 1e-3)
}

func TestTriangulate(t *testing.T) {
	tris, err := Triangulate(square())
	require.NoError(t, err)
	assert.Len(t, tris, 2)

	lshape := []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	tris, err = Triangulate(lshape)
	require.NoError(t, err)
	assert.Len(t, tris, 4)
	sum := 0.0
	for _, tr := range tris {
		a := triArea(lshape, tr)
		assert.Greater(t, a, 0.0)
		sum += a
	}
	tolassert.EqualTol(t, 3, sum, 1e-12)
}

func TestTriangulateClockwise(t *testing.T) {
	pts := square()
	pts[1], pts[3] = pts[3], pts[1]
	require.Less(t, Area(pts), 0.0)
	tris, err := Triangulate(pts)
	require.NoError(t, err)
	sum := 0.0
	for _, tr := range tris {
		a := triArea(pts, tr)
		assert.Greater(t, a, 0.0)
		sum += a
	}
	tolassert.EqualTol(t, 1, sum, 1e-12)
}

func TestTriangulateCollinear(t *testing.T) {
	pts := []r2.Vec{{X: 0.5, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	tris, err := Triangulate(pts)
	require.NoError(t, err)
	assert.Len(t, tris, 2)
	for _, tr := range tris {
		assert.NotContains(t, tr, 0)
	}
}

func TestTriangulateLipProfile(t *testing.T) {
	pts := lipProfile(6, 0.25, 6.26*0.55228).Points(200)
	tris, err := Triangulate(pts)
	require.NoError(t, err)
	sum := 0.0
	for _, tr := range tris {
		sum += triArea(pts, tr)
	}
	tolassert.EqualTol(t, math.Abs(Area(pts)), sum, 1e-9)
}

func TestTriangulateDegenerate(t *testing.T) {
	_, err := Triangulate(square()[:2])
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestExtrude(t *testing.T) {
	s, err := Extrude(square(), ExtrudeOptions{Depth: 2, Steps: 3})
	require.NoError(t, err)
	assert.Len(t, s.Polygons, 2*2+4*3)
	tolassert.EqualTol(t, 2, s.Volume(), 1e-12)
	bb := s.Bounds()
	assert.Equal(t, 0.0, bb.Min.Z)
	assert.Equal(t, 2.0, bb.Max.Z)
	assert.Equal(t, 1.0, bb.Max.X)
	assert.Equal(t, 1.0, bb.Max.Y)

	pts := square()
	pts[1], pts[3] = pts[3], pts[1]
	cw, err := Extrude(pts, ExtrudeOptions{Depth: 2, Steps: 1})
	require.NoError(t, err)
	tolassert.EqualTol(t, 2, cw.Volume(), 1e-12)
}

func TestExtrudeLipProfile(t *testing.T) {
	w, d, c, l := 6.0, 0.25, 6.26*0.55228, 15.0
	pts := lipProfile(w, d, c).Points(200)
	s, err := Extrude(pts, ExtrudeOptions{Depth: l, Steps: 5})
	require.NoError(t, err)
	tolassert.EqualTol(t, math.Abs(Area(pts))*l, s.Volume(), 1e-9)
	bb := s.Bounds()
	tolassert.EqualTol(t, d+c/2, bb.Max.X, 1e-12)
	tolassert.EqualTol(t, w, bb.Max.Y, 1e-12)
	tolassert.EqualTol(t, l, bb.Max.Z, 1e-12)
}

func TestExtrudeEmpty(t *testing.T) {
	s, err := Extrude(square(), ExtrudeOptions{Depth: 0})
	require.NoError(t, err)
	assert.True(t, s.Empty())

	flat := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	s, err = Extrude(flat, ExtrudeOptions{Depth: 1})
	require.NoError(t, err)
	assert.True(t, s.Empty())

	s, err = Extrude(lipProfile(0, 0, 3).Points(200), ExtrudeOptions{Depth: 1})
	require.NoError(t, err)
	assert.True(t, s.Empty())
}

func TestCylinder(t *testing.T) {
	c := Cylinder(0.4, 20, 32)
	assert.Len(t, c.Polygons, 34)
	tolassert.EqualTol(t, PolygonArea(0.4, 32)*20, c.Volume(), 1e-9)
	bb := c.Bounds()
	tolassert.EqualTol(t, -0.4, bb.Min.X, 1e-12)
	tolassert.EqualTol(t, 0.4, bb.Max.X, 1e-12)
	tolassert.EqualTol(t, -10, bb.Min.Y, 1e-12)
	tolassert.EqualTol(t, 10, bb.Max.Y, 1e-12)

	assert.True(t, Cylinder(0, 20, 32).Empty())
	assert.True(t, Cylinder(1, 0, 32).Empty())
	assert.True(t, Cylinder(1, 1, 2).Empty())
}

func TestPolygonArea(t *testing.T) {
	tolassert.EqualTol(t, 1, PolygonArea(math.Sqrt2/2, 4), 1e-12)
	tolassert.EqualTol(t, math.Pi, PolygonArea(1, 100000), 1e-6)
}
