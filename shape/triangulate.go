// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"errors"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerate is returned for a polygon that cannot be triangulated,
// typically because it intersects itself.
var ErrDegenerate = errors.New("shape: degenerate or self-intersecting polygon")

const turnTol = 1e-12

func cross(o, a, b r2.Vec) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Triangulate splits a simple polygon into triangles by ear clipping.
// The returned triangles index into pts and wind counter-clockwise
// whatever the winding of pts. Collinear vertices are dropped without
// producing zero-area triangles.
func Triangulate(pts []r2.Vec) ([][3]int, error) {
	if len(pts) < 3 {
		return nil, ErrDegenerate
	}
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	if Area(pts) < 0 {
		slices.Reverse(idx)
	}
	var tris [][3]int
	for len(idx) > 3 {
		n := len(idx)
		clipped := false
		for i := range n {
			a, b, c := idx[(i+n-1)%n], idx[i], idx[(i+1)%n]
			turn := cross(pts[a], pts[b], pts[c])
			if turn <= turnTol && turn >= -turnTol && r2.Dot(r2.Sub(pts[b], pts[a]), r2.Sub(pts[c], pts[b])) > 0 {
				idx = slices.Delete(idx, i, i+1)
				clipped = true
				break
			}
			if turn <= turnTol || !isEar(pts, idx, a, b, c) {
				continue
			}
			tris = append(tris, [3]int{a, b, c})
			idx = slices.Delete(idx, i, i+1)
			clipped = true
			break
		}
		if !clipped {
			return tris, ErrDegenerate
		}
	}
	if cross(pts[idx[0]], pts[idx[1]], pts[idx[2]]) > turnTol {
		tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	}
	return tris, nil
}

// isEar reports whether no remaining vertex other than the corners
// lies inside or on the triangle abc.
func isEar(pts []r2.Vec, idx []int, a, b, c int) bool {
	pa, pb, pc := pts[a], pts[b], pts[c]
	for _, k := range idx {
		if k == a || k == b || k == c {
			continue
		}
		p := pts[k]
		if samePoint(p, pa) || samePoint(p, pb) || samePoint(p, pc) {
			continue
		}
		if cross(pa, pb, p) >= 0 && cross(pb, pc, p) >= 0 && cross(pc, pa, p) >= 0 {
			return false
		}
	}
	return true
}
