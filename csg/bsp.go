// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

// node is a binary space partitioning tree over polygons. Each node
// holds the polygons coplanar with its splitting plane; front and back
// hold everything on either side. A nil back child means solid space
// behind the plane, a nil front child empty space.
type node struct {
	plane    *Plane
	front    *node
	back     *node
	polygons []*Polygon
}

func newNode(polys []*Polygon) *node {
	nd := &node{}
	nd.build(polys)
	return nd
}

// invert swaps solid and empty space.
func (nd *node) invert() {
	for _, p := range nd.polygons {
		p.flip()
	}
	if nd.plane != nil {
		pl := nd.plane.flip()
		nd.plane = &pl
	}
	if nd.front != nil {
		nd.front.invert()
	}
	if nd.back != nil {
		nd.back.invert()
	}
	nd.front, nd.back = nd.back, nd.front
}

// clipPolygons returns the parts of polys that lie outside of the
// solid represented by this tree.
func (nd *node) clipPolygons(polys []*Polygon) []*Polygon {
	if nd.plane == nil {
		return append([]*Polygon(nil), polys...)
	}
	var fronts, backs []*Polygon
	for _, p := range polys {
		nd.plane.split(p, &fronts, &backs, &fronts, &backs)
	}
	if nd.front != nil {
		fronts = nd.front.clipPolygons(fronts)
	}
	if nd.back != nil {
		backs = nd.back.clipPolygons(backs)
	} else {
		backs = nil
	}
	return append(fronts, backs...)
}

// clipTo removes all polygons in this tree that are inside of bsp.
func (nd *node) clipTo(bsp *node) {
	nd.polygons = bsp.clipPolygons(nd.polygons)
	if nd.front != nil {
		nd.front.clipTo(bsp)
	}
	if nd.back != nil {
		nd.back.clipTo(bsp)
	}
}

func (nd *node) allPolygons() []*Polygon {
	polys := append([]*Polygon(nil), nd.polygons...)
	if nd.front != nil {
		polys = append(polys, nd.front.allPolygons()...)
	}
	if nd.back != nil {
		polys = append(polys, nd.back.allPolygons()...)
	}
	return polys
}

// build inserts polys into the tree, using the plane of the first
// polygon as the splitting plane of any node that does not have one yet.
func (nd *node) build(polys []*Polygon) {
	if len(polys) == 0 {
		return
	}
	if nd.plane == nil {
		pl := polys[0].Plane
		nd.plane = &pl
	}
	var fronts, backs []*Polygon
	for _, p := range polys {
		nd.plane.split(p, &nd.polygons, &nd.polygons, &fronts, &backs)
	}
	if len(fronts) > 0 {
		if nd.front == nil {
			nd.front = &node{}
		}
		nd.front.build(fronts)
	}
	if len(backs) > 0 {
		if nd.back == nil {
			nd.back = &node{}
		}
		nd.back.build(backs)
	}
}
