// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"errors"
	"fmt"
)

//go:generate core generate

// Operation is a boolean operation between two solids.
type Operation int32 //enums:enum

const (
	// Addition is the union of both solids.
	Addition Operation = iota

	// Subtraction removes the second solid from the first.
	Subtraction

	// Intersection keeps only the volume shared by both solids.
	Intersection
)

// ErrUnknownOperation is returned by [Evaluator.Evaluate]
// for an [Operation] it does not implement.
var ErrUnknownOperation = errors.New("csg: unknown operation")

// Evaluator applies boolean operations to solids.
// The zero value is ready to use.
type Evaluator struct {

	// Evaluations counts the operations performed so far.
	Evaluations int
}

// Evaluate returns the result of applying op to a and b.
// Neither operand is modified.
func (ev *Evaluator) Evaluate(a, b *Solid, op Operation) (*Solid, error) {
	var res *Solid
	switch op {
	case Addition:
		res = Union(a, b)
	case Subtraction:
		res = Subtract(a, b)
	case Intersection:
		res = Intersect(a, b)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownOperation, op)
	}
	ev.Evaluations++
	return res, nil
}

// Union returns the solid occupying the volume of either a or b.
func Union(a, b *Solid) *Solid {
	switch {
	case a.Empty():
		return b.Clone()
	case b.Empty():
		return a.Clone()
	}
	na := newNode(a.Clone().Polygons)
	nb := newNode(b.Clone().Polygons)
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	return FromPolygons(na.allPolygons())
}

// Subtract returns the solid occupying the volume of a that is not in b.
// A tree without a splitting plane cannot represent full space, so empty
// operands are resolved before building any tree.
func Subtract(a, b *Solid) *Solid {
	switch {
	case a.Empty():
		return &Solid{}
	case b.Empty():
		return a.Clone()
	}
	na := newNode(a.Clone().Polygons)
	nb := newNode(b.Clone().Polygons)
	na.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	na.invert()
	return FromPolygons(na.allPolygons())
}

// Intersect returns the solid occupying the volume shared by a and b.
func Intersect(a, b *Solid) *Solid {
	if a.Empty() || b.Empty() {
		return &Solid{}
	}
	na := newNode(a.Clone().Polygons)
	nb := newNode(b.Clone().Polygons)
	na.invert()
	nb.clipTo(na)
	nb.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	na.build(nb.allPolygons())
	na.invert()
	return FromPolygons(na.allPolygons())
}
