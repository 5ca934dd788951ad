// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compose turns a parameter [params.Snapshot] into the solid
// that is displayed: it builds the panel brush from the lip profile,
// one cylinder brush per hole, and subtracts the holes from the panel.
//
// Every rebuild starts from scratch and depends only on its snapshot.
package compose

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"cogentcore.org/panelcut/csg"
	"cogentcore.org/panelcut/params"
	"cogentcore.org/panelcut/shape"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// SceneScale is the number of millimeters per scene unit.
	SceneScale = 100

	// LipFactor scales the lip radius into the offset of the quadratic
	// control point, approximating a circular arc.
	LipFactor = 0.55228

	// HoleLength is the length of every hole cylinder, in scene units,
	// which is far more than any panel depth.
	HoleLength = 20

	// FixedHoleRadius is the radius of every hole in [SizeFixed] mode,
	// in scene units.
	FixedHoleRadius = 0.4
)

// Composer rebuilds the displayed solid from parameter snapshots.
type Composer struct {
	Options

	// Evaluator performs the boolean operations.
	Evaluator csg.Evaluator
}

// NewComposer returns a new composer with the given options.
func NewComposer(opts Options) *Composer {
	return &Composer{Options: opts}
}

// Result is the outcome of one [Composer.Rebuild].
type Result struct {

	// Panel is the panel brush without any holes.
	Panel *csg.Solid

	// Solid is the solid to display: the panel itself when there are
	// no holes, and the subtraction result otherwise.
	Solid *csg.Solid

	// Holes is the number of hole brushes that were built.
	Holes int

	// Elapsed is the time the rebuild took.
	Elapsed time.Duration
}

// ProfilePath returns the cross-section of the panel in scene units,
// in the (depth, width) plane. One edge of the face is rounded by a
// quadratic curve between 20% and 80% of the width.
func ProfilePath(p params.PanelSpec) *shape.Path {
	w := p.Width / SceneScale
	d := p.Depth / SceneScale
	c := p.LipRadius * LipFactor
	return shape.NewPath().
		MoveTo(0, 0).
		LineTo(0, w).
		LineTo(d, w).
		LineTo(d, 0.8*w).
		QuadraticCurveTo(d+c, 0.5*w, d, 0.2*w).
		LineTo(d, 0).
		LineTo(0, 0)
}

// PanelBrush extrudes the panel profile along its length and centers
// it on the origin (ignoring the lip), with depth along X, width along
// Y and length along Z.
func (cm *Composer) PanelBrush(p params.PanelSpec) (*csg.Solid, error) {
	l := p.Length / SceneScale
	pts := ProfilePath(p).Points(cm.CurveSegments)
	s, err := shape.Extrude(pts, shape.ExtrudeOptions{Depth: l, Steps: cm.Steps})
	if err != nil {
		return nil, fmt.Errorf("compose: panel brush: %w", err)
	}
	return s.Translate(r3.Vec{X: -p.Depth / (2 * SceneScale), Y: -p.Width / (2 * SceneScale), Z: -l / 2}), nil
}

// HoleRadius returns the radius in scene units of a hole with the given diameter.
func (cm *Composer) HoleRadius(d params.Diameter) float64 {
	if cm.HoleSize == SizeFixed {
		return FixedHoleRadius
	}
	return float64(d) / (2 * SceneScale)
}

// HoleBrush returns the cylinder for one hole, with its axis along X so
// that it pierces the panel depth. The stored OffsetY is the position
// across the panel width (Y) and OffsetX the position along its
// length (Z).
func (cm *Composer) HoleBrush(h params.HoleSpec) *csg.Solid {
	cyl := shape.Cylinder(cm.HoleRadius(h.Diameter), HoleLength, cm.RadialSegments)
	cyl = cyl.Rotate(r3.NewRotation(-math.Pi/2, r3.Vec{Z: 1}))
	return cyl.Translate(r3.Vec{Y: h.OffsetY / SceneScale, Z: h.OffsetX / SceneScale})
}

// Rebuild builds the panel and hole brushes for sn and combines them
// according to [Options.Subtract].
func (cm *Composer) Rebuild(sn params.Snapshot) (*Result, error) {
	st := time.Now()
	panel, err := cm.PanelBrush(sn.Panel)
	if err != nil {
		return nil, err
	}
	res := &Result{Panel: panel, Solid: panel}
	var result *csg.Solid
	for _, h := range sn.Holes {
		hole := cm.HoleBrush(h)
		res.Holes++
		base := panel
		if cm.Subtract == SubtractCumulative && result != nil {
			base = result
		}
		result, err = cm.Evaluator.Evaluate(base, hole, csg.Subtraction)
		if err != nil {
			return nil, fmt.Errorf("compose: hole %d: %w", h.ID, err)
		}
	}
	if len(sn.Holes) > 0 {
		res.Solid = result
	}
	res.Elapsed = time.Since(st)
	slog.Debug("compose: rebuilt panel", "holes", res.Holes, "mode", cm.Subtract, "polygons", len(res.Solid.Polygons), "volume", res.Solid.Volume(), "elapsed", res.Elapsed)
	return res, nil
}
