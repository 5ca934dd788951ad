// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params holds the user-editable parameters of a panel design:
// the panel dimensions, the list of cutout holes, and the [Store] that
// notifies observers whenever any of them changes.
package params

import (
	"errors"
	"fmt"
	"slices"
)

// PanelSpec is the set of panel dimensions, all in millimeters.
type PanelSpec struct {

	// Width is the size of the panel face across the lip profile.
	Width float64 `default:"600"`

	// Length is the size of the panel along its extrusion axis.
	Length float64 `default:"1500"`

	// Depth is the thickness of the panel.
	Depth float64 `default:"25"`

	// LipRadius is the rounding radius of the lip on one edge.
	LipRadius float64 `default:"6.26"`
}

// DefaultPanel returns the default panel dimensions.
func DefaultPanel() PanelSpec {
	return PanelSpec{Width: 600, Length: 1500, Depth: 25, LipRadius: 6.26}
}

// Depths are the panel thicknesses offered by the depth chooser.
var Depths = []float64{18, 22, 25, 30, 40}

// Diameter is a cutout diameter in millimeters,
// restricted to the values in [Diameters].
type Diameter float64

const (
	Diameter20 Diameter = 20
	Diameter25 Diameter = 25
	Diameter30 Diameter = 30

	// DefaultDiameter is used for new holes and for unparseable input.
	DefaultDiameter = Diameter30
)

// Diameters are the valid hole diameters, in chooser order.
var Diameters = []Diameter{Diameter30, Diameter25, Diameter20}

// ErrBadDiameter is returned for a diameter outside of [Diameters].
var ErrBadDiameter = errors.New("params: diameter must be one of 20, 25 or 30")

// IsValid returns whether d is one of the enumerated diameters.
func (d Diameter) IsValid() bool {
	return slices.Contains(Diameters, d)
}

// Validate returns [ErrBadDiameter] if d is not valid.
func (d Diameter) Validate() error {
	if d.IsValid() {
		return nil
	}
	return fmt.Errorf("%w: got %g", ErrBadDiameter, float64(d))
}

func (d Diameter) String() string {
	return fmt.Sprintf("%g", float64(d))
}

// HoleID identifies a hole within a [Store]. It is stable across
// insertions and removals of other holes.
type HoleID int

// HoleSpec is one cylindrical cutout. Offsets are in millimeters.
type HoleSpec struct {
	ID HoleID

	// OffsetX is the position along the panel length.
	OffsetX float64

	// OffsetY is the position across the panel width.
	OffsetY float64

	Diameter Diameter
}

// DefaultHole returns the hole used for a newly added row.
func DefaultHole() HoleSpec {
	return HoleSpec{OffsetX: 100, OffsetY: 100, Diameter: DefaultDiameter}
}

// Snapshot is an immutable copy of the complete parameter state.
// It is the only input of a geometry rebuild.
type Snapshot struct {
	Panel PanelSpec
	Holes []HoleSpec
}

// Clone returns a deep copy of the snapshot.
func (sn Snapshot) Clone() Snapshot {
	return Snapshot{Panel: sn.Panel, Holes: slices.Clone(sn.Holes)}
}
