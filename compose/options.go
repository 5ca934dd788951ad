// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

//go:generate core generate

// SubtractModes determine how multiple holes are combined with the panel.
type SubtractModes int32 //enums:enum -trim-prefix Subtract -transform lower -accept-lower

const (
	// SubtractCumulative subtracts every hole from the running result,
	// so that all holes appear in the panel.
	SubtractCumulative SubtractModes = iota

	// SubtractOverwrite subtracts every hole from the bare panel and
	// keeps only the last result, so that only the last hole appears.
	SubtractOverwrite
)

// HoleSizes determine how the radius of a hole is chosen.
type HoleSizes int32 //enums:enum -trim-prefix Size -transform lower -accept-lower

const (
	// SizeDiameter uses half of the selected hole diameter.
	SizeDiameter HoleSizes = iota

	// SizeFixed uses [FixedHoleRadius] for every hole, ignoring the
	// selected diameter.
	SizeFixed
)

// Options are the parameters of a [Composer] that are not part of the
// user-edited design.
type Options struct {

	// Subtract is how multiple holes are combined.
	Subtract SubtractModes

	// HoleSize is how hole radii are chosen.
	HoleSize HoleSizes

	// CurveSegments is the number of segments used for the lip curve.
	CurveSegments int

	// Steps is the number of bands along the panel length.
	Steps int

	// RadialSegments is the number of sides of each hole.
	RadialSegments int
}

// DefaultOptions returns the standard composer options.
func DefaultOptions() Options {
	return Options{
		Subtract:       SubtractCumulative,
		HoleSize:       SizeDiameter,
		CurveSegments:  200,
		Steps:          5,
		RadialSegments: 32,
	}
}
