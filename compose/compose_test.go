// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"math"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/panelcut/params"
	"cogentcore.org/panelcut/shape"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const volumeTol = 1e-6

// holes outside of the lip region (|y| > 1.8 for the default width),
// so each one removes exactly one prism of the panel depth
func plainHoles() []params.HoleSpec {
	return []params.HoleSpec{
		{ID: 1, OffsetX: -300, OffsetY: 250, Diameter: params.Diameter30},
		{ID: 2, OffsetX: 0, OffsetY: -250, Diameter: params.Diameter25},
		{ID: 3, OffsetX: 400, OffsetY: 240, Diameter: params.Diameter20},
	}
}

func snapshot(holes ...params.HoleSpec) params.Snapshot {
	return params.Snapshot{Panel: params.DefaultPanel(), Holes: holes}
}

func depth() float64 {
	return params.DefaultPanel().Depth / SceneScale
}

func holeVolume(cm *Composer, d params.Diameter) float64 {
	return shape.PolygonArea(cm.HoleRadius(d), cm.RadialSegments) * depth()
}

func assertBounds(t *testing.T, want, got r3.Box) {
	t.Helper()
	tolassert.EqualTol(t, want.Min.X, got.Min.X, 1e-9)
	tolassert.EqualTol(t, want.Min.Y, got.Min.Y, 1e-9)
	tolassert.EqualTol(t, want.Min.Z, got.Min.Z, 1e-9)
	tolassert.EqualTol(t, want.Max.X, got.Max.X, 1e-9)
	tolassert.EqualTol(t, want.Max.Y, got.Max.Y, 1e-9)
	tolassert.EqualTol(t, want.Max.Z, got.Max.Z, 1e-9)
}

func TestPanelBrushBounds(t *testing.T) {
	cm := NewComposer(DefaultOptions())
	p := params.DefaultPanel()
	s, err := cm.PanelBrush(p)
	require.NoError(t, err)
	bb := s.Bounds()
	d, w, l := p.Depth/SceneScale, p.Width/SceneScale, p.Length/SceneScale
	lip := p.LipRadius * LipFactor / 2
	tolassert.EqualTol(t, -d/2, bb.Min.X, 1e-9)
	tolassert.EqualTol(t, d/2+lip, bb.Max.X, 1e-9)
	tolassert.EqualTol(t, -w/2, bb.Min.Y, 1e-9)
	tolassert.EqualTol(t, w/2, bb.Max.Y, 1e-9)
	tolassert.EqualTol(t, -l/2, bb.Min.Z, 1e-9)
	tolassert.EqualTol(t, l/2, bb.Max.Z, 1e-9)

	pts := ProfilePath(p).Points(cm.CurveSegments)
	tolassert.EqualTol(t, math.Abs(shape.Area(pts))*l, s.Volume(), 1e-9)
}

func TestNoHoles(t *testing.T) {
	cm := NewComposer(DefaultOptions())
	res, err := cm.Rebuild(snapshot())
	require.NoError(t, err)
	assert.Same(t, res.Panel, res.Solid)
	assert.Equal(t, 0, res.Holes)
	assert.Equal(t, 0, cm.Evaluator.Evaluations)

	panel, err := cm.PanelBrush(params.DefaultPanel())
	require.NoError(t, err)
	assert.Equal(t, panel.Bounds(), res.Solid.Bounds())
	tolassert.EqualTol(t, panel.Volume(), res.Solid.Volume(), 1e-12)
}

func TestOneHole(t *testing.T) {
	for _, size := range []HoleSizes{SizeDiameter, SizeFixed} {
		opts := DefaultOptions()
		opts.HoleSize = size
		cm := NewComposer(opts)
		h := plainHoles()[0]
		res, err := cm.Rebuild(snapshot(h))
		require.NoError(t, err, size.String())
		assert.Equal(t, 1, res.Holes)
		want := res.Panel.Volume() - holeVolume(cm, h.Diameter)
		tolassert.EqualTol(t, want, res.Solid.Volume(), volumeTol)
		assertBounds(t, res.Panel.Bounds(), res.Solid.Bounds())
	}
}

func TestHoleRadius(t *testing.T) {
	cm := NewComposer(DefaultOptions())
	assert.Equal(t, 0.15, cm.HoleRadius(params.Diameter30))
	assert.Equal(t, 0.1, cm.HoleRadius(params.Diameter20))
	cm.HoleSize = SizeFixed
	for _, d := range params.Diameters {
		assert.Equal(t, FixedHoleRadius, cm.HoleRadius(d))
	}
}

func TestHoleBrush(t *testing.T) {
	cm := NewComposer(DefaultOptions())
	h := params.HoleSpec{OffsetX: 300, OffsetY: -120, Diameter: params.Diameter20}
	bb := cm.HoleBrush(h).Bounds()
	r := cm.HoleRadius(h.Diameter)
	tolassert.EqualTol(t, -HoleLength/2, bb.Min.X, 1e-9)
	tolassert.EqualTol(t, HoleLength/2, bb.Max.X, 1e-9)
	tolassert.EqualTol(t, -1.2-r, bb.Min.Y, 1e-9)
	tolassert.EqualTol(t, -1.2+r, bb.Max.Y, 1e-9)
	tolassert.EqualTol(t, 3-r, bb.Min.Z, 1e-2*r)
	tolassert.EqualTol(t, 3+r, bb.Max.Z, 1e-2*r)
}

func TestOverwriteKeepsLastHole(t *testing.T) {
	opts := DefaultOptions()
	opts.Subtract = SubtractOverwrite
	cm := NewComposer(opts)
	holes := plainHoles()
	res, err := cm.Rebuild(snapshot(holes...))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Holes)
	assert.Equal(t, 3, cm.Evaluator.Evaluations)

	last := holes[len(holes)-1]
	want := res.Panel.Volume() - holeVolume(cm, last.Diameter)
	tolassert.EqualTol(t, want, res.Solid.Volume(), volumeTol)

	only, err := cm.Rebuild(snapshot(last))
	require.NoError(t, err)
	if diff := cmp.Diff(only.Solid, res.Solid); diff != "" {
		t.Errorf("overwrite result differs from last hole alone (-want +got):\n%s", diff)
	}
}

func TestCumulativeKeepsAllHoles(t *testing.T) {
	cm := NewComposer(DefaultOptions())
	holes := plainHoles()
	res, err := cm.Rebuild(snapshot(holes...))
	require.NoError(t, err)
	want := res.Panel.Volume()
	for _, h := range holes {
		want -= holeVolume(cm, h.Diameter)
	}
	tolassert.EqualTol(t, want, res.Solid.Volume(), volumeTol)
	assertBounds(t, res.Panel.Bounds(), res.Solid.Bounds())
}

func TestRemoveHoleRestoresGeometry(t *testing.T) {
	cm := NewComposer(DefaultOptions())
	st := params.NewStore(params.DefaultPanel())
	holes := plainHoles()
	_, err := st.AddHoleSpec(holes[0])
	require.NoError(t, err)
	before, err := cm.Rebuild(st.Snapshot())
	require.NoError(t, err)

	id, err := st.AddHoleSpec(holes[1])
	require.NoError(t, err)
	with, err := cm.Rebuild(st.Snapshot())
	require.NoError(t, err)
	assert.Less(t, with.Solid.Volume(), before.Solid.Volume())

	require.NoError(t, st.RemoveHole(id))
	after, err := cm.Rebuild(st.Snapshot())
	require.NoError(t, err)
	if diff := cmp.Diff(before.Solid, after.Solid); diff != "" {
		t.Errorf("geometry after removing a hole differs (-want +got):\n%s", diff)
	}
}

func TestRebuildIsStateless(t *testing.T) {
	cm := NewComposer(DefaultOptions())
	sn := snapshot(plainHoles()...)
	a, err := cm.Rebuild(sn)
	require.NoError(t, err)
	_, err = cm.Rebuild(snapshot(plainHoles()[0]))
	require.NoError(t, err)
	b, err := cm.Rebuild(sn)
	require.NoError(t, err)
	if diff := cmp.Diff(a.Solid, b.Solid); diff != "" {
		t.Errorf("rebuild depends on previous state (-want +got):\n%s", diff)
	}
}

func TestDegeneratePanel(t *testing.T) {
	cm := NewComposer(DefaultOptions())
	sn := snapshot(plainHoles()...)
	sn.Panel.Width = 0
	res, err := cm.Rebuild(sn)
	require.NoError(t, err)
	assert.True(t, res.Panel.Empty())
	assert.True(t, res.Solid.Empty())

	sn.Panel = params.DefaultPanel()
	sn.Panel.Length = 0
	res, err = cm.Rebuild(sn)
	require.NoError(t, err)
	assert.True(t, res.Solid.Empty())
}

func TestModeEnums(t *testing.T) {
	var m SubtractModes
	require.NoError(t, m.SetString("Overwrite"))
	assert.Equal(t, SubtractOverwrite, m)
	assert.Error(t, m.SetString("sometimes"))
	assert.Equal(t, SubtractOverwrite, m)

	var s HoleSizes
	require.NoError(t, s.UnmarshalText([]byte("fixed")))
	assert.Equal(t, SizeFixed, s)
	assert.Error(t, s.SetString("huge"))

	assert.Equal(t, "cumulative", SubtractCumulative.String())
	assert.Equal(t, "fixed", SizeFixed.String())
	assert.Equal(t, "7", HoleSizes(7).String())
	assert.Equal(t, []SubtractModes{SubtractCumulative, SubtractOverwrite}, SubtractModesValues())
	assert.Len(t, SizeDiameter.Values(), int(HoleSizesN))
}
