// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenehost owns the 3D scene the panel is shown in: the lights,
// the camera, the axes helper and the single displayed panel solid.
package scenehost

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/panelcut/csg"
)

const (
	// MeshName is the name of the mesh holding the displayed solid.
	// Every replacement reuses it, so the scene holds exactly one panel mesh.
	MeshName = "panel"

	// AxesLength is the length of each axis of the axes helper.
	AxesLength = 5.0

	axesWidth = 0.02
)

// Background is the scene background color.
var Background = color.RGBA{0xf2, 0xf2, 0xf2, 0xff}

// Host manages the displayed solid within an [xyz.Scene].
type Host struct {

	// Scene is the scene being managed.
	Scene *xyz.Scene

	// Panel is the scene node showing the current solid.
	Panel *xyz.Solid

	// Solid is the currently displayed solid; nil before the first Replace.
	Solid *csg.Solid

	// OnReplace, if set, is called after every Replace.
	OnReplace func(s *csg.Solid)
}

// NewHost returns a new host for the given scene and configures the
// scene with [Host.Setup].
func NewHost(sc *xyz.Scene) *Host {
	h := &Host{Scene: sc}
	h.Setup()
	return h
}

// Setup configures the lights, camera, background and axes helper,
// and adds the node that displays the panel. The panel node has no
// mesh until the first [Host.Replace].
func (h *Host) Setup() {
	sc := h.Scene
	sc.Background = colors.Uniform(Background)

	xyz.NewAmbient(sc, "ambient", 0.6, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "directional", 1, xyz.DirectSun)
	dir.Pos.Set(-3, 10, -10)

	sc.Camera.Pose.Pos = math32.Vec3(10, 15, 20)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")

	h.addAxes()

	tex := NewWoodTexture(WoodTextureName, WoodTextureSize)
	sc.SetTexture(tex)
	h.Panel = xyz.NewSolid(sc)
	h.Panel.SetName(MeshName)
	h.Panel.SetColor(colors.White).SetShiny(30).SetReflective(0.1).SetTexture(tex)
}

// addAxes adds thin red, green and blue boxes along the +X, +Y and +Z axes.
func (h *Host) addAxes() {
	sc := h.Scene
	axes := []struct {
		name string
		size math32.Vector3
		clr  color.RGBA
		pos  math32.Vector3
	}{
		{"axis-x", math32.Vec3(AxesLength, axesWidth, axesWidth), colors.Red, math32.Vec3(AxesLength/2, 0, 0)},
		{"axis-y", math32.Vec3(axesWidth, AxesLength, axesWidth), colors.Green, math32.Vec3(0, AxesLength/2, 0)},
		{"axis-z", math32.Vec3(axesWidth, axesWidth, AxesLength), colors.Blue, math32.Vec3(0, 0, AxesLength/2)},
	}
	for _, ax := range axes {
		ms := xyz.NewBox(sc, ax.name, ax.size.X, ax.size.Y, ax.size.Z)
		sld := xyz.NewSolid(sc).SetMesh(ms).SetColor(ax.clr)
		sld.SetName(ax.name)
		sld.Pose.Pos = ax.pos
	}
}

// Replace makes s the displayed solid, replacing the previous one.
// An empty solid clears the display. s must not be modified afterwards.
func (h *Host) Replace(s *csg.Solid) {
	ms := NewMesh(MeshName, s)
	h.Scene.SetMesh(ms)
	h.Panel.SetMesh(ms)
	h.Solid = s
	slog.Debug("scenehost: replaced panel", "polygons", len(s.Polygons), "vertices", len(ms.Vertex)/3, "indices", len(ms.Index))
	h.Scene.SetNeedsUpdate()
	h.Scene.SetNeedsRender()
	if h.OnReplace != nil {
		h.OnReplace(s)
	}
}

// Resize sets the render size of the scene and the camera aspect ratio
// to sz.X / sz.Y. Sizes with a zero dimension are ignored.
func (h *Host) Resize(sz image.Point) {
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	h.Scene.SetSize(sz)
	h.Scene.Camera.Aspect = float32(sz.X) / float32(sz.Y)
	h.Scene.Camera.UpdateMatrix()
	h.Scene.SetNeedsRender()
}

// NewMesh converts s into an indexed triangle mesh with the given name,
// fanning each convex polygon from its first vertex.
func NewMesh(name string, s *csg.Solid) *xyz.GenMesh {
	ms := &xyz.GenMesh{}
	ms.Name = name
	nv := 0
	for _, p := range s.Polygons {
		nv += len(p.Vertices)
	}
	ms.Vertex = make(math32.ArrayF32, 0, 3*nv)
	ms.Normal = make(math32.ArrayF32, 0, 3*nv)
	ms.TexCoord = make(math32.ArrayF32, 0, 2*nv)
	ms.Index = make(math32.ArrayU32, 0, 3*s.NumTriangles())
	for _, p := range s.Polygons {
		base := uint32(len(ms.Vertex) / 3)
		for _, v := range p.Vertices {
			ms.Vertex = append(ms.Vertex, float32(v.Pos.X), float32(v.Pos.Y), float32(v.Pos.Z))
			ms.Normal = append(ms.Normal, float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z))
			ms.TexCoord = append(ms.TexCoord, float32(v.UV.X), float32(v.UV.Y))
		}
		for i := 2; i < len(p.Vertices); i++ {
			ms.Index = append(ms.Index, base, base+uint32(i-1), base+uint32(i))
		}
	}
	ms.NumVertex = len(ms.Vertex) / 3
	ms.NumIndex = len(ms.Index)
	if !s.Empty() {
		bb := s.Bounds()
		ms.BBox.SetBounds(
			math32.Vec3(float32(bb.Min.X), float32(bb.Min.Y), float32(bb.Min.Z)),
			math32.Vec3(float32(bb.Max.X), float32(bb.Max.Y), float32(bb.Max.Z)))
	}
	return ms
}
