// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenehost

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/core/xyz"
	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/noise"
	"github.com/anthonynsimon/bild/transform"
)

const (
	// WoodTextureName is the name of the panel texture in the scene.
	WoodTextureName = "beech"

	// WoodTextureSize is the width and height of the panel texture in pixels.
	WoodTextureSize = 256

	// grain streaks are this many times longer than they are wide
	grainStretch = 32
)

// Beech is the base color of the wood texture.
var Beech = color.RGBA{0xd9, 0xb3, 0x82, 0xff}

// WoodImage returns a square placeholder wood image of the given size:
// the [Beech] base color multiplied by monochrome noise stretched along
// X into grain streaks.
func WoodImage(size int) *image.RGBA {
	if size <= 0 {
		size = WoodTextureSize
	}
	rows := max(size/grainStretch, 1)
	grain := noise.Generate(size, rows, &noise.Options{NoiseFn: noise.Uniform, Monochrome: true})
	streaks := transform.Resize(grain, size, size, transform.Linear)
	streaks = blur.Gaussian(streaks, 1.5)
	lighten(streaks, 0.7)

	base := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(base, base.Bounds(), image.NewUniform(Beech), image.Point{}, draw.Src)
	return blend.Multiply(base, streaks)
}

// lighten maps each color channel c of img to floor + (1-floor)*c,
// so that the grain only darkens the base color slightly.
func lighten(img *image.RGBA, floor float64) {
	for i := 0; i < len(img.Pix); i += 4 {
		for c := range 3 {
			v := float64(img.Pix[i+c]) / 255
			img.Pix[i+c] = uint8(255 * (floor + (1-floor)*v))
		}
		img.Pix[i+3] = 0xff
	}
}

// NewWoodTexture returns a texture with the given name holding a
// [WoodImage] of the given size.
func NewWoodTexture(name string, size int) *xyz.TextureBase {
	tx := &xyz.TextureBase{Name: name}
	tx.RGBA = WoodImage(size)
	return tx
}
