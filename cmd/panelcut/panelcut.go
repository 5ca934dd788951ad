// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command panelcut is an interactive designer for a wooden panel with
// a rounded lip and cylindrical cutouts, shown live in a 3D view.
package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/panelcut/compose"
	"cogentcore.org/panelcut/csg"
	"cogentcore.org/panelcut/panelgui"
	"cogentcore.org/panelcut/params"
	"cogentcore.org/panelcut/scenehost"
)

// ErrBadConfig is returned for configuration values that cannot be used.
var ErrBadConfig = errors.New("panelcut: invalid configuration")

// Config is the configuration information for panelcut. It can be set
// with flags or with a panelcut.toml file in the current directory.
type Config struct {

	// Width is the initial panel width in millimeters.
	Width float64 `default:"600"`

	// Length is the initial panel length in millimeters.
	Length float64 `default:"1500"`

	// Depth is the initial panel depth in millimeters.
	Depth float64 `default:"25"`

	// LipRadius is the initial lip radius.
	LipRadius float64 `default:"6.26"`

	// Subtract is how multiple holes are combined: cumulative shows
	// all holes, overwrite shows only the last one.
	Subtract compose.SubtractModes `default:"cumulative"`

	// HoleSize is how hole radii are chosen: diameter uses the selected
	// diameter, fixed uses the same radius for every hole.
	HoleSize compose.HoleSizes `default:"diameter"`

	// CurveSegments is the number of segments of the lip curve.
	CurveSegments int `default:"200"`

	// Steps is the number of bands along the panel length.
	Steps int `default:"5"`

	// RadialSegments is the number of sides of each hole.
	RadialSegments int `default:"32"`

	// Debug turns on debug logging of every rebuild.
	Debug bool `flag:"d,debug"`
}

// Panel returns the initial panel dimensions.
func (c *Config) Panel() params.PanelSpec {
	return params.PanelSpec{Width: c.Width, Length: c.Length, Depth: c.Depth, LipRadius: c.LipRadius}
}

// ComposerOptions returns the options for the [compose.Composer].
func (c *Config) ComposerOptions() (compose.Options, error) {
	opts := compose.DefaultOptions()
	if c.CurveSegments < 1 || c.Steps < 1 || c.RadialSegments < 3 {
		return opts, fmt.Errorf("%w: curve segments %d, steps %d, radial segments %d", ErrBadConfig, c.CurveSegments, c.Steps, c.RadialSegments)
	}
	opts.Subtract = c.Subtract
	opts.HoleSize = c.HoleSize
	opts.CurveSegments = c.CurveSegments
	opts.Steps = c.Steps
	opts.RadialSegments = c.RadialSegments
	return opts, nil
}

func main() { //types:skip
	opts := cli.DefaultOptions("panelcut", "Interactive designer for panels with a rounded lip and cutouts.")
	opts.DefaultFiles = []string{"panelcut.toml"}
	cli.Run(opts, &Config{}, Run)
}

// Run opens the main window: the parameter form next to the 3D view.
func Run(c *Config) error { //cli:cmd -root
	if c.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	copts, err := c.ComposerOptions()
	if err != nil {
		return err
	}
	slog.Info("panelcut: starting", "subtract", copts.Subtract, "holeSize", copts.HoleSize)

	b := core.NewBody("panelcut").SetTitle("Panel Cutouts")
	sp := core.NewSplits(b)
	st := params.NewStore(c.Panel())
	panelgui.NewEditor(sp, st)

	se := xyzcore.NewSceneEditor(sp)
	se.UpdateWidget()
	app := NewApp(compose.NewComposer(copts), scenehost.NewHost(se.SceneXYZ()))
	app.Host.OnReplace = func(s *csg.Solid) {
		se.NeedsRender()
	}
	sw := se.SceneWidget()
	sw.Updater(func() {
		app.Fit(sw)
	})
	st.OnChange(app.Rebuild)
	app.Rebuild(st.Snapshot())

	sp.SetSplits(.3, .7)
	b.RunMainWindow()
	return nil
}
