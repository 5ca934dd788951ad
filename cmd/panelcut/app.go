// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/panelcut/compose"
	"cogentcore.org/panelcut/params"
	"cogentcore.org/panelcut/scenehost"
)

// Rebuilder builds the result to display for a parameter snapshot.
// It is implemented by [compose.Composer].
type Rebuilder interface {
	Rebuild(sn params.Snapshot) (*compose.Result, error)
}

// App connects parameter changes to the displayed solid.
type App struct {
	Composer Rebuilder
	Host     *scenehost.Host

	// Last is the result of the last successful rebuild.
	Last *compose.Result

	// Failures counts the rebuilds that returned an error.
	Failures int
}

// NewApp returns a new app for the given composer and host.
func NewApp(cm Rebuilder, h *scenehost.Host) *App {
	return &App{Composer: cm, Host: h}
}

// Rebuild rebuilds the solid for sn and displays it. If the rebuild
// fails, the error is logged and the previous solid stays displayed.
func (app *App) Rebuild(sn params.Snapshot) {
	res, err := app.Composer.Rebuild(sn)
	if errors.Log(err) != nil {
		app.Failures++
		return
	}
	app.Last = res
	app.Host.Replace(res.Solid)
}

// Fit resizes the host to the content box of sw, which is the size
// the scene widget renders at.
func (app *App) Fit(sw *xyzcore.Scene) {
	app.Host.Resize(sw.Geom.ContentBBox.Size())
}
