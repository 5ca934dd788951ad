// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panelgui provides the parameter form for a panel design,
// bound to a [params.Store].
package panelgui

import (
	"fmt"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"cogentcore.org/panelcut/params"
)

// Editor is the parameter form. Every edit is written to the Store,
// which in turn notifies its observers. Text fields write on every
// keystroke, not only when the edit is committed.
type Editor struct {

	// Store holds the edited parameters.
	Store *params.Store

	// Frame contains the whole form.
	Frame *core.Frame

	// Width, Length and LipRadius are the panel dimension fields.
	Width, Length, LipRadius *core.TextField

	// Depth chooses among [params.Depths].
	Depth *core.Chooser

	// Holes contains one row per hole, in store order.
	Holes *core.Frame

	// Add appends a default hole.
	Add *core.Button
}

// NewEditor builds the form in parent, initialized from the current
// content of st.
func NewEditor(parent tree.Node, st *params.Store) *Editor {
	ed := &Editor{Store: st}
	ed.Frame = core.NewFrame(parent)
	ed.Frame.SetName("panel-editor")
	ed.Frame.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Min.X = units.Em(18)
	})
	pn := st.Panel()

	ed.Width = ed.addField("Width (mm)", FormatValue(pn.Width))
	ed.Width.OnInput(func(e events.Event) {
		ed.Store.SetWidth(params.ParseInteger(ed.Width.Text()))
	})
	ed.Length = ed.addField("Length (mm)", FormatValue(pn.Length))
	ed.Length.OnInput(func(e events.Event) {
		ed.Store.SetLength(params.ParseInteger(ed.Length.Text()))
	})

	row := ed.addRow("Depth (mm)")
	ed.Depth = core.NewChooser(row).SetItems(DepthItems()...).SetCurrentValue(pn.Depth)
	ed.Depth.OnChange(func(e events.Event) {
		if v, ok := ed.Depth.CurrentItem.Value.(float64); ok {
			ed.Store.SetDepth(v)
		}
	})

	ed.LipRadius = ed.addField("Lip radius", FormatValue(pn.LipRadius))
	ed.LipRadius.OnInput(func(e events.Event) {
		ed.Store.SetLipRadius(params.ParseNumber(ed.LipRadius.Text()))
	})

	core.NewSeparator(ed.Frame)
	core.NewText(ed.Frame).SetText("Holes").SetType(core.TextTitleSmall)
	ed.Holes = core.NewFrame(ed.Frame)
	ed.Holes.SetName("holes")
	ed.Holes.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	ed.Holes.Maker(ed.makeHoles)

	ed.Add = core.NewButton(ed.Frame).SetText("Add hole").SetIcon(icons.Add)
	ed.Add.OnClick(func(e events.Event) {
		ed.Store.AddHole()
		ed.Holes.Update()
	})
	ed.Holes.Update()
	return ed
}

// addRow adds a labeled row to the form and returns it.
func (ed *Editor) addRow(label string) *core.Frame {
	row := core.NewFrame(ed.Frame)
	row.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
	})
	core.NewText(row).SetText(label).Styler(func(s *styles.Style) {
		s.Min.X = units.Em(8)
	})
	return row
}

func (ed *Editor) addField(label, value string) *core.TextField {
	return core.NewTextField(ed.addRow(label)).SetText(value)
}

// makeHoles plans one row per hole. Rows are named by hole id so that
// existing rows keep their widgets when other holes are added or removed.
func (ed *Editor) makeHoles(p *tree.Plan) {
	for _, h := range ed.Store.Holes() {
		id := h.ID
		tree.AddAt(p, fmt.Sprintf("hole-%d", id), func(w *core.Frame) {
			ed.initHoleRow(w, h)
		})
	}
}

func (ed *Editor) initHoleRow(row *core.Frame, h params.HoleSpec) {
	id := h.ID
	row.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
		s.Gap.X = units.Em(0.5)
	})
	update := func(set func(h *params.HoleSpec)) {
		cur, ok := ed.Store.Hole(id)
		if !ok {
			return
		}
		set(&cur)
		errors.Log(ed.Store.UpdateHole(id, cur))
	}

	core.NewText(row).SetText("X")
	x := core.NewTextField(row).SetText(FormatValue(h.OffsetX))
	x.SetName("x")
	x.OnInput(func(e events.Event) {
		update(func(h *params.HoleSpec) { h.OffsetX = params.ParseNumber(x.Text()) })
	})

	core.NewText(row).SetText("Y")
	y := core.NewTextField(row).SetText(FormatValue(h.OffsetY))
	y.SetName("y")
	y.OnInput(func(e events.Event) {
		update(func(h *params.HoleSpec) { h.OffsetY = params.ParseNumber(y.Text()) })
	})

	dm := core.NewChooser(row).SetItems(DiameterItems()...).SetCurrentValue(h.Diameter)
	dm.SetName("diameter")
	dm.OnChange(func(e events.Event) {
		if d, ok := dm.CurrentItem.Value.(params.Diameter); ok {
			update(func(h *params.HoleSpec) { h.Diameter = d })
		}
	})

	rm := core.NewButton(row).SetIcon(icons.Delete).SetTooltip("Remove this hole")
	rm.SetName("remove")
	rm.OnClick(func(e events.Event) {
		errors.Log(ed.Store.RemoveHole(id))
		ed.Holes.Update()
	})
}

// FormatValue formats a millimeter value for a text field.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// DepthItems returns the chooser items for [params.Depths].
func DepthItems() []core.ChooserItem {
	items := make([]core.ChooserItem, len(params.Depths))
	for i, d := range params.Depths {
		items[i] = core.ChooserItem{Value: d, Text: FormatValue(d) + " mm"}
	}
	return items
}

// DiameterItems returns the chooser items for [params.Diameters].
func DiameterItems() []core.ChooserItem {
	items := make([]core.ChooserItem, len(params.Diameters))
	for i, d := range params.Diameters {
		items[i] = core.ChooserItem{Value: d, Text: "Ø" + d.String() + " mm"}
	}
	return items
}
