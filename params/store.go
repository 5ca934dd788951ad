// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownHole is returned when a [HoleID] is not in the store.
var ErrUnknownHole = errors.New("params: unknown hole")

// Store is the single source of truth for the current parameters.
// Every mutation notifies all observers registered with [Store.OnChange]
// synchronously, with a fresh [Snapshot]. A Store is meant to be used
// from the GUI event goroutine only and is not safe for concurrent use.
type Store struct {
	panel    PanelSpec
	holes    []HoleSpec
	nextID   HoleID
	onChange []func(Snapshot)
}

// NewStore returns a new store with the given panel and no holes.
func NewStore(panel PanelSpec) *Store {
	return &Store{panel: panel, nextID: 1}
}

// OnChange adds an observer that is called after every mutation.
func (st *Store) OnChange(fun func(Snapshot)) {
	st.onChange = append(st.onChange, fun)
}

// Snapshot returns a copy of the current state.
func (st *Store) Snapshot() Snapshot {
	return Snapshot{Panel: st.panel, Holes: slices.Clone(st.holes)}
}

// Panel returns the current panel dimensions.
func (st *Store) Panel() PanelSpec {
	return st.panel
}

// Holes returns a copy of the current hole list in insertion order.
func (st *Store) Holes() []HoleSpec {
	return slices.Clone(st.holes)
}

// Notify calls all observers with the current state. It is called by
// every mutating method, and can be called directly to force a rebuild.
func (st *Store) Notify() {
	for _, fun := range st.onChange {
		fun(st.Snapshot())
	}
}

// SetPanel replaces all panel dimensions.
func (st *Store) SetPanel(p PanelSpec) {
	st.panel = p
	st.Notify()
}

// SetWidth sets [PanelSpec.Width].
func (st *Store) SetWidth(v float64) {
	st.panel.Width = v
	st.Notify()
}

// SetLength sets [PanelSpec.Length].
func (st *Store) SetLength(v float64) {
	st.panel.Length = v
	st.Notify()
}

// SetDepth sets [PanelSpec.Depth].
func (st *Store) SetDepth(v float64) {
	st.panel.Depth = v
	st.Notify()
}

// SetLipRadius sets [PanelSpec.LipRadius].
func (st *Store) SetLipRadius(v float64) {
	st.panel.LipRadius = v
	st.Notify()
}

// AddHole appends a [DefaultHole] and returns its id.
func (st *Store) AddHole() HoleID {
	id, _ := st.AddHoleSpec(DefaultHole())
	return id
}

// AddHoleSpec appends a hole with the given offsets and diameter,
// assigning it a new id (any ID set on h is ignored).
func (st *Store) AddHoleSpec(h HoleSpec) (HoleID, error) {
	if err := h.Diameter.Validate(); err != nil {
		return 0, err
	}
	h.ID = st.nextID
	st.nextID++
	st.holes = append(st.holes, h)
	st.Notify()
	return h.ID, nil
}

// UpdateHole replaces the offsets and diameter of the hole with the given id.
func (st *Store) UpdateHole(id HoleID, h HoleSpec) error {
	i := st.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownHole, id)
	}
	if err := h.Diameter.Validate(); err != nil {
		return err
	}
	h.ID = id
	st.holes[i] = h
	st.Notify()
	return nil
}

// RemoveHole deletes the hole with the given id.
func (st *Store) RemoveHole(id HoleID) error {
	i := st.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownHole, id)
	}
	st.holes = slices.Delete(st.holes, i, i+1)
	st.Notify()
	return nil
}

// Hole returns the hole with the given id.
func (st *Store) Hole(id HoleID) (HoleSpec, bool) {
	i := st.index(id)
	if i < 0 {
		return HoleSpec{}, false
	}
	return st.holes[i], true
}

func (st *Store) index(id HoleID) int {
	return slices.IndexFunc(st.holes, func(h HoleSpec) bool { return h.ID == id })
}
