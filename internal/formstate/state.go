// Package formstate is the Viewing / Adding / Editing(id) reducer shared by
// the credential and note managers. At most one form is open at a time.
package formstate

import (
	"errors"
	"fmt"
)

var (
	// ErrFormOpen is returned by Add and Edit while a form is already open.
	ErrFormOpen = errors.New("a form is already open")
	// ErrNoForm is returned by Save and Cancel while viewing.
	ErrNoForm = errors.New("no form is open")
)

// Mode is the discriminant of State.
type Mode int

const (
	Viewing Mode = iota
	Adding
	Editing
)

func (m Mode) String() string {
	switch m {
	case Viewing:
		return "viewing"
	case Adding:
		return "adding"
	case Editing:
		return "editing"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// State is a small tagged value: the target id only means something in
// Editing mode. The zero value is Viewing.
type State[ID comparable] struct {
	mode   Mode
	target ID
}

// Mode returns the current mode.
func (s State[ID]) Mode() Mode { return s.mode }

// Target returns the id being edited and true, or the zero id and false
// outside Editing.
func (s State[ID]) Target() (ID, bool) {
	if s.mode != Editing {
		var zero ID
		return zero, false
	}
	return s.target, true
}

// Open reports whether a form is shown.
func (s State[ID]) Open() bool { return s.mode != Viewing }

// Add opens an empty form.
func (s State[ID]) Add() (State[ID], error) {
	if s.Open() {
		return s, ErrFormOpen
	}
	return State[ID]{mode: Adding}, nil
}

// Edit opens the form for id.
func (s State[ID]) Edit(id ID) (State[ID], error) {
	if s.Open() {
		return s, ErrFormOpen
	}
	return State[ID]{mode: Editing, target: id}, nil
}

// Close returns to Viewing. Save and Cancel both land here; the caller
// decides whether anything was committed.
func (s State[ID]) Close() (State[ID], error) {
	if !s.Open() {
		return s, ErrNoForm
	}
	return State[ID]{}, nil
}

// Reset unconditionally returns to Viewing.
func (s State[ID]) Reset() State[ID] { return State[ID]{} }

func (s State[ID]) String() string {
	if s.mode == Editing {
		return fmt.Sprintf("editing(%v)", s.target)
	}
	return s.mode.String()
}
