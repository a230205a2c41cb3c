// Package editor models the lifecycle of an inline field edit: a field is
// either displaying its committed value or holding an uncommitted draft.
// Commit writes the draft back through the document's path mutation, Cancel
// throws it away.
package editor

import (
	"encoding/json"

	"cv-builder-backend/internal/cv"
)

// State is the editing mode of a field.
type State int

const (
	// Display means the field shows its committed value.
	Display State = iota
	// Editing means the field holds a draft that is not yet committed.
	Editing
)

// FieldEditor tracks one field's edit session against a document.
type FieldEditor struct {
	doc   *cv.Document
	path  string
	state State
	draft any

	// afterCommit fires only when Commit actually changed the document.
	afterCommit func(doc cv.Document)
}

// New creates an editor for the field at path. The document pointer is
// shared with the caller; Commit writes through it.
func New(doc *cv.Document, path string) *FieldEditor {
	return &FieldEditor{doc: doc, path: path}
}

// OnCommit registers a callback invoked after a committed change.
func (e *FieldEditor) OnCommit(fn func(doc cv.Document)) {
	e.afterCommit = fn
}

// State reports whether the field is displaying or editing.
func (e *FieldEditor) State() State {
	return e.state
}

// Draft returns the current draft value. Only meaningful while Editing.
func (e *FieldEditor) Draft() any {
	return e.draft
}

// Begin enters editing mode, seeding the draft from the committed value.
// Beginning an already-active edit keeps the existing draft.
func (e *FieldEditor) Begin() error {
	if e.state == Editing {
		return nil
	}
	value, err := cv.GetByPath(*e.doc, e.path)
	if err != nil {
		return err
	}
	e.draft = value
	e.state = Editing
	return nil
}

// SetDraft replaces the draft without committing. A no-op in Display state.
func (e *FieldEditor) SetDraft(value any) {
	if e.state != Editing {
		return
	}
	e.draft = value
}

// Commit writes the draft to the document and returns to Display state.
// It reports whether the document changed; committing an unchanged draft
// leaves the document untouched and fires no callback.
func (e *FieldEditor) Commit() (bool, error) {
	if e.state != Editing {
		return false, nil
	}
	current, err := cv.GetByPath(*e.doc, e.path)
	if err != nil {
		return false, err
	}
	if equalValues(current, e.draft) {
		e.state = Display
		e.draft = nil
		return false, nil
	}
	updated, err := cv.SetByPath(*e.doc, e.path, e.draft)
	if err != nil {
		return false, err
	}
	*e.doc = updated
	e.state = Display
	e.draft = nil
	if e.afterCommit != nil {
		e.afterCommit(updated)
	}
	return true, nil
}

// Cancel discards the draft and returns to Display state.
func (e *FieldEditor) Cancel() {
	e.state = Display
	e.draft = nil
}

// equalValues compares the JSON forms so a draft decoded from a request
// compares equal to the value read back from the document tree.
func equalValues(a, b any) bool {
	rawA, errA := json.Marshal(a)
	rawB, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(rawA) == string(rawB)
}
