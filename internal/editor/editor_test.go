package editor

import (
	"testing"

	"cv-builder-backend/internal/cv"
)

func TestBeginSeedsDraftFromDocument(t *testing.T) {
	doc := cv.Seed()
	e := New(&doc, "contact.email")

	if e.State() != Display {
		t.Fatalf("initial state = %v, want Display", e.State())
	}
	if err := e.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if e.State() != Editing {
		t.Errorf("state = %v, want Editing", e.State())
	}
	if e.Draft() != doc.Contact.Email {
		t.Errorf("draft = %v, want %q", e.Draft(), doc.Contact.Email)
	}
}

func TestCommitWritesThrough(t *testing.T) {
	doc := cv.Seed()
	e := New(&doc, "contact.email")

	var committed *cv.Document
	e.OnCommit(func(d cv.Document) { committed = &d })

	if err := e.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	e.SetDraft("changed@example.com")

	changed, err := e.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !changed {
		t.Error("Commit reported no change")
	}
	if doc.Contact.Email != "changed@example.com" {
		t.Errorf("document email = %q", doc.Contact.Email)
	}
	if committed == nil {
		t.Error("OnCommit callback not fired")
	}
	if e.State() != Display {
		t.Errorf("state after commit = %v, want Display", e.State())
	}
}

func TestCommitUnchangedDraftIsNoop(t *testing.T) {
	doc := cv.Seed()
	e := New(&doc, "contact.email")

	fired := false
	e.OnCommit(func(cv.Document) { fired = true })

	if err := e.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	changed, err := e.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if changed {
		t.Error("Commit reported a change for an untouched draft")
	}
	if fired {
		t.Error("OnCommit fired for an untouched draft")
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	doc := cv.Seed()
	before := doc.Contact.Email
	e := New(&doc, "contact.email")

	if err := e.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	e.SetDraft("discarded@example.com")
	e.Cancel()

	if e.State() != Display {
		t.Errorf("state = %v, want Display", e.State())
	}
	if doc.Contact.Email != before {
		t.Errorf("document changed on cancel: %q", doc.Contact.Email)
	}
}

func TestCommitInDisplayStateIsNoop(t *testing.T) {
	doc := cv.Seed()
	e := New(&doc, "contact.email")
	changed, err := e.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if changed {
		t.Error("Commit in Display state reported a change")
	}
}

func TestBeginOnBadPathFails(t *testing.T) {
	doc := cv.Seed()
	e := New(&doc, "no.such.field")
	if err := e.Begin(); err == nil {
		t.Error("Begin on bad path succeeded")
	}
	if e.State() != Display {
		t.Errorf("state = %v, want Display after failed Begin", e.State())
	}
}

func TestBeginWhileEditingKeepsDraft(t *testing.T) {
	doc := cv.Seed()
	e := New(&doc, "contact.email")
	if err := e.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	e.SetDraft("draft@example.com")
	if err := e.Begin(); err != nil {
		t.Fatalf("second Begin: %v", err)
	}
	if e.Draft() != "draft@example.com" {
		t.Errorf("draft = %v, want kept draft", e.Draft())
	}
}
