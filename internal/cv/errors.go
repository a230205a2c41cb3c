package cv

import "errors"

var (
	// ErrNotFound means no document exists yet for the session.
	ErrNotFound = errors.New("cv: document not found")

	// ErrInvalidInput covers malformed requests before they touch state.
	ErrInvalidInput = errors.New("cv: invalid input")

	// ErrUnknownSection means the section name is not one of the editable lists.
	ErrUnknownSection = errors.New("cv: unknown section")

	// ErrIndexOutOfRange means an item index does not exist in its section.
	ErrIndexOutOfRange = errors.New("cv: index out of range")

	// ErrPathNotFound means a dotted field path walked off the document.
	ErrPathNotFound = errors.New("cv: path not found")
)
