package cv

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SetByPath returns a copy of doc with the field at the dotted path replaced
// by value. Paths address struct fields by their JSON names and list items by
// numeric index, e.g. "contact.email" or "experience.0.role". Every segment
// including the terminal must resolve to an existing field; nothing is
// created or defaulted. The input document is never mutated.
func SetByPath(doc Document, path string, value any) (Document, error) {
	segments := strings.Split(path, ".")
	if path == "" || len(segments) == 0 {
		return Document{}, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}
	for _, seg := range segments {
		if seg == "" {
			return Document{}, fmt.Errorf("%w: empty segment in %q", ErrInvalidInput, path)
		}
	}

	root, err := toTree(doc)
	if err != nil {
		return Document{}, err
	}

	cur := any(root)
	for _, seg := range segments[:len(segments)-1] {
		next, err := lookup(cur, seg, path)
		if err != nil {
			return Document{}, err
		}
		cur = next
	}

	last := segments[len(segments)-1]
	switch node := cur.(type) {
	case map[string]any:
		if _, ok := node[last]; !ok {
			return Document{}, fmt.Errorf("%w: %q in %q", ErrPathNotFound, last, path)
		}
		node[last] = value
	case []any:
		idx, err := strconv.Atoi(last)
		if err != nil || idx < 0 || idx >= len(node) {
			return Document{}, fmt.Errorf("%w: %q in %q", ErrPathNotFound, last, path)
		}
		node[idx] = value
	default:
		return Document{}, fmt.Errorf("%w: %q in %q", ErrPathNotFound, last, path)
	}

	return fromTree(root)
}

// GetByPath reads the value at the dotted path, using the same addressing
// rules as SetByPath.
func GetByPath(doc Document, path string) (any, error) {
	segments := strings.Split(path, ".")
	if path == "" || len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidInput)
	}

	root, err := toTree(doc)
	if err != nil {
		return nil, err
	}

	cur := any(root)
	for _, seg := range segments {
		next, err := lookup(cur, seg, path)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func lookup(node any, seg, path string) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		child, ok := n[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrPathNotFound, seg, path)
		}
		return child, nil
	case []any:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(n) {
			return nil, fmt.Errorf("%w: %q in %q", ErrPathNotFound, seg, path)
		}
		return n[idx], nil
	default:
		return nil, fmt.Errorf("%w: %q in %q", ErrPathNotFound, seg, path)
	}
}

func toTree(doc Document) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("cv: encode document: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("cv: decode document: %w", err)
	}
	return tree, nil
}

func fromTree(tree map[string]any) (Document, error) {
	raw, err := json.Marshal(tree)
	if err != nil {
		return Document{}, fmt.Errorf("cv: encode tree: %w", err)
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return Document{}, fmt.Errorf("%w: value does not fit the field", ErrInvalidInput)
	}
	out.Normalize()
	return out, nil
}
