package extraction

import (
	"context"
	"errors"
	"testing"

	"cv-builder-backend/internal/cv"
)

func TestDecodeDocument(t *testing.T) {
	raw := []byte(`{
		"name": "JANE DOE",
		"title": "Engineer",
		"summary": "Builds things.",
		"contact": {"email": "jane@example.com"},
		"languages": [{"name": "English", "level": "Native", "icon": "gb", "proficiency": 100}]
	}`)

	doc, err := DecodeDocument(raw)
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	if doc.Name != "JANE DOE" {
		t.Errorf("name = %q", doc.Name)
	}
	if doc.Languages[0].Proficiency != 100 {
		t.Errorf("proficiency = %d", doc.Languages[0].Proficiency)
	}
	// Sections absent from the payload come back as empty lists, not nil.
	if doc.Certifications == nil || doc.Education == nil || doc.Experience == nil {
		t.Error("missing sections not normalized to empty lists")
	}
}

func TestDecodeDocumentMissingRequiredField(t *testing.T) {
	raw := []byte(`{"title": "Engineer", "summary": "x", "contact": {}}`)
	if _, err := DecodeDocument(raw); !errors.Is(err, ErrExtraction) {
		t.Errorf("err = %v, want ErrExtraction", err)
	}
}

func TestDecodeDocumentInvalidJSON(t *testing.T) {
	if _, err := DecodeDocument([]byte("not json")); !errors.Is(err, ErrExtraction) {
		t.Errorf("err = %v, want ErrExtraction", err)
	}
}

func TestPostprocessExpandsFlagIcons(t *testing.T) {
	doc := cv.Document{
		Name:  "X",
		Title: "Y",
		Languages: []cv.Language{
			{Name: "Italian", Icon: "it"},
			{Name: "English", Icon: "GB"},
			{Name: "Custom", Icon: "https://example.com/flag.png"},
			{Name: "Blank", Icon: ""},
		},
	}

	out := Postprocess(doc)
	if got := out.Languages[0].Icon; got != "https://flagcdn.com/w20/it.png" {
		t.Errorf("icon = %q", got)
	}
	if got := out.Languages[1].Icon; got != "https://flagcdn.com/w20/gb.png" {
		t.Errorf("uppercase code icon = %q", got)
	}
	// URLs already in place pass through untouched.
	if got := out.Languages[2].Icon; got != "https://example.com/flag.png" {
		t.Errorf("url icon = %q", got)
	}
	if got := out.Languages[3].Icon; got != "" {
		t.Errorf("blank icon = %q", got)
	}
}

func TestPostprocessNormalizesSections(t *testing.T) {
	out := Postprocess(cv.Document{Name: "X"})
	if out.Skills == nil || out.Experience == nil {
		t.Error("sections not normalized")
	}
}

func TestCleanJSONBlock(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, tc := range cases {
		if got := cleanJSONBlock(tc.in); got != tc.want {
			t.Errorf("cleanJSONBlock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPlaceholderReportsNotConfigured(t *testing.T) {
	var p Placeholder
	ctx := context.Background()
	if _, err := p.ParseResume(ctx, "text"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("ParseResume err = %v, want ErrNotConfigured", err)
	}
	if _, err := p.Recognize(ctx, nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Recognize err = %v, want ErrNotConfigured", err)
	}
}
