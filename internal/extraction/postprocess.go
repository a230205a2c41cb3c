package extraction

import (
	"fmt"
	"strings"

	"cv-builder-backend/internal/cv"
)

// Postprocess fixes up a freshly extracted document: language icons arrive
// as bare country codes and are expanded to flag image URLs, and list
// fields are normalized so the editor never sees nil sections.
func Postprocess(doc cv.Document) cv.Document {
	out := doc.Clone()
	for i, lang := range out.Languages {
		code := strings.TrimSpace(strings.ToLower(lang.Icon))
		if code == "" || strings.HasPrefix(code, "http") {
			continue
		}
		out.Languages[i].Icon = fmt.Sprintf("https://flagcdn.com/w20/%s.png", code)
	}
	out.Normalize()
	return out
}
