package util

import "strings"

// ExportFileName derives the download name for an exported CV from the
// document's name field: every non-alphanumeric rune becomes an underscore,
// lowercased, with "resume" standing in for an empty name.
func ExportFileName(name string) string {
	token := strings.TrimSpace(name)
	if token == "" {
		token = "resume"
	}
	var b strings.Builder
	for _, r := range strings.ToLower(token) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String() + "_cv.pdf"
}
