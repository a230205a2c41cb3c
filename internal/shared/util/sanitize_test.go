package util

import "testing"

func TestExportFileName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"full name", "Alex Morgan", "alex_morgan_cv.pdf"},
		{"empty falls back", "", "resume_cv.pdf"},
		{"whitespace only", "   ", "resume_cv.pdf"},
		{"punctuation", "J. R. O'Neil", "j__r__o_neil_cv.pdf"},
		{"digits kept", "Agent 007", "agent_007_cv.pdf"},
		{"accents replaced", "José", "jos__cv.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExportFileName(tc.in); got != tc.want {
				t.Errorf("ExportFileName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
