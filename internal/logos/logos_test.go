package logos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGuessDomain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme, Inc.", "acmeinc.com"},
		{"Johnson & Johnson", "johnsonjohnson.com"},
		{"Google", "google.com"},
		{"  Deep  Mind  ", "deepmind.com"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := GuessDomain(tc.in); got != tc.want {
			t.Errorf("GuessDomain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFindLogoFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/acmeinc.com" {
			t.Errorf("path = %q, want /acmeinc.com", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewFinder(srv.URL)
	got := f.FindLogo(context.Background(), "Acme, Inc.")
	want := srv.URL + "/acmeinc.com"
	if got != want {
		t.Errorf("FindLogo = %q, want %q", got, want)
	}
}

func TestFindLogoMissingResolvesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFinder(srv.URL)
	if got := f.FindLogo(context.Background(), "Nowhere Corp"); got != "" {
		t.Errorf("FindLogo = %q, want empty", got)
	}
}

func TestFindLogoBlankCompany(t *testing.T) {
	f := NewFinder("http://unused.invalid")
	if got := f.FindLogo(context.Background(), ""); got != "" {
		t.Errorf("FindLogo = %q, want empty", got)
	}
}

func TestFindLogoServerDownResolvesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := NewFinder(srv.URL)
	if got := f.FindLogo(context.Background(), "Acme"); got != "" {
		t.Errorf("FindLogo = %q, want empty", got)
	}
}
