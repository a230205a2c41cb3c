// Package logos resolves a company name to a logo image URL by guessing the
// company's domain and probing a logo CDN. Lookup is best effort: any
// failure resolves to an empty URL so the caller can fall back to a
// placeholder image.
package logos

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Finder probes a clearbit-style logo service.
type Finder struct {
	baseURL string
	http    *http.Client
}

// NewFinder creates a Finder against the given logo service base URL.
func NewFinder(baseURL string) *Finder {
	return &Finder{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// GuessDomain derives a candidate domain from a company name: lowercase,
// strip " & ", commas and periods, then glue the remaining words together
// and append ".com". "Acme, Inc." becomes "acmeinc.com".
func GuessDomain(company string) string {
	name := strings.ToLower(company)
	name = strings.ReplaceAll(name, " & ", "")
	name = strings.ReplaceAll(name, ",", "")
	name = strings.ReplaceAll(name, ".", "")
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "") + ".com"
}

// FindLogo returns the logo URL for the company, or "" when the company is
// blank, the domain guess fails, or the logo service has no image. It never
// returns an error; a missing logo is an expected outcome.
func (f *Finder) FindLogo(ctx context.Context, company string) string {
	domain := GuessDomain(company)
	if domain == "" {
		return ""
	}
	url := fmt.Sprintf("%s/%s", f.baseURL, domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ""
	}
	return url
}
