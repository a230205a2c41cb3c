package cv_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cv-builder-backend/internal/bootstrap"
	"cv-builder-backend/internal/cv"
	"cv-builder-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	app, err := bootstrap.Build(context.Background(), config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		LLMModel:        "gemini-2.5-flash",
		LogoBaseURL:     "http://logo.invalid",
	})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(app.Close)
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-Id", session)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeDoc(t *testing.T, rec *httptest.ResponseRecorder) cv.Document {
	t.Helper()
	var doc cv.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode document: %v (body: %s)", err, rec.Body.String())
	}
	return doc
}

func TestGetDocumentReturnsSeed(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/cv", "s1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	doc := decodeDoc(t, rec)
	if doc.Name == "" || len(doc.Experience) == 0 {
		t.Errorf("seed document incomplete: %+v", doc)
	}
}

func TestMissingSessionHeaderGetsOne(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/cv", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Session-Id") == "" {
		t.Error("no X-Session-Id header on response")
	}
}

func TestPatchFieldPersistsPerSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/v1/cv/field", "s1", map[string]any{
		"path":  "contact.email",
		"value": "patched@example.com",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if doc := decodeDoc(t, rec); doc.Contact.Email != "patched@example.com" {
		t.Errorf("email = %q", doc.Contact.Email)
	}

	// Same session sees the edit, another session still sees the seed.
	same := decodeDoc(t, doJSON(t, router, http.MethodGet, "/api/v1/cv", "s1", nil))
	if same.Contact.Email != "patched@example.com" {
		t.Errorf("edit not persisted: %q", same.Contact.Email)
	}
	other := decodeDoc(t, doJSON(t, router, http.MethodGet, "/api/v1/cv", "s2", nil))
	if other.Contact.Email == "patched@example.com" {
		t.Error("edit leaked across sessions")
	}
}

func TestPatchFieldBadPath(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/v1/cv/field", "s1", map[string]any{
		"path":  "no.such.path",
		"value": "x",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Errorf("code = %q", body.Error.Code)
	}
}

func TestSectionItemLifecycle(t *testing.T) {
	router := newTestRouter(t)

	seed := decodeDoc(t, doJSON(t, router, http.MethodGet, "/api/v1/cv", "s1", nil))

	added := decodeDoc(t, doJSON(t, router, http.MethodPost, "/api/v1/cv/sections/education/items", "s1", nil))
	if len(added.Education) != len(seed.Education)+1 {
		t.Fatalf("education count = %d", len(added.Education))
	}

	removed := decodeDoc(t, doJSON(t, router, http.MethodDelete, "/api/v1/cv/sections/education/items/0", "s1", nil))
	if len(removed.Education) != len(seed.Education) {
		t.Errorf("education count after remove = %d", len(removed.Education))
	}
}

func TestUnknownSectionRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cv/sections/hobbies/items", "s1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSkillLifecycle(t *testing.T) {
	router := newTestRouter(t)

	seed := decodeDoc(t, doJSON(t, router, http.MethodGet, "/api/v1/cv", "s1", nil))
	before := len(seed.Skills[0].Skills)

	added := decodeDoc(t, doJSON(t, router, http.MethodPost, "/api/v1/cv/sections/skills/items/0/skills", "s1", nil))
	if got := len(added.Skills[0].Skills); got != before+1 {
		t.Fatalf("skill count = %d, want %d", got, before+1)
	}

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/cv/sections/skills/items/0/skills/0", "s1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := len(decodeDoc(t, rec).Skills[0].Skills); got != before {
		t.Errorf("skill count after remove = %d, want %d", got, before)
	}
}

func TestSkillRoutesRequireSkillsSection(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cv/sections/education/items/0/skills", "s1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReplaceDocument(t *testing.T) {
	router := newTestRouter(t)

	doc := cv.Document{Name: "REPLACED", Title: "Engineer"}
	rec := doJSON(t, router, http.MethodPut, "/api/v1/cv", "s1", doc)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	got := decodeDoc(t, rec)
	if got.Name != "REPLACED" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Experience == nil {
		t.Error("sections not normalized on replace")
	}
}

func TestImportWithoutLLMKeyReturns503(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/import", "s1", map[string]any{"text": "some resume"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestImportEmptyTextRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/import", "s1", map[string]any{"text": "   "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
