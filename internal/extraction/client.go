// Package extraction turns raw resume text into a structured CV document
// using an LLM with a constrained JSON response schema. The same client
// doubles as an OCR engine for scanned resume pages.
package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"cv-builder-backend/internal/cv"
)

// ErrNotConfigured means no LLM credentials were provided.
var ErrNotConfigured = errors.New("extraction: no API key configured")

// ErrExtraction wraps model and decoding failures during parsing.
var ErrExtraction = errors.New("extraction: failed to parse resume")

// Extractor converts resume text into a structured document.
type Extractor interface {
	ParseResume(ctx context.Context, text string) (cv.Document, error)
}

// Placeholder stands in when no API key is configured. Every call fails
// with ErrNotConfigured so handlers can answer with a clear status.
type Placeholder struct{}

func (Placeholder) ParseResume(ctx context.Context, text string) (cv.Document, error) {
	return cv.Document{}, ErrNotConfigured
}

func (Placeholder) Recognize(ctx context.Context, image []byte) (string, error) {
	return "", ErrNotConfigured
}

// GeminiExtractor calls the Gemini API with a response schema that mirrors
// the document model, so the model returns JSON we can decode directly.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates a client for the given API key and model name.
func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("extraction: create client: %w", err)
	}
	return &GeminiExtractor{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (g *GeminiExtractor) Close() error {
	return g.client.Close()
}

// ParseResume submits the resume text with the document schema attached and
// decodes the structured response. The raw model output is validated
// against the JSON schema before it is accepted.
func (g *GeminiExtractor) ParseResume(ctx context.Context, text string) (cv.Document, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = documentSchema()

	prompt := buildPrompt(text)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return cv.Document{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	raw := responseText(resp)
	if raw == "" {
		return cv.Document{}, fmt.Errorf("%w: empty response", ErrExtraction)
	}

	return DecodeDocument([]byte(cleanJSONBlock(raw)))
}

// Recognize extracts plain text from a rendered resume page image.
func (g *GeminiExtractor) Recognize(ctx context.Context, image []byte) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0)

	resp, err := model.GenerateContent(ctx,
		genai.Text("Transcribe all text from this resume page. Return only the text, preserving reading order."),
		genai.ImageData("png", image),
	)
	if err != nil {
		return "", fmt.Errorf("extraction: ocr: %w", err)
	}
	return responseText(resp), nil
}

func buildPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Parse the resume below into the structured CV format.\n")
	b.WriteString("Rules:\n")
	b.WriteString("- For each spoken language, set icon to the lowercase two-letter country code best matching the language (e.g. it, gb, es, de).\n")
	b.WriteString("- Map language proficiency to a 0-100 number: Native=100, C1=75, B2=55, A2=25; interpolate other levels.\n")
	b.WriteString("- Wrap the most important technologies and achievements in <strong> tags inside skills and experience description lines.\n")
	b.WriteString("- Group skills into a few named categories.\n")
	b.WriteString("- Leave logoUrl fields empty.\n")
	b.WriteString("- Omit nothing that is present in the resume; invent nothing that is not.\n\n")
	b.WriteString("Resume:\n")
	b.WriteString(text)
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// cleanJSONBlock strips markdown code fences some models wrap around JSON.
func cleanJSONBlock(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
