package extraction

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/xeipuuv/gojsonschema"

	"cv-builder-backend/internal/cv"
)

//go:embed document.schema.json
var documentSchemaJSON []byte

// documentSchema constrains Gemini's response to the CV document shape.
func documentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":    {Type: genai.TypeString, Description: "Full name in uppercase"},
			"title":   {Type: genai.TypeString, Description: "Professional title"},
			"summary": {Type: genai.TypeString},
			"contact": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"email":    {Type: genai.TypeString},
					"phone":    {Type: genai.TypeString},
					"location": {Type: genai.TypeString},
					"github":   {Type: genai.TypeString},
					"linkedin": {Type: genai.TypeString},
				},
			},
			"languages": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"level":       {Type: genai.TypeString, Description: "CEFR level or Native"},
						"icon":        {Type: genai.TypeString, Description: "Lowercase two-letter country code"},
						"proficiency": {Type: genai.TypeInteger, Description: "0-100, Native=100 C1=75 B2=55 A2=25"},
					},
				},
			},
			"skills": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":   {Type: genai.TypeString},
						"skills": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					},
				},
			},
			"certifications": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":    {Type: genai.TypeString},
						"link":    {Type: genai.TypeString},
						"logoUrl": {Type: genai.TypeString, Description: "Always empty"},
					},
				},
			},
			"education": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"degree":     {Type: genai.TypeString},
						"university": {Type: genai.TypeString},
						"period":     {Type: genai.TypeString},
						"thesis":     {Type: genai.TypeString},
					},
				},
			},
			"experience": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"role":        {Type: genai.TypeString},
						"company":     {Type: genai.TypeString},
						"period":      {Type: genai.TypeString},
						"location":    {Type: genai.TypeString},
						"description": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"logoUrl":     {Type: genai.TypeString, Description: "Always empty"},
					},
				},
			},
		},
		Required: []string{"name", "title", "contact", "summary"},
	}
}

// DecodeDocument validates raw JSON against the document schema and
// unmarshals it. Validation failures are reported as extraction errors so
// callers treat them the same as model failures.
func DecodeDocument(raw []byte) (cv.Document, error) {
	schemaLoader := gojsonschema.NewBytesLoader(documentSchemaJSON)
	docLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return cv.Document{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	if !result.Valid() {
		return cv.Document{}, fmt.Errorf("%w: %s", ErrExtraction, firstValidationError(result))
	}

	var doc cv.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return cv.Document{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	doc.Normalize()
	return doc, nil
}

func firstValidationError(result *gojsonschema.Result) string {
	for _, e := range result.Errors() {
		return e.String()
	}
	return "invalid document"
}
