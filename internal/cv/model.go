package cv

import "encoding/json"

// Contact groups the ways to reach the CV owner.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// Language is a spoken language with an icon (flag URL) and a 0-100
// proficiency used to size the bar in rendered output.
type Language struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Icon        string `json:"icon"`
	Proficiency int    `json:"proficiency"`
}

// SkillCategory is a named group of skill labels.
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Certification is a credential with an optional verification link.
type Certification struct {
	Name    string `json:"name"`
	Link    string `json:"link"`
	LogoURL string `json:"logoUrl"`
}

// Education is one degree entry.
type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Period     string `json:"period"`
	Thesis     string `json:"thesis"`
}

// Experience is one work history entry. Description lines may carry
// <strong> markup that templates render verbatim. IsLogoLoading is a
// transient UI flag and never makes it into exported output. It serializes
// even when false so its dotted path always resolves.
type Experience struct {
	Role          string   `json:"role"`
	Company       string   `json:"company"`
	Period        string   `json:"period"`
	Location      string   `json:"location"`
	Description   []string `json:"description"`
	LogoURL       string   `json:"logoUrl"`
	IsLogoLoading bool     `json:"isLogoLoading"`
}

// Document is the full CV state for one editing session.
type Document struct {
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Contact        Contact         `json:"contact"`
	Summary        string          `json:"summary"`
	Languages      []Language      `json:"languages"`
	Skills         []SkillCategory `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
}

// Normalize replaces nil slices with empty ones so JSON output is stable
// and section operations never have to nil-check.
func (d *Document) Normalize() {
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	if d.Skills == nil {
		d.Skills = []SkillCategory{}
	}
	for i := range d.Skills {
		if d.Skills[i].Skills == nil {
			d.Skills[i].Skills = []string{}
		}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	for i := range d.Experience {
		if d.Experience[i].Description == nil {
			d.Experience[i].Description = []string{}
		}
	}
}

// Clone deep-copies the document through its JSON form.
func (d Document) Clone() Document {
	raw, err := json.Marshal(d)
	if err != nil {
		return d
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return d
	}
	return out
}
