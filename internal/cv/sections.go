package cv

import "fmt"

// Section names one of the list-shaped parts of the document.
type Section string

const (
	SectionLanguages      Section = "languages"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionEducation      Section = "education"
	SectionExperience     Section = "experience"
)

// ParseSection validates a section name from a request path.
func ParseSection(raw string) (Section, error) {
	switch Section(raw) {
	case SectionLanguages, SectionSkills, SectionCertifications, SectionEducation, SectionExperience:
		return Section(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
}

// DefaultLanguage is the blank entry appended by "add language".
func DefaultLanguage() Language {
	return Language{Name: "New Language", Level: "A1", Proficiency: 50}
}

// DefaultSkillCategory is the blank entry appended by "add skill category".
func DefaultSkillCategory() SkillCategory {
	return SkillCategory{Name: "New Category", Skills: []string{"New Skill"}}
}

// DefaultCertification is the blank entry appended by "add certification".
func DefaultCertification() Certification {
	return Certification{Name: "New Certification"}
}

// DefaultEducation is the blank entry appended by "add education".
func DefaultEducation() Education {
	return Education{Degree: "New Degree", University: "University", Period: "Year - Year"}
}

// DefaultExperience is the blank entry appended by "add experience". The
// single empty description line gives the editor a row to type into.
func DefaultExperience() Experience {
	return Experience{
		Role:        "New Role",
		Company:     "Company",
		Period:      "Start - End",
		Location:    "Location",
		Description: []string{""},
	}
}

// AddItem appends the section's default entry and returns the updated copy.
func AddItem(doc Document, section Section) (Document, error) {
	out := doc.Clone()
	switch section {
	case SectionLanguages:
		out.Languages = append(out.Languages, DefaultLanguage())
	case SectionSkills:
		out.Skills = append(out.Skills, DefaultSkillCategory())
	case SectionCertifications:
		out.Certifications = append(out.Certifications, DefaultCertification())
	case SectionEducation:
		out.Education = append(out.Education, DefaultEducation())
	case SectionExperience:
		out.Experience = append(out.Experience, DefaultExperience())
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	out.Normalize()
	return out, nil
}

// RemoveItem deletes the entry at index from the section and returns the
// updated copy. Later entries shift down by one.
func RemoveItem(doc Document, section Section, index int) (Document, error) {
	out := doc.Clone()
	switch section {
	case SectionLanguages:
		if index < 0 || index >= len(out.Languages) {
			return Document{}, indexErr(section, index)
		}
		out.Languages = append(out.Languages[:index], out.Languages[index+1:]...)
	case SectionSkills:
		if index < 0 || index >= len(out.Skills) {
			return Document{}, indexErr(section, index)
		}
		out.Skills = append(out.Skills[:index], out.Skills[index+1:]...)
	case SectionCertifications:
		if index < 0 || index >= len(out.Certifications) {
			return Document{}, indexErr(section, index)
		}
		out.Certifications = append(out.Certifications[:index], out.Certifications[index+1:]...)
	case SectionEducation:
		if index < 0 || index >= len(out.Education) {
			return Document{}, indexErr(section, index)
		}
		out.Education = append(out.Education[:index], out.Education[index+1:]...)
	case SectionExperience:
		if index < 0 || index >= len(out.Experience) {
			return Document{}, indexErr(section, index)
		}
		out.Experience = append(out.Experience[:index], out.Experience[index+1:]...)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	out.Normalize()
	return out, nil
}

// AddSkill appends "New Skill" to the skill category at categoryIndex.
func AddSkill(doc Document, categoryIndex int) (Document, error) {
	out := doc.Clone()
	if categoryIndex < 0 || categoryIndex >= len(out.Skills) {
		return Document{}, indexErr(SectionSkills, categoryIndex)
	}
	out.Skills[categoryIndex].Skills = append(out.Skills[categoryIndex].Skills, "New Skill")
	return out, nil
}

// RemoveSkill deletes one skill label inside a category.
func RemoveSkill(doc Document, categoryIndex, skillIndex int) (Document, error) {
	out := doc.Clone()
	if categoryIndex < 0 || categoryIndex >= len(out.Skills) {
		return Document{}, indexErr(SectionSkills, categoryIndex)
	}
	skills := out.Skills[categoryIndex].Skills
	if skillIndex < 0 || skillIndex >= len(skills) {
		return Document{}, fmt.Errorf("%w: skill %d in category %d", ErrIndexOutOfRange, skillIndex, categoryIndex)
	}
	out.Skills[categoryIndex].Skills = append(skills[:skillIndex], skills[skillIndex+1:]...)
	return out, nil
}

func indexErr(section Section, index int) error {
	return fmt.Errorf("%w: %d in %s", ErrIndexOutOfRange, index, section)
}
