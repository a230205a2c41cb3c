package cv

import "errors"

// Service owns document state transitions for editing sessions.
type Service struct {
	repo Repo
}

// NewService wires the service to its repository.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Current returns the session's document, falling back to the seed when the
// session has no state yet. The seed is not persisted until the first edit,
// so untouched sessions stay free.
func (s *Service) Current(sessionID string) (Document, error) {
	doc, err := s.repo.Get(sessionID)
	if errors.Is(err, ErrNotFound) {
		return Seed(), nil
	}
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Replace swaps the whole document, normalizing list fields first.
func (s *Service) Replace(sessionID string, doc Document) (Document, error) {
	doc.Normalize()
	if err := s.repo.Put(sessionID, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// SetField applies one dotted-path mutation and persists the result.
func (s *Service) SetField(sessionID, path string, value any) (Document, error) {
	doc, err := s.Current(sessionID)
	if err != nil {
		return Document{}, err
	}
	updated, err := SetByPath(doc, path, value)
	if err != nil {
		return Document{}, err
	}
	return s.Replace(sessionID, updated)
}

// AddSectionItem appends the default entry to a section.
func (s *Service) AddSectionItem(sessionID string, section Section) (Document, error) {
	doc, err := s.Current(sessionID)
	if err != nil {
		return Document{}, err
	}
	updated, err := AddItem(doc, section)
	if err != nil {
		return Document{}, err
	}
	return s.Replace(sessionID, updated)
}

// RemoveSectionItem deletes one entry from a section.
func (s *Service) RemoveSectionItem(sessionID string, section Section, index int) (Document, error) {
	doc, err := s.Current(sessionID)
	if err != nil {
		return Document{}, err
	}
	updated, err := RemoveItem(doc, section, index)
	if err != nil {
		return Document{}, err
	}
	return s.Replace(sessionID, updated)
}

// AddSkillItem appends a skill label to a skill category.
func (s *Service) AddSkillItem(sessionID string, categoryIndex int) (Document, error) {
	doc, err := s.Current(sessionID)
	if err != nil {
		return Document{}, err
	}
	updated, err := AddSkill(doc, categoryIndex)
	if err != nil {
		return Document{}, err
	}
	return s.Replace(sessionID, updated)
}

// RemoveSkillItem deletes a skill label from a skill category.
func (s *Service) RemoveSkillItem(sessionID string, categoryIndex, skillIndex int) (Document, error) {
	doc, err := s.Current(sessionID)
	if err != nil {
		return Document{}, err
	}
	updated, err := RemoveSkill(doc, categoryIndex, skillIndex)
	if err != nil {
		return Document{}, err
	}
	return s.Replace(sessionID, updated)
}
