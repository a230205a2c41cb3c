package cv

import "sync"

// MemoryRepo is an in-memory Repo keyed by session ID.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewMemoryRepo creates an empty in-memory repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{docs: make(map[string]Document)}
}

// Get returns the stored document for the session, or ErrNotFound.
func (r *MemoryRepo) Get(sessionID string) (Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[sessionID]
	if !ok {
		return Document{}, ErrNotFound
	}
	return doc.Clone(), nil
}

// Put stores the document for the session, replacing any previous state.
func (r *MemoryRepo) Put(sessionID string, doc Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[sessionID] = doc.Clone()
	return nil
}
