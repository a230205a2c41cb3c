package cv

// Repo stores one document per editing session.
type Repo interface {
	Get(sessionID string) (Document, error)
	Put(sessionID string, doc Document) error
}
