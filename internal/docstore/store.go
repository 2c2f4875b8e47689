package docstore

import "sync"

// Document is one stored piece of generated markdown.
type Document struct {
	ID      string
	Content string
}

// Store maps document ids to content. Enumeration follows first-insertion
// order; overwriting an id keeps its position.
type Store struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{docs: make(map[string]string)}
}

// Put inserts or overwrites the document with the given id.
func (s *Store) Put(id, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[id]; !exists {
		s.order = append(s.order, id)
	}
	s.docs[id] = content
}

// Get returns the document with the given id.
func (s *Store) Get(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.docs[id]
	return content, ok
}

// List returns a snapshot of every document.
func (s *Store) List() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Document{ID: id, Content: s.docs[id]})
	}
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
