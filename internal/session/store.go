package session

import "sync"

// Store holds the current worksheet. Abstracted for testability (DIP).
type Store interface {
	// Load returns a copy of the current worksheet.
	Load() Worksheet
	// Update applies fn to the worksheet atomically and returns a copy
	// of the result.
	Update(fn func(w *Worksheet)) Worksheet
	// Reset restores the default worksheet.
	Reset() Worksheet
}

// MemoryStore implements Store in process memory. It is safe for
// concurrent use; MCP requests may be handled in parallel.
type MemoryStore struct {
	mu sync.Mutex
	ws Worksheet
}

// NewMemoryStore creates a store holding an empty worksheet.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ws: NewWorksheet()}
}

// Load returns a copy of the current worksheet.
func (s *MemoryStore) Load() Worksheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.clone()
}

// Update mutates the worksheet under the lock. Readers never observe a
// half-applied change.
func (s *MemoryStore) Update(fn func(w *Worksheet)) Worksheet {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.ws.clone()
	fn(&next)
	s.ws = next
	return s.ws.clone()
}

// Reset restores the default worksheet.
func (s *MemoryStore) Reset() Worksheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ws = NewWorksheet()
	return s.ws.clone()
}
