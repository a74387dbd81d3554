package pos

import "sync"

// Store keeps one cart per operator session, in memory. The application
// assumes a single operator per session, so last-writer-wins on the two
// session flags is acceptable and no per-cart locking is needed beyond
// the map guard.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Cart returns the session's cart, creating an empty one on first use
func (s *Store) Cart(sessionKey string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionKey]
	if !ok {
		cart = NewCart()
		s.carts[sessionKey] = cart
	}
	return cart
}

// Drop discards the session's cart entirely, e.g. on logout
func (s *Store) Drop(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionKey)
}
