package cart

import (
	"sync"

	"github.com/rs/zerolog"
)

// Store hands out the cart for a session. Each cart is private to its
// session; the store only guards its own map, carts are not shared
// between sessions.
type Store struct {
	mu     sync.RWMutex
	carts  map[string]*Cart
	logger zerolog.Logger
}

// NewStore creates an empty in-memory cart store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		carts:  make(map[string]*Cart),
		logger: logger.With().Str("component", "cart-store").Logger(),
	}
}

// Get returns the cart for sessionID, creating it on first access.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.RLock()
	c, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c = New()
	s.carts[sessionID] = c
	s.logger.Debug().Str("session_id", sessionID).Msg("cart created")
	return c
}

// Drop discards the cart for sessionID.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
