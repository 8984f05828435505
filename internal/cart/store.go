// internal/cart/store.go
package cart

import (
	"sync"
	"time"
)

type session struct {
	cart     *Cart
	lastSeen time.Time
}

// Store keeps one cart per authenticated user for the lifetime of
// their session. Carts are process-local and never persisted; idle
// sessions are swept out after the configured TTL, standing in for
// session expiry.
type Store struct {
	sessions map[string]*session
	mtx      sync.Mutex
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}

	go s.sweepSessions()

	return s
}

func (s *Store) sweepSessions() {
	for {
		time.Sleep(time.Minute)
		s.mtx.Lock()
		for key, sess := range s.sessions {
			if s.now().Sub(sess.lastSeen) > s.ttl {
				delete(s.sessions, key)
			}
		}
		s.mtx.Unlock()
	}
}

// Get returns the cart for key, creating an empty one on first use.
func (s *Store) Get(key string) *Cart {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess, exists := s.sessions[key]
	if !exists {
		sess = &session{cart: New()}
		s.sessions[key] = sess
	}
	sess.lastSeen = s.now()
	return sess.cart
}

// Update runs fn against the cart for key under the store lock.
func (s *Store) Update(key string, fn func(*Cart)) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess, exists := s.sessions[key]
	if !exists {
		sess = &session{cart: New()}
		s.sessions[key] = sess
	}
	sess.lastSeen = s.now()
	fn(sess.cart)
}

// Discard drops the cart for key, called after checkout.
func (s *Store) Discard(key string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.sessions, key)
}
