package viewport

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Wthomas48/smart-deals-iq-sub002/hostenv"
)

// Store owns the current viewport dimensions and fans change notifications
// out to subscribers. It replaces the original app's module-level mutable
// viewport: every consumer holds a *Store handle instead of reading a
// global, and teardown is the disposer returned by Subscribe.
//
// Writes are expected from a single host-event goroutine; reads may come
// from anywhere. Classification itself never blocks: Set does O(subscribers)
// work and no I/O.
type Store struct {
	mu   sync.RWMutex
	dims Dimensions
	host hostenv.Flags

	subs  map[uuid.UUID]func(Info)
	order []uuid.UUID
}

// NewStore creates a store seeded with initial dimensions and host flags.
// The initial pair is canonicalized the same way later writes are.
func NewStore(initial Dimensions, host hostenv.Flags) *Store {
	return &Store{
		dims: initial.Canonical(),
		host: host,
		subs: make(map[uuid.UUID]func(Info)),
	}
}

// Set replaces the current dimensions and notifies every active subscriber
// with the freshly resolved Info. Each delivered pair fully supersedes the
// previous one; there is no merging, deduplication or debouncing. Every
// call produces one notification, even if the pair is unchanged.
func (s *Store) Set(d Dimensions) {
	s.mu.Lock()
	s.dims = d.Canonical()
	s.mu.Unlock()

	s.notify()
}

// SetHostFlags replaces the host flags and notifies subscribers. Outside of
// the inspector's simulation overrides the flags never change after startup.
func (s *Store) SetHostFlags(host hostenv.Flags) {
	s.mu.Lock()
	s.host = host
	s.mu.Unlock()

	s.notify()
}

// Dimensions returns the currently stored pair.
func (s *Store) Dimensions() Dimensions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dims
}

// HostFlags returns the currently stored host flags.
func (s *Store) HostFlags() hostenv.Flags {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.host
}

// Info resolves the classification for the current dimensions. Recomputed on
// every call; there is no cached snapshot to go stale.
func (s *Store) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Resolve(s.dims, s.host)
}

// Subscribe registers fn to be called on every dimension or host-flag change
// and returns an idempotent disposer. fn runs on the goroutine that called
// Set, in subscription order relative to other subscribers. Subscribers may
// call back into the store, including cancelling themselves.
func (s *Store) Subscribe(fn func(Info)) (cancel func()) {
	id := uuid.New()

	s.mu.Lock()
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, o := range s.order {
			if o == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// notify delivers the current Info to the subscribers that are still active
// when their turn comes. The subscriber list is snapshotted outside the
// callbacks, and each id is re-checked before its call so a subscriber
// cancelled mid-pass receives nothing further.
func (s *Store) notify() {
	s.mu.RLock()
	info := Resolve(s.dims, s.host)
	ids := make([]uuid.UUID, len(s.order))
	copy(ids, s.order)
	s.mu.RUnlock()

	for _, id := range ids {
		s.mu.RLock()
		fn, ok := s.subs[id]
		s.mu.RUnlock()
		if ok {
			fn(info)
		}
	}
}
