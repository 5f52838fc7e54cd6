// Package memory provides an in-process implementation of port.Store. Each
// transaction works on a private snapshot of the committed state; commit
// re-checks unique keys and optimistic versions against the latest state
// under a short write lock, so concurrent transactions behave like the
// PostgreSQL store: the loser of a race gets ConcurrentModification or
// DuplicateBooking instead of silently overwriting.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

var _ port.Store = (*Store)(nil)

// Store is a transactional, versioned in-memory entity store.
type Store struct {
	mu      sync.RWMutex
	state   state
	timeout time.Duration
}

// NewStore returns an empty store. timeout bounds each transaction; zero
// disables the bound.
func NewStore(timeout time.Duration) *Store {
	return &Store{state: newState(), timeout: timeout}
}

type state struct {
	campaigns  map[uuid.UUID]domain.Campaign
	platforms  map[uuid.UUID]domain.Platform
	placements map[uuid.UUID]domain.Placement
}

func newState() state {
	return state{
		campaigns:  map[uuid.UUID]domain.Campaign{},
		platforms:  map[uuid.UUID]domain.Platform{},
		placements: map[uuid.UUID]domain.Placement{},
	}
}

// clone copies the maps. Entity values are copied on write by the tx, and
// their slice fields are cloned on the way in and out, so sharing values
// between snapshots is safe.
func (s state) clone() state {
	return state{
		campaigns:  maps.Clone(s.campaigns),
		platforms:  maps.Clone(s.platforms),
		placements: maps.Clone(s.placements),
	}
}

type ref struct {
	kind domain.EntityKind
	id   uuid.UUID
}

// Transact runs fn against a private snapshot and commits its writes.
func (s *Store) Transact(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	s.mu.RLock()
	t := &tx{state: s.state.clone(), base: map[ref]int64{}, inserted: map[ref]bool{}}
	s.mu.RUnlock()

	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return domain.StorageUnavailable(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(t); err != nil {
		return err
	}
	s.apply(t)
	return nil
}

// View runs fn against a consistent snapshot.
func (s *Store) View(ctx context.Context, fn func(ctx context.Context, tx port.ReadTx) error) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	s.mu.RLock()
	t := &tx{state: s.state.clone(), readOnly: true}
	s.mu.RUnlock()

	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return domain.StorageUnavailable(err)
	}
	return nil
}

func (s *Store) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// check validates t's writes against the committed state. Unique keys are
// checked before versions so a racing duplicate booking is reported as such.
func (s *Store) check(t *tx) error {
	for _, r := range t.writes {
		switch r.kind {
		case domain.EntityPlacement:
			if !t.inserted[r] {
				continue
			}
			p := t.state.placements[r.id]
			if _, exists := s.state.placements[r.id]; exists {
				return fmt.Errorf("insert placement %s: id already exists", r.id)
			}
			key := p.Key()
			for _, other := range s.state.placements {
				if other.Key() == key {
					return domain.DuplicateBooking(nil)
				}
			}
		case domain.EntityPlatform:
			p := t.state.platforms[r.id]
			if t.inserted[r] {
				if _, exists := s.state.platforms[r.id]; exists {
					return fmt.Errorf("insert platform %s: id already exists", r.id)
				}
			}
			if urlTaken(s.state.platforms, p.URL, p.ID) && holdsURL(p) {
				return urlTakenErr(p.URL)
			}
		case domain.EntityCampaign:
			if t.inserted[r] {
				if _, exists := s.state.campaigns[r.id]; exists {
					return fmt.Errorf("insert campaign %s: id already exists", r.id)
				}
			}
		}
	}

	for _, r := range t.writes {
		if t.inserted[r] {
			continue
		}
		var current int64
		switch r.kind {
		case domain.EntityCampaign:
			current = s.state.campaigns[r.id].Version
		case domain.EntityPlatform:
			current = s.state.platforms[r.id].Version
		case domain.EntityPlacement:
			current = s.state.placements[r.id].Version
		}
		if current != t.base[r] {
			return domain.ConcurrentModification(r.kind, r.id, nil)
		}
	}
	return nil
}

func (s *Store) apply(t *tx) {
	for _, r := range t.writes {
		switch r.kind {
		case domain.EntityCampaign:
			s.state.campaigns[r.id] = t.state.campaigns[r.id]
		case domain.EntityPlatform:
			s.state.platforms[r.id] = t.state.platforms[r.id]
		case domain.EntityPlacement:
			s.state.placements[r.id] = t.state.placements[r.id]
		}
	}
}

func holdsURL(p domain.Platform) bool {
	return !p.Deleted() && p.Status != domain.PlatformArchived
}

func urlTaken(platforms map[uuid.UUID]domain.Platform, url string, exclude uuid.UUID) bool {
	for id, p := range platforms {
		if id != exclude && p.URL == url && holdsURL(p) {
			return true
		}
	}
	return false
}

func urlTakenErr(url string) error {
	return domain.Validation("PLATFORM_URL_TAKEN", "platform url %q is already registered", url)
}
