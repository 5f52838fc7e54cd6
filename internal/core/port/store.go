package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/query"
)

// Store is the transactional entity store. It is an outbound port;
// implementations must be safe for concurrent use and translate driver
// failures into domain errors:
//
//   - a lost optimistic version check  -> domain.ErrConcurrentModification
//   - a placement booking key conflict -> domain.ErrDuplicateBooking
//   - timeouts and connection failures -> domain.ErrStorageUnavailable
type Store interface {
	// Transact runs fn inside one read-write transaction bounded by the
	// store's timeout. Effects commit only when fn returns nil.
	Transact(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// View runs fn inside one read-only snapshot, so a listing and its total
	// count see the same data.
	View(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}

// PlacementScope narrows a placement count. Zero fields match anything.
type PlacementScope struct {
	CampaignID uuid.UUID
	PlatformID uuid.UUID
	Status     domain.PlacementStatus
}

// ReadTx is the read side of a transaction.
type ReadTx interface {
	GetCampaign(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
	GetPlatform(ctx context.Context, id uuid.UUID) (domain.Platform, error)
	GetPlacement(ctx context.Context, id uuid.UUID) (domain.Placement, error)

	// FindPlacement looks a placement up by its booking key.
	FindPlacement(ctx context.Context, key domain.BookingKey) (domain.Placement, bool, error)
	// CountPlacements counts placements in scope.
	CountPlacements(ctx context.Context, scope PlacementScope) (int64, error)
	// PlatformURLTaken reports whether a non-archived platform other than
	// exclude already uses url.
	PlatformURLTaken(ctx context.Context, url string, exclude uuid.UUID) (bool, error)

	// List* return one page; Count* return the total under the same
	// predicates. Soft-deleted campaigns and platforms are never listed.
	ListCampaigns(ctx context.Context, q query.Query) ([]domain.Campaign, error)
	CountCampaigns(ctx context.Context, q query.Query) (int64, error)
	ListPlatforms(ctx context.Context, q query.Query) ([]domain.Platform, error)
	CountPlatforms(ctx context.Context, q query.Query) (int64, error)
	ListPlacements(ctx context.Context, q query.Query) ([]domain.Placement, error)
	CountPlacementsMatching(ctx context.Context, q query.Query) (int64, error)
}

// Tx is a read-write transaction. Insert* set Version to 1. Update* succeed
// only when the stored version equals the entity's Version, and increment it.
type Tx interface {
	ReadTx

	InsertCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	InsertPlatform(ctx context.Context, p *domain.Platform) error
	UpdatePlatform(ctx context.Context, p *domain.Platform) error
	InsertPlacement(ctx context.Context, p *domain.Placement) error
	UpdatePlacement(ctx context.Context, p *domain.Placement) error
}

// Clock abstracts time so lifecycle rules can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
