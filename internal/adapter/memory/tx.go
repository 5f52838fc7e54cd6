package memory

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
	"adsmarket/internal/core/query"
)

var errReadOnly = errors.New("memory: write in read-only transaction")

type tx struct {
	state    state
	readOnly bool

	writes   []ref
	base     map[ref]int64
	inserted map[ref]bool
}

func (t *tx) GetCampaign(_ context.Context, id uuid.UUID) (domain.Campaign, error) {
	c, ok := t.state.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.NotFound(domain.EntityCampaign, id)
	}
	return cloneCampaign(c), nil
}

func (t *tx) GetPlatform(_ context.Context, id uuid.UUID) (domain.Platform, error) {
	p, ok := t.state.platforms[id]
	if !ok {
		return domain.Platform{}, domain.NotFound(domain.EntityPlatform, id)
	}
	return clonePlatform(p), nil
}

func (t *tx) GetPlacement(_ context.Context, id uuid.UUID) (domain.Placement, error) {
	p, ok := t.state.placements[id]
	if !ok {
		return domain.Placement{}, domain.NotFound(domain.EntityPlacement, id)
	}
	return p, nil
}

func (t *tx) FindPlacement(_ context.Context, key domain.BookingKey) (domain.Placement, bool, error) {
	key = key.Normalize()
	for _, p := range t.state.placements {
		if p.Key() == key {
			return p, true, nil
		}
	}
	return domain.Placement{}, false, nil
}

func (t *tx) CountPlacements(_ context.Context, scope port.PlacementScope) (int64, error) {
	var n int64
	for _, p := range t.state.placements {
		if scope.CampaignID != uuid.Nil && p.CampaignID != scope.CampaignID {
			continue
		}
		if scope.PlatformID != uuid.Nil && p.PlatformID != scope.PlatformID {
			continue
		}
		if scope.Status != "" && p.Status != scope.Status {
			continue
		}
		n++
	}
	return n, nil
}

func (t *tx) PlatformURLTaken(_ context.Context, url string, exclude uuid.UUID) (bool, error) {
	return urlTaken(t.state.platforms, url, exclude), nil
}

func (t *tx) ListCampaigns(_ context.Context, q query.Query) ([]domain.Campaign, error) {
	rows := t.campaignRows(q)
	slices.SortFunc(rows, func(a, b campaignRow) int { return q.Cmp(a, b) })
	out := make([]domain.Campaign, 0, len(rows))
	for _, r := range page(rows, q) {
		out = append(out, cloneCampaign(r.Campaign))
	}
	return out, nil
}

func (t *tx) CountCampaigns(_ context.Context, q query.Query) (int64, error) {
	return int64(len(t.campaignRows(q))), nil
}

func (t *tx) campaignRows(q query.Query) []campaignRow {
	var rows []campaignRow
	for _, c := range t.state.campaigns {
		if r := (campaignRow{c}); !c.Deleted() && q.Matches(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

func (t *tx) ListPlatforms(_ context.Context, q query.Query) ([]domain.Platform, error) {
	rows := t.platformRows(q)
	slices.SortFunc(rows, func(a, b platformRow) int { return q.Cmp(a, b) })
	out := make([]domain.Platform, 0, len(rows))
	for _, r := range page(rows, q) {
		out = append(out, clonePlatform(r.Platform))
	}
	return out, nil
}

func (t *tx) CountPlatforms(_ context.Context, q query.Query) (int64, error) {
	return int64(len(t.platformRows(q))), nil
}

func (t *tx) platformRows(q query.Query) []platformRow {
	var rows []platformRow
	for _, p := range t.state.platforms {
		if r := (platformRow{p}); !p.Deleted() && q.Matches(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

func (t *tx) ListPlacements(_ context.Context, q query.Query) ([]domain.Placement, error) {
	rows := t.placementRows(q)
	slices.SortFunc(rows, func(a, b placementRow) int { return q.Cmp(a, b) })
	out := make([]domain.Placement, 0, len(rows))
	for _, r := range page(rows, q) {
		out = append(out, r.Placement)
	}
	return out, nil
}

func (t *tx) CountPlacementsMatching(_ context.Context, q query.Query) (int64, error) {
	return int64(len(t.placementRows(q))), nil
}

func (t *tx) placementRows(q query.Query) []placementRow {
	var rows []placementRow
	for _, p := range t.state.placements {
		if r := (placementRow{p}); q.Matches(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

func page[T any](rows []T, q query.Query) []T {
	if q.Offset >= len(rows) {
		return nil
	}
	end := len(rows)
	if q.Limit > 0 && q.Offset+q.Limit < end {
		end = q.Offset + q.Limit
	}
	return rows[q.Offset:end]
}

func (t *tx) InsertCampaign(_ context.Context, c *domain.Campaign) error {
	r := ref{domain.EntityCampaign, c.ID}
	if err := t.beginInsert(r, t.hasCampaign(c.ID)); err != nil {
		return err
	}
	c.Version = 1
	t.state.campaigns[c.ID] = cloneCampaign(*c)
	return nil
}

func (t *tx) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	cur, ok := t.state.campaigns[c.ID]
	if err := t.beginUpdate(ref{domain.EntityCampaign, c.ID}, ok, cur.Version, c.Version); err != nil {
		return err
	}
	c.Version++
	t.state.campaigns[c.ID] = cloneCampaign(*c)
	return nil
}

func (t *tx) InsertPlatform(_ context.Context, p *domain.Platform) error {
	r := ref{domain.EntityPlatform, p.ID}
	if holdsURL(*p) && urlTaken(t.state.platforms, p.URL, p.ID) {
		return urlTakenErr(p.URL)
	}
	if err := t.beginInsert(r, t.hasPlatform(p.ID)); err != nil {
		return err
	}
	p.Version = 1
	t.state.platforms[p.ID] = clonePlatform(*p)
	return nil
}

func (t *tx) UpdatePlatform(_ context.Context, p *domain.Platform) error {
	cur, ok := t.state.platforms[p.ID]
	if holdsURL(*p) && urlTaken(t.state.platforms, p.URL, p.ID) {
		return urlTakenErr(p.URL)
	}
	if err := t.beginUpdate(ref{domain.EntityPlatform, p.ID}, ok, cur.Version, p.Version); err != nil {
		return err
	}
	p.Version++
	t.state.platforms[p.ID] = clonePlatform(*p)
	return nil
}

func (t *tx) InsertPlacement(ctx context.Context, p *domain.Placement) error {
	if _, dup, _ := t.FindPlacement(ctx, p.Key()); dup {
		return domain.DuplicateBooking(nil)
	}
	r := ref{domain.EntityPlacement, p.ID}
	_, exists := t.state.placements[p.ID]
	if err := t.beginInsert(r, exists); err != nil {
		return err
	}
	p.Version = 1
	t.state.placements[p.ID] = *p
	return nil
}

func (t *tx) UpdatePlacement(_ context.Context, p *domain.Placement) error {
	cur, ok := t.state.placements[p.ID]
	if cur.Key() != p.Key() && ok {
		return domain.Validation("PLACEMENT_KEY_IMMUTABLE", "placement booking window cannot change")
	}
	if err := t.beginUpdate(ref{domain.EntityPlacement, p.ID}, ok, cur.Version, p.Version); err != nil {
		return err
	}
	p.Version++
	t.state.placements[p.ID] = *p
	return nil
}

func (t *tx) hasCampaign(id uuid.UUID) bool { _, ok := t.state.campaigns[id]; return ok }
func (t *tx) hasPlatform(id uuid.UUID) bool { _, ok := t.state.platforms[id]; return ok }

func (t *tx) beginInsert(r ref, exists bool) error {
	if t.readOnly {
		return errReadOnly
	}
	if r.id == uuid.Nil {
		return domain.Validation("ID_REQUIRED", "%s id is required", r.kind)
	}
	if exists {
		return domain.Validation("ID_TAKEN", "%s %s already exists", r.kind, r.id)
	}
	t.inserted[r] = true
	t.writes = append(t.writes, r)
	return nil
}

// beginUpdate records the snapshot version the first time an entity is
// written so commit can detect concurrent writers.
func (t *tx) beginUpdate(r ref, exists bool, current, expected int64) error {
	if t.readOnly {
		return errReadOnly
	}
	if !exists {
		return domain.NotFound(r.kind, r.id)
	}
	if current != expected {
		return domain.ConcurrentModification(r.kind, r.id, nil)
	}
	if t.inserted[r] {
		return nil
	}
	if _, seen := t.base[r]; !seen {
		t.base[r] = current
		t.writes = append(t.writes, r)
	}
	return nil
}

func cloneCampaign(c domain.Campaign) domain.Campaign {
	c.Targeting = c.Targeting.Clone()
	return c
}

func clonePlatform(p domain.Platform) domain.Platform {
	p.Demographics = p.Demographics.Clone()
	return p
}
