package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
	"adsmarket/internal/core/query"
)

// CounterSync maintains the denormalized counters on platforms and
// campaigns. Counters are recounted from the placements visible inside the
// caller's transaction, never incremented blindly, so they are exact at
// every commit. Writing the parent rows also bumps their versions, which
// serializes concurrent placement writes on the same platform or campaign.
type CounterSync struct{}

// PlacementInserted updates both parents after a new placement was written.
func (s CounterSync) PlacementInserted(ctx context.Context, tx port.Tx, p domain.Placement, now time.Time) error {
	pl, err := tx.GetPlatform(ctx, p.PlatformID)
	if err != nil {
		return err
	}
	pl.TotalCampaignsCount++
	t := now
	pl.LastCampaignDate = &t
	if pl.ActiveCampaignsCount, err = tx.CountPlacements(ctx, port.PlacementScope{PlatformID: p.PlatformID, Status: domain.PlacementActive}); err != nil {
		return err
	}
	if err = tx.UpdatePlatform(ctx, &pl); err != nil {
		return err
	}
	_, err = s.ResyncCampaign(ctx, tx, p.CampaignID)
	return err
}

// PlacementStatusChanged updates both parents after a placement moved.
func (s CounterSync) PlacementStatusChanged(ctx context.Context, tx port.Tx, p domain.Placement) error {
	pl, err := tx.GetPlatform(ctx, p.PlatformID)
	if err != nil {
		return err
	}
	active, err := tx.CountPlacements(ctx, port.PlacementScope{PlatformID: p.PlatformID, Status: domain.PlacementActive})
	if err != nil {
		return err
	}
	if active != pl.ActiveCampaignsCount {
		pl.ActiveCampaignsCount = active
		if err = tx.UpdatePlatform(ctx, &pl); err != nil {
			return err
		}
	}
	_, err = s.ResyncCampaign(ctx, tx, p.CampaignID)
	return err
}

// ResyncPlatform recomputes every platform counter, including the total and
// the last booking date, from scratch. It repairs drift left by writes that
// bypassed the application.
func (CounterSync) ResyncPlatform(ctx context.Context, tx port.Tx, platformID uuid.UUID) (domain.Platform, error) {
	pl, err := tx.GetPlatform(ctx, platformID)
	if err != nil {
		return domain.Platform{}, err
	}
	if pl.TotalCampaignsCount, err = tx.CountPlacements(ctx, port.PlacementScope{PlatformID: platformID}); err != nil {
		return domain.Platform{}, err
	}
	if pl.ActiveCampaignsCount, err = tx.CountPlacements(ctx, port.PlacementScope{PlatformID: platformID, Status: domain.PlacementActive}); err != nil {
		return domain.Platform{}, err
	}

	latest := query.Query{Order: []query.OrderField{{Column: "created_at", Desc: true}}, Limit: 1}.
		With("platform_id", query.KindUUID, platformID)
	recent, err := tx.ListPlacements(ctx, latest)
	if err != nil {
		return domain.Platform{}, err
	}
	pl.LastCampaignDate = nil
	if len(recent) > 0 {
		t := recent[0].CreatedAt
		pl.LastCampaignDate = &t
	}

	if err = tx.UpdatePlatform(ctx, &pl); err != nil {
		return domain.Platform{}, err
	}
	return pl, nil
}

// ResyncCampaign recounts the placement rollup of a campaign and writes it
// when it changed.
func (CounterSync) ResyncCampaign(ctx context.Context, tx port.Tx, campaignID uuid.UUID) (domain.Campaign, error) {
	c, err := tx.GetCampaign(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	total, err := tx.CountPlacements(ctx, port.PlacementScope{CampaignID: campaignID})
	if err != nil {
		return domain.Campaign{}, err
	}
	active, err := tx.CountPlacements(ctx, port.PlacementScope{CampaignID: campaignID, Status: domain.PlacementActive})
	if err != nil {
		return domain.Campaign{}, err
	}
	pending, err := tx.CountPlacements(ctx, port.PlacementScope{CampaignID: campaignID, Status: domain.PlacementPending})
	if err != nil {
		return domain.Campaign{}, err
	}
	if c.TotalPlatformsCount == total && c.ActivePlatformsCount == active && c.PendingPlatformsCount == pending {
		return c, nil
	}
	c.TotalPlatformsCount, c.ActivePlatformsCount, c.PendingPlatformsCount = total, active, pending
	if err = tx.UpdateCampaign(ctx, &c); err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}
