package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
	"adsmarket/internal/core/query"
)

// CreatePlacement books a campaign onto a platform for a date range. The
// placement insert runs before the counter updates so a racing duplicate
// fails on the booking key first.
func (m *Marketplace) CreatePlacement(ctx context.Context, p domain.Principal, in port.CreatePlacementInput) (pl domain.Placement, err error) {
	ctx, end := m.span(ctx, "Marketplace.CreatePlacement", p,
		idAttr("campaign.id", in.CampaignID), idAttr("platform.id", in.PlatformID))
	defer end(&err)

	if err = requireIdentity(p); err != nil {
		return domain.Placement{}, err
	}
	now := m.clock.Now()
	pl = domain.Placement{
		ID:            uuid.New(),
		CampaignID:    in.CampaignID,
		PlatformID:    in.PlatformID,
		CreatedBy:     p.ID,
		Status:        domain.PlacementPending,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		AgreedPrice:   in.AgreedPrice,
		PaymentStatus: domain.PaymentPending,
		PaidAmount:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	key := pl.Key()
	pl.StartDate, pl.EndDate = key.StartDate, key.EndDate

	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		if err := m.booking.ValidateNewPlacement(ctx, tx, pl.CampaignID, pl.PlatformID, pl.StartDate, pl.EndDate); err != nil {
			return err
		}
		if err := pl.Validate(); err != nil {
			return err
		}
		c, err := tx.GetCampaign(ctx, pl.CampaignID)
		if err != nil {
			return err
		}
		if !m.booking.CanEdit(p, c.OwnerID) {
			return domain.Unauthorized("principal %s may not book campaign %s", p.ID, c.ID)
		}
		platform, err := tx.GetPlatform(ctx, pl.PlatformID)
		if err != nil {
			return err
		}
		if err = m.booking.CheckBookable(c, platform, pl.StartDate, pl.EndDate, pl.AgreedPrice); err != nil {
			return err
		}
		if err = tx.InsertPlacement(ctx, &pl); err != nil {
			return err
		}
		return m.counters.PlacementInserted(ctx, tx, pl, now)
	})
	if err != nil {
		return domain.Placement{}, err
	}
	m.log.InfoContext(ctx, "placement booked",
		slog.String("placement_id", pl.ID.String()),
		slog.String("campaign_id", pl.CampaignID.String()),
		slog.String("platform_id", pl.PlatformID.String()))
	return pl, nil
}

// TransitionPlacementStatus moves a placement along its state machine and
// recounts the parents' counters in the same transaction.
func (m *Marketplace) TransitionPlacementStatus(ctx context.Context, p domain.Principal, id uuid.UUID, in port.StatusChange[domain.PlacementStatus]) (pl domain.Placement, err error) {
	ctx, end := m.span(ctx, "Marketplace.TransitionPlacementStatus", p, idAttr("placement.id", id), attribute.String("to", string(in.Status)))
	defer end(&err)

	var from domain.PlacementStatus
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetPlacement(ctx, id)
		if err != nil {
			return err
		}
		platform, err := tx.GetPlatform(ctx, cur.PlatformID)
		if err != nil {
			return err
		}
		if !m.booking.CanActOnPlacement(p, cur, platform.OwnerID, in.Status) {
			return domain.Unauthorized("principal %s may not move placement %s to %q", p.ID, id, in.Status)
		}
		if err = checkVersion(domain.EntityPlacement, id, cur.Version, in.Version); err != nil {
			return err
		}
		now := m.clock.Now()
		next, err := cur.Transition(in.Status, now)
		if err != nil {
			return err
		}
		next.UpdatedAt = now
		if err = tx.UpdatePlacement(ctx, &next); err != nil {
			return err
		}
		if err = m.counters.PlacementStatusChanged(ctx, tx, next); err != nil {
			return err
		}
		from, pl = cur.Status, next
		return nil
	})
	if err != nil {
		return domain.Placement{}, err
	}
	m.log.InfoContext(ctx, "placement status changed",
		slog.String("placement_id", id.String()),
		slog.String("from", string(from)),
		slog.String("to", string(pl.Status)))
	return pl, nil
}

// RecordPlacementMetrics adds delivery counters reported for a placement.
// Only the platform owner or an admin reports delivery.
func (m *Marketplace) RecordPlacementMetrics(ctx context.Context, p domain.Principal, id uuid.UUID, delta domain.Metrics) (pl domain.Placement, err error) {
	ctx, end := m.span(ctx, "Marketplace.RecordPlacementMetrics", p, idAttr("placement.id", id))
	defer end(&err)

	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetPlacement(ctx, id)
		if err != nil {
			return err
		}
		platform, err := tx.GetPlatform(ctx, cur.PlatformID)
		if err != nil {
			return err
		}
		if !p.CanEdit(platform.OwnerID) {
			return domain.Unauthorized("principal %s may not report metrics for placement %s", p.ID, id)
		}
		next, err := cur.AddMetrics(delta)
		if err != nil {
			return err
		}
		next.UpdatedAt = m.clock.Now()
		if err = tx.UpdatePlacement(ctx, &next); err != nil {
			return err
		}
		pl = next
		return nil
	})
	if err != nil {
		return domain.Placement{}, err
	}
	return pl, nil
}

// RecordPlacementPayment records a payment by the booking's creator, or a
// refund by an admin.
func (m *Marketplace) RecordPlacementPayment(ctx context.Context, p domain.Principal, id uuid.UUID, in port.PaymentInput) (pl domain.Placement, err error) {
	ctx, end := m.span(ctx, "Marketplace.RecordPlacementPayment", p, idAttr("placement.id", id),
		attribute.String("amount", in.Amount.String()), attribute.Bool("refund", in.Refund))
	defer end(&err)

	if in.Refund && !p.IsAdmin {
		return domain.Placement{}, domain.Unauthorized("only admins may refund placements")
	}
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetPlacement(ctx, id)
		if err != nil {
			return err
		}
		if !p.CanEdit(cur.CreatedBy) {
			return domain.Unauthorized("principal %s may not pay placement %s", p.ID, id)
		}
		var next domain.Placement
		if in.Refund {
			next, err = cur.Refund()
		} else {
			next, err = cur.ApplyPayment(in.Amount)
		}
		if err != nil {
			return err
		}
		next.UpdatedAt = m.clock.Now()
		if err = tx.UpdatePlacement(ctx, &next); err != nil {
			return err
		}
		pl = next
		return nil
	})
	if err != nil {
		return domain.Placement{}, err
	}
	m.log.InfoContext(ctx, "placement payment recorded",
		slog.String("placement_id", id.String()),
		slog.String("payment_status", string(pl.PaymentStatus)),
		slog.String("paid_amount", pl.PaidAmount.String()))
	return pl, nil
}

// GetPlacement returns a placement to a party of the booking or to staff.
func (m *Marketplace) GetPlacement(ctx context.Context, p domain.Principal, id uuid.UUID) (pl domain.Placement, err error) {
	ctx, end := m.span(ctx, "Marketplace.GetPlacement", p, idAttr("placement.id", id))
	defer end(&err)

	err = m.store.View(ctx, func(ctx context.Context, tx port.ReadTx) error {
		if pl, err = tx.GetPlacement(ctx, id); err != nil {
			return err
		}
		if p.CanModerate() || p.CanEdit(pl.CreatedBy) {
			return nil
		}
		c, err := tx.GetCampaign(ctx, pl.CampaignID)
		if err != nil {
			return err
		}
		platform, err := tx.GetPlatform(ctx, pl.PlatformID)
		if err != nil {
			return err
		}
		if !p.CanEdit(c.OwnerID) && !p.CanEdit(platform.OwnerID) {
			return domain.NotFound(domain.EntityPlacement, id)
		}
		return nil
	})
	if err != nil {
		return domain.Placement{}, err
	}
	return pl, nil
}

// ListPlacements returns one page of placements. Callers without staff roles
// see the bookings they created, or the bookings of a platform they own when
// they filter on platform_id.
func (m *Marketplace) ListPlacements(ctx context.Context, p domain.Principal, spec query.Spec) (out query.Page[domain.Placement], err error) {
	ctx, end := m.span(ctx, "Marketplace.ListPlacements", p)
	defer end(&err)

	q, err := query.Placements.Compile(spec)
	if err != nil {
		return out, err
	}
	out = query.Page[domain.Placement]{Page: q.Page, Limit: q.Limit}
	err = m.store.View(ctx, func(ctx context.Context, tx port.ReadTx) error {
		if !p.CanModerate() {
			scoped, err := m.scopePlacements(ctx, tx, p, q)
			if err != nil {
				return err
			}
			q = scoped
		}
		if out.Items, err = tx.ListPlacements(ctx, q); err != nil {
			return err
		}
		out.Total, err = tx.CountPlacementsMatching(ctx, q)
		return err
	})
	if err != nil {
		return query.Page[domain.Placement]{}, err
	}
	return out, nil
}

func (m *Marketplace) scopePlacements(ctx context.Context, tx port.ReadTx, p domain.Principal, q query.Query) (query.Query, error) {
	for _, pr := range q.Predicates {
		if pr.Column != "platform_id" || pr.Op != query.OpEq {
			continue
		}
		platform, err := tx.GetPlatform(ctx, pr.Value.(uuid.UUID))
		if domain.KindOf(err) == domain.KindNotFound {
			break
		}
		if err != nil {
			return q, err
		}
		if p.CanEdit(platform.OwnerID) {
			return q, nil
		}
	}
	return q.With("created_by", query.KindUUID, p.ID), nil
}

// ResyncCounters recomputes the counters of a platform and of every
// campaign booked on it. Admin only.
func (m *Marketplace) ResyncCounters(ctx context.Context, p domain.Principal, platformID uuid.UUID) (pl domain.Platform, err error) {
	ctx, end := m.span(ctx, "Marketplace.ResyncCounters", p, idAttr("platform.id", platformID))
	defer end(&err)

	if !p.IsAdmin {
		return domain.Platform{}, domain.Unauthorized("only admins may resync counters")
	}
	var campaigns int
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		q := query.Query{Order: []query.OrderField{{Column: "id"}}}.With("platform_id", query.KindUUID, platformID)
		placements, err := tx.ListPlacements(ctx, q)
		if err != nil {
			return err
		}
		seen := map[uuid.UUID]bool{}
		for _, booking := range placements {
			if seen[booking.CampaignID] {
				continue
			}
			seen[booking.CampaignID] = true
			if _, err = m.counters.ResyncCampaign(ctx, tx, booking.CampaignID); err != nil {
				return err
			}
		}
		campaigns = len(seen)
		pl, err = m.counters.ResyncPlatform(ctx, tx, platformID)
		return err
	})
	if err != nil {
		return domain.Platform{}, err
	}
	m.log.InfoContext(ctx, "counters resynced",
		slog.String("platform_id", platformID.String()),
		slog.Int("campaigns", campaigns),
		slog.Int64("active_campaigns_count", pl.ActiveCampaignsCount))
	return pl, nil
}
