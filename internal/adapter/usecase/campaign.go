package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
	"adsmarket/internal/core/query"
)

// CreateCampaign creates a draft campaign owned by the caller.
func (m *Marketplace) CreateCampaign(ctx context.Context, p domain.Principal, in port.CreateCampaignInput) (c domain.Campaign, err error) {
	ctx, end := m.span(ctx, "Marketplace.CreateCampaign", p)
	defer end(&err)

	if err = requireIdentity(p); err != nil {
		return domain.Campaign{}, err
	}
	now := m.clock.Now()
	c = domain.Campaign{
		ID:             uuid.New(),
		OwnerID:        p.ID,
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		Objective:      in.Objective,
		BudgetTotal:    in.BudgetTotal,
		BudgetSpent:    decimal.Zero,
		Currency:       in.Currency,
		StartDate:      in.StartDate.UTC(),
		EndDate:        in.EndDate.UTC(),
		Status:         domain.CampaignDraft,
		ApprovalStatus: domain.ApprovalPending,
		Visibility:     in.Visibility,
		Targeting:      in.Targeting.Clone(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if c.Currency == "" {
		c.Currency = domain.DefaultCurrency
	}
	if c.Visibility == "" {
		c.Visibility = domain.VisibilityPublic
	}
	if err = c.Validate(); err != nil {
		return domain.Campaign{}, err
	}
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		return tx.InsertCampaign(ctx, &c)
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	m.log.InfoContext(ctx, "campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.String("owner_id", c.OwnerID.String()))
	return c, nil
}

// UpdateCampaign applies the set fields of in.
func (m *Marketplace) UpdateCampaign(ctx context.Context, p domain.Principal, id uuid.UUID, in port.UpdateCampaignFields) (c domain.Campaign, err error) {
	ctx, end := m.span(ctx, "Marketplace.UpdateCampaign", p, idAttr("campaign.id", id))
	defer end(&err)

	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetCampaign(ctx, id)
		if err != nil {
			return err
		}
		if err = m.booking.CheckEditable(p, cur); err != nil {
			return err
		}
		if err = checkVersion(domain.EntityCampaign, id, cur.Version, in.Version); err != nil {
			return err
		}
		now := m.clock.Now()
		next := applyCampaignFields(cur, in)
		if err = next.Validate(); err != nil {
			return err
		}
		// A budget cut down to the spend exhausts the campaign just like
		// the spend that reaches the total does.
		if (next.Status == domain.CampaignActive || next.Status == domain.CampaignPaused) && next.BudgetExhausted() {
			if next, err = next.Transition(domain.CampaignCompleted, now); err != nil {
				return err
			}
		}
		next.UpdatedAt = now
		if err = tx.UpdateCampaign(ctx, &next); err != nil {
			return err
		}
		c = next
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

func applyCampaignFields(c domain.Campaign, in port.UpdateCampaignFields) domain.Campaign {
	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Objective != nil {
		c.Objective = *in.Objective
	}
	if in.BudgetTotal != nil {
		c.BudgetTotal = *in.BudgetTotal
	}
	if in.Currency != nil {
		c.Currency = *in.Currency
	}
	if in.StartDate != nil {
		c.StartDate = in.StartDate.UTC()
	}
	if in.EndDate != nil {
		c.EndDate = in.EndDate.UTC()
	}
	if in.Visibility != nil {
		c.Visibility = *in.Visibility
	}
	if in.Targeting != nil {
		c.Targeting = in.Targeting.Clone()
	}
	return c
}

// TransitionCampaignStatus moves a campaign along its state machine on
// behalf of its owner or an admin. The edges out of pending_approval into
// active or rejected are moderation outcomes and only reachable through
// ModerateCampaign. Submitting for approval resets the approval status.
func (m *Marketplace) TransitionCampaignStatus(ctx context.Context, p domain.Principal, id uuid.UUID, in port.StatusChange[domain.CampaignStatus]) (c domain.Campaign, err error) {
	ctx, end := m.span(ctx, "Marketplace.TransitionCampaignStatus", p, idAttr("campaign.id", id), attribute.String("to", string(in.Status)))
	defer end(&err)

	var from domain.CampaignStatus
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetCampaign(ctx, id)
		if err != nil {
			return err
		}
		if err = authorizeCampaignTransition(p, cur, in.Status); err != nil {
			return err
		}
		if err = checkVersion(domain.EntityCampaign, id, cur.Version, in.Version); err != nil {
			return err
		}
		now := m.clock.Now()
		next, err := cur.Transition(in.Status, now)
		if err != nil {
			return err
		}
		if next.Status == domain.CampaignPendingApproval {
			next.ApprovalStatus = domain.ApprovalPending
		}
		next.UpdatedAt = now
		if err = tx.UpdateCampaign(ctx, &next); err != nil {
			return err
		}
		from, c = cur.Status, next
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	m.log.InfoContext(ctx, "campaign status changed",
		slog.String("campaign_id", id.String()),
		slog.String("from", string(from)),
		slog.String("to", string(c.Status)))
	return c, nil
}

func authorizeCampaignTransition(p domain.Principal, c domain.Campaign, to domain.CampaignStatus) error {
	if !p.CanEdit(c.OwnerID) {
		return domain.Unauthorized("principal %s may not change campaign %s", p.ID, c.ID)
	}
	if c.Status == domain.CampaignPendingApproval && (to == domain.CampaignActive || to == domain.CampaignRejected) {
		return domain.Validation("MODERATION_REQUIRED", "campaign %s leaves pending_approval for %q only through moderation", c.ID, to)
	}
	return nil
}

// DeleteCampaign soft-deletes a campaign and cancels its open placements in
// the same transaction, keeping every counter exact.
func (m *Marketplace) DeleteCampaign(ctx context.Context, p domain.Principal, id uuid.UUID) (c domain.Campaign, err error) {
	ctx, end := m.span(ctx, "Marketplace.DeleteCampaign", p, idAttr("campaign.id", id))
	defer end(&err)

	var cancelled int
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetCampaign(ctx, id)
		if err != nil {
			return err
		}
		if err = m.booking.CheckEditable(p, cur); err != nil {
			return err
		}
		now := m.clock.Now()

		q := query.Query{Order: []query.OrderField{{Column: "id"}}}.With("campaign_id", query.KindUUID, id)
		placements, err := tx.ListPlacements(ctx, q)
		if err != nil {
			return err
		}
		for _, pl := range placements {
			if !domain.PlacementMachine.Can(pl.Status, domain.PlacementCancelled) {
				continue
			}
			next, err := pl.Transition(domain.PlacementCancelled, now)
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
			cancelled++
		}

		// Counter sync may have rewritten the campaign row.
		if cur, err = tx.GetCampaign(ctx, id); err != nil {
			return err
		}
		cur.DeletedAt = &now
		cur.UpdatedAt = now
		if err = tx.UpdateCampaign(ctx, &cur); err != nil {
			return err
		}
		c = cur
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	m.log.InfoContext(ctx, "campaign deleted",
		slog.String("campaign_id", id.String()),
		slog.Int("cancelled_placements", cancelled))
	return c, nil
}

// GetCampaign returns a campaign visible to the caller. Private campaigns
// are reported as not found to everyone but their owner and staff; deleted
// campaigns are visible to admins only.
func (m *Marketplace) GetCampaign(ctx context.Context, p domain.Principal, id uuid.UUID) (c domain.Campaign, err error) {
	ctx, end := m.span(ctx, "Marketplace.GetCampaign", p, idAttr("campaign.id", id))
	defer end(&err)

	err = m.store.View(ctx, func(ctx context.Context, tx port.ReadTx) error {
		c, err = tx.GetCampaign(ctx, id)
		return err
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	if !campaignVisible(p, c) {
		return domain.Campaign{}, domain.NotFound(domain.EntityCampaign, id)
	}
	return c, nil
}

func campaignVisible(p domain.Principal, c domain.Campaign) bool {
	if p.IsAdmin {
		return true
	}
	if c.Deleted() {
		return false
	}
	return c.Visibility == domain.VisibilityPublic || p.IsModerator || p.CanEdit(c.OwnerID)
}

// ListCampaigns returns one page of campaigns. Callers without staff roles
// see public campaigns, or their own when they filter on owner_id.
func (m *Marketplace) ListCampaigns(ctx context.Context, p domain.Principal, spec query.Spec) (out query.Page[domain.Campaign], err error) {
	ctx, end := m.span(ctx, "Marketplace.ListCampaigns", p)
	defer end(&err)

	q, err := query.Campaigns.Compile(spec)
	if err != nil {
		return out, err
	}
	if !p.CanModerate() && !filtersOwnerOnly(q, "owner_id", p.ID) {
		q = q.With("visibility", query.KindEnum, string(domain.VisibilityPublic))
	}
	out = query.Page[domain.Campaign]{Page: q.Page, Limit: q.Limit}
	err = m.store.View(ctx, func(ctx context.Context, tx port.ReadTx) error {
		if out.Items, err = tx.ListCampaigns(ctx, q); err != nil {
			return err
		}
		out.Total, err = tx.CountCampaigns(ctx, q)
		return err
	})
	if err != nil {
		return query.Page[domain.Campaign]{}, err
	}
	return out, nil
}

// filtersOwnerOnly reports whether q is restricted to rows whose column
// equals id.
func filtersOwnerOnly(q query.Query, column string, id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	for _, pr := range q.Predicates {
		if pr.Column == column && pr.Op == query.OpEq && pr.Value == any(id) {
			return true
		}
	}
	return false
}
