package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
	"adsmarket/internal/core/query"
)

// CreatePlatform registers a draft platform owned by the caller.
func (m *Marketplace) CreatePlatform(ctx context.Context, p domain.Principal, in port.CreatePlatformInput) (pl domain.Platform, err error) {
	ctx, end := m.span(ctx, "Marketplace.CreatePlatform", p)
	defer end(&err)

	if err = requireIdentity(p); err != nil {
		return domain.Platform{}, err
	}
	url, err := domain.NormalizeURL(in.URL)
	if err != nil {
		return domain.Platform{}, err
	}
	now := m.clock.Now()
	pl = domain.Platform{
		ID:                 uuid.New(),
		OwnerID:            p.ID,
		Name:               strings.TrimSpace(in.Name),
		Description:        in.Description,
		Type:               in.Type,
		URL:                url,
		AudienceSize:       in.AudienceSize,
		Demographics:       in.Demographics.Clone(),
		PricingModel:       in.PricingModel,
		BasePrice:          in.BasePrice,
		Currency:           in.Currency,
		Status:             domain.PlatformDraft,
		ModerationStatus:   domain.ApprovalPending,
		VerificationStatus: domain.VerificationUnverified,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if pl.Currency == "" {
		pl.Currency = domain.DefaultCurrency
	}
	if err = pl.Validate(); err != nil {
		return domain.Platform{}, err
	}
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		if err := ensureURLFree(ctx, tx, pl.URL, pl.ID); err != nil {
			return err
		}
		return tx.InsertPlatform(ctx, &pl)
	})
	if err != nil {
		return domain.Platform{}, err
	}
	m.log.InfoContext(ctx, "platform created",
		slog.String("platform_id", pl.ID.String()),
		slog.String("url", pl.URL))
	return pl, nil
}

func ensureURLFree(ctx context.Context, tx port.ReadTx, url string, self uuid.UUID) error {
	taken, err := tx.PlatformURLTaken(ctx, url, self)
	if err != nil {
		return err
	}
	if taken {
		return domain.Validation("PLATFORM_URL_TAKEN", "platform url %q is already registered", url)
	}
	return nil
}

// UpdatePlatform applies the set fields of in. Verification, quality and
// rating are staff-only fields.
func (m *Marketplace) UpdatePlatform(ctx context.Context, p domain.Principal, id uuid.UUID, in port.UpdatePlatformFields) (pl domain.Platform, err error) {
	ctx, end := m.span(ctx, "Marketplace.UpdatePlatform", p, idAttr("platform.id", id))
	defer end(&err)

	staffOnly := in.VerificationStatus != nil || in.QualityScore != nil || in.Rating != nil
	if staffOnly && !p.CanModerate() {
		return domain.Platform{}, domain.Unauthorized("only moderators may set verification, quality or rating")
	}
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetPlatform(ctx, id)
		if err != nil {
			return err
		}
		if !p.CanEdit(cur.OwnerID) && !(staffOnly && p.CanModerate()) {
			return domain.Unauthorized("principal %s may not edit platform %s", p.ID, id)
		}
		if cur.Deleted() || cur.Status == domain.PlatformArchived {
			return domain.ImmutableState("platform %s is %s", id, cur.Status)
		}
		if err = checkVersion(domain.EntityPlatform, id, cur.Version, in.Version); err != nil {
			return err
		}
		next, err := applyPlatformFields(cur, in)
		if err != nil {
			return err
		}
		if err = next.Validate(); err != nil {
			return err
		}
		if next.URL != cur.URL {
			if err = ensureURLFree(ctx, tx, next.URL, id); err != nil {
				return err
			}
		}
		next.UpdatedAt = m.clock.Now()
		if err = tx.UpdatePlatform(ctx, &next); err != nil {
			return err
		}
		pl = next
		return nil
	})
	if err != nil {
		return domain.Platform{}, err
	}
	return pl, nil
}

func applyPlatformFields(pl domain.Platform, in port.UpdatePlatformFields) (domain.Platform, error) {
	if in.Name != nil {
		pl.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		pl.Description = *in.Description
	}
	if in.Type != nil {
		pl.Type = *in.Type
	}
	if in.URL != nil {
		url, err := domain.NormalizeURL(*in.URL)
		if err != nil {
			return pl, err
		}
		pl.URL = url
	}
	if in.AudienceSize != nil {
		pl.AudienceSize = *in.AudienceSize
	}
	if in.Demographics != nil {
		pl.Demographics = in.Demographics.Clone()
	}
	if in.PricingModel != nil {
		pl.PricingModel = *in.PricingModel
	}
	if in.BasePrice != nil {
		pl.BasePrice = *in.BasePrice
	}
	if in.Currency != nil {
		pl.Currency = *in.Currency
	}
	if in.VerificationStatus != nil {
		pl.VerificationStatus = *in.VerificationStatus
	}
	if in.QualityScore != nil {
		pl.QualityScore = *in.QualityScore
	}
	if in.Rating != nil {
		pl.Rating = *in.Rating
	}
	return pl, nil
}

// TransitionPlatformStatus moves a platform along its state machine.
// Review outcomes go through ModeratePlatform; suspension and reinstatement
// from suspension are staff actions.
func (m *Marketplace) TransitionPlatformStatus(ctx context.Context, p domain.Principal, id uuid.UUID, in port.StatusChange[domain.PlatformStatus]) (pl domain.Platform, err error) {
	ctx, end := m.span(ctx, "Marketplace.TransitionPlatformStatus", p, idAttr("platform.id", id), attribute.String("to", string(in.Status)))
	defer end(&err)

	var from domain.PlatformStatus
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetPlatform(ctx, id)
		if err != nil {
			return err
		}
		if err = authorizePlatformTransition(p, cur, in.Status); err != nil {
			return err
		}
		if err = checkVersion(domain.EntityPlatform, id, cur.Version, in.Version); err != nil {
			return err
		}
		next, err := cur.Transition(in.Status)
		if err != nil {
			return err
		}
		if next.Status == domain.PlatformPendingReview {
			next.ModerationStatus = domain.ApprovalPending
		}
		if next.Status == domain.PlatformArchived {
			if err = m.archivePlacementsCheck(ctx, tx, id); err != nil {
				return err
			}
		}
		next.UpdatedAt = m.clock.Now()
		if err = tx.UpdatePlatform(ctx, &next); err != nil {
			return err
		}
		from, pl = cur.Status, next
		return nil
	})
	if err != nil {
		return domain.Platform{}, err
	}
	m.log.InfoContext(ctx, "platform status changed",
		slog.String("platform_id", id.String()),
		slog.String("from", string(from)),
		slog.String("to", string(pl.Status)))
	return pl, nil
}

// archivePlacementsCheck refuses to archive a platform with running
// placements; they must be completed or cancelled first.
func (m *Marketplace) archivePlacementsCheck(ctx context.Context, tx port.ReadTx, id uuid.UUID) error {
	for _, st := range []domain.PlacementStatus{domain.PlacementActive, domain.PlacementPaused} {
		n, err := tx.CountPlacements(ctx, port.PlacementScope{PlatformID: id, Status: st})
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ImmutableState("platform %s has %d %s placements", id, n, st)
		}
	}
	return nil
}

// DeletePlatform soft-deletes a platform on behalf of its owner or an
// admin. Running placements block the deletion; pending and approved ones
// are cancelled in the same transaction. The platform's url is released.
func (m *Marketplace) DeletePlatform(ctx context.Context, p domain.Principal, id uuid.UUID) (pl domain.Platform, err error) {
	ctx, end := m.span(ctx, "Marketplace.DeletePlatform", p, idAttr("platform.id", id))
	defer end(&err)

	var cancelled int
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetPlatform(ctx, id)
		if err != nil {
			return err
		}
		if !m.booking.CanEdit(p, cur.OwnerID) {
			return domain.Unauthorized("principal %s may not delete platform %s", p.ID, id)
		}
		if cur.Deleted() {
			return domain.ImmutableState("platform %s is already deleted", id)
		}
		if err = m.archivePlacementsCheck(ctx, tx, id); err != nil {
			return err
		}
		now := m.clock.Now()

		q := query.Query{Order: []query.OrderField{{Column: "id"}}}.With("platform_id", query.KindUUID, id)
		placements, err := tx.ListPlacements(ctx, q)
		if err != nil {
			return err
		}
		for _, booking := range placements {
			if !domain.PlacementMachine.Can(booking.Status, domain.PlacementCancelled) {
				continue
			}
			next, err := booking.Transition(domain.PlacementCancelled, now)
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

		if cur, err = tx.GetPlatform(ctx, id); err != nil {
			return err
		}
		cur.DeletedAt = &now
		cur.UpdatedAt = now
		if err = tx.UpdatePlatform(ctx, &cur); err != nil {
			return err
		}
		pl = cur
		return nil
	})
	if err != nil {
		return domain.Platform{}, err
	}
	m.log.InfoContext(ctx, "platform deleted",
		slog.String("platform_id", id.String()),
		slog.Int("cancelled_placements", cancelled))
	return pl, nil
}

func authorizePlatformTransition(p domain.Principal, pl domain.Platform, to domain.PlatformStatus) error {
	if pl.Status == domain.PlatformPendingReview && (to == domain.PlatformActive || to == domain.PlatformRejected) {
		if !p.CanEdit(pl.OwnerID) && !p.CanModerate() {
			return domain.Unauthorized("principal %s may not change platform %s", p.ID, pl.ID)
		}
		return domain.Validation("MODERATION_REQUIRED", "platform %s leaves pending_review for %q only through moderation", pl.ID, to)
	}
	if to == domain.PlatformSuspended || pl.Status == domain.PlatformSuspended && to == domain.PlatformActive {
		if !p.CanModerate() {
			return domain.Unauthorized("only moderators may suspend or reinstate platform %s", pl.ID)
		}
		return nil
	}
	if !p.CanEdit(pl.OwnerID) {
		return domain.Unauthorized("principal %s may not change platform %s", p.ID, pl.ID)
	}
	return nil
}

// GetPlatform returns a platform. Deleted platforms are visible to admins only.
func (m *Marketplace) GetPlatform(ctx context.Context, p domain.Principal, id uuid.UUID) (pl domain.Platform, err error) {
	ctx, end := m.span(ctx, "Marketplace.GetPlatform", p, idAttr("platform.id", id))
	defer end(&err)

	err = m.store.View(ctx, func(ctx context.Context, tx port.ReadTx) error {
		pl, err = tx.GetPlatform(ctx, id)
		return err
	})
	if err != nil {
		return domain.Platform{}, err
	}
	if pl.Deleted() && !p.IsAdmin {
		return domain.Platform{}, domain.NotFound(domain.EntityPlatform, id)
	}
	return pl, nil
}

// ListPlatforms returns one page of platforms. Callers without staff roles
// browse active platforms, or all of their own when they filter on owner_id.
func (m *Marketplace) ListPlatforms(ctx context.Context, p domain.Principal, spec query.Spec) (out query.Page[domain.Platform], err error) {
	ctx, end := m.span(ctx, "Marketplace.ListPlatforms", p)
	defer end(&err)

	q, err := query.Platforms.Compile(spec)
	if err != nil {
		return out, err
	}
	if !p.CanModerate() && !filtersOwnerOnly(q, "owner_id", p.ID) {
		q = q.With("status", query.KindEnum, string(domain.PlatformActive))
	}
	out = query.Page[domain.Platform]{Page: q.Page, Limit: q.Limit}
	err = m.store.View(ctx, func(ctx context.Context, tx port.ReadTx) error {
		if out.Items, err = tx.ListPlatforms(ctx, q); err != nil {
			return err
		}
		out.Total, err = tx.CountPlatforms(ctx, q)
		return err
	})
	if err != nil {
		return query.Page[domain.Platform]{}, err
	}
	return out, nil
}
