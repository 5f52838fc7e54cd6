package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

// ModerationWorkflow applies moderator decisions to campaigns and platforms.
type ModerationWorkflow struct{}

func (ModerationWorkflow) check(p domain.Principal, in port.ModerationInput) error {
	if !p.CanModerate() {
		return domain.Unauthorized("principal %s is not a moderator", p.ID)
	}
	switch in.Decision {
	case domain.ApprovalApproved:
	case domain.ApprovalRejected, domain.ApprovalRequiresChanges:
		if strings.TrimSpace(in.Notes) == "" {
			return domain.Validation("MODERATION_NOTES_REQUIRED", "notes are required for decision %q", in.Decision)
		}
	default:
		return domain.Validation("MODERATION_DECISION_INVALID", "unknown decision %q", in.Decision)
	}
	return nil
}

// Campaign moderates a campaign awaiting approval. Approval launches it,
// rejection rejects it and requires_changes sends it back to draft.
func (w ModerationWorkflow) Campaign(p domain.Principal, c domain.Campaign, in port.ModerationInput, now time.Time) (domain.Campaign, error) {
	if err := w.check(p, in); err != nil {
		return c, err
	}
	if c.Deleted() || c.Status != domain.CampaignPendingApproval {
		return c, domain.NotModerable(domain.EntityCampaign, string(c.Status))
	}
	var to domain.CampaignStatus
	switch in.Decision {
	case domain.ApprovalApproved:
		to = domain.CampaignActive
	case domain.ApprovalRejected:
		to = domain.CampaignRejected
	default:
		to = domain.CampaignDraft
	}
	next, err := c.Transition(to, now)
	if err != nil {
		return c, err
	}
	next.ApprovalStatus = in.Decision
	next.ModeratedBy, next.ModeratedAt = stamp(p.ID, now)
	next.ModerationNotes = strings.TrimSpace(in.Notes)
	return next, nil
}

// Platform moderates a platform under review. A draft platform may only be
// sent back with requires_changes. requires_changes leaves the status alone
// because the owner edits and resubmits from where it is.
func (w ModerationWorkflow) Platform(p domain.Principal, pl domain.Platform, in port.ModerationInput, now time.Time) (domain.Platform, error) {
	if err := w.check(p, in); err != nil {
		return pl, err
	}
	moderatable := pl.Status == domain.PlatformPendingReview ||
		(pl.Status == domain.PlatformDraft && in.Decision == domain.ApprovalRequiresChanges)
	if pl.Deleted() || !moderatable {
		return pl, domain.NotModerable(domain.EntityPlatform, string(pl.Status))
	}
	next := pl
	switch in.Decision {
	case domain.ApprovalApproved, domain.ApprovalRejected:
		to := domain.PlatformActive
		if in.Decision == domain.ApprovalRejected {
			to = domain.PlatformRejected
		}
		var err error
		if next, err = pl.Transition(to); err != nil {
			return pl, err
		}
	}
	next.ModerationStatus = in.Decision
	next.ModeratedBy, next.ModeratedAt = stamp(p.ID, now)
	next.ModerationNotes = strings.TrimSpace(in.Notes)
	return next, nil
}

func stamp(id uuid.UUID, now time.Time) (*uuid.UUID, *time.Time) {
	return &id, &now
}

// ModerateCampaign records a moderator's decision on a campaign.
func (m *Marketplace) ModerateCampaign(ctx context.Context, p domain.Principal, id uuid.UUID, in port.ModerationInput) (c domain.Campaign, err error) {
	ctx, end := m.span(ctx, "Marketplace.ModerateCampaign", p, idAttr("campaign.id", id), attribute.String("decision", string(in.Decision)))
	defer end(&err)

	var from domain.CampaignStatus
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetCampaign(ctx, id)
		if err != nil {
			return err
		}
		if err = checkVersion(domain.EntityCampaign, id, cur.Version, in.Version); err != nil {
			return err
		}
		now := m.clock.Now()
		next, err := m.moderation.Campaign(p, cur, in, now)
		if err != nil {
			return err
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
	m.log.InfoContext(ctx, "campaign moderated",
		slog.String("campaign_id", id.String()),
		slog.String("decision", string(in.Decision)),
		slog.String("from", string(from)),
		slog.String("to", string(c.Status)))
	return c, nil
}

// ModeratePlatform records a moderator's decision on a platform.
func (m *Marketplace) ModeratePlatform(ctx context.Context, p domain.Principal, id uuid.UUID, in port.ModerationInput) (pl domain.Platform, err error) {
	ctx, end := m.span(ctx, "Marketplace.ModeratePlatform", p, idAttr("platform.id", id), attribute.String("decision", string(in.Decision)))
	defer end(&err)

	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetPlatform(ctx, id)
		if err != nil {
			return err
		}
		if err = checkVersion(domain.EntityPlatform, id, cur.Version, in.Version); err != nil {
			return err
		}
		now := m.clock.Now()
		next, err := m.moderation.Platform(p, cur, in, now)
		if err != nil {
			return err
		}
		next.UpdatedAt = now
		if err = tx.UpdatePlatform(ctx, &next); err != nil {
			return err
		}
		pl = next
		return nil
	})
	if err != nil {
		return domain.Platform{}, err
	}
	m.log.InfoContext(ctx, "platform moderated",
		slog.String("platform_id", id.String()),
		slog.String("decision", string(in.Decision)),
		slog.String("status", string(pl.Status)))
	return pl, nil
}
