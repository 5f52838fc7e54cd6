package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

// BookingValidator holds the booking and access rules shared by campaign and
// placement commands. The duplicate check here only produces a friendlier
// error earlier; the store's unique booking key stays authoritative and its
// violations surface as DuplicateBooking too.
type BookingValidator struct{}

// ValidateNewPlacement rejects an empty window and a window that is already
// booked for the same campaign and platform.
func (BookingValidator) ValidateNewPlacement(ctx context.Context, tx port.ReadTx, campaignID, platformID uuid.UUID, start, end time.Time) error {
	if campaignID == uuid.Nil || platformID == uuid.Nil {
		return domain.Validation("PLACEMENT_REFERENCE_INVALID", "campaign_id and platform_id are required")
	}
	if !end.After(start) {
		return domain.Validation("PLACEMENT_DATES_INVALID", "end_date must be after start_date")
	}
	key := domain.BookingKey{CampaignID: campaignID, PlatformID: platformID, StartDate: start, EndDate: end}
	_, found, err := tx.FindPlacement(ctx, key)
	if err != nil {
		return err
	}
	if found {
		return domain.DuplicateBooking(nil)
	}
	return nil
}

// CheckBookable applies the cross-entity rules for booking campaign c onto
// platform pl for the placement window.
func (BookingValidator) CheckBookable(c domain.Campaign, pl domain.Platform, start, end time.Time, price decimal.Decimal) error {
	switch {
	case c.Deleted():
		return domain.ImmutableState("campaign %s is deleted", c.ID)
	case domain.CampaignMachine.Terminal(c.Status), c.Status == domain.CampaignRejected:
		return domain.ImmutableState("campaign %s in status %q cannot take new placements", c.ID, c.Status)
	}
	if !pl.Bookable() {
		return domain.Validation("PLATFORM_NOT_BOOKABLE", "platform %s in status %q cannot be booked", pl.ID, pl.Status)
	}
	if start.Before(c.StartDate) || end.After(c.EndDate) {
		return domain.Validation("PLACEMENT_OUTSIDE_CAMPAIGN", "placement window must lie within the campaign window")
	}
	if price.GreaterThan(c.BudgetRemaining()) {
		return domain.OverBudget(c.BudgetRemaining(), price)
	}
	return nil
}

// CanEdit is the access predicate shared by every mutating command.
func (BookingValidator) CanEdit(p domain.Principal, ownerID uuid.UUID) bool {
	return p.CanEdit(ownerID)
}

// CheckEditable gates campaign edits: only the owner or an admin may edit,
// live campaigns are frozen for everyone but admins, and deleted campaigns
// for everyone.
func (v BookingValidator) CheckEditable(p domain.Principal, c domain.Campaign) error {
	if !v.CanEdit(p, c.OwnerID) {
		return domain.Unauthorized("principal %s may not edit campaign %s", p.ID, c.ID)
	}
	if c.Deleted() {
		return domain.ImmutableState("campaign %s is deleted", c.ID)
	}
	if c.Live() && !p.IsAdmin {
		return domain.ImmutableState("campaign %s is %s; only status changes are allowed", c.ID, c.Status)
	}
	return nil
}

// CanActOnPlacement reports whether p may change placement pl. Approval and
// rejection belong to the platform side; other changes may also come from
// the booking's creator.
func (BookingValidator) CanActOnPlacement(p domain.Principal, pl domain.Placement, platformOwner uuid.UUID, to domain.PlacementStatus) bool {
	if p.IsAdmin {
		return true
	}
	if p.ID == uuid.Nil {
		return false
	}
	switch to {
	case domain.PlacementApproved, domain.PlacementRejected:
		return p.ID == platformOwner
	}
	return p.ID == pl.CreatedBy || p.ID == platformOwner
}
