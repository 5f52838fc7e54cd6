package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlacementStatus string

const (
	PlacementPending   PlacementStatus = "pending"
	PlacementApproved  PlacementStatus = "approved"
	PlacementActive    PlacementStatus = "active"
	PlacementPaused    PlacementStatus = "paused"
	PlacementCompleted PlacementStatus = "completed"
	PlacementCancelled PlacementStatus = "cancelled"
	PlacementRejected  PlacementStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// BookingKey identifies one inventory window. At most one placement exists
// per key.
type BookingKey struct {
	CampaignID uuid.UUID
	PlatformID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

// Normalize truncates the window to UTC microseconds, the resolution the
// store keeps, so equal windows compare equal in memory and in SQL.
func (k BookingKey) Normalize() BookingKey {
	k.StartDate = k.StartDate.UTC().Truncate(time.Microsecond)
	k.EndDate = k.EndDate.UTC().Truncate(time.Microsecond)
	return k
}

// Placement books one campaign onto one platform for a date range.
type Placement struct {
	ID               uuid.UUID       `json:"id"`
	CampaignID       uuid.UUID       `json:"campaign_id"`
	PlatformID       uuid.UUID       `json:"platform_id"`
	CreatedBy        uuid.UUID       `json:"created_by"`
	Status           PlacementStatus `json:"status"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	AgreedPrice      decimal.Decimal `json:"agreed_price"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	Impressions      int64           `json:"impressions"`
	Clicks           int64           `json:"clicks"`
	Conversions      int64           `json:"conversions"`
	PlatformApproved bool            `json:"platform_approved"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the booking key of the placement.
func (p Placement) Key() BookingKey {
	return BookingKey{
		CampaignID: p.CampaignID,
		PlatformID: p.PlatformID,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
	}.Normalize()
}

// Validate checks the field-level invariants of a placement.
func (p Placement) Validate() error {
	if p.CampaignID == uuid.Nil || p.PlatformID == uuid.Nil {
		return Validation("PLACEMENT_REFERENCE_INVALID", "campaign_id and platform_id are required")
	}
	if !p.EndDate.After(p.StartDate) {
		return Validation("PLACEMENT_DATES_INVALID", "end_date must be after start_date")
	}
	if p.AgreedPrice.IsNegative() {
		return Validation("PLACEMENT_PRICE_INVALID", "agreed_price must not be negative")
	}
	if err := CheckMoney("PLACEMENT_PRICE_INVALID", "agreed_price", p.AgreedPrice); err != nil {
		return err
	}
	if p.PaidAmount.IsNegative() || p.PaidAmount.GreaterThan(p.AgreedPrice) {
		return Validation("PLACEMENT_PAYMENT_INVALID", "paid_amount must be within [0, agreed_price]")
	}
	if p.Impressions < 0 || p.Clicks < 0 || p.Conversions < 0 {
		return Validation("PLACEMENT_METRICS_INVALID", "metrics must not be negative")
	}
	return nil
}

// Transition moves the placement to status to. The first approval stamps
// ApprovedAt and marks the platform's consent.
func (p Placement) Transition(to PlacementStatus, now time.Time) (Placement, error) {
	if err := PlacementMachine.Check(p.Status, to); err != nil {
		return p, err
	}
	p.Status = to
	if to == PlacementApproved && p.ApprovedAt == nil {
		t := now
		p.ApprovedAt = &t
		p.PlatformApproved = true
	}
	return p, nil
}

// Payable reports whether payments may still be recorded.
func (p Placement) Payable() bool {
	switch p.Status {
	case PlacementCancelled, PlacementRejected:
		return false
	}
	return p.PaymentStatus != PaymentRefunded
}

// ApplyPayment adds amount to PaidAmount and derives the payment status.
func (p Placement) ApplyPayment(amount decimal.Decimal) (Placement, error) {
	if !amount.IsPositive() {
		return p, Validation("PAYMENT_AMOUNT_INVALID", "payment amount must be positive")
	}
	if err := CheckMoney("PAYMENT_AMOUNT_INVALID", "payment amount", amount); err != nil {
		return p, err
	}
	if !p.Payable() {
		return p, ImmutableState("placement %s in status %q with payment %q accepts no payments", p.ID, p.Status, p.PaymentStatus)
	}
	paid := p.PaidAmount.Add(amount)
	if paid.GreaterThan(p.AgreedPrice) {
		return p, Validation("PAYMENT_EXCEEDS_PRICE", "payment of %s would exceed agreed price %s (already paid %s)",
			amount.String(), p.AgreedPrice.String(), p.PaidAmount.String())
	}
	p.PaidAmount = paid
	if paid.Equal(p.AgreedPrice) {
		p.PaymentStatus = PaymentPaid
	} else {
		p.PaymentStatus = PaymentPartial
	}
	return p, nil
}

// Refund resets the paid amount and marks the placement refunded.
func (p Placement) Refund() (Placement, error) {
	if p.PaymentStatus == PaymentRefunded || !p.PaidAmount.IsPositive() {
		return p, Validation("PAYMENT_NOT_REFUNDABLE", "placement %s has nothing to refund", p.ID)
	}
	p.PaidAmount = decimal.Zero
	p.PaymentStatus = PaymentRefunded
	return p, nil
}

// Metrics is a delta of delivery counters reported by a platform.
type Metrics struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
}

// AddMetrics accumulates a non-negative delta.
func (p Placement) AddMetrics(m Metrics) (Placement, error) {
	if m.Impressions < 0 || m.Clicks < 0 || m.Conversions < 0 {
		return p, Validation("PLACEMENT_METRICS_INVALID", "metric deltas must not be negative")
	}
	if p.Status != PlacementActive && p.Status != PlacementPaused && p.Status != PlacementCompleted {
		return p, ImmutableState("placement %s in status %q has no delivery", p.ID, p.Status)
	}
	p.Impressions += m.Impressions
	p.Clicks += m.Clicks
	p.Conversions += m.Conversions
	return p, nil
}
