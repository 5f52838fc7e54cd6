package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignDraft           CampaignStatus = "draft"
	CampaignPendingApproval CampaignStatus = "pending_approval"
	CampaignActive          CampaignStatus = "active"
	CampaignPaused          CampaignStatus = "paused"
	CampaignCompleted       CampaignStatus = "completed"
	CampaignRejected        CampaignStatus = "rejected"
	CampaignArchived        CampaignStatus = "archived"
)

// ApprovalStatus is the moderation outcome recorded on campaigns and platforms.
type ApprovalStatus string

const (
	ApprovalPending         ApprovalStatus = "pending"
	ApprovalApproved        ApprovalStatus = "approved"
	ApprovalRejected        ApprovalStatus = "rejected"
	ApprovalRequiresChanges ApprovalStatus = "requires_changes"
)

type Objective string

const (
	ObjectiveAwareness   Objective = "awareness"
	ObjectiveTraffic     Objective = "traffic"
	ObjectiveConversions Objective = "conversions"
	ObjectiveEngagement  Objective = "engagement"
)

func (o Objective) Valid() bool {
	switch o {
	case ObjectiveAwareness, ObjectiveTraffic, ObjectiveConversions, ObjectiveEngagement:
		return true
	}
	return false
}

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// DefaultCurrency is applied when a command omits the currency.
const DefaultCurrency = "USD"

// Campaign represents an advertiser's campaign. Money is kept in
// decimal.Decimal with two fractional digits in storage.
type Campaign struct {
	ID              uuid.UUID       `json:"id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Objective       Objective       `json:"objective"`
	BudgetTotal     decimal.Decimal `json:"budget_total"`
	BudgetSpent     decimal.Decimal `json:"budget_spent"`
	Currency        string          `json:"currency"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	Status          CampaignStatus  `json:"status"`
	ApprovalStatus  ApprovalStatus  `json:"approval_status"`
	Visibility      Visibility      `json:"visibility"`
	QualityScore    float64         `json:"quality_score"`
	Targeting       Targeting       `json:"targeting"`
	ModeratedBy     *uuid.UUID      `json:"moderated_by,omitempty"`
	ModeratedAt     *time.Time      `json:"moderated_at,omitempty"`
	ModerationNotes string          `json:"moderation_notes,omitempty"`
	LaunchedAt      *time.Time      `json:"launched_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	DeletedAt       *time.Time      `json:"deleted_at,omitempty"`

	// Derived by CounterSync; never written by client commands.
	TotalPlatformsCount   int64 `json:"total_platforms_count"`
	ActivePlatformsCount  int64 `json:"active_platforms_count"`
	PendingPlatformsCount int64 `json:"pending_platforms_count"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the field-level invariants of a campaign.
func (c Campaign) Validate() error {
	title := strings.TrimSpace(c.Title)
	if title == "" || len(title) > 255 {
		return Validation("CAMPAIGN_TITLE_INVALID", "title must be 1..255 characters")
	}
	if !c.Objective.Valid() {
		return Validation("CAMPAIGN_OBJECTIVE_INVALID", "unknown objective %q", c.Objective)
	}
	if !c.Visibility.Valid() {
		return Validation("CAMPAIGN_VISIBILITY_INVALID", "unknown visibility %q", c.Visibility)
	}
	if len(c.Currency) != 3 || strings.ToUpper(c.Currency) != c.Currency {
		return Validation("CURRENCY_INVALID", "currency must be a 3-letter ISO code")
	}
	if !c.BudgetTotal.IsPositive() {
		return Validation("CAMPAIGN_BUDGET_INVALID", "budget_total must be positive")
	}
	if err := CheckMoney("CAMPAIGN_BUDGET_INVALID", "budget_total", c.BudgetTotal); err != nil {
		return err
	}
	if c.BudgetSpent.IsNegative() || c.BudgetSpent.GreaterThan(c.BudgetTotal) {
		return Validation("CAMPAIGN_BUDGET_INVALID", "budget_spent must be within [0, budget_total]")
	}
	if !c.EndDate.After(c.StartDate) {
		return Validation("CAMPAIGN_DATES_INVALID", "end_date must be after start_date")
	}
	if c.QualityScore < 0 || c.QualityScore > 10 {
		return Validation("CAMPAIGN_QUALITY_SCORE_INVALID", "quality_score must be within [0,10]")
	}
	return c.Targeting.Validate()
}

// Deleted reports whether the campaign has been soft-deleted.
func (c Campaign) Deleted() bool {
	return c.DeletedAt != nil
}

// Live reports whether the campaign only accepts status changes and moderation.
func (c Campaign) Live() bool {
	return c.Status == CampaignActive || c.Status == CampaignCompleted
}

// BudgetRemaining returns budget_total - budget_spent.
func (c Campaign) BudgetRemaining() decimal.Decimal {
	return c.BudgetTotal.Sub(c.BudgetSpent)
}

// BudgetExhausted reports whether the whole budget has been spent.
func (c Campaign) BudgetExhausted() bool {
	return c.BudgetSpent.GreaterThanOrEqual(c.BudgetTotal)
}

// CompletionRate returns max(time elapsed %, budget spent %), both clamped
// to [0,100].
func (c Campaign) CompletionRate(now time.Time) float64 {
	var timePct float64
	if span := c.EndDate.Sub(c.StartDate); span > 0 {
		timePct = clampPercent(float64(now.Sub(c.StartDate)) / float64(span) * 100)
	}
	var budgetPct float64
	if c.BudgetTotal.IsPositive() {
		budgetPct = clampPercent(c.BudgetSpent.Div(c.BudgetTotal).Mul(decimal.NewFromInt(100)).InexactFloat64())
	}
	return max(timePct, budgetPct)
}

// Transition moves the campaign to status to. It writes the status and the
// first-occurrence stamps and nothing else.
func (c Campaign) Transition(to CampaignStatus, now time.Time) (Campaign, error) {
	if c.Deleted() {
		return c, ImmutableState("campaign %s is deleted", c.ID)
	}
	if err := CampaignMachine.Check(c.Status, to); err != nil {
		return c, err
	}
	if to == CampaignCompleted && !c.BudgetExhausted() && now.Before(c.EndDate) {
		return c, &Error{
			Kind:    KindInvalidTransition,
			Code:    "CAMPAIGN_NOT_COMPLETABLE",
			Message: "campaign can complete only once its budget is spent or its end date has passed",
		}
	}
	c.Status = to
	switch to {
	case CampaignActive:
		if c.LaunchedAt == nil {
			t := now
			c.LaunchedAt = &t
		}
	case CampaignCompleted:
		t := now
		c.CompletedAt = &t
	}
	return c, nil
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
