package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/query"
)

// CampaignUseCase defines the campaign operations exposed to inbound
// adapters. Every method takes the caller's principal and returns either
// the updated entity or a *domain.Error.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, p domain.Principal, in CreateCampaignInput) (domain.Campaign, error)
	// UpdateCampaign applies the set fields of in. Live campaigns reject
	// edits from non-admins with ImmutableState.
	UpdateCampaign(ctx context.Context, p domain.Principal, id uuid.UUID, in UpdateCampaignFields) (domain.Campaign, error)
	TransitionCampaignStatus(ctx context.Context, p domain.Principal, id uuid.UUID, in StatusChange[domain.CampaignStatus]) (domain.Campaign, error)
	ModerateCampaign(ctx context.Context, p domain.Principal, id uuid.UUID, in ModerationInput) (domain.Campaign, error)
	// DeleteCampaign soft-deletes the campaign and cancels its open placements.
	DeleteCampaign(ctx context.Context, p domain.Principal, id uuid.UUID) (domain.Campaign, error)
	GetCampaign(ctx context.Context, p domain.Principal, id uuid.UUID) (domain.Campaign, error)
	ListCampaigns(ctx context.Context, p domain.Principal, spec query.Spec) (query.Page[domain.Campaign], error)
	CampaignProgress(ctx context.Context, p domain.Principal, id uuid.UUID) (CampaignProgress, error)
	// ApplySpend adds amount to budget_spent. Exceeding the budget fails
	// with OverBudget; reaching it completes the campaign atomically.
	ApplySpend(ctx context.Context, p domain.Principal, id uuid.UUID, amount decimal.Decimal) (domain.Campaign, error)
	// RefundSpend subtracts amount from budget_spent. Admin only.
	RefundSpend(ctx context.Context, p domain.Principal, id uuid.UUID, amount decimal.Decimal) (domain.Campaign, error)
}

// PlatformUseCase defines the platform operations exposed to inbound adapters.
type PlatformUseCase interface {
	CreatePlatform(ctx context.Context, p domain.Principal, in CreatePlatformInput) (domain.Platform, error)
	UpdatePlatform(ctx context.Context, p domain.Principal, id uuid.UUID, in UpdatePlatformFields) (domain.Platform, error)
	TransitionPlatformStatus(ctx context.Context, p domain.Principal, id uuid.UUID, in StatusChange[domain.PlatformStatus]) (domain.Platform, error)
	ModeratePlatform(ctx context.Context, p domain.Principal, id uuid.UUID, in ModerationInput) (domain.Platform, error)
	DeletePlatform(ctx context.Context, p domain.Principal, id uuid.UUID) (domain.Platform, error)
	GetPlatform(ctx context.Context, p domain.Principal, id uuid.UUID) (domain.Platform, error)
	ListPlatforms(ctx context.Context, p domain.Principal, spec query.Spec) (query.Page[domain.Platform], error)
}

// PlacementUseCase defines the booking operations exposed to inbound adapters.
type PlacementUseCase interface {
	CreatePlacement(ctx context.Context, p domain.Principal, in CreatePlacementInput) (domain.Placement, error)
	TransitionPlacementStatus(ctx context.Context, p domain.Principal, id uuid.UUID, in StatusChange[domain.PlacementStatus]) (domain.Placement, error)
	RecordPlacementMetrics(ctx context.Context, p domain.Principal, id uuid.UUID, delta domain.Metrics) (domain.Placement, error)
	RecordPlacementPayment(ctx context.Context, p domain.Principal, id uuid.UUID, in PaymentInput) (domain.Placement, error)
	GetPlacement(ctx context.Context, p domain.Principal, id uuid.UUID) (domain.Placement, error)
	ListPlacements(ctx context.Context, p domain.Principal, spec query.Spec) (query.Page[domain.Placement], error)
	// ResyncCounters recomputes every derived counter of a platform and the
	// campaigns booked on it. Admin only.
	ResyncCounters(ctx context.Context, p domain.Principal, platformID uuid.UUID) (domain.Platform, error)
}

type CreateCampaignInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Objective   domain.Objective  `json:"objective"`
	BudgetTotal decimal.Decimal   `json:"budget_total"`
	Currency    string            `json:"currency"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	Visibility  domain.Visibility `json:"visibility"`
	Targeting   domain.Targeting  `json:"targeting"`
}

// UpdateCampaignFields lists every client-mutable campaign field. Nil means
// unchanged. Status, spend and derived counters are deliberately absent.
type UpdateCampaignFields struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Objective   *domain.Objective  `json:"objective,omitempty"`
	BudgetTotal *decimal.Decimal   `json:"budget_total,omitempty"`
	Currency    *string            `json:"currency,omitempty"`
	StartDate   *time.Time         `json:"start_date,omitempty"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	Visibility  *domain.Visibility `json:"visibility,omitempty"`
	Targeting   *domain.Targeting  `json:"targeting,omitempty"`
	// Version, when non-zero, must equal the stored version.
	Version int64 `json:"version,omitempty"`
}

type CreatePlatformInput struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Type         domain.PlatformType `json:"type"`
	URL          string              `json:"url"`
	AudienceSize int64               `json:"audience_size"`
	Demographics domain.Demographics `json:"demographics"`
	PricingModel domain.PricingModel `json:"pricing_model"`
	BasePrice    decimal.Decimal     `json:"base_price"`
	Currency     string              `json:"currency"`
}

// UpdatePlatformFields lists every client-mutable platform field.
type UpdatePlatformFields struct {
	Name         *string              `json:"name,omitempty"`
	Description  *string              `json:"description,omitempty"`
	Type         *domain.PlatformType `json:"type,omitempty"`
	URL          *string              `json:"url,omitempty"`
	AudienceSize *int64               `json:"audience_size,omitempty"`
	Demographics *domain.Demographics `json:"demographics,omitempty"`
	PricingModel *domain.PricingModel `json:"pricing_model,omitempty"`
	BasePrice    *decimal.Decimal     `json:"base_price,omitempty"`
	Currency     *string              `json:"currency,omitempty"`
	// Verification and quality are set by moderators and admins only.
	VerificationStatus *domain.VerificationStatus `json:"verification_status,omitempty"`
	QualityScore       *float64                   `json:"quality_score,omitempty"`
	Rating             *float64                   `json:"rating,omitempty"`
	Version            int64                      `json:"version,omitempty"`
}

type CreatePlacementInput struct {
	CampaignID  uuid.UUID       `json:"campaign_id"`
	PlatformID  uuid.UUID       `json:"platform_id"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	AgreedPrice decimal.Decimal `json:"agreed_price"`
}

// StatusChange requests a state-machine transition.
type StatusChange[S ~string] struct {
	Status  S     `json:"status"`
	Version int64 `json:"version,omitempty"`
}

// ModerationInput is a moderator's decision. Notes are required unless the
// decision is approved.
type ModerationInput struct {
	Decision domain.ApprovalStatus `json:"decision"`
	Notes    string                `json:"notes"`
	Version  int64                 `json:"version,omitempty"`
}

// PaymentInput records a payment or, with Refund set, refunds a placement.
type PaymentInput struct {
	Amount decimal.Decimal `json:"amount"`
	Refund bool            `json:"refund,omitempty"`
}

// CampaignProgress summarises budget consumption and elapsed time.
type CampaignProgress struct {
	CampaignID      uuid.UUID       `json:"campaign_id"`
	CompletionRate  float64         `json:"completion_rate"`
	BudgetTotal     decimal.Decimal `json:"budget_total"`
	BudgetSpent     decimal.Decimal `json:"budget_spent"`
	BudgetRemaining decimal.Decimal `json:"budget_remaining"`
}
