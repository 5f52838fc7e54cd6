package domain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlatformStatus string

const (
	PlatformDraft         PlatformStatus = "draft"
	PlatformPendingReview PlatformStatus = "pending_review"
	PlatformActive        PlatformStatus = "active"
	PlatformPaused        PlatformStatus = "paused"
	PlatformSuspended     PlatformStatus = "suspended"
	PlatformRejected      PlatformStatus = "rejected"
	PlatformArchived      PlatformStatus = "archived"
)

type PlatformType string

const (
	PlatformWebsite      PlatformType = "website"
	PlatformMobileApp    PlatformType = "mobile_app"
	PlatformSocialMedia  PlatformType = "social_media"
	PlatformPodcast      PlatformType = "podcast"
	PlatformNewsletter   PlatformType = "newsletter"
	PlatformVideoChannel PlatformType = "video_channel"
	PlatformOther        PlatformType = "other"
)

func (t PlatformType) Valid() bool {
	switch t {
	case PlatformWebsite, PlatformMobileApp, PlatformSocialMedia, PlatformPodcast,
		PlatformNewsletter, PlatformVideoChannel, PlatformOther:
		return true
	}
	return false
}

type PricingModel string

const (
	PricingCPM      PricingModel = "cpm"
	PricingCPC      PricingModel = "cpc"
	PricingCPA      PricingModel = "cpa"
	PricingFlatRate PricingModel = "flat_rate"
)

func (m PricingModel) Valid() bool {
	switch m {
	case PricingCPM, PricingCPC, PricingCPA, PricingFlatRate:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationFailed     VerificationStatus = "failed"
)

func (v VerificationStatus) Valid() bool {
	switch v {
	case VerificationUnverified, VerificationPending, VerificationVerified, VerificationFailed:
		return true
	}
	return false
}

// Platform is a piece of ad inventory owned by one user.
type Platform struct {
	ID                 uuid.UUID          `json:"id"`
	OwnerID            uuid.UUID          `json:"owner_id"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	Type               PlatformType       `json:"type"`
	URL                string             `json:"url"`
	AudienceSize       int64              `json:"audience_size"`
	Demographics       Demographics       `json:"demographics"`
	PricingModel       PricingModel       `json:"pricing_model"`
	BasePrice          decimal.Decimal    `json:"base_price"`
	Currency           string             `json:"currency"`
	Status             PlatformStatus     `json:"status"`
	ModerationStatus   ApprovalStatus     `json:"moderation_status"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Rating             float64            `json:"rating"`
	QualityScore       float64            `json:"quality_score"`
	ModeratedBy        *uuid.UUID         `json:"moderated_by,omitempty"`
	ModeratedAt        *time.Time         `json:"moderated_at,omitempty"`
	ModerationNotes    string             `json:"moderation_notes,omitempty"`
	DeletedAt          *time.Time         `json:"deleted_at,omitempty"`

	// Derived by CounterSync; never written by client commands.
	TotalCampaignsCount  int64      `json:"total_campaigns_count"`
	ActiveCampaignsCount int64      `json:"active_campaigns_count"`
	LastCampaignDate     *time.Time `json:"last_campaign_date,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeURL lower-cases scheme and host and strips a trailing slash so
// the uniqueness check is not defeated by cosmetic differences.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", Validation("PLATFORM_URL_INVALID", "url must be an absolute http(s) URL")
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.Fragment = ""
	return u.String(), nil
}

// Validate checks the field-level invariants of a platform.
func (p Platform) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" || len(name) > 255 {
		return Validation("PLATFORM_NAME_INVALID", "name must be 1..255 characters")
	}
	if !p.Type.Valid() {
		return Validation("PLATFORM_TYPE_INVALID", "unknown platform type %q", p.Type)
	}
	if !p.PricingModel.Valid() {
		return Validation("PLATFORM_PRICING_INVALID", "unknown pricing model %q", p.PricingModel)
	}
	if !p.VerificationStatus.Valid() {
		return Validation("PLATFORM_VERIFICATION_INVALID", "unknown verification status %q", p.VerificationStatus)
	}
	if p.AudienceSize < 0 {
		return Validation("PLATFORM_AUDIENCE_INVALID", "audience_size must not be negative")
	}
	if p.BasePrice.IsNegative() {
		return Validation("PLATFORM_PRICING_INVALID", "base_price must not be negative")
	}
	if err := CheckMoney("PLATFORM_PRICING_INVALID", "base_price", p.BasePrice); err != nil {
		return err
	}
	if len(p.Currency) != 3 || strings.ToUpper(p.Currency) != p.Currency {
		return Validation("CURRENCY_INVALID", "currency must be a 3-letter ISO code")
	}
	if p.Rating < 0 || p.Rating > 5 {
		return Validation("PLATFORM_RATING_INVALID", "rating must be within [0,5]")
	}
	if _, err := NormalizeURL(p.URL); err != nil {
		return err
	}
	return p.Demographics.Validate()
}

// Deleted reports whether the platform has been soft-deleted.
func (p Platform) Deleted() bool {
	return p.DeletedAt != nil
}

// Bookable reports whether new placements may target the platform.
func (p Platform) Bookable() bool {
	return !p.Deleted() && p.Status == PlatformActive
}

// Transition moves the platform to status to.
func (p Platform) Transition(to PlatformStatus) (Platform, error) {
	if p.Deleted() {
		return p, ImmutableState("platform %s is deleted", p.ID)
	}
	if err := PlatformMachine.Check(p.Status, to); err != nil {
		return p, err
	}
	p.Status = to
	return p, nil
}
