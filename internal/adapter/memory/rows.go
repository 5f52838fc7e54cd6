package memory

import (
	"time"

	"adsmarket/internal/core/domain"
)

// The row adapters expose entity fields under the column names used by the
// query schemas, in the canonical types query.Compare understands.

type campaignRow struct{ domain.Campaign }

func (r campaignRow) Value(column string) any {
	c := r.Campaign
	switch column {
	case "id":
		return c.ID
	case "owner_id":
		return c.OwnerID
	case "title":
		return c.Title
	case "objective":
		return string(c.Objective)
	case "status":
		return string(c.Status)
	case "approval_status":
		return string(c.ApprovalStatus)
	case "visibility":
		return string(c.Visibility)
	case "currency":
		return c.Currency
	case "budget_total":
		return c.BudgetTotal
	case "budget_spent":
		return c.BudgetSpent
	case "quality_score":
		return c.QualityScore
	case "start_date":
		return c.StartDate
	case "end_date":
		return c.EndDate
	case "total_platforms_count":
		return c.TotalPlatformsCount
	case "active_platforms_count":
		return c.ActivePlatformsCount
	case "created_at":
		return c.CreatedAt
	case "updated_at":
		return c.UpdatedAt
	}
	return nil
}

type platformRow struct{ domain.Platform }

func (r platformRow) Value(column string) any {
	p := r.Platform
	switch column {
	case "id":
		return p.ID
	case "owner_id":
		return p.OwnerID
	case "name":
		return p.Name
	case "url":
		return p.URL
	case "type":
		return string(p.Type)
	case "status":
		return string(p.Status)
	case "moderation_status":
		return string(p.ModerationStatus)
	case "verification_status":
		return string(p.VerificationStatus)
	case "pricing_model":
		return string(p.PricingModel)
	case "audience_size":
		return p.AudienceSize
	case "base_price":
		return p.BasePrice
	case "rating":
		return p.Rating
	case "quality_score":
		return p.QualityScore
	case "total_campaigns_count":
		return p.TotalCampaignsCount
	case "active_campaigns_count":
		return p.ActiveCampaignsCount
	case "last_campaign_date":
		return nullableTime(p.LastCampaignDate)
	case "created_at":
		return p.CreatedAt
	}
	return nil
}

type placementRow struct{ domain.Placement }

func (r placementRow) Value(column string) any {
	p := r.Placement
	switch column {
	case "id":
		return p.ID
	case "campaign_id":
		return p.CampaignID
	case "platform_id":
		return p.PlatformID
	case "created_by":
		return p.CreatedBy
	case "status":
		return string(p.Status)
	case "payment_status":
		return string(p.PaymentStatus)
	case "platform_approved":
		return p.PlatformApproved
	case "start_date":
		return p.StartDate
	case "end_date":
		return p.EndDate
	case "agreed_price":
		return p.AgreedPrice
	case "paid_amount":
		return p.PaidAmount
	case "impressions":
		return p.Impressions
	case "clicks":
		return p.Clicks
	case "conversions":
		return p.Conversions
	case "created_at":
		return p.CreatedAt
	}
	return nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
