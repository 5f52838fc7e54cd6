package query

import "adsmarket/internal/core/domain"

func enum[S ~string](values ...S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var approvalStatuses = enum(domain.ApprovalPending, domain.ApprovalApproved, domain.ApprovalRejected, domain.ApprovalRequiresChanges)

// Campaigns is the allow-list for campaign listings.
var Campaigns = Schema{
	Entity:      domain.EntityCampaign,
	DefaultSort: "created_at:desc",
	Fields: map[string]Field{
		"id":       {Column: "id", Kind: KindUUID, Sortable: true},
		"owner_id": {Column: "owner_id", Kind: KindUUID},
		"title":    {Column: "title", Kind: KindString, Sortable: true},
		"objective": {Column: "objective", Kind: KindEnum, Enum: enum(
			domain.ObjectiveAwareness, domain.ObjectiveTraffic, domain.ObjectiveConversions, domain.ObjectiveEngagement)},
		"status": {Column: "status", Kind: KindEnum, Sortable: true, Enum: enum(
			domain.CampaignDraft, domain.CampaignPendingApproval, domain.CampaignActive, domain.CampaignPaused,
			domain.CampaignCompleted, domain.CampaignRejected, domain.CampaignArchived)},
		"approval_status":        {Column: "approval_status", Kind: KindEnum, Enum: approvalStatuses},
		"visibility":             {Column: "visibility", Kind: KindEnum, Enum: enum(domain.VisibilityPublic, domain.VisibilityPrivate)},
		"currency":               {Column: "currency", Kind: KindString},
		"budget_total":           {Column: "budget_total", Kind: KindDecimal, Sortable: true},
		"budget_spent":           {Column: "budget_spent", Kind: KindDecimal, Sortable: true},
		"quality_score":          {Column: "quality_score", Kind: KindFloat, Sortable: true},
		"start_date":             {Column: "start_date", Kind: KindTime, Sortable: true},
		"end_date":               {Column: "end_date", Kind: KindTime, Sortable: true},
		"total_platforms_count":  {Column: "total_platforms_count", Kind: KindInt, Sortable: true},
		"active_platforms_count": {Column: "active_platforms_count", Kind: KindInt, Sortable: true},
		"created_at":             {Column: "created_at", Kind: KindTime, Sortable: true},
		"updated_at":             {Column: "updated_at", Kind: KindTime, Sortable: true},
	},
}

// Platforms is the allow-list for platform listings.
var Platforms = Schema{
	Entity:      domain.EntityPlatform,
	DefaultSort: "created_at:desc",
	Fields: map[string]Field{
		"id":       {Column: "id", Kind: KindUUID, Sortable: true},
		"owner_id": {Column: "owner_id", Kind: KindUUID},
		"name":     {Column: "name", Kind: KindString, Sortable: true},
		"url":      {Column: "url", Kind: KindString},
		"type": {Column: "type", Kind: KindEnum, Enum: enum(
			domain.PlatformWebsite, domain.PlatformMobileApp, domain.PlatformSocialMedia, domain.PlatformPodcast,
			domain.PlatformNewsletter, domain.PlatformVideoChannel, domain.PlatformOther)},
		"status": {Column: "status", Kind: KindEnum, Sortable: true, Enum: enum(
			domain.PlatformDraft, domain.PlatformPendingReview, domain.PlatformActive, domain.PlatformPaused,
			domain.PlatformSuspended, domain.PlatformRejected, domain.PlatformArchived)},
		"moderation_status": {Column: "moderation_status", Kind: KindEnum, Enum: approvalStatuses},
		"verification_status": {Column: "verification_status", Kind: KindEnum, Enum: enum(
			domain.VerificationUnverified, domain.VerificationPending, domain.VerificationVerified, domain.VerificationFailed)},
		"pricing_model": {Column: "pricing_model", Kind: KindEnum, Enum: enum(
			domain.PricingCPM, domain.PricingCPC, domain.PricingCPA, domain.PricingFlatRate)},
		"audience_size":          {Column: "audience_size", Kind: KindInt, Sortable: true},
		"base_price":             {Column: "base_price", Kind: KindDecimal, Sortable: true},
		"rating":                 {Column: "rating", Kind: KindFloat, Sortable: true},
		"quality_score":          {Column: "quality_score", Kind: KindFloat, Sortable: true},
		"total_campaigns_count":  {Column: "total_campaigns_count", Kind: KindInt, Sortable: true},
		"active_campaigns_count": {Column: "active_campaigns_count", Kind: KindInt, Sortable: true},
		"last_campaign_date":     {Column: "last_campaign_date", Kind: KindTime, Sortable: true},
		"created_at":             {Column: "created_at", Kind: KindTime, Sortable: true},
	},
}

// Placements is the allow-list for placement listings.
var Placements = Schema{
	Entity:      domain.EntityPlacement,
	DefaultSort: "created_at:desc",
	Fields: map[string]Field{
		"id":          {Column: "id", Kind: KindUUID, Sortable: true},
		"campaign_id": {Column: "campaign_id", Kind: KindUUID},
		"platform_id": {Column: "platform_id", Kind: KindUUID},
		"created_by":  {Column: "created_by", Kind: KindUUID},
		"status": {Column: "status", Kind: KindEnum, Sortable: true, Enum: enum(
			domain.PlacementPending, domain.PlacementApproved, domain.PlacementActive, domain.PlacementPaused,
			domain.PlacementCompleted, domain.PlacementCancelled, domain.PlacementRejected)},
		"payment_status": {Column: "payment_status", Kind: KindEnum, Enum: enum(
			domain.PaymentPending, domain.PaymentPartial, domain.PaymentPaid, domain.PaymentRefunded)},
		"platform_approved": {Column: "platform_approved", Kind: KindBool},
		"start_date":        {Column: "start_date", Kind: KindTime, Sortable: true},
		"end_date":          {Column: "end_date", Kind: KindTime, Sortable: true},
		"agreed_price":      {Column: "agreed_price", Kind: KindDecimal, Sortable: true},
		"paid_amount":       {Column: "paid_amount", Kind: KindDecimal, Sortable: true},
		"impressions":       {Column: "impressions", Kind: KindInt, Sortable: true},
		"clicks":            {Column: "clicks", Kind: KindInt, Sortable: true},
		"conversions":       {Column: "conversions", Kind: KindInt, Sortable: true},
		"created_at":        {Column: "created_at", Kind: KindTime, Sortable: true},
	},
}
