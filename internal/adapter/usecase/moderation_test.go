package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

func (f *fixture) pendingCampaign(t *testing.T) domain.Campaign {
	t.Helper()
	c := f.draftCampaign(t, "500")
	c, err := f.svc.TransitionCampaignStatus(context.Background(), f.advertiser, c.ID, statusChange(domain.CampaignPendingApproval))
	require.NoError(t, err)
	return c
}

func TestModerateCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("rejection requires notes", func(t *testing.T) {
		c := f.pendingCampaign(t)
		_, err := f.svc.ModerateCampaign(ctx, f.moderator, c.ID, port.ModerationInput{Decision: domain.ApprovalRejected})
		require.ErrorIs(t, err, domain.ErrValidation)

		c, err = f.svc.ModerateCampaign(ctx, f.moderator, c.ID, port.ModerationInput{Decision: domain.ApprovalRejected, Notes: "misleading claims"})
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignRejected, c.Status)
		assert.Equal(t, domain.ApprovalRejected, c.ApprovalStatus)
		assert.Equal(t, "misleading claims", c.ModerationNotes)
		require.NotNil(t, c.ModeratedBy)
		assert.Equal(t, f.moderator.ID, *c.ModeratedBy)
	})

	t.Run("approval launches", func(t *testing.T) {
		c := f.pendingCampaign(t)
		c, err := f.svc.ModerateCampaign(ctx, f.moderator, c.ID, port.ModerationInput{Decision: domain.ApprovalApproved})
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignActive, c.Status)
		require.NotNil(t, c.LaunchedAt)
	})

	t.Run("requires changes returns to draft", func(t *testing.T) {
		c := f.pendingCampaign(t)
		c, err := f.svc.ModerateCampaign(ctx, f.moderator, c.ID, port.ModerationInput{Decision: domain.ApprovalRequiresChanges, Notes: "add a landing page"})
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignDraft, c.Status)
		assert.Equal(t, domain.ApprovalRequiresChanges, c.ApprovalStatus)
	})

	t.Run("owner cannot moderate", func(t *testing.T) {
		c := f.pendingCampaign(t)
		_, err := f.svc.ModerateCampaign(ctx, f.advertiser, c.ID, port.ModerationInput{Decision: domain.ApprovalApproved})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("resolved campaign is not moderatable", func(t *testing.T) {
		c := f.activeCampaign(t, "100")
		_, err := f.svc.ModerateCampaign(ctx, f.moderator, c.ID, port.ModerationInput{Decision: domain.ApprovalRejected, Notes: "late"})
		require.ErrorIs(t, err, domain.ErrNotModerable)
	})

	t.Run("approval edge is not a plain transition", func(t *testing.T) {
		c := f.pendingCampaign(t)
		_, err := f.svc.TransitionCampaignStatus(ctx, f.advertiser, c.ID, statusChange(domain.CampaignActive))
		require.ErrorIs(t, err, &domain.Error{Kind: domain.KindValidation, Code: "MODERATION_REQUIRED"})
	})
}

// TestConcurrentModerators ensures exactly one of two racing decisions wins.
func TestConcurrentModerators(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.pendingCampaign(t)

	decisions := []port.ModerationInput{
		{Decision: domain.ApprovalApproved, Version: c.Version},
		{Decision: domain.ApprovalRejected, Notes: "duplicate", Version: c.Version},
	}
	errs := make([]error, len(decisions))
	var wg sync.WaitGroup
	for i, in := range decisions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.svc.ModerateCampaign(ctx, f.moderator, c.ID, in)
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, domain.KindOf(err) == domain.KindConcurrentModification || domain.KindOf(err) == domain.KindNotModerable, "got %v", err)
	}
	assert.Equal(t, 1, ok)
}

func TestModeratePlatform(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pl, err := f.svc.CreatePlatform(ctx, f.publisher, port.CreatePlatformInput{
		Name:         "Podcast",
		Type:         domain.PlatformPodcast,
		URL:          "https://pod.example.com",
		PricingModel: domain.PricingFlatRate,
		BasePrice:    dec("100"),
	})
	require.NoError(t, err)

	_, err = f.svc.ModeratePlatform(ctx, f.moderator, pl.ID, port.ModerationInput{Decision: domain.ApprovalApproved})
	require.ErrorIs(t, err, domain.ErrNotModerable, "draft platforms only accept requires_changes")

	pl, err = f.svc.ModeratePlatform(ctx, f.moderator, pl.ID, port.ModerationInput{Decision: domain.ApprovalRequiresChanges, Notes: "add audience stats"})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformDraft, pl.Status)
	assert.Equal(t, domain.ApprovalRequiresChanges, pl.ModerationStatus)

	_, err = f.svc.TransitionPlatformStatus(ctx, f.publisher, pl.ID, statusChange(domain.PlatformPendingReview))
	require.NoError(t, err)
	pl, err = f.svc.ModeratePlatform(ctx, f.moderator, pl.ID, port.ModerationInput{Decision: domain.ApprovalRequiresChanges, Notes: "still missing stats"})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformPendingReview, pl.Status)

	pl, err = f.svc.ModeratePlatform(ctx, f.moderator, pl.ID, port.ModerationInput{Decision: domain.ApprovalApproved})
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformActive, pl.Status)
	assert.Equal(t, domain.ApprovalApproved, pl.ModerationStatus)
}
