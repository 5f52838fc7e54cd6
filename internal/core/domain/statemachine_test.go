package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignMachine(t *testing.T) {
	allowed := []struct{ from, to CampaignStatus }{
		{CampaignDraft, CampaignPendingApproval},
		{CampaignDraft, CampaignArchived},
		{CampaignPendingApproval, CampaignActive},
		{CampaignPendingApproval, CampaignRejected},
		{CampaignPendingApproval, CampaignDraft},
		{CampaignActive, CampaignPaused},
		{CampaignActive, CampaignCompleted},
		{CampaignPaused, CampaignActive},
		{CampaignPaused, CampaignCompleted},
		{CampaignRejected, CampaignDraft},
	}
	for _, e := range allowed {
		assert.True(t, CampaignMachine.Can(e.from, e.to), "%s -> %s", e.from, e.to)
	}

	denied := []struct{ from, to CampaignStatus }{
		{CampaignCompleted, CampaignActive},
		{CampaignArchived, CampaignDraft},
		{CampaignDraft, CampaignActive},
		{CampaignActive, CampaignActive},
		{CampaignRejected, CampaignActive},
	}
	for _, e := range denied {
		err := CampaignMachine.Check(e.from, e.to)
		require.Error(t, err, "%s -> %s", e.from, e.to)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}

	assert.True(t, CampaignMachine.Terminal(CampaignCompleted))
	assert.True(t, CampaignMachine.Terminal(CampaignArchived))
	assert.False(t, CampaignMachine.Terminal(CampaignPaused))
}

func TestPlatformAndPlacementMachines(t *testing.T) {
	assert.True(t, PlatformMachine.Can(PlatformSuspended, PlatformActive))
	assert.False(t, PlatformMachine.Can(PlatformArchived, PlatformActive))
	assert.False(t, PlatformMachine.Can(PlatformDraft, PlatformActive))
	assert.True(t, PlatformMachine.Terminal(PlatformArchived))

	assert.ElementsMatch(t,
		[]PlacementStatus{PlacementApproved, PlacementRejected, PlacementCancelled},
		PlacementMachine.Next(PlacementPending))
	assert.True(t, PlacementMachine.Terminal(PlacementCompleted))
	assert.True(t, PlacementMachine.Terminal(PlacementCancelled))
	assert.True(t, PlacementMachine.Terminal(PlacementRejected))
}

func TestNextReturnsCopy(t *testing.T) {
	next := CampaignMachine.Next(CampaignDraft)
	next[0] = CampaignCompleted
	assert.True(t, CampaignMachine.Can(CampaignDraft, CampaignPendingApproval))
	assert.False(t, CampaignMachine.Can(CampaignDraft, CampaignCompleted))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(EntityCampaign, "paused", "active"))
	assert.False(t, CanTransition(EntityCampaign, "completed", "active"))
	assert.True(t, CanTransition(EntityPlatform, "pending_review", "active"))
	assert.True(t, CanTransition(EntityPlacement, "approved", "active"))
	assert.False(t, CanTransition("INVOICE", "draft", "paid"))
}
