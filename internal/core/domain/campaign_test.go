package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func validCampaign() Campaign {
	return Campaign{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Title:          "Winter launch",
		Objective:      ObjectiveAwareness,
		BudgetTotal:    decimal.NewFromInt(1000),
		Currency:       "USD",
		StartDate:      day(1),
		EndDate:        day(31),
		Status:         CampaignActive,
		ApprovalStatus: ApprovalApproved,
		Visibility:     VisibilityPublic,
	}
}

func TestCampaignCompletionRate(t *testing.T) {
	c := validCampaign()
	c.BudgetSpent = decimal.NewFromInt(200)

	// Half the window has elapsed and a fifth of the budget is spent.
	assert.InDelta(t, 50, c.CompletionRate(day(16)), 0.001)

	c.BudgetSpent = decimal.NewFromInt(900)
	assert.InDelta(t, 90, c.CompletionRate(day(16)), 0.001)

	assert.InDelta(t, 100, c.CompletionRate(day(31).AddDate(0, 1, 0)), 0.001)
	c.BudgetSpent = decimal.Zero
	assert.InDelta(t, 0, c.CompletionRate(day(1).AddDate(0, -1, 0)), 0.001)
}

func TestCampaignValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Campaign)
		code   string
	}{
		{"blank title", func(c *Campaign) { c.Title = "  " }, "CAMPAIGN_TITLE_INVALID"},
		{"objective", func(c *Campaign) { c.Objective = "sales" }, "CAMPAIGN_OBJECTIVE_INVALID"},
		{"currency", func(c *Campaign) { c.Currency = "usd" }, "CURRENCY_INVALID"},
		{"zero budget", func(c *Campaign) { c.BudgetTotal = decimal.Zero }, "CAMPAIGN_BUDGET_INVALID"},
		{"overspent", func(c *Campaign) { c.BudgetSpent = decimal.NewFromInt(1001) }, "CAMPAIGN_BUDGET_INVALID"},
		{"dates", func(c *Campaign) { c.EndDate = c.StartDate }, "CAMPAIGN_DATES_INVALID"},
		{"age shares", func(c *Campaign) {
			c.Targeting.AgeRanges = Shares{{Key: "18-24", Percent: 70}, {Key: "25-34", Percent: 40}}
		}, "TARGETING_AGE_RANGES_INVALID"},
	}
	require.NoError(t, validCampaign().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCampaign()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, &Error{Kind: KindValidation, Code: tt.code})
		})
	}
}

func TestCampaignTransition(t *testing.T) {
	c := validCampaign()
	c.Status = CampaignPendingApproval

	active, err := c.Transition(CampaignActive, day(2))
	require.NoError(t, err)
	require.NotNil(t, active.LaunchedAt)
	assert.Equal(t, day(2), *active.LaunchedAt)

	paused, err := active.Transition(CampaignPaused, day(3))
	require.NoError(t, err)
	resumed, err := paused.Transition(CampaignActive, day(4))
	require.NoError(t, err)
	assert.Equal(t, day(2), *resumed.LaunchedAt, "launch stamp is kept on resume")

	_, err = resumed.Transition(CampaignCompleted, day(10))
	assert.ErrorIs(t, err, &Error{Kind: KindInvalidTransition, Code: "CAMPAIGN_NOT_COMPLETABLE"})

	done, err := resumed.Transition(CampaignCompleted, day(31))
	require.NoError(t, err)
	_, err = done.Transition(CampaignActive, day(31))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	deleted := validCampaign()
	now := day(5)
	deleted.DeletedAt = &now
	_, err = deleted.Transition(CampaignPaused, now)
	assert.ErrorIs(t, err, ErrImmutableState)
}

func TestErrorMatching(t *testing.T) {
	err := Validation("CAMPAIGN_TITLE_INVALID", "title must be 1..255 characters")
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, Validation("CURRENCY_INVALID", ""))

	assert.True(t, IsRetryable(ConcurrentModification(EntityCampaign, uuid.New(), nil)))
	assert.True(t, IsRetryable(StorageUnavailable(nil)))
	assert.False(t, IsRetryable(OverBudget(decimal.Zero, decimal.NewFromInt(1))))
	assert.Equal(t, Kind(""), KindOf(assert.AnError))
}
