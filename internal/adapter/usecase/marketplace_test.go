package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"adsmarket/internal/adapter/memory"
	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	svc   *Marketplace
	clock *testClock

	advertiser domain.Principal
	publisher  domain.Principal
	moderator  domain.Principal
	admin      domain.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := &testClock{now: date(2025, 1, 16)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		svc:        NewMarketplace(memory.NewStore(5*time.Second), clock, logger),
		clock:      clock,
		advertiser: domain.Principal{ID: uuid.New()},
		publisher:  domain.Principal{ID: uuid.New()},
		moderator:  domain.Principal{ID: uuid.New(), IsModerator: true},
		admin:      domain.Principal{ID: uuid.New(), IsAdmin: true},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// draftCampaign creates a campaign over January 2025 with the given budget.
func (f *fixture) draftCampaign(t *testing.T, budget string) domain.Campaign {
	t.Helper()
	c, err := f.svc.CreateCampaign(context.Background(), f.advertiser, port.CreateCampaignInput{
		Title:       "Winter sale",
		Objective:   domain.ObjectiveConversions,
		BudgetTotal: dec(budget),
		StartDate:   date(2025, 1, 1),
		EndDate:     date(2025, 1, 31),
	})
	require.NoError(t, err)
	return c
}

// activeCampaign creates, submits and approves a campaign.
func (f *fixture) activeCampaign(t *testing.T, budget string) domain.Campaign {
	t.Helper()
	ctx := context.Background()
	c := f.draftCampaign(t, budget)
	_, err := f.svc.TransitionCampaignStatus(ctx, f.advertiser, c.ID, port.StatusChange[domain.CampaignStatus]{Status: domain.CampaignPendingApproval})
	require.NoError(t, err)
	c, err = f.svc.ModerateCampaign(ctx, f.moderator, c.ID, port.ModerationInput{Decision: domain.ApprovalApproved})
	require.NoError(t, err)
	require.Equal(t, domain.CampaignActive, c.Status)
	return c
}

// activePlatform registers, submits and approves a platform.
func (f *fixture) activePlatform(t *testing.T, url string) domain.Platform {
	t.Helper()
	ctx := context.Background()
	pl, err := f.svc.CreatePlatform(ctx, f.publisher, port.CreatePlatformInput{
		Name:         "Tech blog",
		Type:         domain.PlatformWebsite,
		URL:          url,
		AudienceSize: 50_000,
		PricingModel: domain.PricingCPM,
		BasePrice:    dec("12.50"),
	})
	require.NoError(t, err)
	_, err = f.svc.TransitionPlatformStatus(ctx, f.publisher, pl.ID, port.StatusChange[domain.PlatformStatus]{Status: domain.PlatformPendingReview})
	require.NoError(t, err)
	pl, err = f.svc.ModeratePlatform(ctx, f.moderator, pl.ID, port.ModerationInput{Decision: domain.ApprovalApproved})
	require.NoError(t, err)
	require.Equal(t, domain.PlatformActive, pl.Status)
	return pl
}

func (f *fixture) book(t *testing.T, c domain.Campaign, pl domain.Platform, startDay int) domain.Placement {
	t.Helper()
	p, err := f.svc.CreatePlacement(context.Background(), f.advertiser, port.CreatePlacementInput{
		CampaignID:  c.ID,
		PlatformID:  pl.ID,
		StartDate:   date(2025, 1, startDay),
		EndDate:     date(2025, 1, startDay+1),
		AgreedPrice: dec("10"),
	})
	require.NoError(t, err)
	return p
}

// retry re-runs fn while it fails with a retryable error, the way a client
// handles ConcurrentModification.
func retry[T any](fn func() (T, error)) (T, error) {
	for {
		v, err := fn()
		if err == nil || !domain.IsRetryable(err) {
			return v, err
		}
	}
}

func statusChange[S ~string](s S) port.StatusChange[S] {
	return port.StatusChange[S]{Status: s}
}
