package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
	"adsmarket/internal/core/query"
)

func TestCreatePlacementDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, "1000")
	pl := f.activePlatform(t, "https://blog.example.com")

	in := port.CreatePlacementInput{
		CampaignID:  c.ID,
		PlatformID:  pl.ID,
		StartDate:   date(2025, 1, 10),
		EndDate:     date(2025, 1, 20),
		AgreedPrice: dec("250"),
	}
	first, err := f.svc.CreatePlacement(ctx, f.advertiser, in)
	require.NoError(t, err)
	assert.Equal(t, domain.PlacementPending, first.Status)

	_, err = f.svc.CreatePlacement(ctx, f.advertiser, in)
	require.ErrorIs(t, err, domain.ErrDuplicateBooking)

	platform, err := f.svc.GetPlatform(ctx, f.publisher, pl.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, platform.TotalCampaignsCount)
	require.NotNil(t, platform.LastCampaignDate)

	campaign, err := f.svc.GetCampaign(ctx, f.advertiser, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, campaign.TotalPlatformsCount)
	assert.EqualValues(t, 1, campaign.PendingPlatformsCount)
}

// TestConcurrentDuplicateBooking ensures that racing identical bookings
// produce exactly one placement.
func TestConcurrentDuplicateBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, "1000")
	pl := f.activePlatform(t, "https://blog.example.com")

	in := port.CreatePlacementInput{
		CampaignID:  c.ID,
		PlatformID:  pl.ID,
		StartDate:   date(2025, 1, 10),
		EndDate:     date(2025, 1, 20),
		AgreedPrice: dec("10"),
	}
	const workers = 16
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		created    int
		duplicates int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreatePlacement(ctx, f.advertiser, in)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, domain.ErrDuplicateBooking):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, duplicates)

	page, err := f.svc.ListPlacements(ctx, f.admin, query.Spec{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
}

func TestCreatePlacementRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, "100")
	pl := f.activePlatform(t, "https://blog.example.com")

	base := port.CreatePlacementInput{
		CampaignID:  c.ID,
		PlatformID:  pl.ID,
		StartDate:   date(2025, 1, 2),
		EndDate:     date(2025, 1, 3),
		AgreedPrice: dec("10"),
	}

	tests := []struct {
		name   string
		who    domain.Principal
		mutate func(*port.CreatePlacementInput)
		want   error
	}{
		{
			name:   "empty window",
			who:    f.advertiser,
			mutate: func(in *port.CreatePlacementInput) { in.EndDate = in.StartDate },
			want:   domain.ErrValidation,
		},
		{
			name:   "outside campaign window",
			who:    f.advertiser,
			mutate: func(in *port.CreatePlacementInput) { in.EndDate = date(2025, 2, 3) },
			want:   &domain.Error{Kind: domain.KindValidation, Code: "PLACEMENT_OUTSIDE_CAMPAIGN"},
		},
		{
			name:   "price above remaining budget",
			who:    f.advertiser,
			mutate: func(in *port.CreatePlacementInput) { in.AgreedPrice = dec("100.01") },
			want:   domain.ErrOverBudget,
		},
		{
			name:   "stranger",
			who:    f.publisher,
			mutate: func(*port.CreatePlacementInput) {},
			want:   domain.ErrUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := f.svc.CreatePlacement(ctx, tt.who, in)
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("paused platform", func(t *testing.T) {
		_, err := f.svc.TransitionPlatformStatus(ctx, f.publisher, pl.ID, statusChange(domain.PlatformPaused))
		require.NoError(t, err)
		_, err = f.svc.CreatePlacement(ctx, f.advertiser, base)
		require.ErrorIs(t, err, &domain.Error{Kind: domain.KindValidation, Code: "PLATFORM_NOT_BOOKABLE"})
	})
}

// TestActiveCountersTrackPlacements checks the counter invariant after every
// committed placement transition.
func TestActiveCountersTrackPlacements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, "1000")
	pl := f.activePlatform(t, "https://blog.example.com")

	var placements []domain.Placement
	for day := 2; day <= 8; day += 2 {
		placements = append(placements, f.book(t, c, pl, day))
	}

	assertCounters := func(t *testing.T) {
		t.Helper()
		active, err := f.svc.ListPlacements(ctx, f.admin, query.Spec{
			Filter: map[string]map[string]any{
				"platform_id": {"eq": pl.ID.String()},
				"status":      {"eq": "active"},
			},
		})
		require.NoError(t, err)
		platform, err := f.svc.GetPlatform(ctx, f.admin, pl.ID)
		require.NoError(t, err)
		assert.Equal(t, active.Total, platform.ActiveCampaignsCount)
		campaign, err := f.svc.GetCampaign(ctx, f.admin, c.ID)
		require.NoError(t, err)
		assert.Equal(t, active.Total, campaign.ActivePlatformsCount)
	}

	move := func(p domain.Placement, who domain.Principal, to domain.PlacementStatus) {
		t.Helper()
		_, err := f.svc.TransitionPlacementStatus(ctx, who, p.ID, statusChange(to))
		require.NoError(t, err)
		assertCounters(t)
	}

	for _, p := range placements {
		move(p, f.publisher, domain.PlacementApproved)
		move(p, f.advertiser, domain.PlacementActive)
	}
	move(placements[0], f.advertiser, domain.PlacementPaused)
	move(placements[1], f.publisher, domain.PlacementCompleted)
	move(placements[2], f.advertiser, domain.PlacementCancelled)
	move(placements[0], f.advertiser, domain.PlacementActive)

	platform, err := f.svc.GetPlatform(ctx, f.admin, pl.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, platform.ActiveCampaignsCount)
	assert.EqualValues(t, 4, platform.TotalCampaignsCount)
}

func TestConcurrentPlacementTransitionsKeepCounters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, "1000")
	pl := f.activePlatform(t, "https://blog.example.com")

	var placements []domain.Placement
	for day := 2; day <= 20; day++ {
		p := f.book(t, c, pl, day)
		_, err := f.svc.TransitionPlacementStatus(ctx, f.publisher, p.ID, statusChange(domain.PlacementApproved))
		require.NoError(t, err)
		placements = append(placements, p)
	}

	var wg sync.WaitGroup
	for _, p := range placements {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := retry(func() (domain.Placement, error) {
				return f.svc.TransitionPlacementStatus(ctx, f.advertiser, p.ID, statusChange(domain.PlacementActive))
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	platform, err := f.svc.GetPlatform(ctx, f.admin, pl.ID)
	require.NoError(t, err)
	assert.EqualValues(t, len(placements), platform.ActiveCampaignsCount)
	campaign, err := f.svc.GetCampaign(ctx, f.admin, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, len(placements), campaign.ActivePlatformsCount)
	assert.EqualValues(t, 0, campaign.PendingPlatformsCount)
}

func TestPlacementTransitionAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, "1000")
	pl := f.activePlatform(t, "https://blog.example.com")
	p := f.book(t, c, pl, 5)

	_, err := f.svc.TransitionPlacementStatus(ctx, f.advertiser, p.ID, statusChange(domain.PlacementApproved))
	require.ErrorIs(t, err, domain.ErrUnauthorized, "only the platform side approves")

	p, err = f.svc.TransitionPlacementStatus(ctx, f.publisher, p.ID, statusChange(domain.PlacementApproved))
	require.NoError(t, err)
	assert.True(t, p.PlatformApproved)
	require.NotNil(t, p.ApprovedAt)

	_, err = f.svc.TransitionPlacementStatus(ctx, f.publisher, p.ID, statusChange(domain.PlacementCompleted))
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPlacementPaymentsAndMetrics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, "1000")
	pl := f.activePlatform(t, "https://blog.example.com")
	p := f.book(t, c, pl, 5)

	_, err := f.svc.RecordPlacementMetrics(ctx, f.publisher, p.ID, domain.Metrics{Impressions: 10})
	require.ErrorIs(t, err, domain.ErrImmutableState, "pending placements have no delivery")

	p, err = f.svc.RecordPlacementPayment(ctx, f.advertiser, p.ID, port.PaymentInput{Amount: dec("4")})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPartial, p.PaymentStatus)

	_, err = f.svc.RecordPlacementPayment(ctx, f.advertiser, p.ID, port.PaymentInput{Amount: dec("7")})
	require.ErrorIs(t, err, &domain.Error{Kind: domain.KindValidation, Code: "PAYMENT_EXCEEDS_PRICE"})

	p, err = f.svc.RecordPlacementPayment(ctx, f.advertiser, p.ID, port.PaymentInput{Amount: dec("6")})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, p.PaymentStatus)

	_, err = f.svc.RecordPlacementPayment(ctx, f.advertiser, p.ID, port.PaymentInput{Refund: true})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	p, err = f.svc.RecordPlacementPayment(ctx, f.admin, p.ID, port.PaymentInput{Refund: true})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentRefunded, p.PaymentStatus)
	assert.True(t, p.PaidAmount.IsZero())

	_, err = f.svc.TransitionPlacementStatus(ctx, f.publisher, p.ID, statusChange(domain.PlacementApproved))
	require.NoError(t, err)
	_, err = f.svc.TransitionPlacementStatus(ctx, f.publisher, p.ID, statusChange(domain.PlacementActive))
	require.NoError(t, err)
	p, err = f.svc.RecordPlacementMetrics(ctx, f.publisher, p.ID, domain.Metrics{Impressions: 1000, Clicks: 12, Conversions: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 1000, p.Impressions)
	assert.EqualValues(t, 12, p.Clicks)
}

func TestResyncCounters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, "1000")
	pl := f.activePlatform(t, "https://blog.example.com")
	f.book(t, c, pl, 3)
	f.book(t, c, pl, 6)

	_, err := f.svc.ResyncCounters(ctx, f.publisher, pl.ID)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	got, err := f.svc.ResyncCounters(ctx, f.admin, pl.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.TotalCampaignsCount)
	assert.EqualValues(t, 0, got.ActiveCampaignsCount)
	require.NotNil(t, got.LastCampaignDate)
}

func TestDeleteCampaignCancelsPlacements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.draftCampaign(t, "1000")
	pl := f.activePlatform(t, "https://blog.example.com")
	p := f.book(t, c, pl, 4)

	deleted, err := f.svc.DeleteCampaign(ctx, f.advertiser, c.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeletedAt)
	assert.EqualValues(t, 0, deleted.PendingPlatformsCount)

	got, err := f.svc.GetPlacement(ctx, f.advertiser, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlacementCancelled, got.Status)

	_, err = f.svc.GetCampaign(ctx, f.advertiser, c.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.TransitionCampaignStatus(ctx, f.admin, c.ID, statusChange(domain.CampaignPendingApproval))
	require.ErrorIs(t, err, domain.ErrImmutableState)
}

func TestDeletePlatform(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.activeCampaign(t, "1000")
	pl := f.activePlatform(t, "https://gone.example.com")
	pending := f.book(t, c, pl, 4)
	running := f.book(t, c, pl, 8)
	for _, st := range []domain.PlacementStatus{domain.PlacementApproved, domain.PlacementActive} {
		_, err := f.svc.TransitionPlacementStatus(ctx, f.publisher, running.ID, statusChange(st))
		require.NoError(t, err)
	}

	_, err := f.svc.DeletePlatform(ctx, f.advertiser, pl.ID)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.DeletePlatform(ctx, f.publisher, pl.ID)
	require.ErrorIs(t, err, domain.ErrImmutableState, "an active placement blocks deletion")

	_, err = f.svc.TransitionPlacementStatus(ctx, f.advertiser, running.ID, statusChange(domain.PlacementCancelled))
	require.NoError(t, err)

	deleted, err := f.svc.DeletePlatform(ctx, f.publisher, pl.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeletedAt)
	assert.EqualValues(t, 0, deleted.ActiveCampaignsCount)

	got, err := f.svc.GetPlacement(ctx, f.advertiser, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlacementCancelled, got.Status)

	camp, err := f.svc.GetCampaign(ctx, f.advertiser, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, camp.PendingPlatformsCount)

	_, err = f.svc.GetPlatform(ctx, f.publisher, pl.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.svc.GetPlatform(ctx, f.admin, pl.ID)
	require.NoError(t, err)

	_, err = f.svc.DeletePlatform(ctx, f.admin, pl.ID)
	require.ErrorIs(t, err, domain.ErrImmutableState)
	_, err = f.svc.TransitionPlatformStatus(ctx, f.publisher, pl.ID, statusChange(domain.PlatformPaused))
	require.ErrorIs(t, err, domain.ErrImmutableState)

	// The url is free again.
	again := f.activePlatform(t, "https://gone.example.com")
	assert.NotEqual(t, pl.ID, again.ID)
}
