package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
	"adsmarket/internal/core/query"
)

// Marketplace is the set of use cases Seed drives.
type Marketplace interface {
	port.CampaignUseCase
	port.PlatformUseCase
	port.PlacementUseCase
}

// Demo principals. Their ids are stable so they can be passed in X-User-ID.
var (
	DemoAdvertiser = domain.Principal{ID: demoID("advertiser")}
	DemoPublisher  = domain.Principal{ID: demoID("publisher")}
	DemoModerator  = domain.Principal{ID: demoID("moderator"), IsModerator: true}
	DemoAdmin      = domain.Principal{ID: demoID("admin"), IsAdmin: true}
)

func demoID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://adsmarket.local/demo/"+name))
}

// Seed loads a small demo marketplace through the use cases, so every row
// it writes has passed the same validation, moderation and counter rules as
// live traffic. It does nothing when platforms already exist.
func Seed(ctx context.Context, svc Marketplace, now time.Time, log *slog.Logger) error {
	existing, err := svc.ListPlatforms(ctx, DemoAdmin, query.Spec{Limit: 1})
	if err != nil {
		return err
	}
	if existing.Total > 0 {
		log.InfoContext(ctx, "seed skipped, store is not empty", slog.Int64("platforms", existing.Total))
		return nil
	}

	day := now.UTC().Truncate(24 * time.Hour)
	types := []domain.PlatformType{domain.PlatformWebsite, domain.PlatformPodcast, domain.PlatformNewsletter}
	platforms := make([]domain.Platform, 0, len(types))
	for i, typ := range types {
		pl, err := svc.CreatePlatform(ctx, DemoPublisher, port.CreatePlatformInput{
			Name:         fmt.Sprintf("Demo %s %d", typ, i+1),
			Type:         typ,
			URL:          fmt.Sprintf("https://demo-%d.example.com", i+1),
			AudienceSize: int64(10000 * (i + 1)),
			Demographics: domain.Demographics{
				AgeRanges: domain.Shares{{Key: "18-24", Percent: 40}, {Key: "25-34", Percent: 60}},
				TopGeos:   []string{"AM", "DE"},
			},
			PricingModel: domain.PricingFlatRate,
			BasePrice:    decimal.NewFromInt(int64(50 * (i + 1))),
		})
		if err != nil {
			return fmt.Errorf("seed platform %d: %w", i+1, err)
		}
		if pl, err = svc.TransitionPlatformStatus(ctx, DemoPublisher, pl.ID, port.StatusChange[domain.PlatformStatus]{Status: domain.PlatformPendingReview}); err != nil {
			return fmt.Errorf("submit platform %d: %w", i+1, err)
		}
		if pl, err = svc.ModeratePlatform(ctx, DemoModerator, pl.ID, port.ModerationInput{Decision: domain.ApprovalApproved}); err != nil {
			return fmt.Errorf("approve platform %d: %w", i+1, err)
		}
		platforms = append(platforms, pl)
	}

	objectives := []domain.Objective{domain.ObjectiveAwareness, domain.ObjectiveTraffic, domain.ObjectiveConversions}
	for i, objective := range objectives {
		c, err := svc.CreateCampaign(ctx, DemoAdvertiser, port.CreateCampaignInput{
			Title:       fmt.Sprintf("Demo campaign %d", i+1),
			Objective:   objective,
			BudgetTotal: decimal.NewFromInt(5000),
			StartDate:   day,
			EndDate:     day.AddDate(0, 1, 0),
			Targeting:   domain.Targeting{Languages: []string{"en"}, Geos: []string{"AM"}},
		})
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", i+1, err)
		}
		for j, pl := range platforms {
			start := day.AddDate(0, 0, 7*j)
			_, err = svc.CreatePlacement(ctx, DemoAdvertiser, port.CreatePlacementInput{
				CampaignID:  c.ID,
				PlatformID:  pl.ID,
				StartDate:   start,
				EndDate:     start.AddDate(0, 0, 7),
				AgreedPrice: pl.BasePrice,
			})
			if err != nil {
				return fmt.Errorf("seed placement %d/%d: %w", i+1, j+1, err)
			}
		}
		if c, err = svc.TransitionCampaignStatus(ctx, DemoAdvertiser, c.ID, port.StatusChange[domain.CampaignStatus]{Status: domain.CampaignPendingApproval}); err != nil {
			return fmt.Errorf("submit campaign %d: %w", i+1, err)
		}
		if _, err = svc.ModerateCampaign(ctx, DemoModerator, c.ID, port.ModerationInput{Decision: domain.ApprovalApproved}); err != nil {
			return fmt.Errorf("approve campaign %d: %w", i+1, err)
		}
	}

	log.InfoContext(ctx, "demo data seeded",
		slog.Int("platforms", len(platforms)),
		slog.Int("campaigns", len(objectives)),
		slog.String("advertiser", DemoAdvertiser.ID.String()),
		slog.String("publisher", DemoPublisher.ID.String()),
		slog.String("moderator", DemoModerator.ID.String()),
		slog.String("admin", DemoAdmin.ID.String()),
	)
	return nil
}
