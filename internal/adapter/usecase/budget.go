package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

// BudgetTracker owns the spend arithmetic of a campaign. It never clamps: a
// spend that does not fit is rejected whole.
type BudgetTracker struct{}

// Remaining returns budget_total - budget_spent.
func (BudgetTracker) Remaining(c domain.Campaign) decimal.Decimal {
	return c.BudgetRemaining()
}

// CompletionRate returns max(time elapsed %, budget spent %) clamped to [0,100].
func (BudgetTracker) CompletionRate(c domain.Campaign, now time.Time) float64 {
	return c.CompletionRate(now)
}

// Spend adds amount to the campaign's spend. Reaching the total completes
// the campaign in the same step.
func (BudgetTracker) Spend(c domain.Campaign, amount decimal.Decimal, now time.Time) (domain.Campaign, error) {
	if !amount.IsPositive() {
		return c, domain.Validation("SPEND_AMOUNT_INVALID", "spend amount must be positive")
	}
	if err := domain.CheckMoney("SPEND_AMOUNT_INVALID", "spend amount", amount); err != nil {
		return c, err
	}
	if c.Deleted() {
		return c, domain.ImmutableState("campaign %s is deleted", c.ID)
	}
	// Checked before the status so a spend racing the one that exhausted
	// the budget reports OverBudget, not a status error.
	if amount.GreaterThan(c.BudgetRemaining()) {
		return c, domain.OverBudget(c.BudgetRemaining(), amount)
	}
	if c.Status != domain.CampaignActive && c.Status != domain.CampaignPaused {
		return c, domain.Validation("CAMPAIGN_NOT_SPENDABLE", "campaign %s in status %q accepts no spend", c.ID, c.Status)
	}
	c.BudgetSpent = c.BudgetSpent.Add(amount)
	if c.BudgetExhausted() {
		return c.Transition(domain.CampaignCompleted, now)
	}
	return c, nil
}

// Refund subtracts amount from the spend. A completed campaign stays completed.
func (BudgetTracker) Refund(c domain.Campaign, amount decimal.Decimal) (domain.Campaign, error) {
	if !amount.IsPositive() || amount.GreaterThan(c.BudgetSpent) {
		return c, domain.Validation("REFUND_AMOUNT_INVALID", "refund must be positive and at most the spent amount %s", c.BudgetSpent)
	}
	if err := domain.CheckMoney("REFUND_AMOUNT_INVALID", "refund amount", amount); err != nil {
		return c, err
	}
	if c.Deleted() {
		return c, domain.ImmutableState("campaign %s is deleted", c.ID)
	}
	c.BudgetSpent = c.BudgetSpent.Sub(amount)
	return c, nil
}

// ApplySpend records spend against a campaign.
func (m *Marketplace) ApplySpend(ctx context.Context, p domain.Principal, id uuid.UUID, amount decimal.Decimal) (c domain.Campaign, err error) {
	ctx, end := m.span(ctx, "Marketplace.ApplySpend", p, idAttr("campaign.id", id), attribute.String("amount", amount.String()))
	defer end(&err)

	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetCampaign(ctx, id)
		if err != nil {
			return err
		}
		if !p.CanEdit(cur.OwnerID) {
			return domain.Unauthorized("principal %s may not spend on campaign %s", p.ID, id)
		}
		next, err := m.budget.Spend(cur, amount, m.clock.Now())
		if err != nil {
			return err
		}
		next.UpdatedAt = m.clock.Now()
		if err = tx.UpdateCampaign(ctx, &next); err != nil {
			return err
		}
		c = next
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	if c.Status == domain.CampaignCompleted {
		m.log.InfoContext(ctx, "campaign budget exhausted",
			slog.String("campaign_id", c.ID.String()),
			slog.String("budget_total", c.BudgetTotal.String()))
	}
	return c, nil
}

// RefundSpend returns spend to a campaign's budget. Admin only.
func (m *Marketplace) RefundSpend(ctx context.Context, p domain.Principal, id uuid.UUID, amount decimal.Decimal) (c domain.Campaign, err error) {
	ctx, end := m.span(ctx, "Marketplace.RefundSpend", p, idAttr("campaign.id", id), attribute.String("amount", amount.String()))
	defer end(&err)

	if !p.IsAdmin {
		return domain.Campaign{}, domain.Unauthorized("only admins may refund spend")
	}
	err = m.store.Transact(ctx, func(ctx context.Context, tx port.Tx) error {
		cur, err := tx.GetCampaign(ctx, id)
		if err != nil {
			return err
		}
		next, err := m.budget.Refund(cur, amount)
		if err != nil {
			return err
		}
		next.UpdatedAt = m.clock.Now()
		if err = tx.UpdateCampaign(ctx, &next); err != nil {
			return err
		}
		c = next
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	m.log.InfoContext(ctx, "campaign spend refunded",
		slog.String("campaign_id", c.ID.String()),
		slog.String("amount", amount.String()))
	return c, nil
}

// CampaignProgress reports budget consumption and elapsed time.
func (m *Marketplace) CampaignProgress(ctx context.Context, p domain.Principal, id uuid.UUID) (out port.CampaignProgress, err error) {
	ctx, end := m.span(ctx, "Marketplace.CampaignProgress", p, idAttr("campaign.id", id))
	defer end(&err)

	c, err := m.GetCampaign(ctx, p, id)
	if err != nil {
		return port.CampaignProgress{}, err
	}
	return port.CampaignProgress{
		CampaignID:      c.ID,
		CompletionRate:  m.budget.CompletionRate(c, m.clock.Now()),
		BudgetTotal:     c.BudgetTotal,
		BudgetSpent:     c.BudgetSpent,
		BudgetRemaining: m.budget.Remaining(c),
	}, nil
}
