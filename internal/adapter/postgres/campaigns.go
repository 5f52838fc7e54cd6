package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/query"
)

const campaignColumns = `id, owner_id, title, description, objective, budget_total, budget_spent,
	currency, start_date, end_date, status, approval_status, visibility, quality_score, targeting,
	moderated_by, moderated_at, moderation_notes, launched_at, completed_at, deleted_at,
	total_platforms_count, active_platforms_count, pending_platforms_count,
	version, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c         domain.Campaign
		targeting []byte
	)
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Title, &c.Description, &c.Objective, &c.BudgetTotal, &c.BudgetSpent,
		&c.Currency, &c.StartDate, &c.EndDate, &c.Status, &c.ApprovalStatus, &c.Visibility, &c.QualityScore, &targeting,
		&c.ModeratedBy, &c.ModeratedAt, &c.ModerationNotes, &c.LaunchedAt, &c.CompletedAt, &c.DeletedAt,
		&c.TotalPlatformsCount, &c.ActivePlatformsCount, &c.PendingPlatformsCount,
		&c.Version, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	if err = json.Unmarshal(targeting, &c.Targeting); err != nil {
		return domain.Campaign{}, fmt.Errorf("decode targeting of campaign %s: %w", c.ID, err)
	}
	return c, nil
}

func (t *tx) GetCampaign(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	c, err := scanCampaign(t.q.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.NotFound(domain.EntityCampaign, id)
	}
	if err != nil {
		return domain.Campaign{}, translate(err)
	}
	return c, nil
}

func (t *tx) ListCampaigns(ctx context.Context, q query.Query) ([]domain.Campaign, error) {
	b := &builder{}
	b.where("deleted_at IS NULL")
	if err := b.predicates(q); err != nil {
		return nil, err
	}
	sql := `SELECT ` + campaignColumns + ` FROM campaigns` + b.whereClause() + b.page(q)
	rows, err := t.q.Query(ctx, sql, b.args...)
	if err != nil {
		return nil, translate(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (t *tx) CountCampaigns(ctx context.Context, q query.Query) (int64, error) {
	b := &builder{}
	b.where("deleted_at IS NULL")
	if err := b.predicates(q); err != nil {
		return 0, err
	}
	var n int64
	if err := t.q.QueryRow(ctx, `SELECT count(*) FROM campaigns`+b.whereClause(), b.args...).Scan(&n); err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (t *tx) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	targeting, err := json.Marshal(c.Targeting)
	if err != nil {
		return fmt.Errorf("encode targeting: %w", err)
	}
	_, err = t.q.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,1,$25,$26)`,
		c.ID, c.OwnerID, c.Title, c.Description, c.Objective, c.BudgetTotal, c.BudgetSpent,
		c.Currency, c.StartDate, c.EndDate, c.Status, c.ApprovalStatus, c.Visibility, c.QualityScore, targeting,
		c.ModeratedBy, c.ModeratedAt, c.ModerationNotes, c.LaunchedAt, c.CompletedAt, c.DeletedAt,
		c.TotalPlatformsCount, c.ActivePlatformsCount, c.PendingPlatformsCount,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	c.Version = 1
	return nil
}

func (t *tx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	targeting, err := json.Marshal(c.Targeting)
	if err != nil {
		return fmt.Errorf("encode targeting: %w", err)
	}
	tag, err := t.q.Exec(ctx, `UPDATE campaigns SET
	title = $3, description = $4, objective = $5, budget_total = $6, budget_spent = $7,
	currency = $8, start_date = $9, end_date = $10, status = $11, approval_status = $12,
	visibility = $13, quality_score = $14, targeting = $15, moderated_by = $16, moderated_at = $17,
	moderation_notes = $18, launched_at = $19, completed_at = $20, deleted_at = $21,
	total_platforms_count = $22, active_platforms_count = $23, pending_platforms_count = $24,
	updated_at = $25, version = version + 1
WHERE id = $1 AND version = $2`,
		c.ID, c.Version, c.Title, c.Description, c.Objective, c.BudgetTotal, c.BudgetSpent,
		c.Currency, c.StartDate, c.EndDate, c.Status, c.ApprovalStatus,
		c.Visibility, c.QualityScore, targeting, c.ModeratedBy, c.ModeratedAt,
		c.ModerationNotes, c.LaunchedAt, c.CompletedAt, c.DeletedAt,
		c.TotalPlatformsCount, c.ActivePlatformsCount, c.PendingPlatformsCount,
		c.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ConcurrentModification(domain.EntityCampaign, c.ID, nil)
	}
	c.Version++
	return nil
}
