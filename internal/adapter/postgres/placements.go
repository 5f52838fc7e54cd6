package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
	"adsmarket/internal/core/query"
)

const placementColumns = `id, campaign_id, platform_id, created_by, status, start_date, end_date,
	agreed_price, payment_status, paid_amount, impressions, clicks, conversions,
	platform_approved, approved_at, version, created_at, updated_at`

func scanPlacement(row pgx.Row) (domain.Placement, error) {
	var p domain.Placement
	err := row.Scan(
		&p.ID, &p.CampaignID, &p.PlatformID, &p.CreatedBy, &p.Status, &p.StartDate, &p.EndDate,
		&p.AgreedPrice, &p.PaymentStatus, &p.PaidAmount, &p.Impressions, &p.Clicks, &p.Conversions,
		&p.PlatformApproved, &p.ApprovedAt, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (t *tx) GetPlacement(ctx context.Context, id uuid.UUID) (domain.Placement, error) {
	p, err := scanPlacement(t.q.QueryRow(ctx, `SELECT `+placementColumns+` FROM campaign_platforms WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Placement{}, domain.NotFound(domain.EntityPlacement, id)
	}
	if err != nil {
		return domain.Placement{}, translate(err)
	}
	return p, nil
}

func (t *tx) FindPlacement(ctx context.Context, key domain.BookingKey) (domain.Placement, bool, error) {
	key = key.Normalize()
	p, err := scanPlacement(t.q.QueryRow(ctx, `SELECT `+placementColumns+` FROM campaign_platforms
WHERE campaign_id = $1 AND platform_id = $2 AND start_date = $3 AND end_date = $4`,
		key.CampaignID, key.PlatformID, key.StartDate, key.EndDate))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Placement{}, false, nil
	}
	if err != nil {
		return domain.Placement{}, false, translate(err)
	}
	return p, true, nil
}

func (t *tx) CountPlacements(ctx context.Context, scope port.PlacementScope) (int64, error) {
	b := &builder{}
	if scope.CampaignID != uuid.Nil {
		b.where("campaign_id = " + b.arg(scope.CampaignID))
	}
	if scope.PlatformID != uuid.Nil {
		b.where("platform_id = " + b.arg(scope.PlatformID))
	}
	if scope.Status != "" {
		b.where("status = " + b.arg(scope.Status))
	}
	var n int64
	if err := t.q.QueryRow(ctx, `SELECT count(*) FROM campaign_platforms`+b.whereClause(), b.args...).Scan(&n); err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (t *tx) ListPlacements(ctx context.Context, q query.Query) ([]domain.Placement, error) {
	b := &builder{}
	if err := b.predicates(q); err != nil {
		return nil, err
	}
	rows, err := t.q.Query(ctx, `SELECT `+placementColumns+` FROM campaign_platforms`+b.whereClause()+b.page(q), b.args...)
	if err != nil {
		return nil, translate(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Placement, error) {
		return scanPlacement(row)
	})
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (t *tx) CountPlacementsMatching(ctx context.Context, q query.Query) (int64, error) {
	b := &builder{}
	if err := b.predicates(q); err != nil {
		return 0, err
	}
	var n int64
	if err := t.q.QueryRow(ctx, `SELECT count(*) FROM campaign_platforms`+b.whereClause(), b.args...).Scan(&n); err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (t *tx) InsertPlacement(ctx context.Context, p *domain.Placement) error {
	_, err := t.q.Exec(ctx, `INSERT INTO campaign_platforms (`+placementColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,1,$16,$17)`,
		p.ID, p.CampaignID, p.PlatformID, p.CreatedBy, p.Status, p.StartDate, p.EndDate,
		p.AgreedPrice, p.PaymentStatus, p.PaidAmount, p.Impressions, p.Clicks, p.Conversions,
		p.PlatformApproved, p.ApprovedAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	p.Version = 1
	return nil
}

// UpdatePlacement writes the mutable columns. The booking key columns are
// never rewritten.
func (t *tx) UpdatePlacement(ctx context.Context, p *domain.Placement) error {
	tag, err := t.q.Exec(ctx, `UPDATE campaign_platforms SET
	status = $3, agreed_price = $4, payment_status = $5, paid_amount = $6,
	impressions = $7, clicks = $8, conversions = $9, platform_approved = $10,
	approved_at = $11, updated_at = $12, version = version + 1
WHERE id = $1 AND version = $2`,
		p.ID, p.Version, p.Status, p.AgreedPrice, p.PaymentStatus, p.PaidAmount,
		p.Impressions, p.Clicks, p.Conversions, p.PlatformApproved,
		p.ApprovedAt, p.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ConcurrentModification(domain.EntityPlacement, p.ID, nil)
	}
	p.Version++
	return nil
}
