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

const platformColumns = `id, owner_id, name, description, type, url, audience_size, demographics,
	pricing_model, base_price, currency, status, moderation_status, verification_status,
	rating, quality_score, moderated_by, moderated_at, moderation_notes, deleted_at,
	total_campaigns_count, active_campaigns_count, last_campaign_date,
	version, created_at, updated_at`

func scanPlatform(row pgx.Row) (domain.Platform, error) {
	var (
		p            domain.Platform
		demographics []byte
	)
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.Type, &p.URL, &p.AudienceSize, &demographics,
		&p.PricingModel, &p.BasePrice, &p.Currency, &p.Status, &p.ModerationStatus, &p.VerificationStatus,
		&p.Rating, &p.QualityScore, &p.ModeratedBy, &p.ModeratedAt, &p.ModerationNotes, &p.DeletedAt,
		&p.TotalCampaignsCount, &p.ActiveCampaignsCount, &p.LastCampaignDate,
		&p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Platform{}, err
	}
	if err = json.Unmarshal(demographics, &p.Demographics); err != nil {
		return domain.Platform{}, fmt.Errorf("decode demographics of platform %s: %w", p.ID, err)
	}
	return p, nil
}

func (t *tx) GetPlatform(ctx context.Context, id uuid.UUID) (domain.Platform, error) {
	p, err := scanPlatform(t.q.QueryRow(ctx, `SELECT `+platformColumns+` FROM platforms WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Platform{}, domain.NotFound(domain.EntityPlatform, id)
	}
	if err != nil {
		return domain.Platform{}, translate(err)
	}
	return p, nil
}

func (t *tx) PlatformURLTaken(ctx context.Context, url string, exclude uuid.UUID) (bool, error) {
	var taken bool
	err := t.q.QueryRow(ctx, `SELECT EXISTS (
	SELECT 1 FROM platforms
	WHERE url = $1 AND id <> $2 AND status <> 'archived' AND deleted_at IS NULL)`, url, exclude).Scan(&taken)
	if err != nil {
		return false, translate(err)
	}
	return taken, nil
}

func (t *tx) ListPlatforms(ctx context.Context, q query.Query) ([]domain.Platform, error) {
	b := &builder{}
	b.where("deleted_at IS NULL")
	if err := b.predicates(q); err != nil {
		return nil, err
	}
	rows, err := t.q.Query(ctx, `SELECT `+platformColumns+` FROM platforms`+b.whereClause()+b.page(q), b.args...)
	if err != nil {
		return nil, translate(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Platform, error) {
		return scanPlatform(row)
	})
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (t *tx) CountPlatforms(ctx context.Context, q query.Query) (int64, error) {
	b := &builder{}
	b.where("deleted_at IS NULL")
	if err := b.predicates(q); err != nil {
		return 0, err
	}
	var n int64
	if err := t.q.QueryRow(ctx, `SELECT count(*) FROM platforms`+b.whereClause(), b.args...).Scan(&n); err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (t *tx) InsertPlatform(ctx context.Context, p *domain.Platform) error {
	demographics, err := json.Marshal(p.Demographics)
	if err != nil {
		return fmt.Errorf("encode demographics: %w", err)
	}
	_, err = t.q.Exec(ctx, `INSERT INTO platforms (`+platformColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,1,$24,$25)`,
		p.ID, p.OwnerID, p.Name, p.Description, p.Type, p.URL, p.AudienceSize, demographics,
		p.PricingModel, p.BasePrice, p.Currency, p.Status, p.ModerationStatus, p.VerificationStatus,
		p.Rating, p.QualityScore, p.ModeratedBy, p.ModeratedAt, p.ModerationNotes, p.DeletedAt,
		p.TotalCampaignsCount, p.ActiveCampaignsCount, p.LastCampaignDate,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	p.Version = 1
	return nil
}

func (t *tx) UpdatePlatform(ctx context.Context, p *domain.Platform) error {
	demographics, err := json.Marshal(p.Demographics)
	if err != nil {
		return fmt.Errorf("encode demographics: %w", err)
	}
	tag, err := t.q.Exec(ctx, `UPDATE platforms SET
	name = $3, description = $4, type = $5, url = $6, audience_size = $7, demographics = $8,
	pricing_model = $9, base_price = $10, currency = $11, status = $12, moderation_status = $13,
	verification_status = $14, rating = $15, quality_score = $16, moderated_by = $17,
	moderated_at = $18, moderation_notes = $19, deleted_at = $20,
	total_campaigns_count = $21, active_campaigns_count = $22, last_campaign_date = $23,
	updated_at = $24, version = version + 1
WHERE id = $1 AND version = $2`,
		p.ID, p.Version, p.Name, p.Description, p.Type, p.URL, p.AudienceSize, demographics,
		p.PricingModel, p.BasePrice, p.Currency, p.Status, p.ModerationStatus,
		p.VerificationStatus, p.Rating, p.QualityScore, p.ModeratedBy,
		p.ModeratedAt, p.ModerationNotes, p.DeletedAt,
		p.TotalCampaignsCount, p.ActiveCampaignsCount, p.LastCampaignDate,
		p.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ConcurrentModification(domain.EntityPlatform, p.ID, nil)
	}
	p.Version++
	return nil
}
