package repository

import (
	"context"

	"tripfair/internal/infra"
	"tripfair/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OverrideRepository struct {
	db *pgxpool.Pool
}

func NewOverrideRepository(db *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{db: db}
}

func (r *OverrideRepository) FindByPropertyID(ctx context.Context, propertyID string) (*commands.OverrideSnapshot, error) {
	const query = `
		SELECT property_id, rate, valid_from, valid_to, campaign_name
		FROM discount_overrides
		WHERE property_id = $1`

	var s commands.OverrideSnapshot
	err := r.db.QueryRow(ctx, query, propertyID).Scan(&s.PropertyID, &s.Rate, &s.ValidFrom, &s.ValidTo, &s.CampaignName)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("override not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find override", err, storeKind(err))
	}
	return &s, nil
}

func (r *OverrideRepository) Upsert(ctx context.Context, snapshot commands.OverrideSnapshot) error {
	const query = `
		INSERT INTO discount_overrides (property_id, rate, valid_from, valid_to, campaign_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (property_id) DO UPDATE SET
			rate = EXCLUDED.rate,
			valid_from = EXCLUDED.valid_from,
			valid_to = EXCLUDED.valid_to,
			campaign_name = EXCLUDED.campaign_name`

	_, err := r.db.Exec(ctx, query,
		snapshot.PropertyID, snapshot.Rate, snapshot.ValidFrom, snapshot.ValidTo, snapshot.CampaignName)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert override", err, storeKind(err))
	}
	return nil
}

func (r *OverrideRepository) Delete(ctx context.Context, propertyID string) error {
	const query = `DELETE FROM discount_overrides WHERE property_id = $1`

	tag, err := r.db.Exec(ctx, query, propertyID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete override", err, storeKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("override not found", nil, infra.KindNotFound)
	}
	return nil
}
