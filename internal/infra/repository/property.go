package repository

import (
	"context"

	"tripfair/internal/infra"
	"tripfair/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	db *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*commands.PropertySnapshot, error) {
	const query = `
		SELECT id, name, base_price_minor, negotiable
		FROM properties
		WHERE id = $1`

	var s commands.PropertySnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.BasePriceMinor, &s.Negotiable)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err, storeKind(err))
	}
	return &s, nil
}

func (r *PropertyRepository) FindRoom(ctx context.Context, propertyID, roomID string) (*commands.RoomSnapshot, error) {
	const query = `
		SELECT id, property_id, name, base_price_minor
		FROM rooms
		WHERE property_id = $1 AND id = $2`

	var s commands.RoomSnapshot
	err := r.db.QueryRow(ctx, query, propertyID, roomID).Scan(&s.ID, &s.PropertyID, &s.Name, &s.BasePriceMinor)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err, storeKind(err))
	}
	return &s, nil
}
