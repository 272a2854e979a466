package repository

import (
	"context"

	"tripfair/internal/infra"
	"tripfair/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PackageRepository struct {
	db *pgxpool.Pool
}

func NewPackageRepository(db *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) FindAll(ctx context.Context) ([]*commands.PackageSnapshot, error) {
	const query = `
		SELECT id, name, service_ids, discount_percent
		FROM packages
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err, storeKind(err))
	}
	defer rows.Close()

	var result []*commands.PackageSnapshot
	for rows.Next() {
		var s commands.PackageSnapshot
		if err := rows.Scan(&s.ID, &s.Name, &s.ServiceIDs, &s.DiscountPercent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan package row", err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate packages", err, storeKind(err))
	}
	return result, nil
}
