package repository

import (
	"context"

	"tripfair/internal/infra"
	"tripfair/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProviderRepository struct {
	db *pgxpool.Pool
}

func NewProviderRepository(db *pgxpool.Pool) *ProviderRepository {
	return &ProviderRepository{db: db}
}

const providerColumns = `
	id, name, lat, lon, base_price_minor,
	service_radius_km, travel_rate_per_km, minimum_travel_charge,
	max_travel_distance_km, coverage_areas`

func (r *ProviderRepository) FindByID(ctx context.Context, id string) (*queries.ProviderSnapshot, error) {
	query := `SELECT` + providerColumns + ` FROM providers WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	s, err := scanProvider(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider by ID", err, storeKind(err))
	}
	return s, nil
}

func (r *ProviderRepository) FindAll(ctx context.Context) ([]*queries.ProviderSnapshot, error) {
	query := `SELECT` + providerColumns + ` FROM providers ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list providers", err, storeKind(err))
	}
	defer rows.Close()

	var result []*queries.ProviderSnapshot
	for rows.Next() {
		s, err := scanProvider(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan provider row", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate providers", err, storeKind(err))
	}
	return result, nil
}

func scanProvider(row pgx.Row) (*queries.ProviderSnapshot, error) {
	var s queries.ProviderSnapshot
	err := row.Scan(
		&s.ID, &s.Name, &s.Lat, &s.Lon, &s.BasePriceMinor,
		&s.ServiceRadiusKm, &s.TravelRatePerKm, &s.MinimumTravelCharge,
		&s.MaxTravelDistanceKm, &s.CoverageAreas,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
