package repository

import (
	"context"
	"time"

	"tripfair/internal/infra"
	"tripfair/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*queries.ServiceSnapshot, error) {
	const query = `
		SELECT id, name, base_price_minor, daily_units, unlimited
		FROM services
		WHERE id = $1`

	var s queries.ServiceSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.BasePriceMinor, &s.DailyUnits, &s.Unlimited)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err, storeKind(err))
	}
	return &s, nil
}

// BookedUnits aggregates confirmed booking quantities per date over
// [from, from+days).
func (r *ServiceRepository) BookedUnits(ctx context.Context, serviceID string, from time.Time, days int) (map[string]int, error) {
	const query = `
		SELECT booking_date, COALESCE(SUM(quantity), 0)
		FROM service_bookings
		WHERE service_id = $1
		  AND booking_date >= $2
		  AND booking_date < $3
		GROUP BY booking_date`

	rows, err := r.db.Query(ctx, query, serviceID, from, from.AddDate(0, 0, days))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booked units", err, storeKind(err))
	}
	defer rows.Close()

	booked := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var quantity int
		if err := rows.Scan(&date, &quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked units row", err)
		}
		booked[date.Format("2006-01-02")] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked units", err, storeKind(err))
	}
	return booked, nil
}

// FindPrices returns base prices for the given service ids. Unknown ids are
// simply absent from the result map.
func (r *ServiceRepository) FindPrices(ctx context.Context, serviceIDs []string) (map[string]int64, error) {
	const query = `
		SELECT id, base_price_minor
		FROM services
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, serviceIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service prices", err, storeKind(err))
	}
	defer rows.Close()

	prices := make(map[string]int64, len(serviceIDs))
	for rows.Next() {
		var id string
		var price int64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service price row", err)
		}
		prices[id] = price
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service prices", err, storeKind(err))
	}
	return prices, nil
}
