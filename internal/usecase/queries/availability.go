package queries

import (
	"context"
	"log/slog"
	"time"

	"tripfair/internal/domain/availability"
	"tripfair/internal/infra"
	"tripfair/internal/pkg/clock"
	"tripfair/internal/pkg/errs"
)

// calendarHorizonDays is the fixed availability horizon.
const calendarHorizonDays = 30

const dateLayout = "2006-01-02"

var (
	ErrServiceNotFound = errs.New("service not found")
	ErrInvalidDate     = errs.New("invalid date")
)

type ServiceSnapshot struct {
	ID             string
	Name           string
	BasePriceMinor int64
	DailyUnits     int
	Unlimited      bool
}

type ServiceStore interface {
	FindByID(ctx context.Context, id string) (*ServiceSnapshot, error)
	// BookedUnits returns booked unit counts keyed by date (YYYY-MM-DD)
	// over [from, from+days).
	BookedUnits(ctx context.Context, serviceID string, from time.Time, days int) (map[string]int, error)
}

type CalendarDayView struct {
	Date        string  `json:"date"`
	Available   int     `json:"available"`
	Total       int     `json:"total"`
	BookingRate float64 `json:"booking_rate"`
}

type AvailabilityCheckView struct {
	Available      bool `json:"available"`
	RemainingUnits int  `json:"remaining_units"`
	Unlimited      bool `json:"unlimited"`
}

type DynamicPriceView struct {
	BasePrice    int64   `json:"base_price"`
	Price        int64   `json:"price"`
	Multiplier   float64 `json:"multiplier"`
	SurgePercent float64 `json:"surge_percent"`
}

type AvailabilityQueries interface {
	Calendar(ctx context.Context, serviceID string) ([]CalendarDayView, error)
	Check(ctx context.Context, serviceID string, date time.Time, quantity int) (*AvailabilityCheckView, error)
	DynamicPrice(ctx context.Context, serviceID string, date time.Time, isWeekend bool) (*DynamicPriceView, error)
}

type availabilityQueriesImpl struct {
	store ServiceStore
	clock clock.Clock
}

func NewAvailabilityQueries(store ServiceStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store: store,
		clock: clk,
	}
}

// Calendar returns the 30-day availability horizon starting today. The
// query is idempotent per call; a failed booked-units read degrades to a
// fully-available horizon.
func (q *availabilityQueriesImpl) Calendar(ctx context.Context, serviceID string) ([]CalendarDayView, error) {
	service, err := q.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	start := q.today()
	booked := map[string]int{}
	if !service.Unlimited {
		booked, err = q.store.BookedUnits(ctx, serviceID, start, calendarHorizonDays)
		if err != nil {
			slog.Warn("booked-units read failed, degrading to empty bookings", "service_id", serviceID, "error", err)
			booked = map[string]int{}
		}
	}

	days := make([]CalendarDayView, 0, calendarHorizonDays)
	for i := 0; i < calendarHorizonDays; i++ {
		date := start.AddDate(0, 0, i)
		snapshot := q.snapshotFor(service, date, booked[date.Format(dateLayout)])
		days = append(days, CalendarDayView{
			Date:        date.Format(dateLayout),
			Available:   snapshot.AvailableUnits(),
			Total:       snapshot.TotalUnits(),
			BookingRate: snapshot.BookingRate(),
		})
	}
	return days, nil
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, serviceID string, date time.Time, quantity int) (*AvailabilityCheckView, error) {
	service, err := q.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if service.Unlimited {
		return &AvailabilityCheckView{
			Available:      true,
			RemainingUnits: availability.UnlimitedCapacity,
			Unlimited:      true,
		}, nil
	}

	snapshot := q.snapshotAt(ctx, service, date)
	return &AvailabilityCheckView{
		Available:      snapshot.CanAccommodate(quantity),
		RemainingUnits: snapshot.AvailableUnits(),
	}, nil
}

func (q *availabilityQueriesImpl) DynamicPrice(ctx context.Context, serviceID string, date time.Time, isWeekend bool) (*DynamicPriceView, error) {
	service, err := q.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	availabilityRate := 1.0
	if !service.Unlimited {
		availabilityRate = q.snapshotAt(ctx, service, date).AvailabilityRate()
	}

	priced := availability.ComputeDynamicPrice(service.BasePriceMinor, availabilityRate, isWeekend)
	return &DynamicPriceView{
		BasePrice:    service.BasePriceMinor,
		Price:        priced.Price,
		Multiplier:   priced.Multiplier,
		SurgePercent: priced.SurgePercent,
	}, nil
}

func (q *availabilityQueriesImpl) findService(ctx context.Context, serviceID string) (*ServiceSnapshot, error) {
	service, err := q.store.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}
	return service, nil
}

func (q *availabilityQueriesImpl) snapshotAt(ctx context.Context, service *ServiceSnapshot, date time.Time) availability.Snapshot {
	booked, err := q.store.BookedUnits(ctx, service.ID, date, 1)
	if err != nil {
		slog.Warn("booked-units read failed, degrading to empty bookings", "service_id", service.ID, "error", err)
		booked = map[string]int{}
	}
	return q.snapshotFor(service, date, booked[date.Format(dateLayout)])
}

func (q *availabilityQueriesImpl) snapshotFor(service *ServiceSnapshot, date time.Time, bookedUnits int) availability.Snapshot {
	if service.Unlimited {
		return availability.NewUnlimitedSnapshot(date)
	}
	snapshot, err := availability.NewSnapshot(date, service.DailyUnits, bookedUnits)
	if err != nil {
		// A service row with zero daily units is inventory-free in the
		// record store; treat it as unlimited rather than failing reads.
		return availability.NewUnlimitedSnapshot(date)
	}
	return snapshot
}

func (q *availabilityQueriesImpl) today() time.Time {
	now := q.clock.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
