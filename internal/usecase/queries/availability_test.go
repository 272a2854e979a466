//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tripfair/internal/domain/availability"
	"tripfair/internal/infra"
	"tripfair/internal/pkg/clock"
	"tripfair/internal/pkg/errs"
	"tripfair/internal/usecase/queries"
	queriesmock "tripfair/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testToday = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	store    *queriesmock.MockServiceStore
	clock    *clock.MockClock
	q        queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockServiceStore(s.mockCtrl)
	s.clock = clock.NewMockClock(testToday.Add(9 * time.Hour))
	s.q = queries.NewAvailabilityQueries(s.store, s.clock)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) limited() *queries.ServiceSnapshot {
	return &queries.ServiceSnapshot{
		ID:             "banquet-hall",
		Name:           "Banquet Hall",
		BasePriceMinor: 10000,
		DailyUnits:     10,
	}
}

func (s *AvailabilityQueriesTestSuite) unlimited() *queries.ServiceSnapshot {
	return &queries.ServiceSnapshot{
		ID:             "photo-booth",
		Name:           "Photo Booth",
		BasePriceMinor: 5000,
		Unlimited:      true,
	}
}

func (s *AvailabilityQueriesTestSuite) TestCalendarCovers30DaysFromToday() {
	s.store.EXPECT().FindByID(gomock.Any(), "banquet-hall").Return(s.limited(), nil)
	s.store.EXPECT().BookedUnits(gomock.Any(), "banquet-hall", testToday, 30).Return(map[string]int{
		"2026-03-14": 3,
		"2026-03-20": 10,
	}, nil)

	days, err := s.q.Calendar(context.Background(), "banquet-hall")
	s.Require().NoError(err)
	s.Require().Len(days, 30)

	want := queries.CalendarDayView{Date: "2026-03-14", Available: 7, Total: 10, BookingRate: 0.3}
	if diff := cmp.Diff(want, days[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		s.T().Errorf("day mismatch (-want +got):\n%s", diff)
	}

	s.Equal("2026-03-20", days[6].Date)
	s.Zero(days[6].Available)

	s.Equal("2026-04-12", days[29].Date)
	s.Equal(10, days[29].Available)
}

func (s *AvailabilityQueriesTestSuite) TestCalendarDegradesOnBookingReadFailure() {
	s.store.EXPECT().FindByID(gomock.Any(), "banquet-hall").Return(s.limited(), nil)
	s.store.EXPECT().BookedUnits(gomock.Any(), "banquet-hall", testToday, 30).
		Return(nil, infra.WrapRepoErr("connection reset", nil, infra.KindDBFailure))

	days, err := s.q.Calendar(context.Background(), "banquet-hall")
	s.Require().NoError(err)
	s.Require().Len(days, 30)
	s.Equal(10, days[0].Available)
}

func (s *AvailabilityQueriesTestSuite) TestCalendarUnknownService() {
	s.store.EXPECT().FindByID(gomock.Any(), "ghost").
		Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

	_, err := s.q.Calendar(context.Background(), "ghost")
	s.True(errs.Is(err, queries.ErrServiceNotFound))
}

func (s *AvailabilityQueriesTestSuite) TestCheckLimitedService() {
	date := testToday.AddDate(0, 0, 3)
	s.store.EXPECT().FindByID(gomock.Any(), "banquet-hall").Return(s.limited(), nil)
	s.store.EXPECT().BookedUnits(gomock.Any(), "banquet-hall", date, 1).
		Return(map[string]int{"2026-03-17": 8}, nil)

	view, err := s.q.Check(context.Background(), "banquet-hall", date, 2)
	s.Require().NoError(err)

	s.True(view.Available)
	s.Equal(2, view.RemainingUnits)
	s.False(view.Unlimited)
}

func (s *AvailabilityQueriesTestSuite) TestCheckUnlimitedService() {
	s.store.EXPECT().FindByID(gomock.Any(), "photo-booth").Return(s.unlimited(), nil)

	view, err := s.q.Check(context.Background(), "photo-booth", testToday, 500)
	s.Require().NoError(err)

	s.True(view.Available)
	s.Equal(availability.UnlimitedCapacity, view.RemainingUnits)
	s.True(view.Unlimited)
}

func (s *AvailabilityQueriesTestSuite) TestDynamicPriceSurgesOnScarcity() {
	date := testToday.AddDate(0, 0, 3)
	s.store.EXPECT().FindByID(gomock.Any(), "banquet-hall").Return(s.limited(), nil)
	s.store.EXPECT().BookedUnits(gomock.Any(), "banquet-hall", date, 1).
		Return(map[string]int{"2026-03-17": 9}, nil)

	view, err := s.q.DynamicPrice(context.Background(), "banquet-hall", date, false)
	s.Require().NoError(err)

	s.Equal(int64(10000), view.BasePrice)
	s.Equal(int64(15000), view.Price)
	s.InDelta(1.5, view.Multiplier, 1e-9)
}

func (s *AvailabilityQueriesTestSuite) TestDynamicPriceWeekendOnScarcity() {
	date := testToday.AddDate(0, 0, 3)
	s.store.EXPECT().FindByID(gomock.Any(), "banquet-hall").Return(s.limited(), nil)
	s.store.EXPECT().BookedUnits(gomock.Any(), "banquet-hall", date, 1).
		Return(map[string]int{"2026-03-17": 9}, nil)

	view, err := s.q.DynamicPrice(context.Background(), "banquet-hall", date, true)
	s.Require().NoError(err)

	s.Equal(int64(18000), view.Price)
	s.InDelta(1.8, view.Multiplier, 1e-9)
}

func (s *AvailabilityQueriesTestSuite) TestDynamicPriceUnlimitedServiceNeverSurges() {
	s.store.EXPECT().FindByID(gomock.Any(), "photo-booth").Return(s.unlimited(), nil)

	view, err := s.q.DynamicPrice(context.Background(), "photo-booth", testToday, false)
	s.Require().NoError(err)

	s.Equal(int64(5000), view.Price)
	s.InDelta(1.0, view.Multiplier, 1e-9)
}
