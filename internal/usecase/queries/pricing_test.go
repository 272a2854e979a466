//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tripfair/internal/infra"
	"tripfair/internal/pkg/errs"
	"tripfair/internal/usecase/queries"
	queriesmock "tripfair/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProviderQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	store    *queriesmock.MockProviderStore
	q        queries.ProviderQueries
}

func (s *ProviderQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockProviderStore(s.mockCtrl)
	s.q = queries.NewProviderQueries(s.store)
}

func (s *ProviderQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProviderQueriesSuite(t *testing.T) {
	suite.Run(t, new(ProviderQueriesTestSuite))
}

// providers based at the origin; the event sits ~55.6 km north
func (s *ProviderQueriesTestSuite) snapshot(id string, basePrice int64, radiusKm, maxKm float64) *queries.ProviderSnapshot {
	return &queries.ProviderSnapshot{
		ID:                  id,
		Name:                id,
		Lat:                 0,
		Lon:                 0,
		BasePriceMinor:      basePrice,
		ServiceRadiusKm:     radiusKm,
		TravelRatePerKm:     100,
		MinimumTravelCharge: 2000,
		MaxTravelDistanceKm: maxKm,
	}
}

func (s *ProviderQueriesTestSuite) event() queries.EventLocation {
	return queries.EventLocation{Lat: 0.5, Lon: 0, Address: "Harborfront"}
}

func (s *ProviderQueriesTestSuite) TestQuoteForProvider() {
	s.store.EXPECT().FindByID(gomock.Any(), "dj-koto").Return(s.snapshot("dj-koto", 50000, 50, 200), nil)

	quote, err := s.q.QuoteForProvider(context.Background(), "dj-koto", s.event(), false)
	s.Require().NoError(err)

	s.True(quote.Serviceable)
	s.False(quote.WithinRadius)
	s.Equal(int64(2000), quote.TravelCost)
	s.Equal(int64(52000), quote.TotalPrice)
}

func (s *ProviderQueriesTestSuite) TestQuoteForUnknownProvider() {
	s.store.EXPECT().FindByID(gomock.Any(), "ghost").
		Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

	_, err := s.q.QuoteForProvider(context.Background(), "ghost", s.event(), false)
	s.True(errs.Is(err, queries.ErrProviderNotFound))
}

func (s *ProviderQueriesTestSuite) TestQuoteRejectsInvalidLocation() {
	_, err := s.q.QuoteForProvider(context.Background(), "dj-koto", queries.EventLocation{Lat: 91}, false)
	s.True(errs.Is(err, queries.ErrInvalidLocation))
}

func (s *ProviderQueriesTestSuite) TestSearchSortsByTotalAndDropsNonServiceable() {
	s.store.EXPECT().FindAll(gomock.Any()).Return([]*queries.ProviderSnapshot{
		s.snapshot("pricey", 90000, 100, 300),
		s.snapshot("cheap", 40000, 100, 300),
		s.snapshot("too-far", 10000, 10, 30),
	}, nil)

	views, err := s.q.FindProvidersForLocation(context.Background(), s.event(), false)
	s.Require().NoError(err)
	s.Require().Len(views, 2)

	s.Equal("cheap", views[0].ProviderID)
	s.Equal("pricey", views[1].ProviderID)
}

func (s *ProviderQueriesTestSuite) TestSearchDegradesToEmptyOnStoreFailure() {
	s.store.EXPECT().FindAll(gomock.Any()).
		Return(nil, infra.WrapRepoErr("connection reset", nil, infra.KindDBFailure))

	views, err := s.q.FindProvidersForLocation(context.Background(), s.event(), false)
	s.Require().NoError(err)
	s.Empty(views)
}

func (s *ProviderQueriesTestSuite) TestCoversLocationViaCoverageArea() {
	snap := s.snapshot("dj-koto", 50000, 50, 200)
	snap.CoverageAreas = []string{"Harborfront"}
	s.store.EXPECT().FindByID(gomock.Any(), "dj-koto").Return(snap, nil).Times(2)

	covered, err := s.q.CoversLocation(context.Background(), "dj-koto", s.event())
	s.Require().NoError(err)
	s.True(covered)

	other := s.event()
	other.Address = "Uptown"
	covered, err = s.q.CoversLocation(context.Background(), "dj-koto", other)
	s.Require().NoError(err)
	s.False(covered)
}
