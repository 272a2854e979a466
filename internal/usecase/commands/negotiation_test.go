//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tripfair/internal/domain/discount"
	"tripfair/internal/domain/negotiation"
	"tripfair/internal/infra"
	"tripfair/internal/pkg/clock"
	"tripfair/internal/pkg/errs"
	"tripfair/internal/usecase/commands"
	commandsmock "tripfair/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type NegotiationUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	propertyRepo *commandsmock.MockPropertyRepository
	overrideRepo *commandsmock.MockOverrideRepository
	clock        *clock.MockClock
	uc           commands.NegotiationCommands
}

func (s *NegotiationUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.propertyRepo = commandsmock.NewMockPropertyRepository(s.mockCtrl)
	s.overrideRepo = commandsmock.NewMockOverrideRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(testNow)

	defaultRate, err := discount.NewRate(0.10)
	s.Require().NoError(err)

	factory := negotiation.NewFactory(s.clock, 5*time.Minute)
	s.uc = commands.NewNegotiationUseCase(s.propertyRepo, s.overrideRepo, factory, defaultRate, s.clock)
}

func (s *NegotiationUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNegotiationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(NegotiationUseCaseTestSuite))
}

func (s *NegotiationUseCaseTestSuite) property(negotiable bool) *commands.PropertySnapshot {
	return &commands.PropertySnapshot{
		ID:             "grand-plaza",
		Name:           "Grand Plaza Hotel",
		BasePriceMinor: 20000,
		Negotiable:     negotiable,
	}
}

func (s *NegotiationUseCaseTestSuite) notFound() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

// ================================================================================
// Negotiate
// ================================================================================

func (s *NegotiationUseCaseTestSuite) TestNegotiateIssuesOfferAtDefaultRate() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.overrideRepo.EXPECT().FindByPropertyID(gomock.Any(), "grand-plaza").Return(nil, s.notFound())

	outcome, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "grand-plaza"})
	s.Require().NoError(err)
	s.Require().Equal(negotiation.StatusOffer, outcome.Status)
	s.Require().NotNil(outcome.Offer)

	s.Equal(int64(20000), outcome.Offer.BaseTotal)
	s.Equal(int64(18000), outcome.Offer.DiscountedTotal)
	s.Equal(int64(2000), outcome.Offer.Savings)
	s.Equal("GOLD", outcome.Offer.Tier)
	s.Equal(testNow, outcome.Offer.IssuedAt)
	s.Equal(testNow.Add(5*time.Minute), outcome.Offer.ExpiresAt)
	s.Contains(outcome.Offer.Message, "GOLD tier price unlocked")
	s.Contains(outcome.Offer.Message, "5 minutes")
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateActiveOverrideWins() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.overrideRepo.EXPECT().FindByPropertyID(gomock.Any(), "grand-plaza").Return(&commands.OverrideSnapshot{
		PropertyID: "grand-plaza",
		Rate:       0.45,
	}, nil)

	outcome, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "grand-plaza"})
	s.Require().NoError(err)
	s.Require().Equal(negotiation.StatusOffer, outcome.Status)

	s.Equal(int64(11000), outcome.Offer.DiscountedTotal)
	s.Equal("PLATINUM", outcome.Offer.Tier)
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateExpiredOverrideFallsBack() {
	expired := testNow.Add(-time.Hour)
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.overrideRepo.EXPECT().FindByPropertyID(gomock.Any(), "grand-plaza").Return(&commands.OverrideSnapshot{
		PropertyID: "grand-plaza",
		Rate:       0.45,
		ValidTo:    &expired,
	}, nil)

	outcome, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "grand-plaza"})
	s.Require().NoError(err)

	s.Equal("GOLD", outcome.Offer.Tier)
	s.Equal(int64(18000), outcome.Offer.DiscountedTotal)
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateRoomPriceWinsAndQuantityMultiplies() {
	roomID := "deluxe-suite"
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.propertyRepo.EXPECT().FindRoom(gomock.Any(), "grand-plaza", "deluxe-suite").Return(&commands.RoomSnapshot{
		ID:             "deluxe-suite",
		PropertyID:     "grand-plaza",
		BasePriceMinor: 35000,
	}, nil)
	s.overrideRepo.EXPECT().FindByPropertyID(gomock.Any(), "grand-plaza").Return(nil, s.notFound())

	outcome, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{
		PropertyID: "grand-plaza",
		RoomID:     &roomID,
		Quantity:   3,
	})
	s.Require().NoError(err)

	s.Equal(int64(105000), outcome.Offer.BaseTotal)
	s.Equal(int64(94500), outcome.Offer.DiscountedTotal)
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateBlankPropertyID() {
	_, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "   "})
	s.True(errs.Is(err, commands.ErrInvalidPropertyID))
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateNegativeQuantity() {
	_, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "grand-plaza", Quantity: -2})
	s.True(errs.Is(err, commands.ErrInvalidQuantity))
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateUnknownProperty() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "non-existent-hotel").Return(nil, s.notFound())

	_, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "non-existent-hotel"})
	s.True(errs.Is(err, commands.ErrPropertyNotFound))
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateUnknownRoom() {
	roomID := "penthouse"
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.propertyRepo.EXPECT().FindRoom(gomock.Any(), "grand-plaza", "penthouse").Return(nil, s.notFound())

	_, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "grand-plaza", RoomID: &roomID})
	s.True(errs.Is(err, commands.ErrRoomNotFound))
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateNonNegotiableProperty() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(false), nil)

	outcome, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "grand-plaza"})
	s.Require().NoError(err)

	s.Equal(negotiation.StatusNoOffer, outcome.Status)
	s.Equal(negotiation.ReasonNoDiscountAvailable, outcome.Reason)
	s.Nil(outcome.Offer)
}

func (s *NegotiationUseCaseTestSuite) TestNegotiatePropertyReadFailureDegradesToNoOffer() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").
		Return(nil, infra.WrapRepoErr("connection reset", nil, infra.KindDBFailure))

	outcome, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "grand-plaza"})
	s.Require().NoError(err)

	s.Equal(negotiation.StatusNoOffer, outcome.Status)
	s.Equal(negotiation.ReasonNoDiscountAvailable, outcome.Reason)
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateOverrideReadFailureFallsBackToDefault() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.overrideRepo.EXPECT().FindByPropertyID(gomock.Any(), "grand-plaza").
		Return(nil, infra.WrapRepoErr("connection reset", nil, infra.KindDBFailure))

	outcome, err := s.uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "grand-plaza"})
	s.Require().NoError(err)
	s.Require().Equal(negotiation.StatusOffer, outcome.Status)

	s.Equal(int64(18000), outcome.Offer.DiscountedTotal)
	s.Equal("GOLD", outcome.Offer.Tier)
}

func (s *NegotiationUseCaseTestSuite) TestNegotiateZeroRateYieldsNoOffer() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.overrideRepo.EXPECT().FindByPropertyID(gomock.Any(), "grand-plaza").Return(&commands.OverrideSnapshot{
		PropertyID: "grand-plaza",
		Rate:       0,
	}, nil)

	defaultRate := discount.ZeroRate()
	factory := negotiation.NewFactory(s.clock, 5*time.Minute)
	uc := commands.NewNegotiationUseCase(s.propertyRepo, s.overrideRepo, factory, defaultRate, s.clock)

	outcome, err := uc.Negotiate(context.Background(), commands.NegotiateParams{PropertyID: "grand-plaza"})
	s.Require().NoError(err)

	s.Equal(negotiation.StatusNoOffer, outcome.Status)
	s.Equal(negotiation.ReasonNoDiscountAvailable, outcome.Reason)
}

// ================================================================================
// ValidateOffer
// ================================================================================

func (s *NegotiationUseCaseTestSuite) TestValidateOfferAccepted() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.overrideRepo.EXPECT().FindByPropertyID(gomock.Any(), "grand-plaza").Return(nil, s.notFound())

	validation, err := s.uc.ValidateOffer(context.Background(), commands.ValidateOfferParams{
		PropertyID:      "grand-plaza",
		DiscountedTotal: 18000,
		ExpiresAt:       testNow.Add(2 * time.Minute),
	})
	s.Require().NoError(err)

	s.True(validation.Valid)
	s.Equal(int64(18000), validation.DiscountedTotal)
}

func (s *NegotiationUseCaseTestSuite) TestValidateOfferExpired() {
	_, err := s.uc.ValidateOffer(context.Background(), commands.ValidateOfferParams{
		PropertyID:      "grand-plaza",
		DiscountedTotal: 18000,
		ExpiresAt:       testNow.Add(-time.Second),
	})
	s.True(errs.Is(err, commands.ErrOfferExpired))
}

func (s *NegotiationUseCaseTestSuite) TestValidateOfferRateEpochChanged() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.overrideRepo.EXPECT().FindByPropertyID(gomock.Any(), "grand-plaza").Return(&commands.OverrideSnapshot{
		PropertyID: "grand-plaza",
		Rate:       0.45,
	}, nil)

	// The client holds an 18000 quote from the old default-rate epoch.
	_, err := s.uc.ValidateOffer(context.Background(), commands.ValidateOfferParams{
		PropertyID:      "grand-plaza",
		DiscountedTotal: 18000,
		ExpiresAt:       testNow.Add(2 * time.Minute),
	})
	s.True(errs.Is(err, commands.ErrOfferPriceChanged))
}

func (s *NegotiationUseCaseTestSuite) TestValidateOfferDiscountWithdrawn() {
	s.propertyRepo.EXPECT().FindByID(gomock.Any(), "grand-plaza").Return(s.property(true), nil)
	s.overrideRepo.EXPECT().FindByPropertyID(gomock.Any(), "grand-plaza").Return(&commands.OverrideSnapshot{
		PropertyID: "grand-plaza",
		Rate:       0,
	}, nil)

	defaultRate := discount.ZeroRate()
	factory := negotiation.NewFactory(s.clock, 5*time.Minute)
	uc := commands.NewNegotiationUseCase(s.propertyRepo, s.overrideRepo, factory, defaultRate, s.clock)

	_, err := uc.ValidateOffer(context.Background(), commands.ValidateOfferParams{
		PropertyID:      "grand-plaza",
		DiscountedTotal: 18000,
		ExpiresAt:       testNow.Add(2 * time.Minute),
	})
	s.True(errs.Is(err, commands.ErrOfferPriceChanged))
}
