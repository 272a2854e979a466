package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tripfair/internal/domain/discount"
	"tripfair/internal/domain/negotiation"
	"tripfair/internal/infra"
	"tripfair/internal/pkg/clock"
	"tripfair/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound  = errs.New("property not found")
	ErrRoomNotFound      = errs.New("room not found")
	ErrInvalidPropertyID = errs.New("invalid property id")
	ErrInvalidQuantity   = errs.New("invalid quantity")
	ErrOfferExpired      = errs.New("offer expired")
	ErrOfferPriceChanged = errs.New("offer price changed")
	ErrDomainValidation  = errs.New("domain validation error")
	ErrRecordStoreFailed = errs.New("record store operation failed")
)

type PropertyRepository interface {
	FindByID(ctx context.Context, id string) (*PropertySnapshot, error)
	FindRoom(ctx context.Context, propertyID, roomID string) (*RoomSnapshot, error)
}

type OverrideRepository interface {
	FindByPropertyID(ctx context.Context, propertyID string) (*OverrideSnapshot, error)
}

type NegotiateParams struct {
	PropertyID string
	RoomID     *string
	Quantity   int
}

// OfferResult is the issued-offer payload handed to the booking collaborator.
// The booking flow must re-validate expiry before charging DiscountedTotal.
type OfferResult struct {
	ID              uuid.UUID
	PropertyID      string
	RoomID          *string
	PropertyName    string
	BaseTotal       int64
	DiscountedTotal int64
	Savings         int64
	Rate            float64
	Tier            string
	IssuedAt        time.Time
	ExpiresAt       time.Time
	Message         string
}

// NegotiationOutcome is either an issued offer or a NO_OFFER with a
// machine-readable reason.
type NegotiationOutcome struct {
	Status negotiation.Status
	Reason negotiation.Reason
	Offer  *OfferResult
}

type ValidateOfferParams struct {
	PropertyID      string
	RoomID          *string
	Quantity        int
	DiscountedTotal int64
	ExpiresAt       time.Time
}

type OfferValidation struct {
	Valid           bool
	DiscountedTotal int64
}

type NegotiationCommands interface {
	Negotiate(ctx context.Context, params NegotiateParams) (*NegotiationOutcome, error)
	ValidateOffer(ctx context.Context, params ValidateOfferParams) (*OfferValidation, error)
}

type negotiationUseCaseImpl struct {
	propertyRepo PropertyRepository
	overrideRepo OverrideRepository
	factory      *negotiation.Factory
	defaultRate  discount.Rate
	clock        clock.Clock
}

func NewNegotiationUseCase(
	propertyRepo PropertyRepository,
	overrideRepo OverrideRepository,
	factory *negotiation.Factory,
	defaultRate discount.Rate,
	clk clock.Clock,
) NegotiationCommands {
	return &negotiationUseCaseImpl{
		propertyRepo: propertyRepo,
		overrideRepo: overrideRepo,
		factory:      factory,
		defaultRate:  defaultRate,
		clock:        clk,
	}
}

func (n *negotiationUseCaseImpl) Negotiate(ctx context.Context, params NegotiateParams) (*NegotiationOutcome, error) {
	propertyID := strings.TrimSpace(params.PropertyID)
	if propertyID == "" {
		return nil, ErrInvalidPropertyID
	}

	quantity := params.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	property, err := n.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		// A failed record-store read degrades to NO_OFFER, never a crash.
		slog.Warn("property read failed, degrading to NO_OFFER", "property_id", propertyID, "error", err)
		return noOffer(negotiation.ReasonNoDiscountAvailable), nil
	}

	if !property.Negotiable {
		return noOffer(negotiation.ReasonNoDiscountAvailable), nil
	}

	baseTotal, err := n.resolveBaseTotal(ctx, property, params.RoomID, quantity)
	if err != nil {
		return nil, err
	}

	resolved := n.resolveRate(ctx, propertyID)
	if resolved.Rate.IsZero() {
		return noOffer(negotiation.ReasonNoDiscountAvailable), nil
	}

	offer, err := n.factory.IssueOffer(propertyID, params.RoomID, baseTotal, resolved)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return &NegotiationOutcome{
		Status: negotiation.StatusOffer,
		Offer:  n.toOfferResult(offer, property.Name),
	}, nil
}

func (n *negotiationUseCaseImpl) ValidateOffer(ctx context.Context, params ValidateOfferParams) (*OfferValidation, error) {
	// Authoritative expiry check happens here, at acceptance time; the
	// client countdown is presentation only.
	if n.clock.Now().After(params.ExpiresAt) {
		return nil, ErrOfferExpired
	}

	propertyID := strings.TrimSpace(params.PropertyID)
	if propertyID == "" {
		return nil, ErrInvalidPropertyID
	}

	quantity := params.Quantity
	if quantity == 0 {
		quantity = 1
	}

	property, err := n.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrRecordStoreFailed)
	}

	baseTotal, err := n.resolveBaseTotal(ctx, property, params.RoomID, quantity)
	if err != nil {
		return nil, err
	}

	// Offers are not stored server-side: re-derive the total from the
	// current rate epoch and refuse anything that no longer matches.
	resolved := n.resolveRate(ctx, propertyID)
	recomputed := negotiation.RecomputeTotal(baseTotal, resolved.Rate)
	if resolved.Rate.IsZero() || recomputed != params.DiscountedTotal {
		return nil, ErrOfferPriceChanged
	}

	return &OfferValidation{
		Valid:           true,
		DiscountedTotal: recomputed,
	}, nil
}

func (n *negotiationUseCaseImpl) resolveBaseTotal(
	ctx context.Context,
	property *PropertySnapshot,
	roomID *string,
	quantity int,
) (int64, error) {
	basePrice := property.BasePriceMinor
	if roomID != nil && *roomID != "" {
		room, err := n.propertyRepo.FindRoom(ctx, property.ID, *roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, ErrRoomNotFound
			}
			return 0, errs.Mark(err, ErrRecordStoreFailed)
		}
		basePrice = room.BasePriceMinor
	}
	return basePrice * int64(quantity), nil
}

// resolveRate never fails: an unreadable override degrades to the global
// default rate.
func (n *negotiationUseCaseImpl) resolveRate(ctx context.Context, propertyID string) discount.Resolved {
	snapshot, err := n.overrideRepo.FindByPropertyID(ctx, propertyID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		slog.Warn("override read failed, falling back to default rate", "property_id", propertyID, "error", err)
	}

	var override *discount.Override
	if err == nil && snapshot != nil {
		override = toOverrideDomain(snapshot)
	}

	return discount.Resolve(override, n.defaultRate, n.clock.Now())
}

func (n *negotiationUseCaseImpl) toOfferResult(offer *negotiation.Offer, propertyName string) *OfferResult {
	minutes := int(n.factory.ValidityWindow() / time.Minute)
	return &OfferResult{
		ID:              offer.ID(),
		PropertyID:      offer.PropertyID(),
		RoomID:          offer.RoomID(),
		PropertyName:    propertyName,
		BaseTotal:       offer.BaseTotal(),
		DiscountedTotal: offer.DiscountedTotal(),
		Savings:         offer.Savings(),
		Rate:            offer.Rate().Float(),
		Tier:            offer.Tier().String(),
		IssuedAt:        offer.IssuedAt(),
		ExpiresAt:       offer.ExpiresAt(),
		Message:         fmt.Sprintf("%s tier price unlocked, valid for %d minutes", offer.Tier(), minutes),
	}
}

func noOffer(reason negotiation.Reason) *NegotiationOutcome {
	return &NegotiationOutcome{
		Status: negotiation.StatusNoOffer,
		Reason: reason,
	}
}

func toOverrideDomain(s *OverrideSnapshot) *discount.Override {
	rate, err := discount.NewRate(s.Rate)
	if err != nil {
		slog.Warn("override carries an out-of-range rate, ignoring", "property_id", s.PropertyID, "rate", s.Rate)
		return nil
	}

	var campaign string
	if s.CampaignName != nil {
		campaign = *s.CampaignName
	}

	override, err := discount.NewOverride(s.PropertyID, rate, s.ValidFrom, s.ValidTo, campaign)
	if err != nil {
		slog.Warn("override window is invalid, ignoring", "property_id", s.PropertyID, "error", err)
		return nil
	}
	return override
}
