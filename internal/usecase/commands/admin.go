package commands

import (
	"context"
	"strings"

	"tripfair/internal/domain/discount"
	"tripfair/internal/infra"
	"tripfair/internal/pkg/errs"

	"github.com/samber/lo"
)

var (
	ErrOverrideNotFound = errs.New("override not found")
	ErrInvalidRate      = errs.New("rate must be in [0, 1)")
	ErrInvalidWindow    = errs.New("override window is inverted")
)

type OverrideWriteRepository interface {
	Upsert(ctx context.Context, snapshot OverrideSnapshot) error
	Delete(ctx context.Context, propertyID string) error
}

// RecordCache is the invalidation handle of the TTL read cache over the
// record store. The administrative collaborator calls Invalidate right
// after any write so readers converge before the TTL elapses.
type RecordCache interface {
	Invalidate()
}

type AdminCommands interface {
	GetOverride(ctx context.Context, propertyID string) (*OverrideSnapshot, error)
	SetOverride(ctx context.Context, snapshot OverrideSnapshot) error
	DeleteOverride(ctx context.Context, propertyID string) error
	GlobalDefaultRate() float64
	InvalidateCache()
}

type adminUseCaseImpl struct {
	overrideReads  OverrideRepository
	overrideWrites OverrideWriteRepository
	cache          RecordCache
	defaultRate    discount.Rate
}

func NewAdminUseCase(
	overrideReads OverrideRepository,
	overrideWrites OverrideWriteRepository,
	cache RecordCache,
	defaultRate discount.Rate,
) AdminCommands {
	return &adminUseCaseImpl{
		overrideReads:  overrideReads,
		overrideWrites: overrideWrites,
		cache:          cache,
		defaultRate:    defaultRate,
	}
}

func (a *adminUseCaseImpl) GetOverride(ctx context.Context, propertyID string) (*OverrideSnapshot, error) {
	snapshot, err := a.overrideReads.FindByPropertyID(ctx, strings.TrimSpace(propertyID))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, errs.Wrap(err, "failed to find override")
	}
	return snapshot, nil
}

func (a *adminUseCaseImpl) SetOverride(ctx context.Context, snapshot OverrideSnapshot) error {
	snapshot.PropertyID = strings.TrimSpace(snapshot.PropertyID)
	if snapshot.PropertyID == "" {
		return ErrInvalidPropertyID
	}
	rate, err := discount.NewRate(snapshot.Rate)
	if err != nil {
		return ErrInvalidRate
	}
	// Reject inverted windows here; resolve time would only warn and
	// ignore the record, hiding the operator's mistake.
	if _, err := discount.NewOverride(snapshot.PropertyID, rate, snapshot.ValidFrom, snapshot.ValidTo, lo.FromPtr(snapshot.CampaignName)); err != nil {
		return ErrInvalidWindow
	}

	if err := a.overrideWrites.Upsert(ctx, snapshot); err != nil {
		return errs.Wrap(err, "failed to upsert override")
	}

	// Writers invalidate immediately; readers either see pre- or
	// post-invalidation data, never a torn record.
	a.cache.Invalidate()
	return nil
}

func (a *adminUseCaseImpl) DeleteOverride(ctx context.Context, propertyID string) error {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return ErrInvalidPropertyID
	}

	if err := a.overrideWrites.Delete(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOverrideNotFound
		}
		return errs.Wrap(err, "failed to delete override")
	}

	a.cache.Invalidate()
	return nil
}

func (a *adminUseCaseImpl) GlobalDefaultRate() float64 {
	return a.defaultRate.Float()
}

func (a *adminUseCaseImpl) InvalidateCache() {
	a.cache.Invalidate()
}
