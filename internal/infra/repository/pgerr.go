package repository

import (
	"context"
	"errors"

	"tripfair/internal/infra"

	"github.com/jackc/pgx/v5"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// storeKind classifies a store failure: timeouts and cancellations mean the
// record store is unavailable, everything else is a database failure.
func storeKind(err error) infra.RepositoryErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return infra.KindUnavailable
	}
	return infra.KindDBFailure
}
