package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode  = "23505"
	notNullViolationCode = "23502"
	checkViolationCode   = "23514"
)

// translatePgError maps driver failures onto the models error taxonomy while keeping the
// original error in the chain.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %s: %w", models.ErrDuplicateKey, pgErr.ConstraintName, err)
		case notNullViolationCode, checkViolationCode:
			return fmt.Errorf("%w: %s: %w", models.ErrValidation, pgErr.ConstraintName, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}

	return err
}
