package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"adsmarket/internal/core/domain"
)

// Constraint names declared by the init migration.
const (
	bookingKeyConstraint  = "campaign_platforms_booking_key"
	platformURLConstraint = "platforms_url_key"
)

// translate maps driver failures onto domain errors. Domain errors pass
// through untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case isUniqueViolation(pgErr, bookingKeyConstraint):
			return domain.DuplicateBooking(err)
		case isUniqueViolation(pgErr, platformURLConstraint):
			return &domain.Error{Kind: domain.KindValidation, Code: "PLATFORM_URL_TAKEN", Message: "platform url is already registered", Cause: err}
		case pgErr.Code == "40001", pgErr.Code == "40P01":
			return &domain.Error{
				Kind:    domain.KindConcurrentModification,
				Code:    "CONCURRENT_MODIFICATION",
				Message: "transaction conflicted with a concurrent writer",
				Cause:   err,
			}
		case pgErr.Code == "23503":
			return &domain.Error{Kind: domain.KindValidation, Code: "REFERENCE_INVALID", Message: pgErr.Message, Cause: err}
		case pgErr.Code == "23514":
			return &domain.Error{Kind: domain.KindValidation, Code: "CONSTRAINT_VIOLATED", Message: pgErr.ConstraintName, Cause: err}
		case strings.HasPrefix(pgErr.Code, "08"), pgErr.Code == "53300", pgErr.Code == "57P01", pgErr.Code == "57014":
			return domain.StorageUnavailable(err)
		}
		return fmt.Errorf("postgres: %w", err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.StorageUnavailable(err)
	}
	return fmt.Errorf("postgres: %w", err)
}

func isUniqueViolation(pgErr *pgconn.PgError, constraint string) bool {
	return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
