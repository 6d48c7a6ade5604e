package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/GauravTheBeginner/event-backend/internal/domain"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// transientCodes are Postgres failures expected to clear on retry:
// serialization_failure, deadlock_detected, lock_not_available,
// query_canceled (statement timeout), too_many_connections.
var transientCodes = map[pq.ErrorCode]struct{}{
	"40001": {},
	"40P01": {},
	"55P03": {},
	"57014": {},
	"53300": {},
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// classifyStoreErr wraps transient storage failures with
// domain.ErrStoreBusy so callers can decide to retry; permanent failures
// pass through unchanged.
func classifyStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrStoreBusy, err)
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		if _, ok := transientCodes[pgErr.Code]; ok {
			return fmt.Errorf("%w: %v", domain.ErrStoreBusy, err)
		}
	}
	return err
}
