package dberr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotReachable marks a failure to talk to the store at all, as opposed to
// a query that ran and failed or found nothing.
var ErrNotReachable = errors.New("store not reachable")

// Classify wraps connection-level failures with ErrNotReachable and returns
// every other error unchanged. nil stays nil.
func Classify(err error) error {
	if err == nil || errors.Is(err, ErrNotReachable) {
		return err
	}
	if IsConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrNotReachable, err)
	}
	return err
}

func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// IsNotReachable reports whether err carries ErrNotReachable.
func IsNotReachable(err error) bool {
	return errors.Is(err, ErrNotReachable)
}
