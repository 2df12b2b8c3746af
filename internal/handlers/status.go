package handlers

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// storeErrorStatus maps a repository failure to the narrowest status the
// contract distinguishes: 503 when the store itself is unreachable
// (connection failure, pool exhaustion, timeout), 500 for everything else,
// constraint violations included.
func storeErrorStatus(err error) int {
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) {
		return http.StatusServiceUnavailable
	}

	// Class 08 is the connection exception class.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08") {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}
