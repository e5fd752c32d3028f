// Package pgconv holds small helpers around pgx scan results. The
// repositories scan uuid.UUID and time.Time directly, so no pgtype
// conversion layer is needed here.
package pgconv

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
