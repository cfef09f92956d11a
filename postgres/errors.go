package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/thanhminhmr/go-errchain/errors"
)

// Describe converts a PostgreSQL server error into a chained error, so the
// message, SQLSTATE code, detail and hint render as a single line. Any other
// error is returned unchanged.
func Describe(err error) error {
	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) {
		return err
	}
	var cause error
	if pgError.Hint != "" {
		cause = errors.String("hint: " + pgError.Hint)
	}
	if pgError.Detail != "" {
		cause = errors.Wrap("detail: "+pgError.Detail, cause)
	}
	if pgError.Code != "" {
		cause = errors.Wrap("SQLSTATE "+pgError.Code, cause)
	}
	return errors.Wrap(pgError.Message, cause)
}
