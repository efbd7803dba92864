package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// PostgreSQL error classes the API distinguishes.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// translateError maps driver errors to the tagged application errors so that
// services and handlers never inspect pq internals. Unknown errors pass
// through untouched and surface as 500s at the boundary.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s", utils.ErrConflict, pqErr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", utils.ErrInvalidReference, pqErr.Constraint)
		case pqCheckViolation:
			return fmt.Errorf("%w: %s", utils.ErrInvalidStatus, pqErr.Constraint)
		}
	}
	return err
}
