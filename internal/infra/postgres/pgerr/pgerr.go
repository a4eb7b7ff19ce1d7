package infra_pg_err

import (
	"database/sql"
	"errors"

	"github.com/humanbelnik/flowquest/core/internal/model"
	"github.com/lib/pq"
)

const (
	uniqueViolation      = pq.ErrorCode("23505")
	serializationFailure = pq.ErrorCode("40001")
	deadlockDetected     = pq.ErrorCode("40P01")
)

// Map translates driver errors into domain sentinels. onUnique is returned
// for unique violations; a nil onUnique keeps the raw error.
func Map(err error, onUnique error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			if onUnique != nil {
				return onUnique
			}
		case serializationFailure, deadlockDetected:
			return errors.Join(model.ErrTransient, err)
		}
	}
	return err
}

func IsUnique(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
