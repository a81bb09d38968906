package service

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidRange    = errors.New("bis must not be before von")
	ErrInvalidStatus   = errors.New("rental status is not billable")
	ErrValidation      = errors.New("validation failed")
	ErrDuplicateNumber = errors.New("invoice number already exists")
	ErrHasReferences   = errors.New("record is still referenced")
)

// mapDBError translates driver-level failures into service sentinels so
// handlers never inspect pq error codes themselves.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return ErrHasReferences
		case "23505": // unique_violation
			return ErrDuplicateNumber
		}
	}
	return err
}
