package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Domain error taxonomy. Repositories map driver and gorm errors onto
// these sentinels so callers never have to inspect SQL error codes.
var (
	// ErrNotFound means the referenced id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("already exists")
	// ErrReferential means a foreign-key target is absent.
	ErrReferential = errors.New("referenced record does not exist")
	// ErrValidation means a field value is malformed or outside its enum.
	ErrValidation = errors.New("invalid value")
)

// translate maps gorm errors onto the domain taxonomy. Unique and
// foreign-key violations arrive as typed gorm errors because the DB
// handle is opened with TranslateError.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferential
	}
	return err
}
