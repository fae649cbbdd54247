package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("uniqueness conflict")
	ErrDeleteRestricted = errors.New("delete restricted")
	ErrNotFound         = errors.New("not found")
)

// FieldError carries one of the sentinel errors above together with the
// entity and, when known, the offending field.
type FieldError struct {
	Kind    error
	Entity  string
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// RestrictedError reports the dependents that block a delete.
type RestrictedError struct {
	Entity     string
	ID         uint
	Dependents map[string]int64
}

func (e *RestrictedError) Error() string {
	parts := make([]string, 0, len(e.Dependents))
	for rel, n := range e.Dependents {
		parts = append(parts, fmt.Sprintf("%s=%d", rel, n))
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s %d is still referenced (%s)", e.Entity, e.ID, strings.Join(parts, ", "))
}

func (e *RestrictedError) Unwrap() error {
	return ErrDeleteRestricted
}

func notFound(entity string) error {
	return &FieldError{Kind: ErrNotFound, Entity: entity, Message: "not found"}
}

func invalid(entity, field, format string, args ...interface{}) error {
	return &FieldError{Kind: ErrValidation, Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)}
}

func conflict(entity, field, format string, args ...interface{}) error {
	return &FieldError{Kind: ErrConflict, Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)}
}

// translate maps storage errors onto the catalog taxonomy.
func translate(entity string, err error) error {
	var (
		fe *FieldError
		re *RestrictedError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &fe), errors.As(err, &re):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict(entity, "", "duplicate value violates a unique constraint")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return invalid(entity, "", "references a row that does not exist")
	}
	return fmt.Errorf("%s: %w", entity, err)
}

// translateDelete is translate for deletes, where a foreign key violation
// means other rows still point at the one being removed.
func translateDelete(entity string, err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &FieldError{Kind: ErrDeleteRestricted, Entity: entity, Message: "still referenced by other rows"}
	}
	return translate(entity, err)
}
