package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateForeignKeyViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated)

	written := translate("film", err)
	assert.ErrorIs(t, written, ErrValidation)
	assert.NotErrorIs(t, written, ErrDeleteRestricted)

	deleted := translateDelete("film", err)
	assert.ErrorIs(t, deleted, ErrDeleteRestricted)
}

func TestTranslatePassesThrough(t *testing.T) {
	assert.Nil(t, translate("film", nil))
	assert.Nil(t, translateDelete("film", nil))

	assert.ErrorIs(t, translate("film", gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translateDelete("film", gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate("film", gorm.ErrDuplicatedKey), ErrConflict)

	restricted := &RestrictedError{Entity: "film", ID: 1, Dependents: map[string]int64{"trailers": 2}}
	assert.Same(t, restricted, translateDelete("film", restricted))

	other := errors.New("boom")
	assert.ErrorIs(t, translate("film", other), other)
}
