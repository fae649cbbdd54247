package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsValidSlug(fl.Field().String())
	})
	return v
}

// check runs the struct tags of in and reports the first failing field.
func check(entity string, in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &FieldError{Kind: ErrValidation, Entity: entity, Field: fe.Field(), Message: describe(fe)}
	}
	return fmt.Errorf("%s: %w", entity, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("must be at most %s long", fe.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "datetime":
		return "must be a date formatted as YYYY-MM-DD"
	case "slug":
		return "may only contain letters, digits, hyphens and underscores"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	}
	return fmt.Sprintf("failed on %q", fe.Tag())
}

// normalizeName trims and NFC-normalizes a display name so that visually
// equal names hit the same unique index entry.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// loadByIDs fetches every row with one of ids, failing on the field when
// any id is unknown.
func loadByIDs[T any](tx *gorm.DB, entity, field string, ids []uint, idOf func(T) uint) ([]T, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []T
	if err := tx.Where("id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) != len(ids) {
		missing, _ := lo.Difference(ids, lo.Map(rows, func(r T, _ int) uint { return idOf(r) }))
		return nil, invalid(entity, field, "unknown id(s) %v", missing)
	}
	return rows, nil
}

// checkExists fails on field when the referenced row does not exist.
func checkExists(tx *gorm.DB, model interface{}, entity, field string, id uint) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return invalid(entity, field, "unknown id %d", id)
	}
	return nil
}

func checkOptional(tx *gorm.DB, model interface{}, entity, field string, id *uint) error {
	if id == nil {
		return nil
	}
	return checkExists(tx, model, entity, field, *id)
}
