package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"gorm.io/gorm"
)

/*
	Slug helpers
	------------
	- a slug is derived from the display name once, on create, when none is given
	- it is never recomputed afterwards, renaming keeps the old slug
	- collisions get the first free numeric suffix: die-hard, die-hard-2, ...
*/

const slugMaxLen = 50

var (
	nonSlug     = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// MakeSlug transliterates name to ASCII and turns it into a URL-safe slug.
// Example: "Die Hard" -> "die-hard", "Москва" -> "moskva"
func MakeSlug(name string) string {
	base := strings.ToLower(unidecode.Unidecode(strings.TrimSpace(name)))
	base = nonSlug.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	return truncateSlug(base, slugMaxLen)
}

func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

func truncateSlug(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimRight(s[:max], "-")
}

// slugTaken reports whether another row of model's table already uses slug.
func slugTaken(tx *gorm.DB, model interface{}, slug string, exceptID uint) (bool, error) {
	q := tx.Model(model).Where("slug = ?", slug)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// newSlug picks the slug for a row being created. An explicit slug must be
// free; a derived one is disambiguated with a numeric suffix.
func newSlug(tx *gorm.DB, model interface{}, entity, explicit, name string) (string, error) {
	if explicit != "" {
		taken, err := slugTaken(tx, model, explicit, 0)
		if err != nil {
			return "", err
		}
		if taken {
			return "", conflict(entity, "slug", "slug %q is already in use", explicit)
		}
		return explicit, nil
	}

	base := MakeSlug(name)
	if base == "" {
		return "", invalid(entity, "slug", "cannot derive a slug from %q", name)
	}

	slug := base
	for n := 2; ; n++ {
		taken, err := slugTaken(tx, model, slug, 0)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		suffix := "-" + strconv.Itoa(n)
		slug = truncateSlug(base, slugMaxLen-len(suffix)) + suffix
	}
}

// keepSlug resolves the slug on update: the stored one unless the caller
// explicitly asks for a different, free one.
func keepSlug(tx *gorm.DB, model interface{}, entity string, id uint, current, requested string) (string, error) {
	if requested == "" || requested == current {
		return current, nil
	}
	taken, err := slugTaken(tx, model, requested, id)
	if err != nil {
		return "", err
	}
	if taken {
		return "", conflict(entity, "slug", "slug %q is already in use", requested)
	}
	return requested, nil
}
