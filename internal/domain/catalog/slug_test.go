package catalog_test

import (
	"strings"
	"testing"

	"film-catalog/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"Die Hard":               "die-hard",
		"  Die   Hard!!  ":       "die-hard",
		"Amélie":                 "amelie",
		"Москва":                 "moskva",
		"Léon: The Professional": "leon-the-professional",
		"2001: A Space Odyssey":  "2001-a-space-odyssey",
		"!!!":                    "",
	}
	for in, want := range cases {
		assert.Equal(t, want, catalog.MakeSlug(in), in)
	}
}

func TestMakeSlugTruncates(t *testing.T) {
	slug := catalog.MakeSlug(strings.Repeat("word ", 30))
	assert.LessOrEqual(t, len(slug), 50)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, catalog.IsValidSlug("die-hard_2"))
	assert.False(t, catalog.IsValidSlug("die hard"))
	assert.False(t, catalog.IsValidSlug(""))
}

func TestSlugDerivedOnceOnCreate(t *testing.T) {
	db := setupTestDB(t)

	f := mustFilm(t, db, filmInput("Die Hard"))
	assert.Equal(t, "die-hard", f.Slug)

	updated, err := catalog.UpdateFilm(db, f.ID, filmInput("Die Hard 2"))
	require.NoError(t, err)
	assert.Equal(t, "Die Hard 2", updated.Name)
	assert.Equal(t, "die-hard", updated.Slug)
}

func TestSlugCollisionGetsSuffix(t *testing.T) {
	db := setupTestDB(t)

	first := mustFilm(t, db, filmInput("Die Hard"))
	second := mustFilm(t, db, filmInput("Die Hard"))
	third := mustFilm(t, db, filmInput("Die  Hard!"))

	assert.Equal(t, "die-hard", first.Slug)
	assert.Equal(t, "die-hard-2", second.Slug)
	assert.Equal(t, "die-hard-3", third.Slug)
}

func TestExplicitSlug(t *testing.T) {
	db := setupTestDB(t)

	in := filmInput("Die Hard")
	in.Slug = "yippee-ki-yay"
	f := mustFilm(t, db, in)
	assert.Equal(t, "yippee-ki-yay", f.Slug)

	t.Run("taken slug is a conflict", func(t *testing.T) {
		dup := filmInput("Another")
		dup.Slug = "yippee-ki-yay"
		_, err := catalog.CreateFilm(db, dup)
		assert.ErrorIs(t, err, catalog.ErrConflict)

		var fe *catalog.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "slug", fe.Field)
	})

	t.Run("malformed slug is a validation error", func(t *testing.T) {
		bad := filmInput("Another")
		bad.Slug = "not a slug"
		_, err := catalog.CreateFilm(db, bad)
		assert.ErrorIs(t, err, catalog.ErrValidation)
	})

	t.Run("update may set a new slug explicitly", func(t *testing.T) {
		upd := filmInput("Die Hard")
		upd.Slug = "die-hard-1988"
		got, err := catalog.UpdateFilm(db, f.ID, upd)
		require.NoError(t, err)
		assert.Equal(t, "die-hard-1988", got.Slug)
	})
}

func TestUnsluggableName(t *testing.T) {
	db := setupTestDB(t)

	_, err := catalog.CreateGenre(db, catalog.TaxonomyInput{Name: "???"})
	assert.ErrorIs(t, err, catalog.ErrValidation)
}
