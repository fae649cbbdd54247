package catalog_test

import (
	"testing"

	"film-catalog/database"
	"film-catalog/internal/domain/catalog"
	"film-catalog/internal/domain/users"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the catalog schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func ptr[T any](v T) *T {
	return &v
}

func mustCountry(t *testing.T, db *gorm.DB, name string) *catalog.Country {
	t.Helper()
	c, err := catalog.CreateCountry(db, catalog.TaxonomyInput{Name: name})
	require.NoError(t, err)
	return c
}

func mustCareer(t *testing.T, db *gorm.DB, name string) *catalog.Career {
	t.Helper()
	c, err := catalog.CreateCareer(db, catalog.TaxonomyInput{Name: name})
	require.NoError(t, err)
	return c
}

func mustGenre(t *testing.T, db *gorm.DB, name string) *catalog.Genre {
	t.Helper()
	g, err := catalog.CreateGenre(db, catalog.TaxonomyInput{Name: name})
	require.NoError(t, err)
	return g
}

func personInput(name string, careerIDs ...uint) catalog.PersonInput {
	return catalog.PersonInput{
		Name:      name,
		Biography: "Biography of " + name,
		Birthday:  "1955-03-19",
		CareerIDs: careerIDs,
		Photo:     "person/2024/01/01/photo.jpg",
	}
}

func mustPerson(t *testing.T, db *gorm.DB, name string) *catalog.Person {
	t.Helper()
	var career catalog.Career
	if err := db.Where("slug = ?", "actor").First(&career).Error; err != nil {
		career = *mustCareer(t, db, "Actor")
	}
	p, err := catalog.CreatePerson(db, personInput(name, career.ID))
	require.NoError(t, err)
	return p
}

func filmInput(name string) catalog.FilmInput {
	return catalog.FilmInput{
		Name:   name,
		Budget: ptr(int64(28000000)),
		Poster: "poster/2024/01/01/poster.jpg",
	}
}

func mustFilm(t *testing.T, db *gorm.DB, in catalog.FilmInput) *catalog.Film {
	t.Helper()
	f, err := catalog.CreateFilm(db, in)
	require.NoError(t, err)
	return f
}

func mustUser(t *testing.T, db *gorm.DB, username string) *users.User {
	t.Helper()
	u, err := catalog.CreateUser(db, catalog.UserInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return u
}
