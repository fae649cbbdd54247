package catalog_test

import (
	"testing"

	"film-catalog/internal/domain/catalog"
	"film-catalog/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	u := mustUser(t, db, "alice")
	assert.Equal(t, users.RoleUser, u.Role)
	require.NotNil(t, u.Password)
	assert.NotEqual(t, "password123", *u.Password)

	_, err := catalog.CreateUser(db, catalog.UserInput{Username: "alice", Email: "other@example.com", Password: "password123"})
	assert.ErrorIs(t, err, catalog.ErrConflict)

	_, err = catalog.CreateUser(db, catalog.UserInput{Username: "bob", Email: "ALICE@example.com", Password: "password123"})
	assert.ErrorIs(t, err, catalog.ErrConflict)

	_, err = catalog.CreateUser(db, catalog.UserInput{Username: "bob", Email: "bob@example.com", Password: "short"})
	assert.ErrorIs(t, err, catalog.ErrValidation)
}

func TestUpdateUserKeepsPassword(t *testing.T) {
	db := setupTestDB(t)
	u := mustUser(t, db, "alice")
	old := *u.Password

	got, err := catalog.UpdateUser(db, u.ID, catalog.UserInput{Username: "alice2", Email: "alice@example.com", Role: users.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "alice2", got.Username)
	assert.True(t, got.IsAdmin())
	assert.Equal(t, old, *got.Password)
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	u := mustUser(t, db, "alice")
	other := mustUser(t, db, "bob")
	f := mustFilm(t, db, filmInput("Die Hard"))

	_, err := catalog.CreateComment(db, catalog.CommentInput{AuthorID: u.ID, FilmID: f.ID, Text: "mine", Rating: ptr(7.0)})
	require.NoError(t, err)
	_, err = catalog.CreateComment(db, catalog.CommentInput{AuthorID: other.ID, FilmID: f.ID, Text: "theirs", Rating: ptr(6.0)})
	require.NoError(t, err)
	_, err = catalog.CreateProfile(db, catalog.ProfileInput{UserID: u.ID, Gender: catalog.GenderMan, Avatar: "avatar/a.png"})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteUser(db, u.ID))

	comments, err := catalog.ListComments(db, catalog.CommentFilter{})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "theirs", comments[0].Text)

	profiles, err := catalog.ListProfiles(db, catalog.ProfileFilter{})
	require.NoError(t, err)
	assert.Empty(t, profiles)

	_, err = catalog.GetFilm(db, f.ID)
	assert.NoError(t, err)
}

func TestProfileOnePerUser(t *testing.T) {
	db := setupTestDB(t)
	u := mustUser(t, db, "alice")

	in := catalog.ProfileInput{UserID: u.ID, Gender: catalog.GenderWoman, Birthday: "1990-05-01", Avatar: "avatar/a.png"}
	p, err := catalog.CreateProfile(db, in)
	require.NoError(t, err)
	assert.Zero(t, p.Point)
	require.NotNil(t, p.Birthday)

	_, err = catalog.CreateProfile(db, in)
	assert.ErrorIs(t, err, catalog.ErrConflict)

	in.Gender = "robot"
	_, err = catalog.UpdateProfile(db, p.ID, in)
	assert.ErrorIs(t, err, catalog.ErrValidation)
}
