package users_test

import (
	"testing"

	"film-catalog/database"
	"film-catalog/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPasswordStrong(t *testing.T) {
	assert.True(t, users.IsPasswordStrong("abcdefg1"))
	assert.False(t, users.IsPasswordStrong("abc1"))
	assert.False(t, users.IsPasswordStrong("abcdefgh"))
	assert.False(t, users.IsPasswordStrong("12345678"))
}

func TestEnsureAdminAndAuthenticate(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, users.EnsureAdmin(db, "root", "root@example.com", "secret123"))
	// second call is a no-op
	require.NoError(t, users.EnsureAdmin(db, "root", "root@example.com", "secret123"))

	var count int64
	require.NoError(t, db.Model(&users.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	t.Run("by username", func(t *testing.T) {
		u, err := users.Authenticate(db, "root", "secret123")
		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})

	t.Run("by email", func(t *testing.T) {
		u, err := users.Authenticate(db, "root@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "root", u.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := users.Authenticate(db, "root", "nope")
		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := users.Authenticate(db, "ghost", "secret123")
		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	})
}

func TestEnsureAdminDisabled(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, users.EnsureAdmin(db, "admin", "", ""))

	var count int64
	require.NoError(t, db.Model(&users.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
