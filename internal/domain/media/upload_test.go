package media

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPath(t *testing.T) {
	now := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

	got, err := UploadPath("poster", "Die Hard.jpg", now)
	require.NoError(t, err)
	assert.Equal(t, "poster/2024/03/07/Die_Hard.jpg", got)

	got, err = UploadPath("avatar", "../../etc/passwd", now)
	require.NoError(t, err)
	assert.Equal(t, "avatar/2024/03/07/passwd", got)

	got, err = UploadPath("film", "..", now)
	require.NoError(t, err)
	assert.Equal(t, "film/2024/03/07/upload", got)

	_, err = UploadPath("video", "x.mp4", now)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFreePath(t *testing.T) {
	root := t.TempDir()
	rel := "person/2024/03/07/photo.jpg"

	got, err := FreePath(root, rel)
	require.NoError(t, err)
	assert.Equal(t, rel, got)

	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte("x"), 0o600))

	got, err = FreePath(root, rel)
	require.NoError(t, err)
	assert.Equal(t, "person/2024/03/07/photo_2.jpg", got)
}
