package admin

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"film-catalog/config"
	"film-catalog/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// POST /admin/uploads/:kind  (multipart field "file")
// Stores the file under MEDIA_ROOT and returns the reference to put on the
// record (photo, poster, image or avatar).
func Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	rel, err := media.UploadPath(c.Param("kind"), file.Filename, time.Now().UTC())
	if errors.Is(err, media.ErrUnknownKind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err == nil {
		rel, err = media.FreePath(config.MEDIA_ROOT, rel)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve upload path")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	dst := filepath.Join(config.MEDIA_ROOT, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		log.Error().Err(err).Str("dst", dst).Msg("Failed to create media directory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Error().Err(err).Str("dst", dst).Msg("Failed to save upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	log.Info().Str("path", rel).Int64("size", file.Size).Msg("Upload stored")
	c.JSON(http.StatusCreated, gin.H{"path": rel})
}
