package respond

import (
	"errors"
	"net/http"
	"strconv"

	"film-catalog/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error writes the JSON error body for a catalog error. Anything outside the
// catalog taxonomy is logged and reported as 500.
func Error(c *gin.Context, err error) {
	var (
		fe *catalog.FieldError
		re *catalog.RestrictedError
	)
	switch {
	case errors.As(err, &re):
		c.JSON(http.StatusConflict, gin.H{"error": re.Error(), "dependents": re.Dependents})
	case errors.As(err, &fe):
		body := gin.H{"error": fe.Error()}
		if fe.Field != "" {
			body["field"] = fe.Field
		}
		c.JSON(status(err), body)
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func status(err error) int {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrConflict), errors.Is(err, catalog.ErrDeleteRestricted):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// ID parses the :id path parameter, answering 400 itself when it is not a
// positive integer.
func ID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// Bind decodes the JSON body into dst, answering 400 itself on failure.
func Bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return false
	}
	return true
}

// UserID reads the authenticated user id set by the auth middleware.
func UserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}
