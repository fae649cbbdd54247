package users

import (
	"errors"
	"net/http"

	"film-catalog/database"
	"film-catalog/internal/api/respond"
	"film-catalog/internal/domain/catalog"
	"film-catalog/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MeResponse struct {
	User    users.User           `json:"user"`
	Profile *catalog.UserProfile `json:"profile,omitempty"`
}

// GET /me (auth)
func GetCurrentUser(c *gin.Context) {
	userID, ok := respond.UserID(c)
	if !ok {
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	resp := MeResponse{User: user}
	var profile catalog.UserProfile
	err := database.DB.Preload("Country").Where("user_id = ?", userID).First(&profile).Error
	switch {
	case err == nil:
		resp.Profile = &profile
	case !errors.Is(err, gorm.ErrRecordNotFound):
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
