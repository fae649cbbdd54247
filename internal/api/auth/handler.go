package auth

import (
	"errors"
	"net/http"
	"time"

	"film-catalog/config"
	"film-catalog/database"
	"film-catalog/internal/api/respond"
	"film-catalog/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// POST /login  {"login": username or email, "password": ...}
func Login(c *gin.Context) {
	var input struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if !respond.Bind(c, &input) {
		return
	}

	user, err := users.Authenticate(database.DB, input.Login, input.Password)
	if errors.Is(err, users.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Login lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not log in"})
		return
	}

	tokenString, err := users.IssueToken(user, config.JWT_SECRET, time.Now())
	if err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("Token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// POST /change-password (auth)
func ChangePassword(c *gin.Context) {
	userID, ok := respond.UserID(c)
	if !ok {
		return
	}

	var body struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if !respond.Bind(c, &body) {
		return
	}

	if !users.IsPasswordStrong(body.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be at least 8 characters with letters and numbers"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if user.Password == nil || bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(body.OldPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Old password is incorrect"})
		return
	}

	hashed, err := users.HashPassword(body.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := database.DB.Model(&user).Update("password", hashed).Error; err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("Failed to update password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
