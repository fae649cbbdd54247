package users

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// IsPasswordStrong requires at least 8 characters with both letters and digits.
func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// Authenticate looks the account up by username or email and checks the password.
func Authenticate(db *gorm.DB, login, password string) (*User, error) {
	login = strings.TrimSpace(login)
	var user User
	err := db.Where("username = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password == nil || *user.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
// Empty email or password disables bootstrapping.
func EnsureAdmin(db *gorm.DB, username, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&User{}).Where("username = ? OR email = ?", username, email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	admin := User{
		Username: username,
		Email:    email,
		Password: &hashed,
		Role:     RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Info().Str("username", username).Msg("Bootstrap admin account created")
	return nil
}
