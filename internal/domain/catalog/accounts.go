package catalog

import (
	"strings"

	"film-catalog/internal/domain/users"

	"gorm.io/gorm"
)

type UserInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	// required on create; an empty password on update keeps the old one
	Password string `json:"password"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

func (in *UserInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == "" {
		in.Role = users.RoleUser
	}
}

func checkAccountFree(tx *gorm.DB, in UserInput, exceptID uint) error {
	for _, col := range []string{"username", "email"} {
		value := in.Username
		if col == "email" {
			value = in.Email
		}
		q := tx.Model(&users.User{}).Where(col+" = ?", value)
		if exceptID != 0 {
			q = q.Where("id <> ?", exceptID)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return conflict("user", col, "%q is already taken", value)
		}
	}
	return nil
}

func setPassword(u *users.User, password string) error {
	if !users.IsPasswordStrong(password) {
		return invalid("user", "password", "must be at least 8 characters long and contain both letters and numbers")
	}
	hashed, err := users.HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = &hashed
	return nil
}

func CreateUser(db *gorm.DB, in UserInput) (*users.User, error) {
	in.normalize()
	if err := check("user", in); err != nil {
		return nil, err
	}
	u := users.User{Username: in.Username, Email: in.Email, Role: in.Role}
	if err := setPassword(&u, in.Password); err != nil {
		return nil, err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := checkAccountFree(tx, in, 0); err != nil {
			return err
		}
		return translate("user", tx.Create(&u).Error)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func GetUser(db *gorm.DB, id uint) (*users.User, error) {
	var u users.User
	if err := db.First(&u, id).Error; err != nil {
		return nil, translate("user", err)
	}
	return &u, nil
}

func ListUsers(db *gorm.DB, q string) ([]users.User, error) {
	query := db.Model(&users.User{})
	if s := strings.TrimSpace(q); s != "" {
		like := likePattern(s)
		query = query.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	var rows []users.User
	err := query.Order("username ASC").Order("id ASC").Find(&rows).Error
	return rows, err
}

func UpdateUser(db *gorm.DB, id uint, in UserInput) (*users.User, error) {
	in.normalize()
	if err := check("user", in); err != nil {
		return nil, err
	}
	var u users.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, id).Error; err != nil {
			return translate("user", err)
		}
		if err := checkAccountFree(tx, in, id); err != nil {
			return err
		}
		u.Username = in.Username
		u.Email = in.Email
		u.Role = in.Role
		if in.Password != "" {
			if err := setPassword(&u, in.Password); err != nil {
				return err
			}
		}
		return translate("user", tx.Save(&u).Error)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes the account together with its comments and profile.
func DeleteUser(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var u users.User
		if err := tx.First(&u, id).Error; err != nil {
			return translate("user", err)
		}
		if err := tx.Where("author_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&UserProfile{}).Error; err != nil {
			return err
		}
		return translateDelete("user", tx.Delete(&u).Error)
	})
}
