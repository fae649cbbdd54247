package catalog

import (
	"strings"

	"film-catalog/internal/domain/users"

	"gorm.io/gorm"
)

type ProfileInput struct {
	UserID    uint   `json:"user_id" validate:"required"`
	Gender    Gender `json:"gender" validate:"required,oneof=man woman other"`
	Birthday  string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	CountryID *uint  `json:"country_id"`
	Avatar    string `json:"avatar" validate:"required,max=255"`
	Point     int    `json:"point"`
	Published *bool  `json:"published"`
}

// ProfileFilter searches by username and filters by country slug.
type ProfileFilter struct {
	Q       string
	Country string
}

func (in *ProfileInput) prepare(tx *gorm.DB, exceptID uint) error {
	if err := checkExists(tx, &users.User{}, "user_profile", "user_id", in.UserID); err != nil {
		return err
	}
	q := tx.Model(&UserProfile{}).Where("user_id = ?", in.UserID)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return conflict("user_profile", "user_id", "user %d already has a profile", in.UserID)
	}
	return checkOptional(tx, &Country{}, "user_profile", "country_id", in.CountryID)
}

func (in *ProfileInput) apply(p *UserProfile) {
	p.UserID = in.UserID
	p.Gender = in.Gender
	p.Birthday = parseOptionalDate(in.Birthday)
	p.CountryID = in.CountryID
	p.Avatar = strings.TrimSpace(in.Avatar)
	p.Point = in.Point
}

func CreateProfile(db *gorm.DB, in ProfileInput) (*UserProfile, error) {
	if err := check("user_profile", in); err != nil {
		return nil, err
	}
	var p UserProfile
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := in.prepare(tx, 0); err != nil {
			return err
		}
		in.apply(&p)
		p.Published = boolOr(in.Published, true)
		return translate("user_profile", tx.Omit("User", "Country").Create(&p).Error)
	})
	if err != nil {
		return nil, err
	}
	return GetProfile(db, p.ID)
}

func GetProfile(db *gorm.DB, id uint) (*UserProfile, error) {
	var p UserProfile
	if err := db.Preload("User").Preload("Country").First(&p, id).Error; err != nil {
		return nil, translate("user_profile", err)
	}
	return &p, nil
}

func ListProfiles(db *gorm.DB, f ProfileFilter) ([]UserProfile, error) {
	q := db.Model(&UserProfile{}).Preload("User").Preload("Country")
	if s := strings.TrimSpace(f.Q); s != "" {
		q = q.Where("user_profiles.user_id IN (SELECT id FROM users WHERE LOWER(username) LIKE ?)", likePattern(s))
	}
	if f.Country != "" {
		q = q.Where("user_profiles.country_id IN (SELECT id FROM countries WHERE slug = ?)", f.Country)
	}
	var rows []UserProfile
	err := q.Order("user_profiles.created_at ASC").Order("user_profiles.id ASC").Find(&rows).Error
	return rows, err
}

func UpdateProfile(db *gorm.DB, id uint, in ProfileInput) (*UserProfile, error) {
	if err := check("user_profile", in); err != nil {
		return nil, err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var p UserProfile
		if err := tx.First(&p, id).Error; err != nil {
			return translate("user_profile", err)
		}
		if err := in.prepare(tx, id); err != nil {
			return err
		}
		in.apply(&p)
		p.Published = boolOr(in.Published, p.Published)
		return translate("user_profile", tx.Omit("User", "Country").Save(&p).Error)
	})
	if err != nil {
		return nil, err
	}
	return GetProfile(db, id)
}

func DeleteProfile(db *gorm.DB, id uint) error {
	return deleteByID(db, &UserProfile{}, "user_profile", id)
}
