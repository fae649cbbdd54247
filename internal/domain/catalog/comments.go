package catalog

import (
	"strings"

	"film-catalog/internal/domain/users"

	"gorm.io/gorm"
)

type CommentInput struct {
	AuthorID  uint     `json:"author_id" validate:"required"`
	FilmID    uint     `json:"film_id" validate:"required"`
	Text      string   `json:"text" validate:"required,max=500"`
	Rating    *float64 `json:"rating" validate:"required"`
	Published *bool    `json:"published"`
}

// CommentFilter searches by author username or film name.
type CommentFilter struct {
	Q         string
	FilmID    uint
	Published *bool
}

func (in *CommentInput) prepare(tx *gorm.DB) error {
	if err := checkExists(tx, &users.User{}, "comment", "author_id", in.AuthorID); err != nil {
		return err
	}
	return checkExists(tx, &Film{}, "comment", "film_id", in.FilmID)
}

func CreateComment(db *gorm.DB, in CommentInput) (*Comment, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := check("comment", in); err != nil {
		return nil, err
	}
	c := Comment{
		AuthorID:  in.AuthorID,
		FilmID:    in.FilmID,
		Text:      in.Text,
		Rating:    *in.Rating,
		Published: boolOr(in.Published, true),
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := in.prepare(tx); err != nil {
			return err
		}
		return translate("comment", tx.Omit("Author", "Film").Create(&c).Error)
	})
	if err != nil {
		return nil, err
	}
	return GetComment(db, c.ID)
}

func GetComment(db *gorm.DB, id uint) (*Comment, error) {
	var c Comment
	if err := db.Preload("Author").Preload("Film").First(&c, id).Error; err != nil {
		return nil, translate("comment", err)
	}
	return &c, nil
}

func ListComments(db *gorm.DB, f CommentFilter) ([]Comment, error) {
	q := db.Model(&Comment{}).Preload("Author").Preload("Film")
	if f.FilmID != 0 {
		q = q.Where("comments.film_id = ?", f.FilmID)
	}
	if s := strings.TrimSpace(f.Q); s != "" {
		like := likePattern(s)
		q = q.Where(`(comments.author_id IN (SELECT id FROM users WHERE LOWER(username) LIKE ?)
			OR comments.film_id IN (SELECT id FROM films WHERE LOWER(name) LIKE ?))`, like, like)
	}
	if f.Published != nil {
		q = q.Where("comments.published = ?", *f.Published)
	}
	var rows []Comment
	err := q.Order("comments.created_at ASC").Order("comments.id ASC").Find(&rows).Error
	return rows, err
}

func UpdateComment(db *gorm.DB, id uint, in CommentInput) (*Comment, error) {
	in.Text = strings.TrimSpace(in.Text)
	if err := check("comment", in); err != nil {
		return nil, err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var c Comment
		if err := tx.First(&c, id).Error; err != nil {
			return translate("comment", err)
		}
		if err := in.prepare(tx); err != nil {
			return err
		}
		c.AuthorID = in.AuthorID
		c.FilmID = in.FilmID
		c.Text = in.Text
		c.Rating = *in.Rating
		c.Published = boolOr(in.Published, c.Published)
		return translate("comment", tx.Omit("Author", "Film").Save(&c).Error)
	})
	if err != nil {
		return nil, err
	}
	return GetComment(db, id)
}

func SetCommentPublished(db *gorm.DB, id uint, published bool) error {
	return setPublished(db, &Comment{}, "comment", id, published)
}

func DeleteComment(db *gorm.DB, id uint) error {
	return deleteByID(db, &Comment{}, "comment", id)
}
