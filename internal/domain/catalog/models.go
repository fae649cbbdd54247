package catalog

import (
	"time"

	"film-catalog/internal/domain/users"
)

// Taxonomy is the shape shared by the lookup entities: a unique display name
// and a unique slug derived from it.
type Taxonomy struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Slug      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"slug"`
	Published bool      `gorm:"not null" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Country struct {
	Taxonomy
}

func (Country) TableName() string { return "countries" }

type Career struct {
	Taxonomy
}

func (Career) TableName() string { return "careers" }

type Genre struct {
	Taxonomy
}

func (Genre) TableName() string { return "genres" }

// Person covers actors, directors, writers and so on. The same record is
// reused by every role relation of every film.
type Person struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(150);not null;index" json:"name"`
	Biography string     `gorm:"type:text;not null" json:"biography"`
	Birthday  time.Time  `gorm:"type:date;not null" json:"birthday"`
	DeathDay  *time.Time `gorm:"type:date" json:"death_day,omitempty"`

	Careers []Career `gorm:"many2many:person_careers;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"careers,omitempty"`

	CountryID *uint    `gorm:"index" json:"country_id,omitempty"`
	Country   *Country `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"country,omitempty"`

	Slug      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_persons_slug" json:"slug"`
	Photo     string `gorm:"type:varchar(255);not null" json:"photo"`
	Published bool   `gorm:"not null" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Person) TableName() string { return "persons" }

type Film struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"type:varchar(100);not null;index" json:"name"`
	WorldPremiere   *time.Time `gorm:"type:date" json:"world_premiere,omitempty"`
	RussianPremiere *time.Time `gorm:"type:date" json:"russian_premiere,omitempty"`
	Budget          int64      `gorm:"not null" json:"budget"`
	Poster          string     `gorm:"type:varchar(255);not null" json:"poster"`

	// Each role is its own join table; one person may sit in several of them.
	Directors  []Person `gorm:"many2many:film_directors;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"directors"`
	Scenarists []Person `gorm:"many2many:film_scenarists;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"scenarists"`
	Producers  []Person `gorm:"many2many:film_producers;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"producers"`
	Composers  []Person `gorm:"many2many:film_composers;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"composers"`
	Actors     []Person `gorm:"many2many:film_actors;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"actors"`
	Genres     []Genre  `gorm:"many2many:film_genres;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"genres"`

	CountryID *uint    `gorm:"index" json:"country_id,omitempty"`
	Country   *Country `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"country,omitempty"`

	Slug      string   `gorm:"type:varchar(50);not null;uniqueIndex:idx_films_slug" json:"slug"`
	Rating    *float64 `json:"rating,omitempty"`
	Views     *int64   `json:"views,omitempty"`
	Published bool     `gorm:"not null" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Film) TableName() string { return "films" }

// ImageFilm is a still from a film. Removed together with its film.
type ImageFilm struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	FilmID uint   `gorm:"not null;index" json:"film_id"`
	Film   *Film  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"film,omitempty"`
	Image  string `gorm:"type:varchar(255)" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ImageFilm) TableName() string { return "image_films" }

type Comment struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	AuthorID  uint        `gorm:"not null;index" json:"author_id"`
	Author    *users.User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
	FilmID    uint        `gorm:"not null;index" json:"film_id"`
	Film      *Film       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"film,omitempty"`
	Text      string      `gorm:"type:varchar(500);not null" json:"text"`
	Rating    float64     `gorm:"not null" json:"rating"`
	Published bool        `gorm:"not null" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }

// Trailer holds an external video URL. A film with trailers cannot be deleted.
type Trailer struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	FilmID uint   `gorm:"not null;index" json:"film_id"`
	Film   *Film  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"film,omitempty"`
	URL    string `gorm:"column:url;type:varchar(250);not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Trailer) TableName() string { return "trailers" }

type Gender string

const (
	GenderMan   Gender = "man"
	GenderWoman Gender = "woman"
	GenderOther Gender = "other"
)

type UserProfile struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID uint        `gorm:"not null;uniqueIndex:idx_user_profiles_user" json:"user_id"`
	User   *users.User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Gender   Gender     `gorm:"type:varchar(5);not null" json:"gender"`
	Birthday *time.Time `gorm:"type:date" json:"birthday,omitempty"`

	CountryID *uint    `gorm:"index" json:"country_id,omitempty"`
	Country   *Country `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"country,omitempty"`

	Avatar    string `gorm:"type:varchar(255);not null" json:"avatar"`
	Point     int    `gorm:"not null;default:0" json:"point"`
	Published bool   `gorm:"not null" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// Models lists every catalog table for AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&Country{},
		&Career{},
		&Genre{},
		&Person{},
		&Film{},
		&ImageFilm{},
		&Comment{},
		&Trailer{},
		&UserProfile{},
	}
}
