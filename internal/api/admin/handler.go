package admin

import (
	"net/http"

	"film-catalog/database"
	"film-catalog/internal/api/respond"
	"film-catalog/internal/domain/catalog"
	"film-catalog/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminStats struct {
	Films               int64 `json:"films"`
	Persons             int64 `json:"persons"`
	Comments            int64 `json:"comments"`
	UnpublishedComments int64 `json:"unpublished_comments"`
	Users               int64 `json:"users"`
}

// GET /admin/dashboard
func AdminDashboard(c *gin.Context) {
	var stats AdminStats
	counts := []struct {
		query *gorm.DB
		dst   *int64
	}{
		{database.DB.Model(&catalog.Film{}), &stats.Films},
		{database.DB.Model(&catalog.Person{}), &stats.Persons},
		{database.DB.Model(&catalog.Comment{}), &stats.Comments},
		{database.DB.Model(&catalog.Comment{}).Where("published = ?", false), &stats.UnpublishedComments},
		{database.DB.Model(&users.User{}), &stats.Users},
	}
	for _, q := range counts {
		if err := q.query.Count(q.dst).Error; err != nil {
			respond.Error(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, stats)
}

// create, get, update and remove adapt a catalog service function to a
// gin handler.

func create[I any, T any](fn func(*gorm.DB, I) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in I
		if !respond.Bind(c, &in) {
			return
		}
		out, err := fn(database.DB, in)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

func get[T any](fn func(*gorm.DB, uint) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.ID(c)
		if !ok {
			return
		}
		out, err := fn(database.DB, id)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func update[I any, T any](fn func(*gorm.DB, uint, I) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.ID(c)
		if !ok {
			return
		}
		var in I
		if !respond.Bind(c, &in) {
			return
		}
		out, err := fn(database.DB, id, in)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func remove(fn func(*gorm.DB, uint) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.ID(c)
		if !ok {
			return
		}
		if err := fn(database.DB, id); err != nil {
			respond.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// publish backs PATCH /admin/<entity>/:id/published.
func publish(fn func(*gorm.DB, uint, bool) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.ID(c)
		if !ok {
			return
		}
		var body struct {
			Published *bool `json:"published" binding:"required"`
		}
		if !respond.Bind(c, &body) {
			return
		}
		if err := fn(database.DB, id, *body.Published); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "published": *body.Published})
	}
}

// PUT /admin/films/:id/roles/:role
func SetFilmRole(c *gin.Context) {
	id, ok := respond.ID(c)
	if !ok {
		return
	}
	var body struct {
		PersonIDs []uint `json:"person_ids"`
	}
	if !respond.Bind(c, &body) {
		return
	}
	film, err := catalog.SetFilmRole(database.DB, id, catalog.Role(c.Param("role")), body.PersonIDs)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// POST /admin/countries/seed
func SeedCountries(c *gin.Context) {
	created, err := catalog.SeedCountries(database.DB)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

var (
	CreateCountry = create(catalog.CreateCountry)
	GetCountry    = get(catalog.GetCountry)
	UpdateCountry = update(catalog.UpdateCountry)
	DeleteCountry = remove(catalog.DeleteCountry)

	CreateCareer = create(catalog.CreateCareer)
	GetCareer    = get(catalog.GetCareer)
	UpdateCareer = update(catalog.UpdateCareer)
	DeleteCareer = remove(catalog.DeleteCareer)

	CreateGenre = create(catalog.CreateGenre)
	GetGenre    = get(catalog.GetGenre)
	UpdateGenre = update(catalog.UpdateGenre)
	DeleteGenre = remove(catalog.DeleteGenre)

	CreatePerson       = create(catalog.CreatePerson)
	GetPerson          = get(catalog.GetPerson)
	UpdatePerson       = update(catalog.UpdatePerson)
	DeletePerson       = remove(catalog.DeletePerson)
	SetPersonPublished = publish(catalog.SetPersonPublished)

	CreateFilm       = create(catalog.CreateFilm)
	GetFilm          = get(catalog.GetFilm)
	UpdateFilm       = update(catalog.UpdateFilm)
	DeleteFilm       = remove(catalog.DeleteFilm)
	SetFilmPublished = publish(catalog.SetFilmPublished)

	CreateImage = create(catalog.CreateImageFilm)
	GetImage    = get(catalog.GetImageFilm)
	UpdateImage = update(catalog.UpdateImageFilm)
	DeleteImage = remove(catalog.DeleteImageFilm)

	CreateTrailer = create(catalog.CreateTrailer)
	GetTrailer    = get(catalog.GetTrailer)
	UpdateTrailer = update(catalog.UpdateTrailer)
	DeleteTrailer = remove(catalog.DeleteTrailer)

	CreateComment       = create(catalog.CreateComment)
	GetComment          = get(catalog.GetComment)
	UpdateComment       = update(catalog.UpdateComment)
	DeleteComment       = remove(catalog.DeleteComment)
	SetCommentPublished = publish(catalog.SetCommentPublished)

	CreateProfile = create(catalog.CreateProfile)
	GetProfile    = get(catalog.GetProfile)
	UpdateProfile = update(catalog.UpdateProfile)
	DeleteProfile = remove(catalog.DeleteProfile)

	CreateUser = create(catalog.CreateUser)
	GetUser    = get(catalog.GetUser)
	UpdateUser = update(catalog.UpdateUser)
	DeleteUser = remove(catalog.DeleteUser)
)
