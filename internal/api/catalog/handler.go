package catalogapi

import (
	"net/http"

	"film-catalog/config"
	"film-catalog/database"
	"film-catalog/internal/api/respond"
	"film-catalog/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

func listOptions(c *gin.Context) catalog.ListOptions {
	return catalog.ListOptions{
		PublishedOnly: config.CATALOG_PUBLISHED_ONLY,
		Genre:         c.Query("genre"),
	}
}

// GET /films
func ListFilms(c *gin.Context) {
	view, err := catalog.FilmList(database.DB, listOptions(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /films/:slug
func GetFilm(c *gin.Context) {
	view, err := catalog.FilmDetail(database.DB, c.Param("slug"), listOptions(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /people/:slug
func GetPerson(c *gin.Context) {
	view, err := catalog.PersonDetail(database.DB, c.Param("slug"), listOptions(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /countries/:slug
func GetCountry(c *gin.Context) {
	view, err := catalog.CountryDetail(database.DB, c.Param("slug"), listOptions(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /genres/:slug
func GetGenre(c *gin.Context) {
	view, err := catalog.GenreDetail(database.DB, c.Param("slug"), listOptions(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /careers/:slug
func GetCareer(c *gin.Context) {
	view, err := catalog.CareerDetail(database.DB, c.Param("slug"), listOptions(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
