package admin

import (
	"net/http"
	"strconv"

	"film-catalog/database"
	"film-catalog/internal/api/respond"
	"film-catalog/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// queryBool reads an optional boolean filter; absent or malformed means unset.
func queryBool(c *gin.Context, key string) *bool {
	b, err := strconv.ParseBool(c.Query(key))
	if err != nil {
		return nil
	}
	return &b
}

func queryUint(c *gin.Context, key string) uint {
	n, _ := strconv.ParseUint(c.Query(key), 10, 64)
	return uint(n)
}

func taxonomyFilter(c *gin.Context) catalog.TaxonomyFilter {
	return catalog.TaxonomyFilter{Q: c.Query("q")}
}

func list[T any](c *gin.Context, rows []T, err error) {
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Ternary(rows == nil, []T{}, rows))
}

// GET /admin/countries
func ListCountries(c *gin.Context) {
	rows, err := catalog.ListCountries(database.DB, taxonomyFilter(c))
	list(c, rows, err)
}

// GET /admin/careers
func ListCareers(c *gin.Context) {
	rows, err := catalog.ListCareers(database.DB, taxonomyFilter(c))
	list(c, rows, err)
}

// GET /admin/genres
func ListGenres(c *gin.Context) {
	rows, err := catalog.ListGenres(database.DB, taxonomyFilter(c))
	list(c, rows, err)
}

// GET /admin/persons?q=&career=&country=&published=
func ListPersons(c *gin.Context) {
	rows, err := catalog.ListPersons(database.DB, catalog.PersonFilter{
		Q:         c.Query("q"),
		Career:    c.Query("career"),
		Country:   c.Query("country"),
		Published: queryBool(c, "published"),
	})
	list(c, rows, err)
}

// GET /admin/films?q=&genre=&country=&published=
func ListFilms(c *gin.Context) {
	rows, err := catalog.ListFilms(database.DB, catalog.FilmFilter{
		Q:         c.Query("q"),
		Genre:     c.Query("genre"),
		Country:   c.Query("country"),
		Published: queryBool(c, "published"),
	})
	list(c, rows, err)
}

func assetFilter(c *gin.Context) catalog.AssetFilter {
	return catalog.AssetFilter{Q: c.Query("q"), FilmID: queryUint(c, "film_id")}
}

// GET /admin/images?q=&film_id=
func ListImages(c *gin.Context) {
	rows, err := catalog.ListImageFilms(database.DB, assetFilter(c))
	list(c, rows, err)
}

// GET /admin/trailers?q=&film_id=
func ListTrailers(c *gin.Context) {
	rows, err := catalog.ListTrailers(database.DB, assetFilter(c))
	list(c, rows, err)
}

// GET /admin/comments?q=&film_id=&published=
func ListComments(c *gin.Context) {
	rows, err := catalog.ListComments(database.DB, catalog.CommentFilter{
		Q:         c.Query("q"),
		FilmID:    queryUint(c, "film_id"),
		Published: queryBool(c, "published"),
	})
	list(c, rows, err)
}

// GET /admin/profiles?q=&country=
func ListProfiles(c *gin.Context) {
	rows, err := catalog.ListProfiles(database.DB, catalog.ProfileFilter{
		Q:       c.Query("q"),
		Country: c.Query("country"),
	})
	list(c, rows, err)
}

// GET /admin/users?q=
func ListUsers(c *gin.Context) {
	rows, err := catalog.ListUsers(database.DB, c.Query("q"))
	list(c, rows, err)
}
