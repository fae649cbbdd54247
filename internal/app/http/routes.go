package routes

import (
	adminapi "film-catalog/internal/api/admin"
	authapi "film-catalog/internal/api/auth"
	catalogapi "film-catalog/internal/api/catalog"
	usersapi "film-catalog/internal/api/users"
	"film-catalog/internal/app/http/middleware"
	"film-catalog/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog pages
	r.GET("/films", catalogapi.ListFilms)
	r.GET("/films/:slug", catalogapi.GetFilm)
	r.GET("/people/:slug", catalogapi.GetPerson)
	r.GET("/countries/:slug", catalogapi.GetCountry)
	r.GET("/genres/:slug", catalogapi.GetGenre)
	r.GET("/careers/:slug", catalogapi.GetCareer)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/login", authapi.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin), middleware.SanitizeAndCleanInputMiddleware())
	admin.GET("/dashboard", adminapi.AdminDashboard)

	admin.GET("/countries", adminapi.ListCountries)
	admin.POST("/countries", adminapi.CreateCountry)
	admin.POST("/countries/seed", adminapi.SeedCountries)
	admin.GET("/countries/:id", adminapi.GetCountry)
	admin.PUT("/countries/:id", adminapi.UpdateCountry)
	admin.DELETE("/countries/:id", adminapi.DeleteCountry)

	admin.GET("/careers", adminapi.ListCareers)
	admin.POST("/careers", adminapi.CreateCareer)
	admin.GET("/careers/:id", adminapi.GetCareer)
	admin.PUT("/careers/:id", adminapi.UpdateCareer)
	admin.DELETE("/careers/:id", adminapi.DeleteCareer)

	admin.GET("/genres", adminapi.ListGenres)
	admin.POST("/genres", adminapi.CreateGenre)
	admin.GET("/genres/:id", adminapi.GetGenre)
	admin.PUT("/genres/:id", adminapi.UpdateGenre)
	admin.DELETE("/genres/:id", adminapi.DeleteGenre)

	admin.GET("/persons", adminapi.ListPersons)
	admin.POST("/persons", adminapi.CreatePerson)
	admin.GET("/persons/:id", adminapi.GetPerson)
	admin.PUT("/persons/:id", adminapi.UpdatePerson)
	admin.DELETE("/persons/:id", adminapi.DeletePerson)
	admin.PATCH("/persons/:id/published", adminapi.SetPersonPublished)

	admin.GET("/films", adminapi.ListFilms)
	admin.POST("/films", adminapi.CreateFilm)
	admin.GET("/films/:id", adminapi.GetFilm)
	admin.PUT("/films/:id", adminapi.UpdateFilm)
	admin.DELETE("/films/:id", adminapi.DeleteFilm)
	admin.PATCH("/films/:id/published", adminapi.SetFilmPublished)
	admin.PUT("/films/:id/roles/:role", adminapi.SetFilmRole)

	admin.GET("/images", adminapi.ListImages)
	admin.POST("/images", adminapi.CreateImage)
	admin.GET("/images/:id", adminapi.GetImage)
	admin.PUT("/images/:id", adminapi.UpdateImage)
	admin.DELETE("/images/:id", adminapi.DeleteImage)

	admin.GET("/trailers", adminapi.ListTrailers)
	admin.POST("/trailers", adminapi.CreateTrailer)
	admin.GET("/trailers/:id", adminapi.GetTrailer)
	admin.PUT("/trailers/:id", adminapi.UpdateTrailer)
	admin.DELETE("/trailers/:id", adminapi.DeleteTrailer)

	admin.GET("/comments", adminapi.ListComments)
	admin.POST("/comments", adminapi.CreateComment)
	admin.GET("/comments/:id", adminapi.GetComment)
	admin.PUT("/comments/:id", adminapi.UpdateComment)
	admin.DELETE("/comments/:id", adminapi.DeleteComment)
	admin.PATCH("/comments/:id/published", adminapi.SetCommentPublished)

	admin.GET("/profiles", adminapi.ListProfiles)
	admin.POST("/profiles", adminapi.CreateProfile)
	admin.GET("/profiles/:id", adminapi.GetProfile)
	admin.PUT("/profiles/:id", adminapi.UpdateProfile)
	admin.DELETE("/profiles/:id", adminapi.DeleteProfile)

	admin.GET("/users", adminapi.ListUsers)
	admin.POST("/users", adminapi.CreateUser)
	admin.GET("/users/:id", adminapi.GetUser)
	admin.PUT("/users/:id", adminapi.UpdateUser)
	admin.DELETE("/users/:id", adminapi.DeleteUser)

	// multipart, so no JSON sanitizing
	r.POST("/admin/uploads/:kind", middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin), adminapi.Upload)
}
