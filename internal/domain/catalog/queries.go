package catalog

import (
	"gorm.io/gorm"
)

// ListOptions controls what the public pages show.
type ListOptions struct {
	// PublishedOnly hides unpublished films and persons.
	PublishedOnly bool
	// Genre narrows the film list to one genre slug.
	Genre string
}

type FilmListView struct {
	Films  []Film  `json:"films"`
	Genres []Genre `json:"genres"`
}

type FilmDetailView struct {
	Film     *Film       `json:"film"`
	Trailers []Trailer   `json:"trailers"`
	Images   []ImageFilm `json:"images"`
	Comments []Comment   `json:"comments"`
}

type PersonDetailView struct {
	Person        *Person `json:"person"`
	DirectorFilms []Film  `json:"director_films"`
	ScenarioFilms []Film  `json:"scenario_films"`
	ProducerFilms []Film  `json:"producer_films"`
	ComposerFilms []Film  `json:"composer_films"`
	ActorFilms    []Film  `json:"actor_films"`
}

type CountryDetailView struct {
	Country *Country `json:"country"`
	Films   []Film   `json:"films"`
	Persons []Person `json:"persons"`
}

type GenreDetailView struct {
	Genre *Genre `json:"genre"`
	Films []Film `json:"films"`
}

type CareerDetailView struct {
	Career  *Career  `json:"career"`
	Persons []Person `json:"persons"`
}

func publishedFilms(q *gorm.DB, opts ListOptions) *gorm.DB {
	if opts.PublishedOnly {
		q = q.Where("films.published = ?", true)
	}
	return q
}

func publishedPersons(q *gorm.DB, opts ListOptions) *gorm.DB {
	if opts.PublishedOnly {
		q = q.Where("persons.published = ?", true)
	}
	return q
}

// FilmList returns the films ordered by name then creation time, together
// with every genre for faceted navigation.
func FilmList(db *gorm.DB, opts ListOptions) (*FilmListView, error) {
	view := &FilmListView{Films: []Film{}, Genres: []Genre{}}

	q := db.Model(&Film{}).Preload("Genres", orderByName).Preload("Country")
	q = filterFilms(publishedFilms(q, opts), opts.Genre, "")
	if err := filmOrder(q).Find(&view.Films).Error; err != nil {
		return nil, err
	}

	genres, err := ListGenres(db, TaxonomyFilter{})
	if err != nil {
		return nil, err
	}
	view.Genres = append(view.Genres, genres...)
	return view, nil
}

// FilmDetail resolves one film by slug with every role set, its trailers,
// stills and published comments.
func FilmDetail(db *gorm.DB, slug string, opts ListOptions) (*FilmDetailView, error) {
	var f Film
	q := publishedFilms(preloadFilm(db.Model(&Film{}), opts.PublishedOnly), opts)
	if err := q.Where("films.slug = ?", slug).First(&f).Error; err != nil {
		return nil, translate("film", err)
	}

	view := &FilmDetailView{Film: &f, Trailers: []Trailer{}, Images: []ImageFilm{}, Comments: []Comment{}}
	if err := db.Where("film_id = ?", f.ID).Order("id ASC").Find(&view.Trailers).Error; err != nil {
		return nil, err
	}
	if err := db.Where("film_id = ?", f.ID).Order("created_at ASC").Order("id ASC").Find(&view.Images).Error; err != nil {
		return nil, err
	}
	err := db.Preload("Author").
		Where("film_id = ? AND published = ?", f.ID, true).
		Order("created_at ASC").Order("id ASC").
		Find(&view.Comments).Error
	if err != nil {
		return nil, err
	}
	return view, nil
}

func filmsWithRole(db *gorm.DB, table string, personID uint, opts ListOptions) ([]Film, error) {
	films := []Film{}
	q := db.Model(&Film{}).
		Joins("JOIN "+table+" ON "+table+".film_id = films.id").
		Where(table+".person_id = ?", personID)
	err := filmOrder(publishedFilms(q, opts)).Find(&films).Error
	return films, err
}

// PersonDetail resolves a person by slug with the films of each role.
func PersonDetail(db *gorm.DB, slug string, opts ListOptions) (*PersonDetailView, error) {
	var p Person
	q := publishedPersons(db.Model(&Person{}).Preload("Careers", orderByName).Preload("Country"), opts)
	if err := q.Where("persons.slug = ?", slug).First(&p).Error; err != nil {
		return nil, translate("person", err)
	}

	view := &PersonDetailView{Person: &p}
	targets := map[Role]*[]Film{
		RoleDirector: &view.DirectorFilms,
		RoleScenario: &view.ScenarioFilms,
		RoleProducer: &view.ProducerFilms,
		RoleComposer: &view.ComposerFilms,
		RoleActor:    &view.ActorFilms,
	}
	for _, fr := range filmRoles {
		films, err := filmsWithRole(db, fr.table, p.ID, opts)
		if err != nil {
			return nil, err
		}
		*targets[fr.role] = films
	}
	return view, nil
}

// CountryDetail resolves a country by slug with its films and persons.
func CountryDetail(db *gorm.DB, slug string, opts ListOptions) (*CountryDetailView, error) {
	c, err := GetCountryBySlug(db, slug)
	if err != nil {
		return nil, err
	}
	view := &CountryDetailView{Country: c, Films: []Film{}, Persons: []Person{}}
	fq := publishedFilms(db.Model(&Film{}).Where("films.country_id = ?", c.ID), opts)
	if err := filmOrder(fq).Find(&view.Films).Error; err != nil {
		return nil, err
	}
	pq := publishedPersons(db.Model(&Person{}).Where("persons.country_id = ?", c.ID), opts)
	if err := personOrder(pq).Find(&view.Persons).Error; err != nil {
		return nil, err
	}
	return view, nil
}

// GenreDetail resolves a genre by slug with its films.
func GenreDetail(db *gorm.DB, slug string, opts ListOptions) (*GenreDetailView, error) {
	g, err := GetGenreBySlug(db, slug)
	if err != nil {
		return nil, err
	}
	view := &GenreDetailView{Genre: g, Films: []Film{}}
	q := db.Model(&Film{}).
		Joins("JOIN film_genres ON film_genres.film_id = films.id").
		Where("film_genres.genre_id = ?", g.ID)
	if err := filmOrder(publishedFilms(q, opts)).Find(&view.Films).Error; err != nil {
		return nil, err
	}
	return view, nil
}

// CareerDetail resolves a career by slug with the persons carrying it.
func CareerDetail(db *gorm.DB, slug string, opts ListOptions) (*CareerDetailView, error) {
	c, err := GetCareerBySlug(db, slug)
	if err != nil {
		return nil, err
	}
	view := &CareerDetailView{Career: c, Persons: []Person{}}
	q := db.Model(&Person{}).
		Joins("JOIN person_careers ON person_careers.person_id = persons.id").
		Where("person_careers.career_id = ?", c.ID)
	if err := personOrder(publishedPersons(q, opts)).Find(&view.Persons).Error; err != nil {
		return nil, err
	}
	return view, nil
}
