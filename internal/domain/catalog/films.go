package catalog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Role names one of the person relations of a film.
type Role string

const (
	RoleDirector Role = "director"
	RoleScenario Role = "scenario"
	RoleProducer Role = "producer"
	RoleComposer Role = "composer"
	RoleActor    Role = "actor"
)

type filmRole struct {
	role        Role
	association string
	table       string
}

var filmRoles = []filmRole{
	{RoleDirector, "Directors", "film_directors"},
	{RoleScenario, "Scenarists", "film_scenarists"},
	{RoleProducer, "Producers", "film_producers"},
	{RoleComposer, "Composers", "film_composers"},
	{RoleActor, "Actors", "film_actors"},
}

func lookupRole(r Role) (filmRole, bool) {
	for _, fr := range filmRoles {
		if fr.role == r {
			return fr, true
		}
	}
	return filmRole{}, false
}

type FilmInput struct {
	Name            string   `json:"name" validate:"required,max=100"`
	WorldPremiere   string   `json:"world_premiere" validate:"omitempty,datetime=2006-01-02"`
	RussianPremiere string   `json:"russian_premiere" validate:"omitempty,datetime=2006-01-02"`
	Budget          *int64   `json:"budget" validate:"required,gte=0"`
	Poster          string   `json:"poster" validate:"required,max=255"`
	DirectorIDs     []uint   `json:"director_ids"`
	ScenaristIDs    []uint   `json:"scenarist_ids"`
	ProducerIDs     []uint   `json:"producer_ids"`
	ComposerIDs     []uint   `json:"composer_ids"`
	ActorIDs        []uint   `json:"actor_ids"`
	GenreIDs        []uint   `json:"genre_ids"`
	CountryID       *uint    `json:"country_id"`
	Slug            string   `json:"slug" validate:"omitempty,max=50,slug"`
	Rating          *float64 `json:"rating" validate:"omitempty,gte=0"`
	Views           *int64   `json:"views" validate:"omitempty,gte=0"`
	Published       *bool    `json:"published"`
}

func (in *FilmInput) roleIDs(r Role) (field string, ids []uint) {
	switch r {
	case RoleDirector:
		return "director_ids", in.DirectorIDs
	case RoleScenario:
		return "scenarist_ids", in.ScenaristIDs
	case RoleProducer:
		return "producer_ids", in.ProducerIDs
	case RoleComposer:
		return "composer_ids", in.ComposerIDs
	default:
		return "actor_ids", in.ActorIDs
	}
}

// FilmFilter mirrors the admin list: search by film name, any person in any
// role, genre or country name; filter by genre and country slug.
type FilmFilter struct {
	Q         string
	Genre     string
	Country   string
	Published *bool
}

// filmRelations are the resolved many-to-many sets of a FilmInput.
type filmRelations struct {
	roles  map[Role][]Person
	genres []Genre
}

func (in *FilmInput) prepare(tx *gorm.DB) (*filmRelations, error) {
	if err := checkOptional(tx, &Country{}, "film", "country_id", in.CountryID); err != nil {
		return nil, err
	}
	rel := &filmRelations{roles: map[Role][]Person{}}
	for _, fr := range filmRoles {
		field, ids := in.roleIDs(fr.role)
		persons, err := loadByIDs(tx, "film", field, ids, func(p Person) uint { return p.ID })
		if err != nil {
			return nil, err
		}
		rel.roles[fr.role] = persons
	}
	genres, err := loadByIDs(tx, "film", "genre_ids", in.GenreIDs, func(g Genre) uint { return g.ID })
	if err != nil {
		return nil, err
	}
	rel.genres = genres
	return rel, nil
}

func (rel *filmRelations) save(tx *gorm.DB, f *Film) error {
	for _, fr := range filmRoles {
		if err := replaceAssociation(tx, f, fr.association, rel.roles[fr.role]); err != nil {
			return err
		}
	}
	return replaceAssociation(tx, f, "Genres", rel.genres)
}

func (in *FilmInput) apply(f *Film) {
	f.Name = in.Name
	f.WorldPremiere = parseOptionalDate(in.WorldPremiere)
	f.RussianPremiere = parseOptionalDate(in.RussianPremiere)
	f.Budget = *in.Budget
	f.Poster = in.Poster
	f.CountryID = in.CountryID
	f.Rating = in.Rating
	f.Views = in.Views
}

func CreateFilm(db *gorm.DB, in FilmInput) (*Film, error) {
	in.Name = normalizeName(in.Name)
	if err := check("film", in); err != nil {
		return nil, err
	}

	var f Film
	err := db.Transaction(func(tx *gorm.DB) error {
		rel, err := in.prepare(tx)
		if err != nil {
			return err
		}
		in.apply(&f)
		f.Published = boolOr(in.Published, true)
		if f.Slug, err = newSlug(tx, &Film{}, "film", in.Slug, f.Name); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&f).Error; err != nil {
			return translate("film", err)
		}
		return rel.save(tx, &f)
	})
	if err != nil {
		return nil, err
	}
	return GetFilm(db, f.ID)
}

// preloadFilm resolves every role set, the genres and the country. With
// publishedOnly the role sets leave out unpublished persons.
func preloadFilm(q *gorm.DB, publishedOnly bool) *gorm.DB {
	persons := orderByName
	if publishedOnly {
		persons = func(q *gorm.DB) *gorm.DB {
			return orderByName(q.Where("persons.published = ?", true))
		}
	}
	for _, fr := range filmRoles {
		q = q.Preload(fr.association, persons)
	}
	return q.Preload("Genres", orderByName).Preload("Country")
}

func GetFilm(db *gorm.DB, id uint) (*Film, error) {
	var f Film
	if err := preloadFilm(db, false).First(&f, id).Error; err != nil {
		return nil, translate("film", err)
	}
	return &f, nil
}

func GetFilmBySlug(db *gorm.DB, slug string) (*Film, error) {
	var f Film
	if err := preloadFilm(db, false).Where("slug = ?", slug).First(&f).Error; err != nil {
		return nil, translate("film", err)
	}
	return &f, nil
}

func ListFilms(db *gorm.DB, f FilmFilter) ([]Film, error) {
	q := db.Model(&Film{}).Preload("Genres", orderByName).Preload("Country")
	if s := strings.TrimSpace(f.Q); s != "" {
		like := likePattern(s)
		conds := []string{"LOWER(films.name) LIKE ?"}
		args := []interface{}{like}
		for _, fr := range filmRoles {
			conds = append(conds, fmt.Sprintf(`EXISTS (SELECT 1 FROM %[1]s JOIN persons ON persons.id = %[1]s.person_id
				WHERE %[1]s.film_id = films.id AND LOWER(persons.name) LIKE ?)`, fr.table))
			args = append(args, like)
		}
		conds = append(conds,
			`EXISTS (SELECT 1 FROM film_genres JOIN genres ON genres.id = film_genres.genre_id
				WHERE film_genres.film_id = films.id AND LOWER(genres.name) LIKE ?)`,
			`films.country_id IN (SELECT id FROM countries WHERE LOWER(name) LIKE ?)`,
		)
		args = append(args, like, like)
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	q = filterFilms(q, f.Genre, f.Country)
	if f.Published != nil {
		q = q.Where("films.published = ?", *f.Published)
	}
	var rows []Film
	err := filmOrder(q).Find(&rows).Error
	return rows, err
}

func filterFilms(q *gorm.DB, genre, country string) *gorm.DB {
	if genre != "" {
		q = q.Where(`EXISTS (SELECT 1 FROM film_genres JOIN genres ON genres.id = film_genres.genre_id
			WHERE film_genres.film_id = films.id AND genres.slug = ?)`, genre)
	}
	if country != "" {
		q = q.Where("films.country_id IN (SELECT id FROM countries WHERE slug = ?)", country)
	}
	return q
}

// UpdateFilm replaces every field and relation set. The slug only changes
// when in.Slug asks for it.
func UpdateFilm(db *gorm.DB, id uint, in FilmInput) (*Film, error) {
	in.Name = normalizeName(in.Name)
	if err := check("film", in); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var f Film
		if err := tx.First(&f, id).Error; err != nil {
			return translate("film", err)
		}
		rel, err := in.prepare(tx)
		if err != nil {
			return err
		}
		if f.Slug, err = keepSlug(tx, &Film{}, "film", id, f.Slug, in.Slug); err != nil {
			return err
		}
		in.apply(&f)
		f.Published = boolOr(in.Published, f.Published)
		if err := tx.Omit(clause.Associations).Save(&f).Error; err != nil {
			return translate("film", err)
		}
		return rel.save(tx, &f)
	})
	if err != nil {
		return nil, err
	}
	return GetFilm(db, id)
}

// SetFilmRole replaces the persons of a single role, leaving the other roles
// of the film untouched.
func SetFilmRole(db *gorm.DB, filmID uint, role Role, personIDs []uint) (*Film, error) {
	fr, ok := lookupRole(role)
	if !ok {
		return nil, invalid("film", "role", "unknown role %q", role)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var f Film
		if err := tx.First(&f, filmID).Error; err != nil {
			return translate("film", err)
		}
		persons, err := loadByIDs(tx, "film", string(role)+"_ids", personIDs, func(p Person) uint { return p.ID })
		if err != nil {
			return err
		}
		return replaceAssociation(tx, &f, fr.association, persons)
	})
	if err != nil {
		return nil, err
	}
	return GetFilm(db, filmID)
}

func SetFilmPublished(db *gorm.DB, id uint, published bool) error {
	return setPublished(db, &Film{}, "film", id, published)
}

// DeleteFilm refuses while trailers reference the film; otherwise its stills,
// comments and relation rows go with it.
func DeleteFilm(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var f Film
		if err := tx.First(&f, id).Error; err != nil {
			return translate("film", err)
		}
		var trailers int64
		if err := tx.Model(&Trailer{}).Where("film_id = ?", id).Count(&trailers).Error; err != nil {
			return err
		}
		if trailers > 0 {
			return &RestrictedError{Entity: "film", ID: id, Dependents: map[string]int64{"trailers": trailers}}
		}
		if err := tx.Where("film_id = ?", id).Delete(&ImageFilm{}).Error; err != nil {
			return err
		}
		if err := tx.Where("film_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return err
		}
		for _, fr := range filmRoles {
			if err := tx.Exec("DELETE FROM "+fr.table+" WHERE film_id = ?", id).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM film_genres WHERE film_id = ?", id).Error; err != nil {
			return err
		}
		return translateDelete("film", tx.Delete(&f).Error)
	})
}

func filmOrder(q *gorm.DB) *gorm.DB {
	return q.Order("films.name ASC").Order("films.created_at ASC").Order("films.id ASC")
}
