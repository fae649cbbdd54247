package catalog_test

import (
	"testing"
	"time"

	"film-catalog/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filmNames(films []catalog.Film) []string {
	names := make([]string, len(films))
	for i, f := range films {
		names[i] = f.Name
	}
	return names
}

func TestFilmListOrder(t *testing.T) {
	db := setupTestDB(t)
	zulu := mustFilm(t, db, filmInput("Zulu"))
	newer := mustFilm(t, db, filmInput("Alien"))
	older := mustFilm(t, db, filmInput("Alien"))

	// same name: the earlier created_at wins regardless of id
	require.NoError(t, db.Model(&catalog.Film{}).Where("id = ?", newer.ID).
		UpdateColumn("created_at", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)).Error)
	require.NoError(t, db.Model(&catalog.Film{}).Where("id = ?", older.ID).
		UpdateColumn("created_at", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)).Error)

	view, err := catalog.FilmList(db, catalog.ListOptions{})
	require.NoError(t, err)
	require.Len(t, view.Films, 3)
	assert.Equal(t, older.ID, view.Films[0].ID)
	assert.Equal(t, newer.ID, view.Films[1].ID)
	assert.Equal(t, zulu.ID, view.Films[2].ID)
	assert.Empty(t, view.Genres)
}

func TestFilmListPublishedOnlyAndGenre(t *testing.T) {
	db := setupTestDB(t)
	drama := mustGenre(t, db, "Drama")
	mustGenre(t, db, "Action")

	in := filmInput("Heat")
	in.GenreIDs = []uint{drama.ID}
	mustFilm(t, db, in)
	hidden := filmInput("Hidden")
	hidden.Published = ptr(false)
	mustFilm(t, db, hidden)
	mustFilm(t, db, filmInput("Ronin"))

	view, err := catalog.FilmList(db, catalog.ListOptions{PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Heat", "Ronin"}, filmNames(view.Films))
	require.Len(t, view.Genres, 2)
	assert.Equal(t, "Action", view.Genres[0].Name)

	view, err = catalog.FilmList(db, catalog.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Heat", "Hidden", "Ronin"}, filmNames(view.Films))

	view, err = catalog.FilmList(db, catalog.ListOptions{Genre: "drama"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Heat"}, filmNames(view.Films))
}

func TestFilmDetail(t *testing.T) {
	db := setupTestDB(t)
	u := mustUser(t, db, "critic")
	f := mustFilm(t, db, filmInput("Die Hard"))

	_, err := catalog.CreateTrailer(db, catalog.TrailerInput{FilmID: f.ID, URL: "https://example.com/t.mp4"})
	require.NoError(t, err)
	_, err = catalog.CreateImageFilm(db, catalog.ImageFilmInput{FilmID: f.ID, Image: "film/2024/01/01/a.jpg"})
	require.NoError(t, err)
	_, err = catalog.CreateComment(db, catalog.CommentInput{AuthorID: u.ID, FilmID: f.ID, Text: "Great", Rating: ptr(9.0)})
	require.NoError(t, err)
	_, err = catalog.CreateComment(db, catalog.CommentInput{AuthorID: u.ID, FilmID: f.ID, Text: "Spam", Rating: ptr(1.0), Published: ptr(false)})
	require.NoError(t, err)

	view, err := catalog.FilmDetail(db, "die-hard", catalog.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, f.ID, view.Film.ID)
	assert.Empty(t, view.Film.Directors)
	assert.Empty(t, view.Film.Actors)
	assert.Len(t, view.Trailers, 1)
	assert.Len(t, view.Images, 1)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "Great", view.Comments[0].Text)
	require.NotNil(t, view.Comments[0].Author)
	assert.Equal(t, "critic", view.Comments[0].Author.Username)

	_, err = catalog.FilmDetail(db, "no-such-film", catalog.ListOptions{})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	require.NoError(t, catalog.SetFilmPublished(db, f.ID, false))
	_, err = catalog.FilmDetail(db, "die-hard", catalog.ListOptions{PublishedOnly: true})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestFilmDetailHidesUnpublishedPersons(t *testing.T) {
	db := setupTestDB(t)
	willis := mustPerson(t, db, "Bruce Willis")
	rickman := mustPerson(t, db, "Alan Rickman")
	mctiernan := mustPerson(t, db, "John McTiernan")

	in := filmInput("Die Hard")
	in.DirectorIDs = []uint{mctiernan.ID}
	in.ActorIDs = []uint{willis.ID, rickman.ID}
	mustFilm(t, db, in)

	require.NoError(t, catalog.SetPersonPublished(db, rickman.ID, false))
	require.NoError(t, catalog.SetPersonPublished(db, mctiernan.ID, false))

	view, err := catalog.FilmDetail(db, "die-hard", catalog.ListOptions{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, view.Film.Actors, 1)
	assert.Equal(t, "Bruce Willis", view.Film.Actors[0].Name)
	assert.Empty(t, view.Film.Directors)

	view, err = catalog.FilmDetail(db, "die-hard", catalog.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, view.Film.Actors, 2)
	assert.Len(t, view.Film.Directors, 1)
}

func TestPersonDetailRoles(t *testing.T) {
	db := setupTestDB(t)
	p := mustPerson(t, db, "Kevin Costner")

	view, err := catalog.PersonDetail(db, p.Slug, catalog.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, view.DirectorFilms)
	assert.Empty(t, view.ActorFilms)

	dances := filmInput("Dances with Wolves")
	dances.DirectorIDs = []uint{p.ID}
	dances.ProducerIDs = []uint{p.ID}
	dances.ActorIDs = []uint{p.ID}
	mustFilm(t, db, dances)
	bodyguard := filmInput("The Bodyguard")
	bodyguard.ActorIDs = []uint{p.ID}
	mustFilm(t, db, bodyguard)

	view, err = catalog.PersonDetail(db, p.Slug, catalog.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dances with Wolves"}, filmNames(view.DirectorFilms))
	assert.Equal(t, []string{"Dances with Wolves"}, filmNames(view.ProducerFilms))
	assert.Equal(t, []string{"Dances with Wolves", "The Bodyguard"}, filmNames(view.ActorFilms))
	assert.Empty(t, view.ScenarioFilms)
	assert.Empty(t, view.ComposerFilms)

	_, err = catalog.PersonDetail(db, "nobody", catalog.ListOptions{})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestTaxonomyDetails(t *testing.T) {
	db := setupTestDB(t)
	usa := mustCountry(t, db, "USA")
	western := mustGenre(t, db, "Western")
	director := mustCareer(t, db, "Director")

	pin := personInput("Sergio Leone", director.ID)
	pin.CountryID = &usa.ID
	leone, err := catalog.CreatePerson(db, pin)
	require.NoError(t, err)

	in := filmInput("Once Upon a Time in the West")
	in.CountryID = &usa.ID
	in.GenreIDs = []uint{western.ID}
	in.DirectorIDs = []uint{leone.ID}
	mustFilm(t, db, in)

	cv, err := catalog.CountryDetail(db, "usa", catalog.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, cv.Films, 1)
	assert.Len(t, cv.Persons, 1)

	gv, err := catalog.GenreDetail(db, "western", catalog.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Once Upon a Time in the West"}, filmNames(gv.Films))

	crv, err := catalog.CareerDetail(db, "director", catalog.ListOptions{})
	require.NoError(t, err)
	require.Len(t, crv.Persons, 1)
	assert.Equal(t, "Sergio Leone", crv.Persons[0].Name)

	_, err = catalog.GenreDetail(db, "musical", catalog.ListOptions{})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
