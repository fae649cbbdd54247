package catalog

import (
	"strings"

	"gorm.io/gorm"
)

type ImageFilmInput struct {
	FilmID uint   `json:"film_id" validate:"required"`
	Image  string `json:"image" validate:"max=255"`
}

type TrailerInput struct {
	FilmID uint   `json:"film_id" validate:"required"`
	URL    string `json:"url" validate:"required,max=250,url"`
}

// AssetFilter searches stills and trailers by film name.
type AssetFilter struct {
	Q      string
	FilmID uint
}

func filterAssets(q *gorm.DB, table string, f AssetFilter) *gorm.DB {
	if f.FilmID != 0 {
		q = q.Where(table+".film_id = ?", f.FilmID)
	}
	if s := strings.TrimSpace(f.Q); s != "" {
		q = q.Where(table+".film_id IN (SELECT id FROM films WHERE LOWER(name) LIKE ?)", likePattern(s))
	}
	return q
}

// Stills

func CreateImageFilm(db *gorm.DB, in ImageFilmInput) (*ImageFilm, error) {
	if err := check("image_film", in); err != nil {
		return nil, err
	}
	img := ImageFilm{FilmID: in.FilmID, Image: strings.TrimSpace(in.Image)}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := checkExists(tx, &Film{}, "image_film", "film_id", in.FilmID); err != nil {
			return err
		}
		return translate("image_film", tx.Omit("Film").Create(&img).Error)
	})
	if err != nil {
		return nil, err
	}
	return GetImageFilm(db, img.ID)
}

func GetImageFilm(db *gorm.DB, id uint) (*ImageFilm, error) {
	var img ImageFilm
	if err := db.Preload("Film").First(&img, id).Error; err != nil {
		return nil, translate("image_film", err)
	}
	return &img, nil
}

func ListImageFilms(db *gorm.DB, f AssetFilter) ([]ImageFilm, error) {
	var rows []ImageFilm
	err := filterAssets(db.Model(&ImageFilm{}).Preload("Film"), "image_films", f).
		Order("image_films.created_at ASC").Order("image_films.id ASC").
		Find(&rows).Error
	return rows, err
}

func UpdateImageFilm(db *gorm.DB, id uint, in ImageFilmInput) (*ImageFilm, error) {
	if err := check("image_film", in); err != nil {
		return nil, err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var img ImageFilm
		if err := tx.First(&img, id).Error; err != nil {
			return translate("image_film", err)
		}
		if err := checkExists(tx, &Film{}, "image_film", "film_id", in.FilmID); err != nil {
			return err
		}
		img.FilmID = in.FilmID
		img.Image = strings.TrimSpace(in.Image)
		return translate("image_film", tx.Omit("Film").Save(&img).Error)
	})
	if err != nil {
		return nil, err
	}
	return GetImageFilm(db, id)
}

func DeleteImageFilm(db *gorm.DB, id uint) error {
	return deleteByID(db, &ImageFilm{}, "image_film", id)
}

// Trailers

func CreateTrailer(db *gorm.DB, in TrailerInput) (*Trailer, error) {
	in.URL = strings.TrimSpace(in.URL)
	if err := check("trailer", in); err != nil {
		return nil, err
	}
	tr := Trailer{FilmID: in.FilmID, URL: in.URL}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := checkExists(tx, &Film{}, "trailer", "film_id", in.FilmID); err != nil {
			return err
		}
		return translate("trailer", tx.Omit("Film").Create(&tr).Error)
	})
	if err != nil {
		return nil, err
	}
	return GetTrailer(db, tr.ID)
}

func GetTrailer(db *gorm.DB, id uint) (*Trailer, error) {
	var tr Trailer
	if err := db.Preload("Film").First(&tr, id).Error; err != nil {
		return nil, translate("trailer", err)
	}
	return &tr, nil
}

func ListTrailers(db *gorm.DB, f AssetFilter) ([]Trailer, error) {
	var rows []Trailer
	err := filterAssets(db.Model(&Trailer{}).Preload("Film"), "trailers", f).
		Order("trailers.film_id ASC").Order("trailers.id ASC").
		Find(&rows).Error
	return rows, err
}

func UpdateTrailer(db *gorm.DB, id uint, in TrailerInput) (*Trailer, error) {
	in.URL = strings.TrimSpace(in.URL)
	if err := check("trailer", in); err != nil {
		return nil, err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var tr Trailer
		if err := tx.First(&tr, id).Error; err != nil {
			return translate("trailer", err)
		}
		if err := checkExists(tx, &Film{}, "trailer", "film_id", in.FilmID); err != nil {
			return err
		}
		tr.FilmID = in.FilmID
		tr.URL = in.URL
		return translate("trailer", tx.Omit("Film").Save(&tr).Error)
	})
	if err != nil {
		return nil, err
	}
	return GetTrailer(db, id)
}

func DeleteTrailer(db *gorm.DB, id uint) error {
	return deleteByID(db, &Trailer{}, "trailer", id)
}

// deleteByID removes a row nothing else depends on.
func deleteByID(db *gorm.DB, model interface{}, entity string, id uint) error {
	res := db.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return translateDelete(entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(entity)
	}
	return nil
}
