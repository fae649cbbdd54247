package catalog

import (
	"strings"

	"gorm.io/gorm"
)

type TaxonomyInput struct {
	Name      string `json:"name" validate:"required,max=50"`
	Slug      string `json:"slug" validate:"omitempty,max=50,slug"`
	Published *bool  `json:"published"`
}

type TaxonomyFilter struct {
	Q string
}

type taxonomy interface {
	Country | Career | Genre
}

// taxonomyRecord lets the generic helpers reach the shared fields.
type taxonomyRecord[T taxonomy] interface {
	*T
	base() *Taxonomy
}

func (c *Country) base() *Taxonomy { return &c.Taxonomy }
func (c *Career) base() *Taxonomy  { return &c.Taxonomy }
func (g *Genre) base() *Taxonomy   { return &g.Taxonomy }

func createTaxonomy[T taxonomy, P taxonomyRecord[T]](db *gorm.DB, entity string, in TaxonomyInput) (*T, error) {
	in.Name = normalizeName(in.Name)
	if err := check(entity, in); err != nil {
		return nil, err
	}

	var rec T
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := checkNameFree[T](tx, entity, in.Name, 0); err != nil {
			return err
		}
		slug, err := newSlug(tx, new(T), entity, in.Slug, in.Name)
		if err != nil {
			return err
		}
		b := P(&rec).base()
		b.Name = in.Name
		b.Slug = slug
		b.Published = boolOr(in.Published, true)
		return translate(entity, tx.Create(&rec).Error)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func checkNameFree[T taxonomy](tx *gorm.DB, entity, name string, exceptID uint) error {
	q := tx.Model(new(T)).Where("name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return conflict(entity, "name", "%q already exists", name)
	}
	return nil
}

func getTaxonomy[T taxonomy](db *gorm.DB, entity string, id uint) (*T, error) {
	var rec T
	if err := db.First(&rec, id).Error; err != nil {
		return nil, translate(entity, err)
	}
	return &rec, nil
}

func getTaxonomyBySlug[T taxonomy](db *gorm.DB, entity, slug string) (*T, error) {
	var rec T
	if err := db.Where("slug = ?", slug).First(&rec).Error; err != nil {
		return nil, translate(entity, err)
	}
	return &rec, nil
}

func listTaxonomy[T taxonomy](db *gorm.DB, f TaxonomyFilter) ([]T, error) {
	q := db.Model(new(T))
	if s := strings.TrimSpace(f.Q); s != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(s))
	}
	var rows []T
	err := q.Order("name ASC").Order("created_at ASC").Order("id ASC").Find(&rows).Error
	return rows, err
}

func updateTaxonomy[T taxonomy, P taxonomyRecord[T]](db *gorm.DB, entity string, id uint, in TaxonomyInput) (*T, error) {
	in.Name = normalizeName(in.Name)
	if err := check(entity, in); err != nil {
		return nil, err
	}

	var rec T
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return translate(entity, err)
		}
		if err := checkNameFree[T](tx, entity, in.Name, id); err != nil {
			return err
		}
		b := P(&rec).base()
		slug, err := keepSlug(tx, new(T), entity, id, b.Slug, in.Slug)
		if err != nil {
			return err
		}
		b.Name = in.Name
		b.Slug = slug
		b.Published = boolOr(in.Published, b.Published)
		return translate(entity, tx.Save(&rec).Error)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// deleteTaxonomy removes the row after guard has run inside the same
// transaction. guard either refuses the delete or clears join rows.
func deleteTaxonomy[T taxonomy](db *gorm.DB, entity string, id uint, guard func(tx *gorm.DB) error) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var rec T
		if err := tx.First(&rec, id).Error; err != nil {
			return translate(entity, err)
		}
		if err := guard(tx); err != nil {
			return err
		}
		return translateDelete(entity, tx.Delete(&rec).Error)
	})
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// countRefs counts rows of each model whose column points at id.
func countRefs(tx *gorm.DB, id uint, refs []reference) (map[string]int64, error) {
	found := map[string]int64{}
	for _, r := range refs {
		var n int64
		if err := tx.Model(r.model).Where(r.column+" = ?", id).Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			found[r.name] = n
		}
	}
	return found, nil
}

type reference struct {
	name   string
	model  interface{}
	column string
}

var countryReferences = []reference{
	{name: "persons", model: &Person{}, column: "country_id"},
	{name: "films", model: &Film{}, column: "country_id"},
	{name: "user_profiles", model: &UserProfile{}, column: "country_id"},
}

// Countries

func CreateCountry(db *gorm.DB, in TaxonomyInput) (*Country, error) {
	return createTaxonomy[Country](db, "country", in)
}

func GetCountry(db *gorm.DB, id uint) (*Country, error) {
	return getTaxonomy[Country](db, "country", id)
}

func GetCountryBySlug(db *gorm.DB, slug string) (*Country, error) {
	return getTaxonomyBySlug[Country](db, "country", slug)
}

func ListCountries(db *gorm.DB, f TaxonomyFilter) ([]Country, error) {
	return listTaxonomy[Country](db, f)
}

func UpdateCountry(db *gorm.DB, id uint, in TaxonomyInput) (*Country, error) {
	return updateTaxonomy[Country](db, "country", id, in)
}

// DeleteCountry refuses while any person, film or profile still points at it.
func DeleteCountry(db *gorm.DB, id uint) error {
	return deleteTaxonomy[Country](db, "country", id, func(tx *gorm.DB) error {
		refs, err := countRefs(tx, id, countryReferences)
		if err != nil {
			return err
		}
		if len(refs) > 0 {
			return &RestrictedError{Entity: "country", ID: id, Dependents: refs}
		}
		return nil
	})
}

// Careers

func CreateCareer(db *gorm.DB, in TaxonomyInput) (*Career, error) {
	return createTaxonomy[Career](db, "career", in)
}

func GetCareer(db *gorm.DB, id uint) (*Career, error) {
	return getTaxonomy[Career](db, "career", id)
}

func GetCareerBySlug(db *gorm.DB, slug string) (*Career, error) {
	return getTaxonomyBySlug[Career](db, "career", slug)
}

func ListCareers(db *gorm.DB, f TaxonomyFilter) ([]Career, error) {
	return listTaxonomy[Career](db, f)
}

func UpdateCareer(db *gorm.DB, id uint, in TaxonomyInput) (*Career, error) {
	return updateTaxonomy[Career](db, "career", id, in)
}

// DeleteCareer drops the career tag from every person carrying it. It refuses
// while the career is the only one some person has.
func DeleteCareer(db *gorm.DB, id uint) error {
	return deleteTaxonomy[Career](db, "career", id, func(tx *gorm.DB) error {
		var soleCareer int64
		err := tx.Table("person_careers AS pc").
			Where("pc.career_id = ?", id).
			Where("NOT EXISTS (SELECT 1 FROM person_careers other WHERE other.person_id = pc.person_id AND other.career_id <> ?)", id).
			Count(&soleCareer).Error
		if err != nil {
			return err
		}
		if soleCareer > 0 {
			return &RestrictedError{Entity: "career", ID: id, Dependents: map[string]int64{"persons": soleCareer}}
		}
		return tx.Exec("DELETE FROM person_careers WHERE career_id = ?", id).Error
	})
}

// Genres

func CreateGenre(db *gorm.DB, in TaxonomyInput) (*Genre, error) {
	return createTaxonomy[Genre](db, "genre", in)
}

func GetGenre(db *gorm.DB, id uint) (*Genre, error) {
	return getTaxonomy[Genre](db, "genre", id)
}

func GetGenreBySlug(db *gorm.DB, slug string) (*Genre, error) {
	return getTaxonomyBySlug[Genre](db, "genre", slug)
}

func ListGenres(db *gorm.DB, f TaxonomyFilter) ([]Genre, error) {
	return listTaxonomy[Genre](db, f)
}

func UpdateGenre(db *gorm.DB, id uint, in TaxonomyInput) (*Genre, error) {
	return updateTaxonomy[Genre](db, "genre", id, in)
}

// DeleteGenre drops the genre from every film tagged with it.
func DeleteGenre(db *gorm.DB, id uint) error {
	return deleteTaxonomy[Genre](db, "genre", id, func(tx *gorm.DB) error {
		return tx.Exec("DELETE FROM film_genres WHERE genre_id = ?", id).Error
	})
}
