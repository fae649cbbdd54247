package catalog

import (
	"strings"

	"gorm.io/gorm"
)

type PersonInput struct {
	Name      string `json:"name" validate:"required,max=150"`
	Biography string `json:"biography" validate:"required,max=2000"`
	Birthday  string `json:"birthday" validate:"required,datetime=2006-01-02"`
	DeathDay  string `json:"death_day" validate:"omitempty,datetime=2006-01-02"`
	// a person needs at least one career
	CareerIDs []uint `json:"career_ids" validate:"required,min=1"`
	CountryID *uint  `json:"country_id"`
	Slug      string `json:"slug" validate:"omitempty,max=50,slug"`
	Photo     string `json:"photo" validate:"required,max=255"`
	Published *bool  `json:"published"`
}

// PersonFilter mirrors the admin list: search by name, filter by career
// and country slug.
type PersonFilter struct {
	Q         string
	Career    string
	Country   string
	Published *bool
}

// personJoinTables holds every join table with a person_id column.
var personJoinTables = []string{
	"person_careers",
	"film_directors",
	"film_scenarists",
	"film_producers",
	"film_composers",
	"film_actors",
}

func (in *PersonInput) apply(p *Person) {
	p.Name = in.Name
	p.Biography = in.Biography
	p.Birthday, _ = parseDate(in.Birthday)
	p.DeathDay = parseOptionalDate(in.DeathDay)
	p.CountryID = in.CountryID
	p.Photo = in.Photo
}

func (in *PersonInput) prepare(tx *gorm.DB) ([]Career, error) {
	if err := checkOptional(tx, &Country{}, "person", "country_id", in.CountryID); err != nil {
		return nil, err
	}
	return loadByIDs(tx, "person", "career_ids", in.CareerIDs, func(c Career) uint { return c.ID })
}

func CreatePerson(db *gorm.DB, in PersonInput) (*Person, error) {
	in.Name = normalizeName(in.Name)
	if err := check("person", in); err != nil {
		return nil, err
	}

	var p Person
	err := db.Transaction(func(tx *gorm.DB) error {
		careers, err := in.prepare(tx)
		if err != nil {
			return err
		}
		in.apply(&p)
		p.Published = boolOr(in.Published, true)
		if p.Slug, err = newSlug(tx, &Person{}, "person", in.Slug, p.Name); err != nil {
			return err
		}
		if err := tx.Omit("Careers", "Country").Create(&p).Error; err != nil {
			return translate("person", err)
		}
		return replaceAssociation(tx, &p, "Careers", careers)
	})
	if err != nil {
		return nil, err
	}
	return GetPerson(db, p.ID)
}

func GetPerson(db *gorm.DB, id uint) (*Person, error) {
	var p Person
	if err := db.Preload("Careers", orderByName).Preload("Country").First(&p, id).Error; err != nil {
		return nil, translate("person", err)
	}
	return &p, nil
}

func GetPersonBySlug(db *gorm.DB, slug string) (*Person, error) {
	var p Person
	if err := db.Preload("Careers", orderByName).Preload("Country").Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, translate("person", err)
	}
	return &p, nil
}

func ListPersons(db *gorm.DB, f PersonFilter) ([]Person, error) {
	q := db.Model(&Person{}).Preload("Careers", orderByName).Preload("Country")
	if s := strings.TrimSpace(f.Q); s != "" {
		q = q.Where("LOWER(persons.name) LIKE ?", likePattern(s))
	}
	if f.Career != "" {
		q = q.Where(`EXISTS (SELECT 1 FROM person_careers
			JOIN careers ON careers.id = person_careers.career_id
			WHERE person_careers.person_id = persons.id AND careers.slug = ?)`, f.Career)
	}
	if f.Country != "" {
		q = q.Where("persons.country_id IN (SELECT id FROM countries WHERE slug = ?)", f.Country)
	}
	if f.Published != nil {
		q = q.Where("persons.published = ?", *f.Published)
	}
	var rows []Person
	err := personOrder(q).Find(&rows).Error
	return rows, err
}

// UpdatePerson replaces every field. The slug only changes when in.Slug asks for it.
func UpdatePerson(db *gorm.DB, id uint, in PersonInput) (*Person, error) {
	in.Name = normalizeName(in.Name)
	if err := check("person", in); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var p Person
		if err := tx.First(&p, id).Error; err != nil {
			return translate("person", err)
		}
		careers, err := in.prepare(tx)
		if err != nil {
			return err
		}
		if p.Slug, err = keepSlug(tx, &Person{}, "person", id, p.Slug, in.Slug); err != nil {
			return err
		}
		in.apply(&p)
		p.Published = boolOr(in.Published, p.Published)
		if err := tx.Omit("Careers", "Country").Save(&p).Error; err != nil {
			return translate("person", err)
		}
		return replaceAssociation(tx, &p, "Careers", careers)
	})
	if err != nil {
		return nil, err
	}
	return GetPerson(db, id)
}

func SetPersonPublished(db *gorm.DB, id uint, published bool) error {
	return setPublished(db, &Person{}, "person", id, published)
}

// DeletePerson removes the person from every film role and career tag.
func DeletePerson(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var p Person
		if err := tx.First(&p, id).Error; err != nil {
			return translate("person", err)
		}
		for _, table := range personJoinTables {
			if err := tx.Exec("DELETE FROM "+table+" WHERE person_id = ?", id).Error; err != nil {
				return err
			}
		}
		return translateDelete("person", tx.Delete(&p).Error)
	})
}

func personOrder(q *gorm.DB) *gorm.DB {
	return q.Order("persons.name ASC").Order("persons.created_at ASC").Order("persons.id ASC")
}

func orderByName(q *gorm.DB) *gorm.DB {
	return q.Order("name ASC").Order("id ASC")
}

// replaceAssociation points the many-to-many field name of owner at values,
// clearing it when values is empty.
func replaceAssociation[T any](tx *gorm.DB, owner interface{}, name string, values []T) error {
	assoc := tx.Model(owner).Association(name)
	if len(values) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(values)
}

// setPublished flips the published flag without touching anything else.
func setPublished(db *gorm.DB, model interface{}, entity string, id uint, published bool) error {
	res := db.Model(model).Where("id = ?", id).Update("published", published)
	if res.Error != nil {
		return translate(entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(entity)
	}
	return nil
}
