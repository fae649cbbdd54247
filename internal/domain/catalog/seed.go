package catalog

import (
	"sort"
	"unicode/utf8"

	"github.com/pariz/gountries"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedCountries creates a Country for every common country name of the
// gountries dataset that is not in the table yet. Safe to run repeatedly.
func SeedCountries(db *gorm.DB) (int, error) {
	var names []string
	for _, c := range gountries.New().Countries {
		name := normalizeName(c.Name.Common)
		if name == "" || utf8.RuneCountInString(name) > 50 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var existing []string
	if err := db.Model(&Country{}).Pluck("name", &existing).Error; err != nil {
		return 0, err
	}
	known := make(map[string]bool, len(existing))
	for _, n := range existing {
		known[n] = true
	}

	created := 0
	for _, name := range names {
		if known[name] {
			continue
		}
		if _, err := CreateCountry(db, TaxonomyInput{Name: name}); err != nil {
			return created, err
		}
		known[name] = true
		created++
	}
	log.Info().Int("created", created).Int("known", len(known)).Msg("Countries seeded")
	return created, nil
}
