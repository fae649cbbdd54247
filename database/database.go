package database

import (
	"fmt"
	"time"

	"film-catalog/config"
	"film-catalog/internal/domain/catalog"
	"film-catalog/internal/domain/users"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB() {
	var (
		db  *gorm.DB
		err error
	)

	switch config.DB_DRIVER {
	case "postgres":
		db, err = OpenPostgres(config.DB_URL)
	case "sqlite":
		db, err = OpenSQLite(config.SQLITE_PATH)
	default:
		log.Fatal().Str("driver", config.DB_DRIVER).Msg("Unsupported database driver")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate error")
	}

	log.Info().Str("driver", config.DB_DRIVER).Msg("Connected and migrated successfully")
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// unique and foreign key violations come back as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func OpenPostgres(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL not set")
	}
	return gorm.Open(postgres.Open(dsn), gormConfig())
}

// OpenSQLite opens a sqlite database. ":memory:" databases are pinned to a
// single connection, otherwise every pooled connection sees its own empty db.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates every table of the catalog schema.
func Migrate(db *gorm.DB) error {
	models := append([]interface{}{&users.User{}}, catalog.Models()...)
	return db.AutoMigrate(models...)
}
