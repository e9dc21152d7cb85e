package connection

import (
	"fmt"

	"lostandfound/config"
	"lostandfound/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DBConnection opens the Postgres database and brings the reports schema up
// to date. TranslateError makes unique violations surface as
// gorm.ErrDuplicatedKey so the store can classify them.
func DBConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := store.Migrate(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}
