// store/migrate.go
package store

import (
	"fmt"

	"lostandfound/model"

	"gorm.io/gorm"
)

// Postgres-only DDL: the trigram index that keeps Search off a sequential
// scan, and the search_reports function the store calls. ILIKE on a NULL
// location is simply false, and the empty term matches every row through
// all_data, which is NOT NULL.
var postgresDDL = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_trgm`,
	`CREATE INDEX IF NOT EXISTS idx_reports_all_data_trgm
	     ON reports USING gin (all_data gin_trgm_ops)`,
	`CREATE OR REPLACE FUNCTION search_reports(search_term text)
	 RETURNS SETOF reports AS $$
	     SELECT *
	     FROM reports
	     WHERE all_data ILIKE '%' || search_term || '%'
	        OR report_id ILIKE '%' || search_term || '%'
	        OR report_type ILIKE '%' || search_term || '%'
	        OR location ILIKE '%' || search_term || '%'
	 $$ LANGUAGE sql STABLE`,
}

// Migrate creates the reports table and its indexes. On Postgres it also
// installs the trigram index and the search_reports function.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Report{}); err != nil {
		return fmt.Errorf("migrate reports: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, stmt := range postgresDDL {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("postgres ddl: %w", err)
		}
	}
	return nil
}
