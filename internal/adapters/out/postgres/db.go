package postgres

import (
	"database/sql"

	"dispatch/internal/adapters/out/postgres/parcelrepo"
	"dispatch/internal/adapters/out/postgres/userrepo"

	// Registers the lib/pq driver under the "postgres" name.
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDB opens a GORM connection backed by the lib/pq driver.
// Unique-constraint classification in the repositories relies on the
// driver being lib/pq, so all connections go through here.
func OpenDB(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
}

// Migrate creates or updates the schema for all persisted aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userrepo.UserDTO{}, &parcelrepo.PackageDTO{})
}
