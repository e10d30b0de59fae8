package db

import (
	"log"
	"strings"

	"inkwell/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the store and migrates the schema. An empty dsn or a plain file
// path opens a local SQLite database file; anything that looks like a
// Postgres DSN goes through the postgres driver.
func Init(dsn string) {
	var err error
	DB, err = Open(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")
}

// Open returns a connection without touching the package global. Tests use it
// to run every case against its own in-memory store.
func Open(dsn string) (*gorm.DB, error) {
	if isPostgres(dsn) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if dsn == "" {
		dsn = "inkwell.db"
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
