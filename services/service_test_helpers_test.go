package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PoojaSancheti/Low-PocEat/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the package-global DB at a fresh in-memory sqlite
// database named after the test, so tests never see each other's rows.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
	return db
}
