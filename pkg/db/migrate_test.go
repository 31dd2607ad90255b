package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestMigrationFilesExist verifies that migration files are present
func TestMigrationFilesExist(t *testing.T) {
	migrationsDir := "../../migrations"

	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		t.Fatalf("migrations directory does not exist: %s", migrationsDir)
	}

	expectedFiles := []string{
		"000001_initial_schema.up.sql",
		"000001_initial_schema.down.sql",
	}

	for _, filename := range expectedFiles {
		filePath := filepath.Join(migrationsDir, filename)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			t.Errorf("migration file does not exist: %s", filePath)
		}
	}
}

// TestMigrationFilesParseable verifies that migration files contain the
// statements the application schema depends on
func TestMigrationFilesParseable(t *testing.T) {
	migrationsDir := "../../migrations"

	upPath := filepath.Join(migrationsDir, "000001_initial_schema.up.sql")
	up, err := os.ReadFile(upPath)
	if err != nil {
		t.Fatalf("failed to read up migration: %v", err)
	}
	upStr := string(up)

	if !strings.Contains(upStr, "CREATE TABLE") || !strings.Contains(upStr, "freelancers") {
		t.Errorf("up migration does not create the freelancers table")
	}

	// The registration conflict path relies on the wallet unique index name
	if !strings.Contains(upStr, "freelancers_wallet_address_key") {
		t.Errorf("up migration does not create the wallet unique index")
	}

	downPath := filepath.Join(migrationsDir, "000001_initial_schema.down.sql")
	down, err := os.ReadFile(downPath)
	if err != nil {
		t.Fatalf("failed to read down migration: %v", err)
	}

	if !strings.Contains(string(down), "DROP TABLE") {
		t.Errorf("down migration does not drop the freelancers table")
	}
}
