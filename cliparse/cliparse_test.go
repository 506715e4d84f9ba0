// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "reviews.db" {
		t.Errorf("expected default sqlite file reviews.db, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "site.db")
	t.Setenv("DATABASE_TYPE", "sqlite")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "site.db" {
		t.Errorf("expected database URL site.db, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8081", "-d", "other.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "other.db" {
		t.Errorf("expected other.db, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	_, err := ParseFlags([]string{"-t", "postgres"})
	if err == nil {
		t.Error("expected error when postgres is selected without a database URL")
	}
}

func TestParseFlags_InvalidType(t *testing.T) {
	_, err := ParseFlags([]string{"-t", "mysql"})
	if err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Error("expected error for invalid PORT env variable")
	}
}
