// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "votes.db")
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ADMIN_KEY_SALT", "env-salt")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminKeySalt != "s1" {
		t.Errorf("CLI should override env: expected s1, got %s", cfg.AdminKeySalt)
	}
}

func TestParseFlags_DefaultSQLitePath(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "film_voting.db" {
		t.Errorf("expected default sqlite file, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	defer os.Clearenv()

	_, err := ParseFlags([]string{"-t", "postgres"})
	if err == nil {
		t.Error("expected error when postgres has no DATABASE_URL")
	}
}

func TestParseFlags_SaltRequired(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-d", "votes.db"})
	if err == nil {
		t.Error("expected error when ADMIN_KEY_SALT is missing")
	}
}

func TestParseFlags_RejectsUnknownDatabaseType(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	defer os.Clearenv()

	_, err := ParseFlags([]string{"-t", "mysql"})
	if err == nil {
		t.Error("expected error for unsupported database type")
	}
}
