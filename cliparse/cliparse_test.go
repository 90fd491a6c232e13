// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shanakasp/backendNextSupabase/survey"
)

// clearEnv blanks every variable ParseFlags reads; t.Setenv restores them.
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "DATABASE_URL", "DATABASE_TYPE", "ARCHIVE_BACKEND",
		"MONGODB_URI", "MONGODB_DATABASE", "SURVEY_LAYOUT", "AUTO_START",
	} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SURVEY_LAYOUT", "four")
	t.Setenv("AUTO_START", "true")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.Layout != survey.LayoutFourQuestion {
		t.Errorf("expected four-question layout, got %s", cfg.Layout)
	}
	if !cfg.AutoStart {
		t.Error("expected auto-start from env")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.ArchiveBackend != ArchiveSQL {
		t.Errorf("expected sql archive, got %s", cfg.ArchiveBackend)
	}
	if cfg.Layout != survey.LayoutTwoQuestion {
		t.Errorf("expected two-question layout, got %s", cfg.Layout)
	}
	if cfg.AutoStart {
		t.Error("expected auto-start off by default")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("AUTO_START", "true")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-auto-start=false"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AutoStart {
		t.Error("CLI should override AUTO_START env")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database url", nil, nil},
		{"bad port", map[string]string{"PORT": "abc"}, []string{"-d", "x"}},
		{"bad database type", nil, []string{"-d", "x", "-t", "mysql"}},
		{"bad archive backend", nil, []string{"-d", "x", "-archive", "s3"}},
		{"mongo without uri", nil, []string{"-d", "x", "-archive", "mongo"}},
		{"bad layout", nil, []string{"-d", "x", "-layout", "three"}},
		{"bad auto start", map[string]string{"AUTO_START": "maybe"}, []string{"-d", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFlags_Mongo(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := ParseFlags([]string{"-d", "x", "-archive", "mongo"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("unexpected mongo uri %s", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "survey" {
		t.Errorf("expected default mongo database, got %s", cfg.MongoDatabase)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	// godotenv never overrides a variable that is set, even to ""
	os.Unsetenv("DATABASE_URL")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DATABASE_URL=file:dotenv.db\nPORT=1234\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseURL != "file:dotenv.db" {
		t.Errorf("expected DATABASE_URL from .env, got %s", cfg.DatabaseURL)
	}
	// existing env wins over .env
	if cfg.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Port)
	}
}
