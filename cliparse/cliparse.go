package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/shanakasp/backendNextSupabase/survey"
)

// Archive backends
const (
	ArchiveSQL   = "sql"
	ArchiveMongo = "mongo"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	ArchiveBackend string
	MongoURI       string
	MongoDatabase  string
	Layout         survey.Layout
	AutoStart      bool
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding ones already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var layout string

	fset := flag.NewFlagSet("survey-intake", flag.ContinueOnError)

	fset.IntVar(&cfg.Port, "p", 0, "Server port")
	fset.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fset.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fset.StringVar(&cfg.ArchiveBackend, "archive", "", "Archive backend (sql or mongo)")
	fset.StringVar(&cfg.MongoURI, "mongo-uri", "", "MongoDB URI (prefer env)")
	fset.StringVar(&cfg.MongoDatabase, "mongo-db", "", "MongoDB database name")
	fset.StringVar(&layout, "layout", "", "Survey layout (two or four)")
	fset.BoolVar(&cfg.AutoStart, "auto-start", false, "Create a record on first answer if none exists")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.ArchiveBackend == "" {
		cfg.ArchiveBackend = os.Getenv("ARCHIVE_BACKEND")
		if cfg.ArchiveBackend == "" {
			cfg.ArchiveBackend = ArchiveSQL
		}
	}
	switch cfg.ArchiveBackend {
	case ArchiveSQL:
	case ArchiveMongo:
		if cfg.MongoURI == "" {
			cfg.MongoURI = os.Getenv("MONGODB_URI")
		}
		if cfg.MongoURI == "" {
			return Config{}, errors.New("MONGODB_URI required for the mongo archive backend")
		}
		if cfg.MongoDatabase == "" {
			cfg.MongoDatabase = os.Getenv("MONGODB_DATABASE")
		}
		if cfg.MongoDatabase == "" {
			cfg.MongoDatabase = "survey"
		}
	default:
		return Config{}, fmt.Errorf("unknown archive backend %q", cfg.ArchiveBackend)
	}

	if layout == "" {
		layout = os.Getenv("SURVEY_LAYOUT")
	}
	l, err := survey.ParseLayout(layout)
	if err != nil {
		return Config{}, err
	}
	cfg.Layout = l

	if !set["auto-start"] {
		if v := os.Getenv("AUTO_START"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid AUTO_START env variable")
			}
			cfg.AutoStart = b
		}
	}

	return cfg, nil
}
