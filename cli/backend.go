// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/shanakasp/backendNextSupabase/cliparse"
	"github.com/shanakasp/backendNextSupabase/db"
	"github.com/shanakasp/backendNextSupabase/mongostore"
	"github.com/shanakasp/backendNextSupabase/store"
)

// backend bundles the stores a command runs against.
type backend struct {
	conn    *sql.DB
	answers *store.AnswerStore
	archive store.Archive
	mongo   *mongostore.Archive
}

func loadConfig(args []string) (cliparse.Config, error) {
	if err := cliparse.LoadDotEnv(); err != nil {
		return cliparse.Config{}, err
	}
	return cliparse.ParseFlags(args)
}

// openBackend connects to the database, creates the schema and selects
// the archive store.
func openBackend(ctx context.Context, cfg cliparse.Config) (*backend, error) {
	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	b := &backend{
		conn:    conn,
		answers: store.NewAnswerStore(conn),
	}

	switch cfg.ArchiveBackend {
	case cliparse.ArchiveMongo:
		m, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			conn.Close()
			return nil, err
		}
		b.mongo = m
		b.archive = m
		slog.Info("Archive backend ready", "backend", "mongo", "database", cfg.MongoDatabase)
	default:
		b.archive = store.NewSQLArchive(conn)
		slog.Info("Archive backend ready", "backend", "sql")
	}

	return b, nil
}

func (b *backend) Close() {
	if b.mongo != nil {
		if err := b.mongo.Close(context.Background()); err != nil {
			slog.Error("mongo disconnect failed", "error", err)
		}
	}
	b.conn.Close()
}
