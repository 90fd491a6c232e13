// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connections

Open selects the driver from the database type (sqlite via modernc.org/sqlite,
postgres via lib/pq) and pings before returning:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - partial_response: answers, status and progress per respondent
  - completed_response: archived responses (sql archive backend only)

Both tables are keyed by the respondent email. The same statements run on
PostgreSQL and SQLite.
*/
package db
