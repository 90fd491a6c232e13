// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the survey intake server.

Respondents start with their email, answer questions one at a time in any
order, and their progress is saved after every answer. Once every
question is answered the response is copied to a permanent archive, and
every later change is mirrored there.

# Starting the Server

	DATABASE_URL=survey.db go run . serve

Or with flags and Postgres:

	go run . serve -p 3318 -t postgres -d "postgres://..."

Re-archive complete responses after an archive outage:

	go run . resync -d survey.db

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ARCHIVE_BACKEND (-archive): sql or mongo (default: sql)
  - MONGODB_URI, MONGODB_DATABASE: MongoDB archive settings
  - SURVEY_LAYOUT (-layout): two or four questions (default: two)
  - AUTO_START (-auto-start): create a record on the first answer

# Architecture

  - cli: cobra commands (serve, resync)
  - router: Route definitions using Go 1.22+ routing
  - handlers: HTTP request handlers
  - survey: Progress engine (pure, no I/O)
  - store: SQL answer and archive stores, archive sync
  - mongostore: MongoDB archive store
  - keylock: Per-respondent locking
  - metrics: Prometheus collectors
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
