// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first by the CLI:

	if err := cliparse.LoadDotEnv(); err != nil { ... }

Variables already present in the environment are not overridden.

# CLI Flags and Environment Variables

	-p           PORT              Server port (default 3318)
	-d           DATABASE_URL      Database URL (required)
	-t           DATABASE_TYPE     sqlite (default) or postgres
	-archive     ARCHIVE_BACKEND   sql (default) or mongo
	-mongo-uri   MONGODB_URI       Required for the mongo backend
	-mongo-db    MONGODB_DATABASE  Default "survey"
	-layout      SURVEY_LAYOUT     two (default) or four
	-auto-start  AUTO_START        Create a record on the first answer

CLI flags take precedence over environment variables.
*/
package cliparse
