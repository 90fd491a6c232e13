// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the survey intake server.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "survey-intake",
		Short:         "Survey intake backend",
		SilenceErrors: true, // main logs the error
		Long: `Collects respondent answers one question at a time, tracks progress
per email, and archives each response once it is complete.`,
	}

	// Add subcommands
	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewResyncCommand())

	return cmd
}

// configFlags is appended to every subcommand's help text. Flags are
// parsed by cliparse so env fallbacks work the same for every command.
const configFlags = `
Flags (each falls back to the environment variable shown):
  -p           PORT              server port (default 3318)
  -d           DATABASE_URL      database URL (required)
  -t           DATABASE_TYPE     sqlite or postgres (default sqlite)
  -archive     ARCHIVE_BACKEND   sql or mongo (default sql)
  -mongo-uri   MONGODB_URI       MongoDB URI for the mongo archive
  -mongo-db    MONGODB_DATABASE  MongoDB database (default survey)
  -layout      SURVEY_LAYOUT     two or four (default two)
  -auto-start  AUTO_START        create a record on the first answer

A .env file in the working directory is loaded first.`
