// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cli wires configuration, storage and the HTTP router into cobra
commands.

	survey-intake serve  -d survey.db
	survey-intake resync -d postgres://... -t postgres

Both commands take the flags documented in package cliparse and load a
.env file first. serve runs until SIGINT or SIGTERM and then shuts the
server down gracefully. resync re-archives every complete response.
*/
package cli
