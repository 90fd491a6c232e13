// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the survey intake API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store.NewAnswerStore(db), archive, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Respondent flow:

	POST /submit-email    - Start (or restart) a response
	POST /submit-question - Record one answer

Progress:

	GET    /progress/{email}      - Current answers and status
	POST   /progress/{email}/sync - Retry the archive write
	DELETE /progress/{email}      - Discard the in-flight response

Archive:

	GET /archive/{email} - The archived (completed) response

Every route except /health and /metrics goes through
middleware.WithLogging.
*/
package router
