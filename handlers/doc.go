// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey intake API.

# Handler Types

ResponseHandler owns the whole respondent flow. It is created with the
answer store, the archive store and the config:

	h := handlers.NewResponseHandler(store.NewAnswerStore(db), store.NewSQLArchive(db), cfg)

# Respondent Flow

	POST /submit-email             → SubmitEmail (create or resume a record)
	POST /submit-question          → SubmitQuestion (apply one answer)
	GET /progress/{email}          → GetProgress
	POST /progress/{email}/sync    → SyncResponse (retry the archive write)
	DELETE /progress/{email}       → DeleteResponse
	GET /archive/{email}           → GetArchived

Every write for one email runs under a per-email lock: load, apply,
save, then archive. Once a record is complete, or already archived, each
change is mirrored to the archive store.

# Errors

Failures are JSON bodies with success=false and an errorKind:

	InvalidIdentifier, UnknownQuestion, MissingSubpart, InvalidRequest → 400
	PrerequisiteNotMet → 409
	RecordNotFound     → 404
	StoreUnavailable   → 503

An archive failure after a saved answer returns 503. The answer stays
saved; POST /progress/{email}/sync or the resync command retries it.
*/
package handlers
