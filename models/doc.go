// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - StartRequest: email
  - AnswerRequest: email, questionNumber, answer, part (question 2 only)

Validation rules are declared with validate tags and checked by the
handlers with go-playground/validator.

# Response Types

Types for JSON responses:

  - StartResponse: success, status, progress
  - AnswerResponse: success, status, progress, archived
  - ProgressResponse: success, status, progress, answers, timestamps
  - ArchiveResponse: success, response
  - SuccessResponse: success, message
  - FailureResponse: success=false, errorKind, message

# Error Kinds

	InvalidIdentifier, UnknownQuestion, MissingSubpart,
	PrerequisiteNotMet, RecordNotFound, StoreUnavailable, InvalidRequest
*/
package models
