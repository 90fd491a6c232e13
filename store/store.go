// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/shanakasp/backendNextSupabase/survey"
)

var (
	// ErrNotFound is returned by point lookups, updates and deletes when
	// no row exists for the id.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable wraps every I/O failure talking to a store.
	ErrUnavailable = errors.New("store unavailable")
)

// Record is a partial response with the timestamps kept by the store.
type Record struct {
	survey.PartialResponse
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Answers is the transient store of in-flight responses.
type Answers interface {
	Upsert(ctx context.Context, rec *survey.PartialResponse) error
	Update(ctx context.Context, rec *survey.PartialResponse) error
	Get(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
	ListComplete(ctx context.Context) ([]*Record, error)
}

// Archive is the permanent store of completed responses.
type Archive interface {
	Exists(ctx context.Context, id string) (bool, error)
	// Upsert must be idempotent: created_at is set once, updated_at on every call.
	Upsert(ctx context.Context, resp survey.CompletedResponse) error
	Get(ctx context.Context, id string) (*survey.CompletedResponse, error)
}

// Clock returns the current time. Stores default to UTC wall time.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
