// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shanakasp/backendNextSupabase/cliparse"
	"github.com/shanakasp/backendNextSupabase/db"
	"github.com/shanakasp/backendNextSupabase/store"
	"github.com/shanakasp/backendNextSupabase/survey"
)

// TestDBURL is an in-memory SQLite database; each SetupTestDB call gets a fresh one.
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    TestDBURL,
		DatabaseType:   db.TypeSQLite,
		ArchiveBackend: cliparse.ArchiveSQL,
		Layout:         survey.LayoutTwoQuestion,
	}
}

// CreateTestResponse inserts a partial response with the given answers
func CreateTestResponse(t *testing.T, conn *sql.DB, rec survey.PartialResponse) {
	t.Helper()

	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		t.Fatalf("Failed to encode answers: %v", err)
	}

	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO partial_response (id, answers, status, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.ID, string(answers), string(rec.Status), rec.Progress, now, now)
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}
}

// CountArchived returns the number of rows in completed_response for id
func CountArchived(t *testing.T, conn *sql.DB, id string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM completed_response WHERE id = $1`, id).Scan(&n); err != nil {
		t.Fatalf("Failed to count archived rows: %v", err)
	}
	return n
}

// FakeArchive is an in-memory archive store that can be told to fail.
type FakeArchive struct {
	mu      sync.Mutex
	Rows    map[string]survey.CompletedResponse
	Fail    error
	Upserts int
}

func NewFakeArchive() *FakeArchive {
	return &FakeArchive{Rows: make(map[string]survey.CompletedResponse)}
}

func (f *FakeArchive) Exists(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail != nil {
		return false, f.Fail
	}
	_, ok := f.Rows[id]
	return ok, nil
}

func (f *FakeArchive) Upsert(ctx context.Context, resp survey.CompletedResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail != nil {
		return f.Fail
	}
	now := time.Now().UTC()
	if prev, ok := f.Rows[resp.ID]; ok {
		resp.CreatedAt = prev.CreatedAt
	} else {
		resp.CreatedAt = now
	}
	resp.UpdatedAt = now
	f.Rows[resp.ID] = resp
	f.Upserts++
	return nil
}

func (f *FakeArchive) Get(ctx context.Context, id string) (*survey.CompletedResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail != nil {
		return nil, f.Fail
	}
	resp, ok := f.Rows[id]
	if !ok {
		return nil, fmt.Errorf("get archive %s: %w", id, store.ErrNotFound)
	}
	return &resp, nil
}

// SetFail makes every following call return err (nil clears it).
func (f *FakeArchive) SetFail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Fail = err
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
