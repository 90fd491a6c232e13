// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shanakasp/backendNextSupabase/middleware"
	"github.com/shanakasp/backendNextSupabase/models"
	"github.com/shanakasp/backendNextSupabase/store"
	"github.com/shanakasp/backendNextSupabase/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })
	return NewRouter(store.NewAnswerStore(db), store.NewSQLArchive(db), testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "survey-intake API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	// one routed request so the latency histogram has a sample
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/progress/a@b.com", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "survey_http_request_duration_seconds") {
		t.Error("Expected request duration metric in scrape output")
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Note: Some routes return 4xx when data doesn't exist, which is valid handler behavior
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/metrics"},
		{"POST", "/submit-email"},
		{"POST", "/submit-question"},
		{"GET", "/progress/a@b.com"},
		{"POST", "/progress/a@b.com/sync"},
		{"DELETE", "/progress/a@b.com"},
		{"GET", "/archive/a@b.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},            // Only GET is defined
		{"GET", "/submit-email"},       // Only POST is defined
		{"PUT", "/progress/a@b.com"},   // GET and DELETE only
		{"DELETE", "/archive/a@b.com"}, // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/unknown", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestPathParameterExtraction(t *testing.T) {
	mux := newTestRouter(t)

	body := bytes.NewBufferString(`{"email":"path@b.com"}`)
	req := httptest.NewRequest("POST", "/submit-email", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Start failed: %d - %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/progress/path@b.com", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for started respondent, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.ProgressResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("Expected success=true")
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected request id header")
	}
}
