// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shanakasp/backendNextSupabase/models"
	"github.com/shanakasp/backendNextSupabase/store"
	"github.com/shanakasp/backendNextSupabase/survey"
	"github.com/shanakasp/backendNextSupabase/testutil"
)

// gatedAnswers holds every Get until parties readers have arrived or wait
// has passed. Without per-id locking all submitters read the same stale
// record, so each write drops the others' parts.
type gatedAnswers struct {
	store.Answers
	parties int
	wait    time.Duration

	mu      sync.Mutex
	armed   bool
	arrived int
	release chan struct{}
}

func newGatedAnswers(inner store.Answers, parties int, wait time.Duration) *gatedAnswers {
	return &gatedAnswers{Answers: inner, parties: parties, wait: wait, release: make(chan struct{})}
}

func (g *gatedAnswers) arm() {
	g.mu.Lock()
	g.armed = true
	g.mu.Unlock()
}

func (g *gatedAnswers) Get(ctx context.Context, id string) (*store.Record, error) {
	rec, err := g.Answers.Get(ctx, id)

	g.mu.Lock()
	if !g.armed {
		g.mu.Unlock()
		return rec, err
	}
	g.arrived++
	if g.arrived == g.parties {
		close(g.release)
	}
	g.mu.Unlock()

	select {
	case <-g.release:
	case <-time.After(g.wait):
	}
	return rec, err
}

// TestConcurrentSubparts sends all Q2 parts for the same respondent at once,
// with every load held until all submitters have read. None of the writes
// may be lost.
func TestConcurrentSubparts(t *testing.T) {
	for round := 0; round < 3; round++ {
		db := testutil.SetupTestDB(t)
		gated := newGatedAnswers(store.NewAnswerStore(db), 3, 100*time.Millisecond)
		h := NewResponseHandler(gated, store.NewSQLArchive(db), testutil.GetTestConfig())

		start(t, h, "a@b.com")
		if w := answer(h, models.AnswerRequest{Email: "a@b.com", QuestionNumber: 1, Answer: "X"}); w.Code != http.StatusOK {
			t.Fatalf("answer Q1 failed: %d - %s", w.Code, w.Body.String())
		}
		gated.arm()

		var wg sync.WaitGroup
		var failures atomic.Int32
		for part, value := range map[int]string{1: "c", 2: "l", 3: "p"} {
			wg.Add(1)
			go func(part int, value string) {
				defer wg.Done()
				w := answer(h, models.AnswerRequest{Email: "a@b.com", QuestionNumber: 2, Answer: value, Part: part})
				if w.Code != http.StatusOK {
					failures.Add(1)
				}
			}(part, value)
		}
		wg.Wait()

		if n := failures.Load(); n != 0 {
			t.Fatalf("round %d: %d submissions failed", round, n)
		}

		w := httptest.NewRecorder()
		h.GetProgress(w, pathRequest("GET", "/progress/a@b.com", "a@b.com"))
		var resp models.ProgressResponse
		testutil.AssertJSON(t, w, &resp)

		for slot, want := range map[string]string{
			survey.SlotQ2Part1: "c",
			survey.SlotQ2Part2: "l",
			survey.SlotQ2Part3: "p",
			survey.SlotQ2:      "c,l,p",
		} {
			if resp.Answers[slot] != want {
				t.Errorf("round %d: expected %s=%q, got %q", round, slot, want, resp.Answers[slot])
			}
		}
		if resp.Status != survey.StatusComplete {
			t.Errorf("round %d: expected complete, got %s", round, resp.Status)
		}
		if n := testutil.CountArchived(t, db, "a@b.com"); n != 1 {
			t.Errorf("round %d: expected 1 archived row, got %d", round, n)
		}
		db.Close()
	}
}

// TestParallelRespondents checks that different ids do not block each other
// or leak state between records.
func TestParallelRespondents(t *testing.T) {
	h, db := newHandler(t, testutil.GetTestConfig())

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("user%d@b.com", i)

			w := httptest.NewRecorder()
			h.SubmitEmail(w, testutil.MakeRequest("POST", "/submit-email", models.StartRequest{Email: email}, nil))
			if w.Code != http.StatusCreated {
				t.Errorf("start %s: %d", email, w.Code)
				return
			}
			for _, req := range []models.AnswerRequest{
				{QuestionNumber: 1, Answer: email},
				{QuestionNumber: 2, Answer: "c", Part: 1},
				{QuestionNumber: 2, Answer: "l", Part: 2},
				{QuestionNumber: 2, Answer: "p", Part: 3},
			} {
				req.Email = email
				if w := answer(h, req); w.Code != http.StatusOK {
					t.Errorf("answer %s: %d - %s", email, w.Code, w.Body.String())
					return
				}
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		email := fmt.Sprintf("user%d@b.com", i)
		if got := testutil.CountArchived(t, db, email); got != 1 {
			t.Errorf("%s: expected 1 archived row, got %d", email, got)
		}
	}
	if h.locks.Len() != 0 {
		t.Errorf("expected no held locks, got %d", h.locks.Len())
	}
}
