// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shanakasp/backendNextSupabase/survey"
)

// SQLArchive keeps completed responses in the completed_response table.
type SQLArchive struct {
	db  *sql.DB
	now Clock
}

func NewSQLArchive(db *sql.DB) *SQLArchive {
	return &SQLArchive{db: db, now: utcNow}
}

// WithClock replaces the time source. Used by tests.
func (a *SQLArchive) WithClock(now Clock) *SQLArchive {
	a.now = now
	return a
}

func (a *SQLArchive) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := a.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM completed_response WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check archive %s: %w: %w", id, ErrUnavailable, err)
	}
	return exists, nil
}

// Upsert inserts or refreshes the archived response. created_at is only
// written on insert.
func (a *SQLArchive) Upsert(ctx context.Context, resp survey.CompletedResponse) error {
	now := a.now()
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO completed_response
			(id, first_question, second_question, third_question, fourth_question, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			first_question = excluded.first_question,
			second_question = excluded.second_question,
			third_question = excluded.third_question,
			fourth_question = excluded.fourth_question,
			updated_at = excluded.updated_at
	`, resp.ID, resp.FirstQuestion, resp.SecondQuestion, resp.ThirdQuestion, resp.FourthQuestion, now, now)
	if err != nil {
		return fmt.Errorf("archive response %s: %w: %w", resp.ID, ErrUnavailable, err)
	}
	return nil
}

func (a *SQLArchive) Get(ctx context.Context, id string) (*survey.CompletedResponse, error) {
	var resp survey.CompletedResponse
	err := a.db.QueryRowContext(ctx, `
		SELECT id, first_question, second_question, third_question, fourth_question, created_at, updated_at
		FROM completed_response WHERE id = $1
	`, id).Scan(&resp.ID, &resp.FirstQuestion, &resp.SecondQuestion, &resp.ThirdQuestion,
		&resp.FourthQuestion, &resp.CreatedAt, &resp.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get archive %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get archive %s: %w: %w", id, ErrUnavailable, err)
	}
	return &resp, nil
}
