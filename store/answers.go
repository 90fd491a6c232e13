// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shanakasp/backendNextSupabase/survey"
)

// AnswerStore keeps partial responses in the partial_response table.
type AnswerStore struct {
	db  *sql.DB
	now Clock
}

func NewAnswerStore(db *sql.DB) *AnswerStore {
	return &AnswerStore{db: db, now: utcNow}
}

// WithClock replaces the time source. Used by tests.
func (s *AnswerStore) WithClock(now Clock) *AnswerStore {
	s.now = now
	return s
}

// Upsert creates the record or overwrites answers, status and progress of
// an existing one. created_at is kept on overwrite.
func (s *AnswerStore) Upsert(ctx context.Context, rec *survey.PartialResponse) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	now := s.now()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO partial_response (id, answers, status, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			answers = excluded.answers,
			status = excluded.status,
			progress = excluded.progress,
			updated_at = excluded.updated_at
	`, rec.ID, string(answers), string(rec.Status), rec.Progress, now, now)
	if err != nil {
		return fmt.Errorf("upsert response %s: %w: %w", rec.ID, ErrUnavailable, err)
	}
	return nil
}

// Update writes answers, status and progress of an existing record.
func (s *AnswerStore) Update(ctx context.Context, rec *survey.PartialResponse) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE partial_response
		SET answers = $1, status = $2, progress = $3, updated_at = $4
		WHERE id = $5
	`, string(answers), string(rec.Status), rec.Progress, s.now(), rec.ID)
	if err != nil {
		return fmt.Errorf("update response %s: %w: %w", rec.ID, ErrUnavailable, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update response %s: %w: %w", rec.ID, ErrUnavailable, err)
	}
	if n == 0 {
		return fmt.Errorf("update response %s: %w", rec.ID, ErrNotFound)
	}
	return nil
}

// Get loads one record by id.
func (s *AnswerStore) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, answers, status, progress, created_at, updated_at
		FROM partial_response WHERE id = $1
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get response %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get response %s: %w: %w", id, ErrUnavailable, err)
	}
	return rec, nil
}

// Delete removes a record by id.
func (s *AnswerStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM partial_response WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete response %s: %w: %w", id, ErrUnavailable, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete response %s: %w: %w", id, ErrUnavailable, err)
	}
	if n == 0 {
		return fmt.Errorf("delete response %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListComplete returns every complete record, oldest update first.
func (s *AnswerStore) ListComplete(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, answers, status, progress, created_at, updated_at
		FROM partial_response WHERE status = $1
		ORDER BY updated_at
	`, string(survey.StatusComplete))
	if err != nil {
		return nil, fmt.Errorf("list complete responses: %w: %w", ErrUnavailable, err)
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan response: %w: %w", ErrUnavailable, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list complete responses: %w: %w", ErrUnavailable, err)
	}
	return recs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec     Record
		answers string
		status  string
	)
	if err := row.Scan(&rec.ID, &answers, &status, &rec.Progress, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
		return nil, fmt.Errorf("decode answers for %s: %w", rec.ID, err)
	}
	rec.Status = survey.Status(status)
	return &rec, nil
}
