// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shanakasp/backendNextSupabase/survey"
)

// SyncArchive writes rec to the archive when survey.ShouldArchive says so.
// The existence check is skipped for complete records. It reports whether
// an archive write happened.
func SyncArchive(ctx context.Context, archive Archive, rec *survey.PartialResponse) (bool, error) {
	exists := false
	if rec.Status != survey.StatusComplete {
		var err error
		exists, err = archive.Exists(ctx, rec.ID)
		if err != nil {
			return false, err
		}
	}

	if !survey.ShouldArchive(rec, exists) {
		return false, nil
	}

	if err := archive.Upsert(ctx, survey.Archival(rec)); err != nil {
		return false, err
	}
	return true, nil
}

// Resync re-archives every complete record. Failures are logged and
// counted; the first one is returned after all records were tried.
func Resync(ctx context.Context, answers Answers, archive Archive) (synced int, err error) {
	recs, err := answers.ListComplete(ctx)
	if err != nil {
		return 0, err
	}

	var firstErr error
	failed := 0
	for _, rec := range recs {
		if ctx.Err() != nil {
			return synced, ctx.Err()
		}
		if _, err := SyncArchive(ctx, archive, &rec.PartialResponse); err != nil {
			slog.Error("resync failed", "id", rec.ID, "error", err)
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		synced++
	}

	if firstErr != nil {
		return synced, fmt.Errorf("resync: %d of %d failed: %w", failed, len(recs), firstErr)
	}
	return synced, nil
}
