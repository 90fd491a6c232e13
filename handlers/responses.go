// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shanakasp/backendNextSupabase/cliparse"
	"github.com/shanakasp/backendNextSupabase/keylock"
	"github.com/shanakasp/backendNextSupabase/metrics"
	"github.com/shanakasp/backendNextSupabase/middleware"
	"github.com/shanakasp/backendNextSupabase/models"
	"github.com/shanakasp/backendNextSupabase/store"
	"github.com/shanakasp/backendNextSupabase/survey"
)

type ResponseHandler struct {
	answers  store.Answers
	archive  store.Archive
	cfg      cliparse.Config
	engine   *survey.Engine
	locks    *keylock.Locker
	validate *validator.Validate
}

func NewResponseHandler(answers store.Answers, archive store.Archive, cfg cliparse.Config) *ResponseHandler {
	return &ResponseHandler{
		answers:  answers,
		archive:  archive,
		cfg:      cfg,
		engine:   survey.NewEngine(cfg.Layout),
		locks:    keylock.New(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SubmitEmail handles POST /submit-email
func (h *ResponseHandler) SubmitEmail(w http.ResponseWriter, r *http.Request) {
	var req models.StartRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindInvalidRequest, "Invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err, "invalid start request")
		return
	}

	rec, err := h.engine.Initialize(req.Email)
	if err != nil {
		writeError(w, err, "failed to start response")
		return
	}

	unlock := h.locks.Lock(rec.ID)
	defer unlock()

	// An existing record is resumed as is; progress and status never go back.
	existing, err := h.answers.Get(r.Context(), rec.ID)
	switch {
	case err == nil:
		slog.Info("response resumed", "id", rec.ID, "progress", existing.Progress)
		middleware.JSONResponse(w, http.StatusOK, models.StartResponse{
			Success:  true,
			Status:   existing.Status,
			Progress: existing.Progress,
		})
		return
	case !errors.Is(err, store.ErrNotFound):
		writeError(w, err, "Failed to load response")
		return
	}

	if err := h.answers.Upsert(r.Context(), rec); err != nil {
		writeError(w, err, "Failed to start response")
		return
	}

	slog.Info("response started", "id", rec.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.StartResponse{
		Success:  true,
		Status:   rec.Status,
		Progress: rec.Progress,
	})
}

// SubmitQuestion handles POST /submit-question
func (h *ResponseHandler) SubmitQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindInvalidRequest, "Invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := h.validate.Struct(req); err != nil {
		writeError(w, err, "invalid answer request")
		return
	}

	id := req.Email
	unlock := h.locks.Lock(id)
	defer unlock()

	ctx := r.Context()

	var current *survey.PartialResponse
	stored, err := h.answers.Get(ctx, id)
	switch {
	case err == nil:
		current = &stored.PartialResponse
	case errors.Is(err, store.ErrNotFound) && h.cfg.AutoStart:
		// ApplyAnswer synthesizes the record
	default:
		writeError(w, err, "Failed to load response")
		return
	}

	res, err := h.engine.ApplyAnswer(current, id, survey.Submission{
		Question: req.QuestionNumber,
		Answer:   req.Answer,
		SubPart:  req.Part,
	})
	if err != nil {
		_, kind := classify(err)
		metrics.Answer(req.QuestionNumber, kind)
		writeError(w, err, "Failed to apply answer")
		return
	}

	if res.Created {
		err = h.answers.Upsert(ctx, res.Record)
	} else {
		err = h.answers.Update(ctx, res.Record)
	}
	if err != nil {
		_, kind := classify(err)
		metrics.Answer(req.QuestionNumber, kind)
		writeError(w, err, "Failed to save answer")
		return
	}

	metrics.Answer(req.QuestionNumber, "ok")
	if res.BecameComplete {
		metrics.Completion()
		slog.Info("response complete", "id", id)
	}

	archived, err := h.syncArchive(r, res.Record)
	if err != nil {
		writeError(w, err, "Answer saved but archive write failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AnswerResponse{
		Success:  true,
		Status:   res.Record.Status,
		Progress: res.Record.Progress,
		Archived: archived,
	})
}

// GetProgress handles GET /progress/{email}
func (h *ResponseHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, "invalid identifier")
		return
	}

	rec, err := h.answers.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to load response")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProgressResponse{
		Success:   true,
		Status:    rec.Status,
		Progress:  rec.Progress,
		Answers:   rec.Answers.Map(),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
}

// SyncResponse handles POST /progress/{email}/sync
// Re-runs the archive step for a stored record.
func (h *ResponseHandler) SyncResponse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, "invalid identifier")
		return
	}

	unlock := h.locks.Lock(id)
	defer unlock()

	rec, err := h.answers.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to load response")
		return
	}

	archived, err := h.syncArchive(r, &rec.PartialResponse)
	if err != nil {
		writeError(w, err, "Archive write failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AnswerResponse{
		Success:  true,
		Status:   rec.Status,
		Progress: rec.Progress,
		Archived: archived,
	})
}

// DeleteResponse handles DELETE /progress/{email}
// Archived rows are kept.
func (h *ResponseHandler) DeleteResponse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, "invalid identifier")
		return
	}

	unlock := h.locks.Lock(id)
	defer unlock()

	if err := h.answers.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete response")
		return
	}

	slog.Info("response discarded", "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Response discarded",
	})
}

// GetArchived handles GET /archive/{email}
func (h *ResponseHandler) GetArchived(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err, "invalid identifier")
		return
	}

	resp, err := h.archive.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to load archived response")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ArchiveResponse{
		Success:  true,
		Response: *resp,
	})
}

// syncArchive must run with the id lock held.
func (h *ResponseHandler) syncArchive(r *http.Request, rec *survey.PartialResponse) (bool, error) {
	archived, err := store.SyncArchive(r.Context(), h.archive, rec)
	if archived || err != nil {
		metrics.ArchiveWrite(err)
	}
	if archived {
		slog.Info("response archived", "id", rec.ID)
	}
	return archived, err
}

func pathID(r *http.Request) (string, error) {
	raw := r.PathValue("email")
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", fmt.Errorf("%w: empty", survey.ErrInvalidIdentifier)
	}
	return id, nil
}
