package models

import (
	"time"

	"github.com/shanakasp/backendNextSupabase/survey"
)

// Error kinds carried in FailureResponse.ErrorKind
const (
	KindInvalidIdentifier  = "InvalidIdentifier"
	KindUnknownQuestion    = "UnknownQuestion"
	KindMissingSubpart     = "MissingSubpart"
	KindPrerequisiteNotMet = "PrerequisiteNotMet"
	KindRecordNotFound     = "RecordNotFound"
	KindStoreUnavailable   = "StoreUnavailable"
	KindInvalidRequest     = "InvalidRequest"
)

// Request types

type StartRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Part is only meaningful for question 2 (1 = comfort, 2 = looks, 3 = price).
type AnswerRequest struct {
	Email          string `json:"email" validate:"required,email"`
	QuestionNumber int    `json:"questionNumber"`
	Answer         string `json:"answer" validate:"max=2000"`
	Part           int    `json:"part,omitempty"`
}

// Response types

type StartResponse struct {
	Success  bool          `json:"success"`
	Status   survey.Status `json:"status"`
	Progress int           `json:"progress"`
}

type AnswerResponse struct {
	Success  bool          `json:"success"`
	Status   survey.Status `json:"status"`
	Progress int           `json:"progress"`
	Archived bool          `json:"archived"`
	Message  string        `json:"message,omitempty"`
}

type ProgressResponse struct {
	Success   bool              `json:"success"`
	Status    survey.Status     `json:"status"`
	Progress  int               `json:"progress"`
	Answers   map[string]string `json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type ArchiveResponse struct {
	Success  bool                     `json:"success"`
	Response survey.CompletedResponse `json:"response"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Error response

type FailureResponse struct {
	Success   bool   `json:"success"`
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message,omitempty"`
}
