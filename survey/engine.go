// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"fmt"
	"strings"
	"time"
)

// Status constants
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusComplete   Status = "complete"
)

// Layout selects the question set a respondent walks through.
type Layout int

const (
	// LayoutTwoQuestion is Q1 plus a three-part Q2.
	LayoutTwoQuestion Layout = iota
	// LayoutFourQuestion is Q1..Q4, single answers each. Q4 needs Q2 and Q3.
	LayoutFourQuestion
)

// ParseLayout maps a config value ("two", "four") to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "two", "2":
		return LayoutTwoQuestion, nil
	case "four", "4":
		return LayoutFourQuestion, nil
	}
	return 0, fmt.Errorf("unknown survey layout %q", s)
}

func (l Layout) String() string {
	if l == LayoutFourQuestion {
		return "four"
	}
	return "two"
}

// Questions returns the number of top-level questions in the layout.
// It is also the progress marker of a complete response.
func (l Layout) Questions() int {
	if l == LayoutFourQuestion {
		return 4
	}
	return 2
}

// PartialResponse is the in-flight record kept in the answer store.
type PartialResponse struct {
	ID       string  `json:"id"`
	Answers  Answers `json:"answers"`
	Status   Status  `json:"status"`
	Progress int     `json:"progress"`
}

// Clone returns a deep copy. Answers holds no references, so a value copy suffices.
func (p *PartialResponse) Clone() *PartialResponse {
	c := *p
	return &c
}

// Submission is one inbound answer. SubPart is 0 when absent.
type Submission struct {
	Question int
	Answer   string
	SubPart  int
}

// Result of ApplyAnswer.
type Result struct {
	Record *PartialResponse
	// BecameComplete is true only on the in-progress -> complete transition.
	BecameComplete bool
	// Created is true when no record existed and one was synthesized.
	Created bool
}

// CompletedResponse is the permanent shape written to the archive store.
// Timestamps are owned by the archive store.
type CompletedResponse struct {
	ID             string    `json:"id"`
	FirstQuestion  string    `json:"first_question"`
	SecondQuestion string    `json:"second_question"`
	ThirdQuestion  string    `json:"third_question,omitempty"`
	FourthQuestion string    `json:"fourth_question,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Engine computes record transitions. It holds no state beyond its layout
// and is safe for concurrent use.
type Engine struct {
	layout Layout
}

func NewEngine(layout Layout) *Engine {
	return &Engine{layout: layout}
}

func (e *Engine) Layout() Layout {
	return e.layout
}

// Initialize returns a fresh record for id. The caller persists it.
func (e *Engine) Initialize(id string) (*PartialResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidIdentifier
	}
	return &PartialResponse{
		ID:       id,
		Status:   StatusInProgress,
		Progress: 0,
	}, nil
}

// ApplyAnswer applies sub to current and returns the updated copy.
// A nil current means no record exists for id; one is synthesized first.
func (e *Engine) ApplyAnswer(current *PartialResponse, id string, sub Submission) (Result, error) {
	var res Result

	var rec *PartialResponse
	if current == nil {
		fresh, err := e.Initialize(id)
		if err != nil {
			return res, err
		}
		rec = fresh
		res.Created = true
	} else {
		rec = current.Clone()
	}

	wasComplete := rec.Status == StatusComplete

	switch e.layout {
	case LayoutFourQuestion:
		if err := e.applyFour(&rec.Answers, sub); err != nil {
			return Result{}, err
		}
	default:
		if err := e.applyTwo(&rec.Answers, sub); err != nil {
			return Result{}, err
		}
	}

	answered := e.answeredQuestions(rec.Answers)
	if answered > rec.Progress {
		rec.Progress = answered
	}
	// Status never regresses, even if an answered slot is overwritten with "".
	if answered == e.layout.Questions() {
		rec.Status = StatusComplete
	}

	res.Record = rec
	res.BecameComplete = !wasComplete && rec.Status == StatusComplete
	return res, nil
}

func (e *Engine) applyTwo(a *Answers, sub Submission) error {
	switch sub.Question {
	case 1:
		a.Q1.set(sub.Answer)
	case 2:
		if sub.SubPart == 0 {
			return fmt.Errorf("%w: question 2 needs a part (1-3)", ErrMissingSubpart)
		}
		if sub.SubPart < PartComfort || sub.SubPart > PartPrice {
			return fmt.Errorf("%w: question 2 part %d", ErrUnknownQuestion, sub.SubPart)
		}
		a.Q2Parts[sub.SubPart-1].set(sub.Answer)
		a.deriveQ2()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, sub.Question)
	}
	return nil
}

func (e *Engine) applyFour(a *Answers, sub Submission) error {
	switch sub.Question {
	case 1:
		a.Q1.set(sub.Answer)
	case 2:
		a.Q2.set(sub.Answer)
	case 3:
		a.Q3.set(sub.Answer)
	case 4:
		if !a.Q2.Answered || !a.Q3.Answered {
			return fmt.Errorf("%w: answer questions 2 and 3 before question 4", ErrPrerequisiteNotMet)
		}
		a.Q4.set(sub.Answer)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, sub.Question)
	}
	return nil
}

// answeredQuestions counts the top-level questions that are satisfied.
func (e *Engine) answeredQuestions(a Answers) int {
	top := []Slot{a.Q1, a.Q2}
	if e.layout == LayoutFourQuestion {
		top = append(top, a.Q3, a.Q4)
	}
	n := 0
	for _, s := range top {
		if s.Answered {
			n++
		}
	}
	return n
}

// ShouldArchive reports whether rec must be written to the archive store.
// Once an archive row exists it is kept in sync on every later change.
func ShouldArchive(rec *PartialResponse, archiveExists bool) bool {
	if rec == nil {
		return false
	}
	return rec.Status == StatusComplete || archiveExists
}

// Archival derives the permanent shape of rec.
func Archival(rec *PartialResponse) CompletedResponse {
	return CompletedResponse{
		ID:             rec.ID,
		FirstQuestion:  rec.Answers.Q1.Value,
		SecondQuestion: rec.Answers.Q2.Value,
		ThirdQuestion:  rec.Answers.Q3.Value,
		FourthQuestion: rec.Answers.Q4.Value,
	}
}
