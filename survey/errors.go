// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "errors"

var (
	ErrInvalidIdentifier  = errors.New("invalid respondent identifier")
	ErrUnknownQuestion    = errors.New("unknown question")
	ErrMissingSubpart     = errors.New("missing sub-part")
	ErrPrerequisiteNotMet = errors.New("prerequisite not met")
)
