// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Slot names as they appear in the answers mapping.
const (
	SlotQ1      = "Q1"
	SlotQ2Part1 = "Q2_part1"
	SlotQ2Part2 = "Q2_part2"
	SlotQ2Part3 = "Q2_part3"
	SlotQ2      = "Q2"
	SlotQ3      = "Q3"
	SlotQ4      = "Q4"
)

// Q2 sub-parts, in the order they are combined into Q2.
const (
	PartComfort = 1
	PartLooks   = 2
	PartPrice   = 3
)

// Q2Separator joins the three Q2 sub-answers into the derived Q2 value.
const Q2Separator = ","

// Slot holds one answer. Answered stays true once a non-empty value has
// been recorded, even if the value is later overwritten with "".
type Slot struct {
	Value    string
	Answered bool
}

func (s *Slot) set(value string) {
	s.Value = value
	if value != "" {
		s.Answered = true
	}
}

// Answers lists every known slot explicitly. Q3 and Q4 are only used by
// the four-question layout.
type Answers struct {
	Q1      Slot
	Q2Parts [3]Slot
	Q2      Slot
	Q3      Slot
	Q4      Slot
}

// slots returns name/slot pairs in a stable order.
func (a *Answers) slots() []struct {
	name string
	slot *Slot
} {
	return []struct {
		name string
		slot *Slot
	}{
		{SlotQ1, &a.Q1},
		{SlotQ2Part1, &a.Q2Parts[0]},
		{SlotQ2Part2, &a.Q2Parts[1]},
		{SlotQ2Part3, &a.Q2Parts[2]},
		{SlotQ2, &a.Q2},
		{SlotQ3, &a.Q3},
		{SlotQ4, &a.Q4},
	}
}

// Empty reports whether no slot has been answered.
func (a Answers) Empty() bool {
	for _, s := range a.slots() {
		if s.slot.Answered {
			return false
		}
	}
	return true
}

// Map returns the answered slots keyed by slot name.
func (a Answers) Map() map[string]string {
	m := make(map[string]string)
	for _, s := range a.slots() {
		if s.slot.Answered {
			m[s.name] = s.slot.Value
		}
	}
	return m
}

func (a Answers) allPartsAnswered() bool {
	for _, p := range a.Q2Parts {
		if !p.Answered {
			return false
		}
	}
	return true
}

// deriveQ2 combines the sub-parts in part order, regardless of the order
// they were submitted in.
func (a *Answers) deriveQ2() {
	if !a.allPartsAnswered() {
		return
	}
	values := make([]string, len(a.Q2Parts))
	for i, p := range a.Q2Parts {
		values[i] = p.Value
	}
	a.Q2 = Slot{Value: strings.Join(values, Q2Separator), Answered: true}
}

// MarshalJSON encodes the answered slots as a flat name → value object.
func (a Answers) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Map())
}

// UnmarshalJSON accepts the flat object written by MarshalJSON. A present
// key marks its slot answered. Null values are treated as absent.
func (a *Answers) UnmarshalJSON(data []byte) error {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out Answers
	index := make(map[string]*Slot)
	for _, s := range out.slots() {
		index[s.name] = s.slot
	}

	for name, value := range raw {
		slot, ok := index[name]
		if !ok {
			return fmt.Errorf("unknown answer slot %q", name)
		}
		if value == nil {
			continue
		}
		*slot = Slot{Value: *value, Answered: true}
	}

	*a = out
	return nil
}
