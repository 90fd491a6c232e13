// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey tracks a respondent's progress through the questionnaire.

The engine is pure: it takes the current record and a submission and
returns the next record. Persistence, locking and archival writes belong
to the caller.

# Layouts

The default layout has two questions. Q2 is answered in three parts
(comfort, looks, price) and is derived once all three are present:

	Q2 = Q2_part1 + "," + Q2_part2 + "," + Q2_part3

The four-question layout takes single answers for Q1..Q4 and rejects Q4
until Q2 and Q3 are answered.

# Progress

Progress counts the top-level questions answered and never decreases.
A record is complete when every top-level question is answered:

	eng := survey.NewEngine(survey.LayoutTwoQuestion)
	rec, _ := eng.Initialize("a@b.com")
	res, err := eng.ApplyAnswer(rec, rec.ID, survey.Submission{Question: 1, Answer: "X"})

Overwriting an answered slot with an empty value keeps the slot answered,
so status never goes back from complete to in-progress.

# Archival

ShouldArchive is true for complete records, and for any record whose
archive row already exists, so later edits keep the archive in sync.
Archival builds the permanent shape.
*/
package survey
