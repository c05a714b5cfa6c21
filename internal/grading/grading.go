// Package grading holds the verdict evaluator. It is a pure function of the
// problem type, the correct result ids and the submission, so the submit
// path and any read-time recomputation produce identical verdicts.
package grading

import (
	"strings"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/model"
)

// Submission is the user's answer, shaped per problem type: selected result
// ids for choice types, free text for essays.
type Submission struct {
	SelectedResultIDs []uuid.UUID
	TextAnswer        string
}

// Grade maps a submission to its verdict.
//
// Single-choice / true-false: the selected id must equal the sole correct id.
// Multiple-choice: set equality is Correct, a non-empty intersection is
// PartiallyCorrect, a disjoint selection is Incorrect.
// Essay: any non-blank text is PartiallyCorrect (needs human review); essays
// are never auto-marked Correct or Incorrect.
func Grade(problemType model.ProblemType, correctIDs []uuid.UUID, sub Submission) model.ProblemStatus {
	switch problemType {
	case model.SingleChoice, model.TrueFalse:
		return gradeChoice(correctIDs, sub.SelectedResultIDs, false)
	case model.MultipleChoice:
		return gradeChoice(correctIDs, sub.SelectedResultIDs, true)
	case model.Essay:
		return gradeEssay(sub.TextAnswer)
	default:
		return model.Unattempted
	}
}

func gradeChoice(correctIDs, selectedIDs []uuid.UUID, partialCredit bool) model.ProblemStatus {
	selected := toSet(selectedIDs)
	if len(selected) == 0 {
		return model.Unattempted
	}
	correct := toSet(correctIDs)

	overlap := 0
	for id := range selected {
		if _, ok := correct[id]; ok {
			overlap++
		}
	}

	if overlap == len(correct) && len(selected) == len(correct) {
		return model.Correct
	}
	if partialCredit && overlap > 0 {
		return model.PartiallyCorrect
	}
	return model.Incorrect
}

func gradeEssay(text string) model.ProblemStatus {
	if strings.TrimSpace(text) == "" {
		return model.Unattempted
	}
	return model.PartiallyCorrect
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
