package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/apperr"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/qtcyy/practice-system/internal/model"
)

func TestGetProblemSetsCounts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.mustRegister(t, "alice")
	setID := h.mustCreateSet(t, userID, "Algebra")
	p1 := h.mustAddProblem(t, userID, setID, singleChoiceReq("1+1?"))
	h.mustAddProblem(t, userID, setID, singleChoiceReq("2+2?"))
	h.mustAddProblem(t, userID, setID, singleChoiceReq("3+3?"))

	_, err := h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:        p1.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, p1, "2")},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	sets, err := h.problems.GetProblemSets(ctx, userID)
	if err != nil {
		t.Fatalf("listing sets: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("expected 1 set, got %d", len(sets))
	}
	if sets[0].TotalProblems != 3 {
		t.Fatalf("expected 3 problems, got %d", sets[0].TotalProblems)
	}
	if sets[0].AttemptedProblems != 1 {
		t.Fatalf("expected 1 attempted, got %d", sets[0].AttemptedProblems)
	}
}

func TestGetProblemSetsOnlyOwn(t *testing.T) {
	h := newHarness(t)
	alice := h.mustRegister(t, "alice")
	bob := h.mustRegister(t, "bob")
	h.mustCreateSet(t, alice, "Alice's")
	h.mustCreateSet(t, bob, "Bob's")

	sets, err := h.problems.GetProblemSets(context.Background(), alice)
	if err != nil {
		t.Fatalf("listing sets: %v", err)
	}
	if len(sets) != 1 || sets[0].Title != "Alice's" {
		t.Fatalf("expected only Alice's set, got %+v", sets)
	}
}

func TestGetProblemsOrderedWithStatus(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.mustRegister(t, "alice")
	setID := h.mustCreateSet(t, userID, "Algebra")
	p1 := h.mustAddProblem(t, userID, setID, singleChoiceReq("first"))
	h.mustAddProblem(t, userID, setID, singleChoiceReq("second"))

	_, err := h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:        p1.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, p1, "2")},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	problems, err := h.problems.GetProblems(ctx, userID, setID)
	if err != nil {
		t.Fatalf("listing problems: %v", err)
	}
	if len(problems) != 2 {
		t.Fatalf("expected 2 problems, got %d", len(problems))
	}
	if problems[0].Content != "first" || problems[1].Content != "second" {
		t.Fatalf("problems out of order: %+v", problems)
	}
	if problems[0].Status != model.Correct {
		t.Fatalf("expected first problem Correct, got %v", problems[0].Status)
	}
	if problems[1].Status != model.Unattempted {
		t.Fatalf("expected second problem Unattempted, got %v", problems[1].Status)
	}
}

func TestGetProblemsForeignSetIsForbidden(t *testing.T) {
	h := newHarness(t)
	alice := h.mustRegister(t, "alice")
	mallory := h.mustRegister(t, "mallory")
	setID := h.mustCreateSet(t, alice, "Private")

	_, err := h.problems.GetProblems(context.Background(), mallory, setID)
	if be, ok := apperr.As(err); !ok || be.Code != http.StatusForbidden {
		t.Fatalf("expected a 403 business error, got %v", err)
	}
}

func TestNullOwnerSetIsSharedReadable(t *testing.T) {
	h := newHarness(t)
	userID := h.mustRegister(t, "alice")

	legacy := model.ProblemSet{Title: "Legacy shared set"}
	if err := h.db.Create(&legacy).Error; err != nil {
		t.Fatalf("creating legacy set: %v", err)
	}

	if _, err := h.problems.GetProblems(context.Background(), userID, legacy.Id); err != nil {
		t.Fatalf("expected a null-owner set to be readable, got %v", err)
	}
}

func TestGetProblemDetail(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.mustRegister(t, "alice")
	setID := h.mustCreateSet(t, userID, "Algebra")
	problem := h.mustAddProblem(t, userID, setID, singleChoiceReq("1+1?"))

	detail, err := h.problems.GetProblemDetail(ctx, userID, problem.Problem.Id)
	if err != nil {
		t.Fatalf("loading detail: %v", err)
	}
	if len(detail.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(detail.Results))
	}
	if detail.UserAnswer != nil || detail.SelectedResultId != nil {
		t.Fatalf("expected no answer before submission, got %+v", detail)
	}

	picked := answerID(t, problem, "2")
	_, err = h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:        problem.Problem.Id,
		SelectedResultID: []uuid.UUID{picked},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	detail, err = h.problems.GetProblemDetail(ctx, userID, problem.Problem.Id)
	if err != nil {
		t.Fatalf("loading detail: %v", err)
	}
	if detail.UserAnswer == nil || detail.UserAnswer.Status != model.Correct {
		t.Fatalf("expected a Correct answer, got %+v", detail.UserAnswer)
	}
	if len(detail.SelectedResultId) != 1 || detail.SelectedResultId[0] != picked {
		t.Fatalf("expected selected id %s, got %v", picked, detail.SelectedResultId)
	}
}

func TestGetProblemDetailEssayHasNoSelections(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.mustRegister(t, "alice")
	setID := h.mustCreateSet(t, userID, "Writing")
	problem := h.mustAddProblem(t, userID, setID, essayReq("Explain.", "Reference."))

	text := "My answer."
	_, err := h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:  problem.Problem.Id,
		TextAnswer: &text,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	detail, err := h.problems.GetProblemDetail(ctx, userID, problem.Problem.Id)
	if err != nil {
		t.Fatalf("loading detail: %v", err)
	}
	if detail.UserAnswer == nil || detail.UserAnswer.TextAnswer == nil || *detail.UserAnswer.TextAnswer != text {
		t.Fatalf("expected the text answer back, got %+v", detail.UserAnswer)
	}
	if detail.SelectedResultId != nil {
		t.Fatalf("expected no selections on an essay, got %v", detail.SelectedResultId)
	}
}

func TestGetProblemDetailMissing(t *testing.T) {
	h := newHarness(t)
	userID := h.mustRegister(t, "alice")

	_, err := h.problems.GetProblemDetail(context.Background(), userID, uuid.New())
	if be, ok := apperr.As(err); !ok || be.Code != http.StatusNotFound {
		t.Fatalf("expected a 404 business error, got %v", err)
	}
}

func TestGetIncorrectProblems(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.mustRegister(t, "alice")
	setID := h.mustCreateSet(t, userID, "Algebra")
	wrong := h.mustAddProblem(t, userID, setID, singleChoiceReq("first"))
	right := h.mustAddProblem(t, userID, setID, singleChoiceReq("second"))
	h.mustAddProblem(t, userID, setID, singleChoiceReq("third")) // never attempted

	_, err := h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:        wrong.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, wrong, "1")},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	_, err = h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:        right.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, right, "2")},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	incorrect, err := h.problems.GetIncorrectProblems(ctx, userID, setID)
	if err != nil {
		t.Fatalf("listing incorrect: %v", err)
	}
	if len(incorrect) != 1 || incorrect[0].Content != "first" {
		t.Fatalf("expected only the wrong problem, got %+v", incorrect)
	}
}
