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

func TestSubmitGradesOnTheServer(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.mustRegister(t, "alice")
	setID := h.mustCreateSet(t, userID, "Algebra")
	problem := h.mustAddProblem(t, userID, setID, singleChoiceReq("1+1?"))

	// The client claims Correct while picking a wrong option.
	resp, err := h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:        problem.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, problem, "1")},
		Status:           model.Correct,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.Status != model.Incorrect {
		t.Fatalf("expected the server verdict Incorrect, got %v", resp.Status)
	}

	resp, err = h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:        problem.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, problem, "2")},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.Status != model.Correct {
		t.Fatalf("expected Correct, got %v", resp.Status)
	}
}

func TestResubmitKeepsRowIdentity(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.mustRegister(t, "alice")
	setID := h.mustCreateSet(t, userID, "Algebra")
	problem := h.mustAddProblem(t, userID, setID, singleChoiceReq("1+1?"))

	first, err := h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:        problem.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, problem, "1")},
	})
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second, err := h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:        problem.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, problem, "2")},
	})
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	if first.UserAnswerID != second.UserAnswerID {
		t.Fatalf("resubmission created a new row: %s vs %s", first.UserAnswerID, second.UserAnswerID)
	}

	var saved model.UserAnswer
	if err := h.db.First(&saved, "id = ?", second.UserAnswerID).Error; err != nil {
		t.Fatalf("loading saved answer: %v", err)
	}
	if saved.Status != model.Correct {
		t.Fatalf("expected stored status Correct, got %v", saved.Status)
	}
	if saved.Version.Int64 < 2 {
		t.Fatalf("expected version to advance past 1, got %d", saved.Version.Int64)
	}

	// Selections are fully replaced; only the latest pick is live.
	var live []model.UserAnswerSelection
	err = h.db.Where("user_answer_id = ? AND is_deleted = 0", saved.Id).Find(&live).Error
	if err != nil {
		t.Fatalf("loading selections: %v", err)
	}
	if len(live) != 1 || live[0].ProblemResultID != answerID(t, problem, "2") {
		t.Fatalf("expected exactly the latest selection, got %+v", live)
	}
}

func TestSubmitEssay(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	userID := h.mustRegister(t, "alice")
	setID := h.mustCreateSet(t, userID, "Writing")
	problem := h.mustAddProblem(t, userID, setID, essayReq("Explain gravity.", "Mass bends spacetime."))

	text := "Things fall."
	resp, err := h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:  problem.Problem.Id,
		TextAnswer: &text,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.Status != model.PartiallyCorrect {
		t.Fatalf("expected PartiallyCorrect for a non-blank essay, got %v", resp.Status)
	}

	blank := "   "
	resp, err = h.answers.Submit(ctx, userID, dto.SubmitAnswerReq{
		ProblemID:  problem.Problem.Id,
		TextAnswer: &blank,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.Status != model.Unattempted {
		t.Fatalf("expected Unattempted for a blank essay, got %v", resp.Status)
	}
}

func TestSubmitToMissingProblem(t *testing.T) {
	h := newHarness(t)
	userID := h.mustRegister(t, "alice")

	_, err := h.answers.Submit(context.Background(), userID, dto.SubmitAnswerReq{
		ProblemID: uuid.New(),
	})
	if be, ok := apperr.As(err); !ok || be.Code != http.StatusNotFound {
		t.Fatalf("expected a 404 business error, got %v", err)
	}
}

func TestSubmitToForeignProblemIsForbidden(t *testing.T) {
	h := newHarness(t)
	alice := h.mustRegister(t, "alice")
	mallory := h.mustRegister(t, "mallory")
	setID := h.mustCreateSet(t, alice, "Private")
	problem := h.mustAddProblem(t, alice, setID, singleChoiceReq("1+1?"))

	_, err := h.answers.Submit(context.Background(), mallory, dto.SubmitAnswerReq{
		ProblemID:        problem.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, problem, "2")},
	})
	if be, ok := apperr.As(err); !ok || be.Code != http.StatusForbidden {
		t.Fatalf("expected a 403 business error, got %v", err)
	}
}

func TestSubmitBackfillsSetID(t *testing.T) {
	h := newHarness(t)
	userID := h.mustRegister(t, "alice")
	setID := h.mustCreateSet(t, userID, "Algebra")
	problem := h.mustAddProblem(t, userID, setID, singleChoiceReq("1+1?"))

	resp, err := h.answers.Submit(context.Background(), userID, dto.SubmitAnswerReq{
		ProblemID:        problem.Problem.Id,
		SelectedResultID: []uuid.UUID{answerID(t, problem, "2")},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	var saved model.UserAnswer
	if err := h.db.First(&saved, "id = ?", resp.UserAnswerID).Error; err != nil {
		t.Fatalf("loading saved answer: %v", err)
	}
	if saved.ProblemSetID == nil || *saved.ProblemSetID != setID {
		t.Fatalf("expected set id %s, got %v", setID, saved.ProblemSetID)
	}
}
