package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/config"
	"github.com/qtcyy/practice-system/internal/apperr"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/qtcyy/practice-system/internal/model"
	"github.com/qtcyy/practice-system/internal/repository"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

// EssayFeedbackService asks Gemini to review the user's submitted essay
// against the author's reference answer. Essays are only ever auto-graded
// PartiallyCorrect, so this is the review step that makes them useful.
type EssayFeedbackService interface {
	Feedback(ctx context.Context, userID uuid.UUID, req dto.EssayFeedbackReq) (*dto.EssayFeedbackResp, error)
}

type essayFeedbackService struct {
	client      *genai.GenerativeModel
	setRepo     repository.ProblemSetRepository
	problemRepo repository.ProblemRepository
	answerRepo  repository.UserAnswerRepository
}

func NewEssayFeedbackService(
	cfg *config.Config,
	setRepo repository.ProblemSetRepository,
	problemRepo repository.ProblemRepository,
	answerRepo repository.UserAnswerRepository,
) (EssayFeedbackService, error) {
	svc := &essayFeedbackService{setRepo: setRepo, problemRepo: problemRepo, answerRepo: answerRepo}
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. EssayFeedbackService will be non-functional.")
		return svc, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	svc.client = client.GenerativeModel("gemini-1.5-flash")
	return svc, nil
}

func (s *essayFeedbackService) Feedback(ctx context.Context, userID uuid.UUID, req dto.EssayFeedbackReq) (*dto.EssayFeedbackResp, error) {
	if s.client == nil {
		return nil, apperr.New("Essay feedback is not available", http.StatusServiceUnavailable)
	}

	problem, err := s.problemRepo.FindByID(ctx, req.ProblemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Problem not found")
		}
		return nil, fmt.Errorf("loading problem: %w", err)
	}
	if problem.Type != model.Essay {
		return nil, apperr.Validation("Feedback is only available for essay problems")
	}
	set, err := s.setRepo.FindByID(ctx, problem.SetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Problem not found")
		}
		return nil, fmt.Errorf("loading owning set: %w", err)
	}
	if err := RequireOwner("problem", set.UserID, userID); err != nil {
		return nil, err
	}

	answer, err := s.answerRepo.FindByUserAndProblem(ctx, userID, req.ProblemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("Submit an answer before requesting feedback")
		}
		return nil, fmt.Errorf("loading user answer: %w", err)
	}
	if answer.TextAnswer == nil || strings.TrimSpace(*answer.TextAnswer) == "" {
		return nil, apperr.Validation("Submit an answer before requesting feedback")
	}

	reference := ""
	results, err := s.problemRepo.FindResults(ctx, problem.Id)
	if err != nil {
		return nil, fmt.Errorf("loading reference answer: %w", err)
	}
	for _, r := range results {
		if r.IsAnswer && r.ResultType == model.ResultText {
			reference = r.Content
			break
		}
	}

	feedback, err := s.review(ctx, problem.Content, reference, *answer.TextAnswer)
	if err != nil {
		return nil, err
	}
	return &dto.EssayFeedbackResp{
		Message:  "Feedback generated successfully",
		Feedback: feedback,
	}, nil
}

func (s *essayFeedbackService) review(ctx context.Context, question, reference, essay string) (string, error) {
	var prompt strings.Builder
	prompt.WriteString("You are a careful grader reviewing a student's written answer to a practice problem.\n\n")
	prompt.WriteString("Question:\n---\n")
	prompt.WriteString(question)
	prompt.WriteString("\n---\n\n")
	if reference != "" {
		prompt.WriteString("Reference answer written by the problem's author:\n---\n")
		prompt.WriteString(reference)
		prompt.WriteString("\n---\n\n")
	}
	prompt.WriteString("Student's answer:\n---\n")
	prompt.WriteString(essay)
	prompt.WriteString("\n---\n\n")
	prompt.WriteString("Compare the student's answer with the reference. Point out what is correct, ")
	prompt.WriteString("what is missing or wrong, and how to improve it. Be specific and concise. ")
	prompt.WriteString("Respond in plain text without markdown headers.")

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during essay review")
		return "", fmt.Errorf("generating feedback: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return strings.TrimSpace(text), nil
}
