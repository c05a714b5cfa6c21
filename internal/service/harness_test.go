package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/config"
	"github.com/qtcyy/practice-system/database"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/qtcyy/practice-system/internal/model"
	"github.com/qtcyy/practice-system/internal/repository"
	"github.com/qtcyy/practice-system/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// harness wires the real services over an in-memory SQLite database.
type harness struct {
	db       *gorm.DB
	users    service.UserService
	tokens   service.TokenService
	problems service.ProblemService
	edit     service.ProblemEditService
	answers  service.AnswerService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	if err := database.SeedRoles(db); err != nil {
		t.Fatalf("seeding roles: %v", err)
	}

	cfg := &config.Config{Jwt: config.Jwt{Secret: "test-secret", TTLHours: 1}}
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	setRepo := repository.NewProblemSetRepository(db)
	problemRepo := repository.NewProblemRepository(db)
	answerRepo := repository.NewUserAnswerRepository(db)
	tokens := service.NewTokenService(cfg)

	return &harness{
		db:       db,
		users:    service.NewUserService(userRepo, roleRepo, tokens),
		tokens:   tokens,
		problems: service.NewProblemService(setRepo, problemRepo, answerRepo),
		edit:     service.NewProblemEditService(db, setRepo),
		answers:  service.NewAnswerService(setRepo, problemRepo, answerRepo),
	}
}

func (h *harness) mustRegister(t *testing.T, username string) uuid.UUID {
	t.Helper()
	user, err := h.users.Register(context.Background(), username, "secret123")
	if err != nil {
		t.Fatalf("registering %s: %v", username, err)
	}
	return user.Id
}

func (h *harness) mustCreateSet(t *testing.T, userID uuid.UUID, title string) uuid.UUID {
	t.Helper()
	set, err := h.edit.NewProblemSet(context.Background(), userID, dto.NewProblemSetReq{Title: title})
	if err != nil {
		t.Fatalf("creating set %s: %v", title, err)
	}
	return set.Id
}

func (h *harness) mustAddProblem(t *testing.T, userID, setID uuid.UUID, req dto.AddProblemReq) *dto.AddProblemResp {
	t.Helper()
	req.ProblemSetID = setID
	resp, err := h.edit.AddProblem(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("adding problem: %v", err)
	}
	return resp
}

func singleChoiceReq(content string) dto.AddProblemReq {
	return dto.AddProblemReq{
		Problem: dto.NewProblemReq{Content: content, Type: model.SingleChoice},
		Results: []dto.NewProblemResultReq{
			{ResultType: model.ResultChoice, Content: "1", IsAnswer: false},
			{ResultType: model.ResultChoice, Content: "2", IsAnswer: true},
			{ResultType: model.ResultChoice, Content: "3", IsAnswer: false},
		},
	}
}

func essayReq(content, reference string) dto.AddProblemReq {
	return dto.AddProblemReq{
		Problem: dto.NewProblemReq{Content: content, Type: model.Essay},
		Results: []dto.NewProblemResultReq{
			{ResultType: model.ResultText, Content: reference, IsAnswer: true},
		},
	}
}

// answerID returns the id of the result with the given content.
func answerID(t *testing.T, resp *dto.AddProblemResp, content string) uuid.UUID {
	t.Helper()
	for _, r := range resp.Results {
		if r.Content == content {
			return r.Id
		}
	}
	t.Fatalf("no result with content %q", content)
	return uuid.Nil
}
