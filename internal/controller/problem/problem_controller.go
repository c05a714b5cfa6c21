package problem

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/apperr"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/qtcyy/practice-system/internal/middleware"
	"github.com/qtcyy/practice-system/internal/service"
)

type ProblemController struct {
	problemService service.ProblemService
	editService    service.ProblemEditService
	answerService  service.AnswerService
	essayService   service.EssayFeedbackService
	tokens         service.TokenService
}

func NewProblemController(
	problemService service.ProblemService,
	editService service.ProblemEditService,
	answerService service.AnswerService,
	essayService service.EssayFeedbackService,
	tokens service.TokenService,
) *ProblemController {
	return &ProblemController{
		problemService: problemService,
		editService:    editService,
		answerService:  answerService,
		essayService:   essayService,
		tokens:         tokens,
	}
}

func (c *ProblemController) RegisterRoutes(r *gin.Engine) {
	problems := r.Group("/api/Problem", middleware.JWTAuth(c.tokens))
	{
		problems.GET("/get-set", c.GetProblemSets)
		problems.GET("/get-problems/:problemSetId", c.GetProblems)
		problems.GET("/get-detail/:problemId", c.GetProblemDetail)
		problems.GET("/get-incorrect/:problemSetId", c.GetIncorrectProblems)
		problems.POST("/new-problem-set", c.NewProblemSet)
		problems.POST("/add-problem", c.AddProblem)
		problems.POST("/submit-answer", c.SubmitAnswer)
		problems.POST("/essay-feedback", c.EssayFeedback)
	}
}

// GetProblemSets godoc
// @Summary List the caller's problem sets
// @Description Newest-updated first, each with total and attempted counts.
// @Tags Problem
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.GetProblemSetResp
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/Problem/get-set [get]
func (c *ProblemController) GetProblemSets(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Error(apperr.Unauthorized("Missing user identity"))
		return
	}
	sets, err := c.problemService.GetProblemSets(ctx.Request.Context(), userID)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GetProblemSetResp{
		Message:     "Problem sets retrieved successfully",
		ProblemSets: sets,
	})
}

// GetProblems godoc
// @Summary List a set's problems
// @Description Problems in display order with the caller's answer status.
// @Tags Problem
// @Produce json
// @Security BearerAuth
// @Param problemSetId path string true "Problem set id"
// @Success 200 {object} dto.GetProblemsResp
// @Failure 400 {object} dto.ErrorResponse "Invalid id format"
// @Failure 403 {object} dto.ErrorResponse "Not the set owner"
// @Failure 404 {object} dto.ErrorResponse "Problem set not found"
// @Router /api/Problem/get-problems/{problemSetId} [get]
func (c *ProblemController) GetProblems(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Error(apperr.Unauthorized("Missing user identity"))
		return
	}
	setID, err := uuid.Parse(ctx.Param("problemSetId"))
	if err != nil {
		ctx.Error(apperr.Validation("Invalid problem set id format"))
		return
	}
	problems, err := c.problemService.GetProblems(ctx.Request.Context(), userID, setID)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GetProblemsResp{
		Message:  "Problems retrieved successfully",
		Problems: problems,
	})
}

// GetProblemDetail godoc
// @Summary Get one problem with its results and the caller's answer
// @Tags Problem
// @Produce json
// @Security BearerAuth
// @Param problemId path string true "Problem id"
// @Success 200 {object} dto.GetProblemDetailResp
// @Failure 400 {object} dto.ErrorResponse "Invalid id format"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Problem not found"
// @Router /api/Problem/get-detail/{problemId} [get]
func (c *ProblemController) GetProblemDetail(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Error(apperr.Unauthorized("Missing user identity"))
		return
	}
	problemID, err := uuid.Parse(ctx.Param("problemId"))
	if err != nil {
		ctx.Error(apperr.Validation("Invalid problem id format"))
		return
	}
	detail, err := c.problemService.GetProblemDetail(ctx.Request.Context(), userID, problemID)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GetProblemDetailResp{
		Message:       "Problem detail retrieved successfully",
		ProblemDetail: *detail,
	})
}

// GetIncorrectProblems godoc
// @Summary List a set's problems the caller got wrong
// @Description Problems whose current verdict is Incorrect or PartiallyCorrect.
// @Tags Problem
// @Produce json
// @Security BearerAuth
// @Param problemSetId path string true "Problem set id"
// @Success 200 {object} dto.GetProblemsResp
// @Failure 404 {object} dto.ErrorResponse "Problem set not found"
// @Router /api/Problem/get-incorrect/{problemSetId} [get]
func (c *ProblemController) GetIncorrectProblems(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Error(apperr.Unauthorized("Missing user identity"))
		return
	}
	setID, err := uuid.Parse(ctx.Param("problemSetId"))
	if err != nil {
		ctx.Error(apperr.Validation("Invalid problem set id format"))
		return
	}
	problems, err := c.problemService.GetIncorrectProblems(ctx.Request.Context(), userID, setID)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, dto.GetProblemsResp{
		Message:  "Problems retrieved successfully",
		Problems: problems,
	})
}

// NewProblemSet godoc
// @Summary Create a problem set owned by the caller
// @Tags Problem
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NewProblemSetReq true "Set payload"
// @Success 200 {object} dto.NewProblemSetResp
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/Problem/new-problem-set [post]
func (c *ProblemController) NewProblemSet(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Error(apperr.Unauthorized("Missing user identity"))
		return
	}
	var req dto.NewProblemSetReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(apperr.Validation("Invalid request body: " + err.Error()))
		return
	}
	set, err := c.editService.NewProblemSet(ctx.Request.Context(), userID, req)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewProblemSetResp{
		Message:    "Problem set created successfully",
		ProblemSet: *set,
	})
}

// AddProblem godoc
// @Summary Append a problem with its results to a set
// @Description The problem is placed after the set's current last problem.
// @Tags Problem
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddProblemReq true "Problem payload"
// @Success 200 {object} dto.AddProblemResp
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not the set owner"
// @Failure 404 {object} dto.ErrorResponse "Problem set not found"
// @Router /api/Problem/add-problem [post]
func (c *ProblemController) AddProblem(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Error(apperr.Unauthorized("Missing user identity"))
		return
	}
	var req dto.AddProblemReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(apperr.Validation("Invalid request body: " + err.Error()))
		return
	}
	resp, err := c.editService.AddProblem(ctx.Request.Context(), userID, req)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer to a problem
// @Description The verdict is computed server-side; any status in the payload is ignored.
// @Tags Problem
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAnswerReq true "Answer payload"
// @Success 200 {object} dto.SubmitAnswerResp
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Problem not found"
// @Router /api/Problem/submit-answer [post]
func (c *ProblemController) SubmitAnswer(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Error(apperr.Unauthorized("Missing user identity"))
		return
	}
	var req dto.SubmitAnswerReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(apperr.Validation("Invalid request body: " + err.Error()))
		return
	}
	resp, err := c.answerService.Submit(ctx.Request.Context(), userID, req)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// EssayFeedback godoc
// @Summary Get AI feedback on a submitted essay answer
// @Tags Problem
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EssayFeedbackReq true "Problem reference"
// @Success 200 {object} dto.EssayFeedbackResp
// @Failure 400 {object} dto.ErrorResponse "Not an essay or no answer yet"
// @Failure 404 {object} dto.ErrorResponse "Problem not found"
// @Failure 503 {object} dto.ErrorResponse "Feedback backend not configured"
// @Router /api/Problem/essay-feedback [post]
func (c *ProblemController) EssayFeedback(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Error(apperr.Unauthorized("Missing user identity"))
		return
	}
	var req dto.EssayFeedbackReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(apperr.Validation("Invalid request body: " + err.Error()))
		return
	}
	resp, err := c.essayService.Feedback(ctx.Request.Context(), userID, req)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
