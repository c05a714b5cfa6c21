package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qtcyy/practice-system/internal/apperr"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/qtcyy/practice-system/internal/middleware"
	"github.com/qtcyy/practice-system/internal/model"
	"github.com/qtcyy/practice-system/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService service.UserService
	tokens      service.TokenService
}

func NewUserController(userService service.UserService, tokens service.TokenService) *UserController {
	return &UserController{userService: userService, tokens: tokens}
}

func (c *UserController) RegisterRoutes(r *gin.Engine) {
	users := r.Group("/api/User")
	{
		users.POST("/register", c.Register)
		users.POST("/login", c.Login)
		users.GET("/ping",
			middleware.JWTAuth(c.tokens),
			middleware.RequireRole(model.RoleAdmin),
			c.Ping)
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account with the USER role.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RegisterReq true "Registration payload"
// @Success 200 {object} dto.RegisterResp
// @Failure 400 {object} dto.ErrorResponse "Validation error or duplicate username"
// @Router /api/User/register [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(apperr.Validation("Invalid request body: " + err.Error()))
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		ctx.Error(apperr.Validation("Username cannot be empty"))
		return
	}
	if len(req.Password) < 6 {
		ctx.Error(apperr.Validation("Password must be at least 6 characters"))
		return
	}

	created, err := c.userService.Register(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		ctx.Error(err)
		return
	}
	log.Info().Str("username", created.Username).Msg("User registered")
	ctx.JSON(http.StatusOK, dto.RegisterResp{
		Message:  "User registered successfully",
		UserID:   created.Id.String(),
		Username: created.Username,
	})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a bearer token.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.LoginReq true "Credentials"
// @Success 200 {object} dto.LoginResp
// @Failure 400 {object} dto.ErrorResponse "Invalid username or password"
// @Router /api/User/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(apperr.Validation("Invalid request body: " + err.Error()))
		return
	}

	resp, err := c.userService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Ping godoc
// @Summary Admin health probe
// @Description Confirms the token is valid and carries the ADMIN role.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/User/ping [get]
func (c *UserController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Pong"})
}
