package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/qtcyy/practice-system/config"
	"github.com/qtcyy/practice-system/database"
	_ "github.com/qtcyy/practice-system/docs" // Swagger docs
	problemctrl "github.com/qtcyy/practice-system/internal/controller/problem"
	userctrl "github.com/qtcyy/practice-system/internal/controller/user"
	"github.com/qtcyy/practice-system/internal/middleware"
	"github.com/qtcyy/practice-system/internal/repository"
	"github.com/qtcyy/practice-system/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),
		fx.Provide(
			repository.NewUserRepository,
			repository.NewRoleRepository,
			repository.NewProblemSetRepository,
			repository.NewProblemRepository,
			repository.NewUserAnswerRepository,
		),
		fx.Provide(
			service.NewTokenService,
			service.NewUserService,
			service.NewProblemService,
			service.NewProblemEditService,
			service.NewAnswerService,
			service.NewEssayFeedbackService,
		),
		fx.Provide(
			userctrl.NewUserController,
			problemctrl.NewProblemController,
		),
		fx.Invoke(MigrateAndSeed),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to start application")
		return err
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return app.Stop(stopCtx)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorHandler())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the controllers into the engine and
// manages the HTTP server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userCtrl *userctrl.UserController,
	problemCtrl *problemctrl.ProblemController,
) {
	userCtrl.RegisterRoutes(router)
	problemCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Practice system API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// MigrateAndSeed brings the schema up to date and ensures the built-in
// roles exist before the server starts accepting requests.
func MigrateAndSeed(db *gorm.DB) error {
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	return database.SeedRoles(db)
}
