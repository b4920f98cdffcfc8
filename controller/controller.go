package controller

import (
	"context"
	"net/http"
	"sandbay-backend/dal"
	"sandbay-backend/middelware"
	"sandbay-backend/models"
	"sandbay-backend/repository"
	"sandbay-backend/sandbox"
	"sandbay-backend/services"
	"sandbay-backend/utils/logger"
	"sandbay-backend/utils/swagger"
	"sandbay-backend/worker"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	User      *UserController
	Workspace *WorkspaceController
	Restart   *RestartController
	GitHub    *GitHubController
	Admin     *AdminController
}

func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) *Controller {
	dbclient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}

	repo := repository.NewRepository(dbclient, cfg, log)
	jwtManager := middelware.NewJWTManager(cfg, log, repo.GetUserRepository())

	runner := sandbox.NewRunner()
	client := sandbox.NewCLIClient(cfg, runner, log)

	svc := services.NewService(repo, client, runner, jwtManager, log, cfg)
	reaper := worker.NewReaper(cfg, repo.GetWorkspaceRepository(), client, log)

	return &Controller{
		User:      NewUserController(ctx, svc.GetUserService(), log, jwtManager),
		Workspace: NewWorkspaceController(ctx, svc.GetWorkspaceService(), svc.GetSandboxService(), log),
		Restart:   NewRestartController(ctx, svc.GetRestartService(), log),
		GitHub:    NewGitHubController(ctx, svc.GetRepoListService(), log),
		Admin:     NewAdminController(ctx, reaper, log),
	}
}

func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": "Sandbay Backend",
		})
	})

	// Swagger UI
	swaggerConfig := swagger.SwaggerConfig{
		Title:         "Sandbay Backend API",
		SwaggerDocURL: "/swagger/doc.json",
	}
	r.GET("/swagger", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/index.html", swagger.ServeSwaggerUI(swaggerConfig))

	// Swagger JSON spec
	r.GET("/swagger/doc.json", swagger.ServeDocJSON())

	auth := c.User.jwtManager.AuthMiddleware()
	adminOnly := c.User.jwtManager.RequireRole(models.UserRoleAdmin)

	// Auth routes - registration and login need no token
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", c.User.Register)
	authGroup.POST("/login", c.User.Login)
	authGroup.POST("/validate", c.User.ValidateToken)
	authGroup.POST("/logout", auth, c.User.Logout)
	authGroup.GET("/me", auth, c.User.Me)

	// Workspace routes - all require a valid token
	workspaces := v1.Group("/workspaces", auth)
	workspaces.POST("", c.Workspace.CreateWorkspace)
	workspaces.GET("", c.Workspace.ListWorkspaces)
	workspaces.GET("/:id", c.Workspace.GetWorkspace)
	workspaces.DELETE("/:id", c.Workspace.DeleteWorkspace)
	workspaces.GET("/:id/state", c.Workspace.GetSandboxState)
	workspaces.POST("/:id/services/restart", c.Restart.RestartServices)

	// GitHub listing
	v1.GET("/github/repositories", auth, c.GitHub.ListRepositories)

	// Reaper admin routes
	admin := v1.Group("/admin", auth, adminOnly)
	admin.GET("/reaper/status", c.Admin.GetReaperStatus)
	admin.POST("/reaper/sweep", c.Admin.TriggerSweep)

	// Create HTTP server
	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}
	// Start server
	logger := logger.NewLogger(config.LogLevel, config.LogFormat)
	logger.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
