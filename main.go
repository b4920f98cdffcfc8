package main

import (
	"context"
	"log"
	"sandbay-backend/controller"
	"sandbay-backend/dal"
	_ "sandbay-backend/docs"
	"sandbay-backend/infrastructure"
	"sandbay-backend/middelware"
	"sandbay-backend/models"
	"sandbay-backend/utils"
	"sandbay-backend/utils/logger"
	"sandbay-backend/worker"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title Sandbay Backend API
// @version 1.0
// @description Service restart orchestration for remote development sandboxes.
// @description
// @description Register an account, bind a sandbox and its repositories as a workspace,
// @description then POST /workspaces/{id}/services/restart to bring every configured
// @description service in every repository back up in one call.
// @description
// @description ## Authentication
// @description 1. **POST /auth/register** - Create an account
// @description 2. **POST /auth/login** - Exchange credentials for a Bearer token
// @description 3. Send the token as "Authorization: Bearer <token>" on every other endpoint

// @contact.name API Support

// @host localhost:8081
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Enter 'Bearer' [space] and then your token in the text input below.
func main() {
	Init()

	ctx := context.Background()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Infof("Starting %s %s (%s)", config.AppName, config.AppVersion, config.AppEnv)

	// Make sure the DynamoDB tables exist before serving traffic
	dalContainer, err := dal.NewDALContainer(config, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	setup := infrastructure.NewSetup(config, dalContainer.GetDatabaseClient(), appLogger)
	if err := setup.EnsureTables(ctx); err != nil {
		log.Fatalf("Failed to ensure tables: %v", err)
	}

	r := gin.New()

	logging := middelware.NewLoggingMiddleware(appLogger)
	r.Use(logging.Recovery())
	r.Use(logging.RequestLogger())
	r.Use(middelware.NewCORSMiddleware(config).CORS())

	c := controller.NewController(ctx, config, appLogger)

	// Start server (this is blocking)
	go func() {
		if err := c.RegisterRoutes(ctx, config, r, config.BasePath); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Start the idle-sandbox reaper (cron job)
	reaperService, err := worker.NewService(ctx, config, appLogger)
	if err != nil {
		log.Fatalf("Failed to create reaper service: %v", err)
	}
	if err := reaperService.StartInBackground(); err != nil {
		log.Fatalf("Failed to start reaper service: %v", err)
	}

	// Keep main goroutine alive
	select {}
}
