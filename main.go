// @title MonthlyReportsHub API
// @version 1.0.0
// @description Multi-tenant monthly reporting backend.
// @host localhost:8000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	_ "reportshub/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"reportshub/bootstrap"
	"reportshub/config"
	"reportshub/database"
	"reportshub/internal/controllers"
	"reportshub/internal/repository"
	"reportshub/internal/routes"
	"reportshub/internal/services"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(nil)

	db := database.DB

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}
	if err := bootstrap.Seed(db, logger); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	users := repository.NewUserRepository(db)
	locations := repository.NewLocationRepository(db)
	fields := repository.NewFieldRepository(db)
	templates := repository.NewTemplateRepository(db)
	submissions := repository.NewSubmissionRepository(db)

	authSvc := services.NewAuthService(users, locations, cfg.JWTSecret)
	locationSvc := services.NewLocationService(locations, users)
	userAdminSvc := services.NewUserAdminService(users)
	fieldSvc := services.NewFieldService(fields)
	templateSvc := services.NewTemplateService(templates, fields, submissions)
	reportSvc := services.NewReportService(submissions, templates)
	reviewSvc := services.NewReviewService(submissions, templates, users, locations, logger)
	statsSvc := services.NewStatsService(users, locations, templates, fields, submissions)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(fiberlogger.New())

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Register(app, routes.Deps{
		Users:     users,
		JWTSecret: cfg.JWTSecret,

		Auth:         controllers.NewAuthController(authSvc),
		Locations:    controllers.NewLocationController(locationSvc),
		AdminUsers:   controllers.NewUserAdminController(userAdminSvc),
		Fields:       controllers.NewFieldController(fieldSvc),
		Templates:    controllers.NewTemplateController(templateSvc),
		Reports:      controllers.NewReportController(reportSvc, reviewSvc),
		AdminReports: controllers.NewAdminReportController(reportSvc, reviewSvc),
		Stats:        controllers.NewStatsController(statsSvc),
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
