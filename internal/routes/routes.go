package routes

import (
	"github.com/gofiber/fiber/v2"

	"reportshub/internal/controllers"
	"reportshub/internal/middleware"
	"reportshub/internal/repository"
)

// Deps carries everything route registration needs.
type Deps struct {
	Users     repository.UserRepository
	JWTSecret string

	Auth         *controllers.AuthController
	Locations    *controllers.LocationController
	AdminUsers   *controllers.UserAdminController
	Fields       *controllers.FieldController
	Templates    *controllers.TemplateController
	Reports      *controllers.ReportController
	AdminReports *controllers.AdminReportController
	Stats        *controllers.StatsController
}

func Register(app *fiber.App, d Deps) {
	auth := middleware.RequireAuth(d.Users, d.JWTSecret)
	admin := middleware.RequireAdmin()

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "MonthlyReportsHub API",
			"version": "1.0.0",
		})
	})

	api.Post("/auth/register", d.Auth.Register)
	api.Post("/auth/login", d.Auth.Login)
	api.Get("/auth/me", auth, d.Auth.Me)

	// Public so the registration form can offer locations.
	api.Get("/locations", d.Locations.List)
	api.Post("/locations", auth, admin, d.Locations.Create)

	api.Get("/report-templates", auth, d.Templates.ListActive)
	api.Get("/report-templates/:id", auth, d.Templates.GetActive)

	api.Post("/reports", auth, d.Reports.Upsert)
	api.Get("/reports", auth, d.Reports.ListMine)
	api.Get("/reports/:id", auth, d.Reports.Get)

	adm := api.Group("/admin", auth, admin)

	adm.Get("/users", d.AdminUsers.List)
	adm.Put("/users/:id/approve", d.AdminUsers.Approve)
	adm.Put("/users/:id/role", d.AdminUsers.SetRole)
	adm.Delete("/users/:id", d.AdminUsers.Delete)

	adm.Get("/locations", d.Locations.List)
	adm.Put("/locations/:id", d.Locations.Update)
	adm.Delete("/locations/:id", d.Locations.Delete)

	adm.Get("/dynamic-fields", d.Fields.List)
	adm.Get("/dynamic-fields/sections", d.Fields.Sections)
	adm.Post("/dynamic-fields", d.Fields.Create)
	adm.Put("/dynamic-fields/:id", d.Fields.Update)
	adm.Delete("/dynamic-fields/:id", d.Fields.SoftDelete)
	adm.Post("/dynamic-fields/:id/restore", d.Fields.Restore)
	adm.Get("/field-types", d.Fields.FieldTypes)

	adm.Get("/report-templates", d.Templates.ListAll)
	adm.Post("/report-templates", d.Templates.Create)
	adm.Post("/report-templates/from-fields", d.Templates.CreateFromFields)
	adm.Put("/report-templates/:id", d.Templates.Update)
	adm.Delete("/report-templates/:id", d.Templates.Delete)
	adm.Post("/report-templates/preview", d.Templates.Preview)

	adm.Get("/reports", d.AdminReports.ListAll)
	adm.Get("/reports/search", d.AdminReports.Search)
	adm.Post("/reports/bulk-actions", d.AdminReports.BulkAction)
	adm.Get("/reports/export", d.AdminReports.Export)

	adm.Get("/stats", d.Stats.Stats)
	adm.Get("/analytics", d.Stats.Analytics)
}
