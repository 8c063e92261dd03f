package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()

	app := fiber.New()
	Register(app, Deps{})

	out := map[string]bool{}
	for _, r := range app.GetRoutes() {
		out[r.Method+" "+r.Path] = true
	}
	return out
}

func TestRegisterMountsAPI(t *testing.T) {
	routes := registeredRoutes(t)

	for _, want := range []string{
		"GET /api/",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/auth/me",
		"GET /api/locations",
		"POST /api/locations",
		"GET /api/report-templates",
		"GET /api/report-templates/:id",
		"POST /api/reports",
		"GET /api/reports",
		"GET /api/reports/:id",
		"GET /api/admin/users",
		"PUT /api/admin/users/:id/approve",
		"PUT /api/admin/users/:id/role",
		"DELETE /api/admin/users/:id",
		"GET /api/admin/locations",
		"PUT /api/admin/locations/:id",
		"DELETE /api/admin/locations/:id",
		"GET /api/admin/dynamic-fields",
		"GET /api/admin/dynamic-fields/sections",
		"POST /api/admin/dynamic-fields",
		"PUT /api/admin/dynamic-fields/:id",
		"DELETE /api/admin/dynamic-fields/:id",
		"POST /api/admin/dynamic-fields/:id/restore",
		"GET /api/admin/field-types",
		"GET /api/admin/report-templates",
		"POST /api/admin/report-templates",
		"POST /api/admin/report-templates/from-fields",
		"PUT /api/admin/report-templates/:id",
		"DELETE /api/admin/report-templates/:id",
		"POST /api/admin/report-templates/preview",
		"GET /api/admin/reports",
		"GET /api/admin/reports/search",
		"POST /api/admin/reports/bulk-actions",
		"GET /api/admin/reports/export",
		"GET /api/admin/stats",
		"GET /api/admin/analytics",
	} {
		assert.True(t, routes[want], want)
	}
}

func TestOwnReportsListSharesPathWithUpsert(t *testing.T) {
	routes := registeredRoutes(t)

	require.True(t, routes["GET /api/reports"])
	require.True(t, routes["POST /api/reports"])
	assert.False(t, routes["GET /api/reports/my"])
}

func TestBulkActionsPathIsPlural(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes["POST /api/admin/reports/bulk-actions"])
	assert.False(t, routes["POST /api/admin/reports/bulk-action"])
}
