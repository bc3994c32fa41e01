package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webcraftstudio/webcraft/internal/api/handlers"
)

// SetupAdminRoutes configures operator routes (requires the admin token)
func SetupAdminRoutes(v1Group *gin.RouterGroup, admin *handlers.AdminHandler, m *Middleware) {
	adminGroup := v1Group.Group("/admin")
	adminGroup.Use(m.Admin.RequireAdmin())

	leads := adminGroup.Group("/leads")
	{
		leads.GET("", admin.ListLeads)
		leads.GET("/:id", admin.GetLead)
	}
}
