package route

import (
	"IsletmeBulucu/controllers"
	"IsletmeBulucu/handlers"
	"IsletmeBulucu/middleware"
	"IsletmeBulucu/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services are the dependencies the v1 routes are built from.
type Services struct {
	Catalog  *services.CatalogService
	Search   *services.SearchService
	History  *services.HistoryService
	Settings *services.SettingsService
	Export   *services.ExportService
	Sessions *services.SessionService
	Logger   *zap.Logger
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, s Services) {
	auth := middleware.AuthMiddleware(s.Sessions)

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterSessionRoutes(v1Routes, controllers.NewSessionController(s.Sessions))
		handlers.RegisterCatalogRoutes(v1Routes, controllers.NewCatalogController(s.Catalog))
		handlers.RegisterSearchRoutes(v1Routes, auth, controllers.NewSearchController(s.Search, s.Logger))
		handlers.RegisterHistoryRoutes(v1Routes, auth, controllers.NewHistoryController(s.History, s.Export))
		handlers.RegisterSettingsRoutes(v1Routes, auth, controllers.NewSettingsController(s.Settings))
		handlers.RegisterExportRoutes(v1Routes, auth, controllers.NewExportController(s.Export))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
