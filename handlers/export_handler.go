package handlers

import (
	"IsletmeBulucu/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterExportRoutes(router *gin.RouterGroup, auth gin.HandlerFunc, exportController *controllers.ExportController) {
	exportGroup := router.Group("/export", auth)
	{
		exportGroup.POST("/xlsx", exportController.ExportXLSX)
		exportGroup.POST("/clipboard", exportController.ExportClipboard)
	}
}
