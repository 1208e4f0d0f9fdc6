package handlers

import (
	"IsletmeBulucu/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHistoryRoutes(router *gin.RouterGroup, auth gin.HandlerFunc, historyController *controllers.HistoryController) {
	historyGroup := router.Group("/history", auth)
	{
		historyGroup.GET("", historyController.GetAllHistory)
		historyGroup.DELETE("", historyController.ClearHistory)
		historyGroup.GET("/:id", historyController.GetOneHistory)
		historyGroup.DELETE("/:id", historyController.DeleteHistory)
		historyGroup.GET("/:id/export", historyController.ExportHistory)
	}
}
