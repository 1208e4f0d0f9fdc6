package handlers

import (
	"IsletmeBulucu/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSettingsRoutes(router *gin.RouterGroup, auth gin.HandlerFunc, settingsController *controllers.SettingsController) {
	settingsGroup := router.Group("/settings", auth)
	{
		settingsGroup.GET("", settingsController.GetSettings)
		settingsGroup.PUT("", settingsController.UpdateSettings)
		settingsGroup.POST("/theme/toggle", settingsController.ToggleTheme)
	}
}
