package handlers

import (
	"IsletmeBulucu/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSessionRoutes(router *gin.RouterGroup, sessionController *controllers.SessionController) {
	router.POST("/session", sessionController.CreateSession)
}
