package handlers

import (
	"IsletmeBulucu/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSearchRoutes(router *gin.RouterGroup, auth gin.HandlerFunc, searchController *controllers.SearchController) {
	router.POST("/search", auth, searchController.StreamSearch)
	router.POST("/search/results", auth, searchController.CollectSearch)
}
