package handlers

import (
	"IsletmeBulucu/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCatalogRoutes(router *gin.RouterGroup, catalogController *controllers.CatalogController) {
	locationGroup := router.Group("/locations")
	{
		locationGroup.GET("/provinces", catalogController.GetProvinces)
		locationGroup.GET("/provinces/:province/districts", catalogController.GetDistricts)
		locationGroup.GET("/provinces/:province/districts/:district/neighborhoods", catalogController.GetNeighborhoods)
	}

	categoryGroup := router.Group("/categories")
	{
		categoryGroup.GET("", catalogController.GetCategories)
		categoryGroup.GET("/:category/subcategories", catalogController.GetSubCategories)
	}
}
