package controllers

import (
	"net/http"

	"IsletmeBulucu/services"
	"IsletmeBulucu/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalog}
}

func (cc *CatalogController) GetProvinces(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Provinces fetched successfully", cc.CatalogService.Provinces())
}

func (cc *CatalogController) GetDistricts(c *gin.Context) {
	districts, err := cc.CatalogService.Districts(c.Param("province"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Districts fetched successfully", districts)
}

func (cc *CatalogController) GetNeighborhoods(c *gin.Context) {
	neighborhoods, err := cc.CatalogService.Neighborhoods(c.Param("province"), c.Param("district"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Neighborhoods fetched successfully", neighborhoods)
}

func (cc *CatalogController) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Categories fetched successfully", cc.CatalogService.MainCategories())
}

func (cc *CatalogController) GetSubCategories(c *gin.Context) {
	subCategories, err := cc.CatalogService.SubCategories(c.Param("category"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Subcategories fetched successfully", subCategories)
}
