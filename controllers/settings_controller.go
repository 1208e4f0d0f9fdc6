package controllers

import (
	"net/http"

	"IsletmeBulucu/services"
	"IsletmeBulucu/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsService *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settings}
}

func (s *SettingsController) GetSettings(c *gin.Context) {
	settings, err := s.SettingsService.Get(c, clientID(c))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Settings fetched successfully", settings)
}

func (s *SettingsController) UpdateSettings(c *gin.Context) {
	var update services.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	settings, err := s.SettingsService.Update(c, clientID(c), update)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", settings)
}

func (s *SettingsController) ToggleTheme(c *gin.Context) {
	settings, err := s.SettingsService.ToggleTheme(c, clientID(c))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Theme switched to "+settings.Theme, settings)
}
