package controllers

import (
	"net/http"

	"IsletmeBulucu/services"
	"IsletmeBulucu/utils"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	HistoryService *services.HistoryService
	ExportService  *services.ExportService
}

func NewHistoryController(history *services.HistoryService, export *services.ExportService) *HistoryController {
	return &HistoryController{HistoryService: history, ExportService: export}
}

func (h *HistoryController) GetAllHistory(c *gin.Context) {
	items, err := h.HistoryService.List(c, clientID(c))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "History fetched successfully", items)
}

func (h *HistoryController) GetOneHistory(c *gin.Context) {
	detail, err := h.HistoryService.Get(c, clientID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "History item fetched successfully", detail)
}

func (h *HistoryController) DeleteHistory(c *gin.Context) {
	if err := h.HistoryService.Delete(c, clientID(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "History item deleted successfully", nil)
}

func (h *HistoryController) ClearHistory(c *gin.Context) {
	removed, err := h.HistoryService.Clear(c, clientID(c))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "History cleared", gin.H{"removed": removed})
}

// ExportHistory downloads the stored results of a past search as XLSX.
func (h *HistoryController) ExportHistory(c *gin.Context) {
	detail, err := h.HistoryService.Get(c, clientID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	data, err := h.ExportService.ToXLSX(detail.Results)
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName+`"`)
	c.Data(http.StatusOK, services.XLSXContentType, data)
}
