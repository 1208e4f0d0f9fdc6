package controllers

import (
	"errors"
	"net/http"

	"IsletmeBulucu/models"
	"IsletmeBulucu/services"
	"IsletmeBulucu/utils"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportService *services.ExportService
}

func NewExportController(export *services.ExportService) *ExportController {
	return &ExportController{ExportService: export}
}

// maxExportBody caps the JSON an export request may post.
const maxExportBody = 8 << 20

type exportRequest struct {
	Businesses []models.Business `json:"businesses"`
}

func bindExportRequest(c *gin.Context, req *exportRequest) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxExportBody)
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Export request is too large")
			return false
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

// ExportXLSX returns the posted businesses as a workbook download, or with
// ?upload=true as a link to the uploaded file.
func (e *ExportController) ExportXLSX(c *gin.Context) {
	var req exportRequest
	if !bindExportRequest(c, &req) {
		return
	}

	if c.Query("upload") == "true" {
		url, err := e.ExportService.UploadXLSX(c, req.Businesses)
		if err != nil {
			c.Error(err)
			return
		}
		utils.SuccessResponse(c, http.StatusCreated, "Export uploaded successfully", gin.H{"url": url})
		return
	}

	data, err := e.ExportService.ToXLSX(req.Businesses)
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName+`"`)
	c.Data(http.StatusOK, services.XLSXContentType, data)
}

// ExportClipboard returns tab separated text ready to paste into a
// spreadsheet.
func (e *ExportController) ExportClipboard(c *gin.Context) {
	var req exportRequest
	if !bindExportRequest(c, &req) {
		return
	}

	text, err := e.ExportService.ToClipboardText(req.Businesses)
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/tab-separated-values; charset=utf-8", []byte(text))
}
