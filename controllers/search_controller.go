package controllers

import (
	"net/http"

	"IsletmeBulucu/models"
	"IsletmeBulucu/services"
	"IsletmeBulucu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchController struct {
	SearchService *services.SearchService
	Logger        *zap.Logger
}

func NewSearchController(search *services.SearchService, logger *zap.Logger) *SearchController {
	return &SearchController{SearchService: search, Logger: logger}
}

// doneStatus maps a finished search to the status and message it is
// reported with.
func doneStatus(summary *models.SearchSummary) (int, string) {
	switch {
	case summary.QuotaExceeded:
		return http.StatusTooManyRequests, "Search stopped: model API quota exceeded"
	case summary.Failed > 0:
		return http.StatusOK, "Search completed with failed queries"
	}
	return http.StatusOK, "Search completed"
}

// CollectSearch runs a search and answers once with every business found.
func (sc *SearchController) CollectSearch(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	selection, err := sc.SearchService.Prepare(req)
	if err != nil {
		c.Error(err)
		return
	}

	results, summary := sc.SearchService.Collect(c.Request.Context(), clientID(c), selection)
	if summary == nil {
		// Client went away before the search finished.
		return
	}
	if results == nil {
		results = []models.Business{}
	}
	statusCode, message := doneStatus(summary)
	utils.SuccessResponse(c, statusCode, message, gin.H{"businesses": results, "summary": summary})
}

// StreamSearch runs a search and streams its businesses as server-sent
// events: business, progress, query_error and a final done event.
func (sc *SearchController) StreamSearch(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	selection, err := sc.SearchService.Prepare(req)
	if err != nil {
		c.Error(err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	events := make(chan services.SearchEvent)
	go sc.SearchService.Stream(c.Request.Context(), clientID(c), selection, events)

	for ev := range events {
		switch ev.Type {
		case services.EventBusiness:
			c.SSEvent(string(ev.Type), ev.Business)
		case services.EventProgress:
			c.SSEvent(string(ev.Type), ev.Progress)
		case services.EventQueryError:
			c.SSEvent(string(ev.Type), ev.Failure)
		case services.EventDone:
			statusCode, message := doneStatus(ev.Summary)
			c.SSEvent(string(ev.Type), gin.H{
				"statusCode": statusCode,
				"message":    message,
				"data":       ev.Summary,
			})
		}
		c.Writer.Flush()
	}
}
