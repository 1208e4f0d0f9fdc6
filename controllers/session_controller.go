package controllers

import (
	"net/http"

	"IsletmeBulucu/services"
	"IsletmeBulucu/utils"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{SessionService: sessions}
}

// CreateSession issues a token for a new client. A client presenting a still
// valid token gets it renewed under the same id.
func (s *SessionController) CreateSession(c *gin.Context) {
	id := ""
	if header := c.GetHeader("Authorization"); len(header) > len("Bearer ") {
		if existing, err := s.SessionService.Verify(header[len("Bearer "):]); err == nil {
			id = existing
		}
	}

	session, err := s.SessionService.Issue(id)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Session created", session)
}
