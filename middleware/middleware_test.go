package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"IsletmeBulucu/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type staticVerifier map[string]string

func (v staticVerifier) Verify(token string) (string, error) {
	if id, ok := v[token]; ok {
		return id, nil
	}
	return "", errors.New("unknown token")
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlerMiddleware(zap.NewNop()))
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newTestEngine()
	r.GET("/me", AuthMiddleware(staticVerifier{"good": "client-7"}), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ClientIDKey))
	})

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"valid token", "Bearer good", http.StatusOK, "client-7"},
		{"missing header", "", http.StatusUnauthorized, `{"statusCode":401,"message":"Authorization token is required","data":null}`},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, `{"statusCode":401,"message":"Authorization token is required","data":null}`},
		{"unknown token", "Bearer bad", http.StatusUnauthorized, `{"statusCode":401,"message":"Invalid or expired token","data":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, tt.body, w.Body.String())
				return
			}
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	r := newTestEngine()
	r.GET("/custom", func(c *gin.Context) {
		c.Error(utils.NotFound("History item not found"))
	})
	r.GET("/plain", func(c *gin.Context) {
		c.Error(errors.New("firestore unavailable"))
	})
	r.GET("/written", func(c *gin.Context) {
		c.String(http.StatusAccepted, "partial")
		c.Error(errors.New("late failure"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/custom", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"statusCode":404,"message":"History item not found","data":null}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"statusCode":500,"message":"Internal Server Error","data":null}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}
