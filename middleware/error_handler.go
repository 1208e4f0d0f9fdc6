package middleware

import (
	"errors"
	"net/http"

	"IsletmeBulucu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware renders the last error a handler attached with
// c.Error. CustomErrors keep their status, anything else becomes a 500.
func ErrorHandlerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if status := utils.StatusOf(err); status < http.StatusInternalServerError && errors.As(err, &customErr) {
			utils.ErrorResponse(c, status, customErr.Message)
			return
		}

		logger.Error("Unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
