package controllers

import (
	"IsletmeBulucu/middleware"

	"github.com/gin-gonic/gin"
)

func clientID(c *gin.Context) string {
	return c.GetString(middleware.ClientIDKey)
}
