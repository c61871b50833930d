package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondView writes a converted view payload, or a 500 when the
// view-to-DTO conversion itself failed.
func respondView(c *gin.Context, status int, payload any, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(status, payload)
}
