package utils

import (
	"github.com/gin-gonic/gin"
)

// SuccessResponse sends the message together with the payload keys.
// Use a singular key for one resource and a plural key plus "count" for collections.
func SuccessResponse(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// ErrorResponse sends a standard error JSON response.
// details is either a field to messages map or a descriptive string.
func ErrorResponse(c *gin.Context, status int, label string, details interface{}) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":   label,
		"details": details,
	})
}
