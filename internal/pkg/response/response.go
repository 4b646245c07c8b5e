package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The admin frontend consumes the response bodies as-is, so the shapes here
// are fixed: {success: ...} for mutations, {error: ...} for failures.

func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func SuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func LoginError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}
