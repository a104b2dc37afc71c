package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithMessage is used by listing surfaces that carry a human-readable
// message next to the payload (search results, empty result sets).
func SuccessWithMessage(c *gin.Context, statusCode int, message string, body gin.H) {
	out := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range body {
		out[k] = v
	}
	c.JSON(statusCode, out)
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
