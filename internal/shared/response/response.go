package response

import "github.com/gin-gonic/gin"

// The admin SPA and rider app consume plain JSON bodies: payloads are
// serialized as-is and every failure is `{"message": ..., "code": ...}`.

type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorBody{Message: message, Code: code})
}
