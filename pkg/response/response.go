package response

import (
	"log"

	"github.com/gin-gonic/gin"
)

// Response represents a standard API response envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response; err, when non-nil, is logged but
// never echoed to the client
func Error(c *gin.Context, code int, message string, err error) {
	if err != nil {
		log.Printf("%s %s -> %d: %s: %v", c.Request.Method, c.Request.URL.Path, code, message, err)
	}
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}
