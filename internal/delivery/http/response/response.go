package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope: a message plus the request id for
// correlating with server logs.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, ErrorBody{
		Error:     message,
		RequestID: idStr,
	})
}
