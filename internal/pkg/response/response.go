package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgOK   = "Operation successful"
	msgFail = "Operation failed"
)

// Envelope is the uniform response wrapper for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Results interface{} `json:"results"`
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, results interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: msgOK, Results: results})
}

// BadRequest sends a 400 failure envelope. Results usually carries a
// per-field error map.
func BadRequest(c *gin.Context, results interface{}) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{Success: false, Message: msgFail, Results: results})
}

// NotFound sends a 404 failure envelope.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Envelope{Success: false, Message: message, Results: nil})
}

// MethodNotAllowed sends a 405 failure envelope.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, Envelope{Success: false, Message: "Method not allowed", Results: nil})
}

// TooManyRequests sends a 429 failure envelope.
func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Envelope{Success: false, Message: message, Results: nil})
}

// InternalError sends a 500 failure envelope.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{Success: false, Message: err.Error(), Results: nil})
}
