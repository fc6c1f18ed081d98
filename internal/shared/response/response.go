// Package response defines the JSON envelope shared by every API endpoint.
package response

import "github.com/gin-gonic/gin"

// Response is the envelope returned by all endpoints. The HTTP status code is
// duplicated in the body so clients that only read the payload still see it.
type Response struct {
	Ok      bool   `json:"ok"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Payload any    `json:"payload"`
}

// Success writes a successful envelope with the given payload.
func Success(c *gin.Context, status int, message string, payload any) {
	if payload == nil {
		payload = gin.H{}
	}
	c.JSON(status, Response{Ok: true, Status: status, Message: message, Payload: payload})
}

// Fail writes a failure envelope with an arbitrary payload.
func Fail(c *gin.Context, status int, message string, payload any) {
	if payload == nil {
		payload = gin.H{}
	}
	c.JSON(status, Response{Ok: false, Status: status, Message: message, Payload: payload})
}

// FieldErrors writes a failure envelope whose payload scopes error messages by
// field name, e.g. {"errors": {"email": "El email ya esta en uso"}}.
func FieldErrors(c *gin.Context, status int, message string, errors map[string]string) {
	Fail(c, status, message, gin.H{"errors": errors})
}

// Detail writes a failure envelope whose payload carries a single detail string.
func Detail(c *gin.Context, status int, message, detail string) {
	Fail(c, status, message, gin.H{"detail": detail})
}
