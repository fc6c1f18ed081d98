// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer. Field validation lives in the usecase so the API can
// return field-scoped Spanish messages instead of binding errors.
package dto

// RegisterReq represents the request body for POST /api/auth/register.
type RegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
