package dto

// LoginReq represents the request body for POST /api/auth/login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordReq represents the request body for POST /api/auth/forgot-password.
type ForgotPasswordReq struct {
	Email string `json:"email"`
}

// ResetPasswordReq represents the request body for PUT /api/auth/reset-password/:reset_token.
type ResetPasswordReq struct {
	Password string `json:"password"`
}
