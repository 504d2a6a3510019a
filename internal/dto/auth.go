package dto

// LoginRequest carries portal login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued bearer token.
type LoginResponse struct {
	Token    string `json:"token"`
	FullName string `json:"fullName"`
}

// StatusResponse is the generic envelope for expected failures and simple acks.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
