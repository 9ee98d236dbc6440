package dto

// LoginRequest describes admin login payload.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success         bool   `json:"success"`
	Error           string `json:"error"`
	Code            string `json:"code,omitempty"`
	PaymentRequired bool   `json:"payment_required,omitempty"`
}

// StatusResponse acknowledges an operation with no extra payload.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
