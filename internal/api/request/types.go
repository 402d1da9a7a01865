package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ContactRequest is the request body for submitting a contact message
type ContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Body  string `json:"body"`
}

// ProcessorRequest is the request body for creating or updating a processor
type ProcessorRequest struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// SetAdminRequest is the request body for changing a user's admin flag
type SetAdminRequest struct {
	IsAdmin bool `json:"is_admin"`
}
