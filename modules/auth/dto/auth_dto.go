package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MissingField returns the name of the first absent required field, or "".
func (r *RegisterRequest) MissingField() string {
	switch {
	case r.Name == "":
		return "name"
	case r.Email == "":
		return "email"
	case r.Password == "":
		return "password"
	}
	return ""
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SendResetEmailRequest struct {
	Email string `json:"email"`
}

type UpdatePasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
