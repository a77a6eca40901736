package response

import "zoo-admin/internal/data/entity"

// AuthResponse is returned by register and login. It never carries the password.
type AuthResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  entity.UserRole `json:"role"`
}

func UserToResponse(user *entity.User) *AuthResponse {
	return &AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
