package dto

// UpdateUserRequest partially updates a user (admin, or self for the
// profile fields).
type UpdateUserRequest struct {
	Email    *string `json:"email"     binding:"omitempty,email"`
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
	Phone    *string `json:"phone"     binding:"omitempty,max=32"`
	IsActive *bool   `json:"is_active"`
}

// AssignRoleRequest changes a user's role (admin only).
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin staff student"`
}
