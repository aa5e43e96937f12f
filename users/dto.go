// Package users, as part of the user management module.
// This file, `dto.go`, defines the request and response bodies of the users endpoints.
package users

import "github.com/user/visiontest-go/auth"

// RegisterUserRequest is the body of POST /register-user.
type RegisterUserRequest struct {
	// example: "ada@example.com"
	Email string `json:"email" validate:"required,email" example:"ada@example.com"`
	// Presence is required; an empty name is accepted and stored as-is.
	Name *string `json:"name" validate:"required" example:"Ada Lovelace"`
}

// UserResponse is the public shape of a local user.
// @Description Local user record
type UserResponse struct {
	ID       int    `json:"id" example:"1"`
	Email    string `json:"email" example:"ada@example.com"`
	FullName string `json:"full_name" example:"Ada Lovelace"`
}

// MeResponse is the body of GET /me: the provider's view of the caller and the local row.
type MeResponse struct {
	SupabaseUser *auth.Identity `json:"supabase_user"`
	DBUser       UserResponse   `json:"db_user"`
}

func toUserResponse(u *auth.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, FullName: u.FullName}
}
