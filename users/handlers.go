// Package users encapsulates all functionality related to local user records.
// This file, `handlers.go`, is responsible for handling HTTP requests related to users.
package users

import (
	"context"
	"net/http"

	"github.com/user/visiontest-go/apperror"
	"github.com/user/visiontest-go/auth"
)

// UserCreator is implemented by Store.
type UserCreator interface {
	CreateUser(ctx context.Context, email, name string) (*auth.User, error)
}

// UserHandlers provides HTTP handlers for user registration and identity lookup.
type UserHandlers struct {
	users UserCreator
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(users UserCreator) *UserHandlers {
	return &UserHandlers{users: users}
}

// HandleRegisterUser godoc
// @Summary Register a user
// @Description Creates the local user for an email, or returns the existing one. Calling it twice with the same email returns the same user.
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterUserRequest true "Email and display name"
// @Success 200 {object} UserResponse
// @Failure 422 {object} apperror.ErrorResponse "Validation error"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /register-user [post]
func (h *UserHandlers) HandleRegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := auth.DecodeJSON(w, r, &req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		user, err := h.users.CreateUser(r.Context(), req.Email, *req.Name)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, toUserResponse(user))
	}
}

// HandleGetMe godoc
// @Summary Current identity
// @Description Returns the identity provider's user record and the local user for the bearer token. The local user is created on first call.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /me [get]
func (h *UserHandlers) HandleGetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Missing Authorization", nil))
			return
		}

		auth.WriteJSON(w, http.StatusOK, MeResponse{
			SupabaseUser: principal.Identity,
			DBUser:       toUserResponse(principal.User),
		})
	}
}
