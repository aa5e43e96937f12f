package profiles

import (
	"context"
	"net/http"

	"github.com/user/visiontest-go/apperror"
	"github.com/user/visiontest-go/auth"
)

// ProfileStore is implemented by Store.
type ProfileStore interface {
	GetProfileByUserID(ctx context.Context, userID int) (*Profile, error)
	UpsertProfile(ctx context.Context, userID int, f Fields) (*Profile, error)
}

// ProfileHandlers serves the authenticated caller's profile.
type ProfileHandlers struct {
	store ProfileStore
}

// NewProfileHandlers creates new ProfileHandlers.
func NewProfileHandlers(store ProfileStore) *ProfileHandlers {
	return &ProfileHandlers{store: store}
}

// HandleUpsertProfile godoc
// @Summary Create or replace the caller's profile
// @Description Every attribute in the body replaces the stored value; omitted optional attributes are cleared.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileRequest true "Profile attributes"
// @Success 201 {object} Profile
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 422 {object} apperror.ErrorResponse "Validation error"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /profile [post]
func (h *ProfileHandlers) HandleUpsertProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Missing Authorization", nil))
			return
		}

		var req ProfileRequest
		if err := auth.DecodeJSON(w, r, &req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		profile, err := h.store.UpsertProfile(r.Context(), principal.User.ID, req.Fields())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, profile)
	}
}

// HandleGetProfile godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Profile
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} apperror.ErrorResponse "Profile not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /profile [get]
func (h *ProfileHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Missing Authorization", nil))
			return
		}

		profile, err := h.store.GetProfileByUserID(r.Context(), principal.User.ID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		if profile == nil {
			auth.WriteError(w, r, apperror.NewNotFoundError("Profile not found", nil))
			return
		}

		auth.WriteJSON(w, http.StatusOK, profile)
	}
}
