package handlers

import (
	"net/http"

	"goalsguild-backend/application/resolver"
	"goalsguild-backend/pkg/common"
)

// GetMyProfile handles GET /profile
func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, resolver.FieldMyProfile, nil, http.StatusOK)
}

// UpdateProfile handles PUT /profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var args resolver.UpdateProfileArgs
	if err := decodeBody(r, &args); err != nil {
		common.RespondError(w, err)
		return
	}
	h.dispatch(w, r, resolver.FieldUpdateProfile, args, http.StatusOK)
}

// CreateUser handles POST /users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var args resolver.CreateUserArgs
	if err := decodeBody(r, &args); err != nil {
		common.RespondError(w, err)
		return
	}
	h.dispatch(w, r, resolver.FieldCreateUser, args, http.StatusCreated)
}

// CheckEmailAvailability handles GET /users/email-available
func (h *Handler) CheckEmailAvailability(w http.ResponseWriter, r *http.Request) {
	args := resolver.IsEmailAvailableArgs{Email: r.URL.Query().Get("email")}
	h.dispatch(w, r, resolver.FieldIsEmailAvailable, args, http.StatusOK)
}
