package handlers

import (
	"net/http"

	"goalsguild-backend/application/resolver"
)

// GetLevelProgress handles GET /xp
func (h *Handler) GetLevelProgress(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, resolver.FieldMyLevelProgress, nil, http.StatusOK)
}

// ListBadgeDefinitions handles GET /badges/definitions
func (h *Handler) ListBadgeDefinitions(w http.ResponseWriter, r *http.Request) {
	args := resolver.BadgeDefinitionsArgs{
		Category: r.URL.Query().Get("category"),
		Rarity:   r.URL.Query().Get("rarity"),
	}
	h.dispatch(w, r, resolver.FieldBadgeDefinitions, args, http.StatusOK)
}

// ListMyBadges handles GET /badges
func (h *Handler) ListMyBadges(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, resolver.FieldMyBadges, nil, http.StatusOK)
}
