package handlers

import (
	"net/http"
	"strconv"

	"goalsguild-backend/application/resolver"
	"goalsguild-backend/pkg/common"
)

// ListGoals handles GET /goals
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	args := resolver.MyGoalsArgs{
		Status:    r.URL.Query().Get("status"),
		Limit:     queryLimit(r),
		NextToken: r.URL.Query().Get("nextToken"),
	}
	h.dispatch(w, r, resolver.FieldMyGoals, args, http.StatusOK)
}

// CreateGoal handles POST /goals
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var args resolver.CreateGoalArgs
	if err := decodeBody(r, &args); err != nil {
		common.RespondError(w, err)
		return
	}
	h.dispatch(w, r, resolver.FieldCreateGoal, args, http.StatusCreated)
}

// queryLimit parses the limit query parameter; the resolver clamps it
func queryLimit(r *http.Request) int32 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}
