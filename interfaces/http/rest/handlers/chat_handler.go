package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"goalsguild-backend/application/resolver"
	"goalsguild-backend/pkg/common"
)

// ListMessages handles GET /rooms/{roomID}/messages
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	args := resolver.ListMessagesArgs{
		RoomID:    chi.URLParam(r, "roomID"),
		Limit:     queryLimit(r),
		NextToken: r.URL.Query().Get("nextToken"),
	}
	h.dispatch(w, r, resolver.FieldListMessages, args, http.StatusOK)
}

// SendMessage handles POST /rooms/{roomID}/messages
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text     string `json:"text"`
		Nickname string `json:"nickname,omitempty"`
	}
	if err := decodeBody(r, &body); err != nil {
		common.RespondError(w, err)
		return
	}
	args := resolver.SendMessageArgs{
		RoomID:   chi.URLParam(r, "roomID"),
		Text:     body.Text,
		Nickname: body.Nickname,
	}
	h.dispatch(w, r, resolver.FieldSendMessage, args, http.StatusCreated)
}

// ListReactions handles GET /messages/{messageID}/reactions
func (h *Handler) ListReactions(w http.ResponseWriter, r *http.Request) {
	args := resolver.ListReactionsArgs{MessageID: chi.URLParam(r, "messageID")}
	h.dispatch(w, r, resolver.FieldListReactions, args, http.StatusOK)
}

// AddReaction handles POST /messages/{messageID}/reactions
func (h *Handler) AddReaction(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Shortcode string `json:"shortcode"`
	}
	if err := decodeBody(r, &body); err != nil {
		common.RespondError(w, err)
		return
	}
	args := resolver.ReactionArgs{
		MessageID: chi.URLParam(r, "messageID"),
		Shortcode: body.Shortcode,
	}
	h.dispatch(w, r, resolver.FieldAddReaction, args, http.StatusOK)
}

// RemoveReaction handles DELETE /messages/{messageID}/reactions/{shortcode}
func (h *Handler) RemoveReaction(w http.ResponseWriter, r *http.Request) {
	args := resolver.ReactionArgs{
		MessageID: chi.URLParam(r, "messageID"),
		Shortcode: chi.URLParam(r, "shortcode"),
	}
	h.dispatch(w, r, resolver.FieldRemoveReaction, args, http.StatusOK)
}
