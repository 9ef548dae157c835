package chat

// Reaction is one (message, emoji, user) row. Its key shape makes
// re-adding the same reaction a no-op rather than a duplicate.
type Reaction struct {
	MessageID string `json:"messageId"`
	Shortcode string `json:"shortcode"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ReactionResult reports the outcome of a reaction toggle.
//
// Added=true, Delta=1:  reaction newly written
// Added=false, Delta=-1: reaction removed
// Added=false, Delta=0: precondition already held, nothing changed
type ReactionResult struct {
	MessageID string `json:"messageId"`
	Shortcode string `json:"shortcode"`
	Added     bool   `json:"added"`
	Delta     int    `json:"delta"`
}
