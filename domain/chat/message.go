package chat

import "strings"

// GuildRoomPrefix marks room identifiers that live in the guild table
const GuildRoomPrefix = "GUILD#"

// IsGuildRoom reports whether a room identifier belongs to a guild
func IsGuildRoom(roomID string) bool {
	return strings.HasPrefix(roomID, GuildRoomPrefix)
}

// Message is a chat message as returned to callers. Messages are
// immutable once written; there is no edit path.
type Message struct {
	MessageID string `json:"messageId"`
	RoomID    string `json:"roomId"`
	SenderID  string `json:"senderId"`
	Nickname  string `json:"nickname,omitempty"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// MessagePage is one page of room history, newest first
type MessagePage struct {
	Messages  []Message `json:"messages"`
	NextToken string    `json:"nextToken,omitempty"`
}

// Connection is one live WebSocket connection bound to a room
type Connection struct {
	ConnectionID string
	UserID       string
	RoomID       string
}
