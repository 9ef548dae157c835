package dynamo

import (
	"fmt"

	"goalsguild-backend/domain/chat"
)

// UnsupportedKey is the sentinel partition key substituted when a data
// source bound to the core table is asked for a guild room. Nothing is
// ever written under it, so the query resolves to an empty page instead
// of hitting the wrong table.
const UnsupportedKey = "__UNSUPPORTED__"

// Partition keys
func UserPK(userID string) string       { return "USER#" + userID }
func EmailPK(email string) string       { return "EMAIL#" + email }
func MessagePK(messageID string) string { return "MSG#" + messageID }

// Sort keys
func ProfileSK(userID string) string { return "PROFILE#" + userID }
func GoalSK(goalID string) string    { return "GOAL#" + goalID }

const (
	EmailUniqueSK = "UNIQUE#USER"
	XPSummarySK   = "XP#SUMMARY"
)

// Sort-key prefixes for begins_with queries
const (
	GoalSKPrefix     = "GOAL#"
	MessageSKPrefix  = "MSG#"
	ReactionSKPrefix = "REACT#"
	BadgeSKPrefix    = "BADGE#"
)

// MessageSK composes the message sort key; the millisecond timestamp
// prefix gives chronological ordering, the id suffix breaks ties.
func MessageSK(timestampMillis int64, messageID string) string {
	return fmt.Sprintf("MSG#%d#%s", timestampMillis, messageID)
}

// MessageSKAfter is the SK lower bound for an `after` cursor. The
// comparison is `SK > MSG#<ts>`, which still matches messages at
// exactly that millisecond because their SK carries the id suffix.
func MessageSKAfter(timestampMillis int64) string {
	return fmt.Sprintf("MSG#%d", timestampMillis)
}

// ReactionSK composes the reaction sort key. One row per
// (message, emoji, user) triple; re-adding hits the same key.
func ReactionSK(shortcode, userID string) string {
	return fmt.Sprintf("REACT#%s#%s", shortcode, userID)
}

// BadgeSK composes the badge-progress sort key
func BadgeSK(badgeID string) string { return "BADGE#" + badgeID }

// ConnectionPK keys WebSocket connection rows in the connections table
func ConnectionPK(connectionID string) string { return "CONN#" + connectionID }

// Tables names the physical tables a router can choose from
type Tables struct {
	Core        string
	Guild       string
	Connections string
}

// RoomKey routes a room to its physical table and partition key.
// Guild rooms live in the guild table under the room id unchanged;
// everything else lives in the core table under ROOM#<roomId>.
// Read and write paths must both go through here or messages become
// unreachable.
func (t Tables) RoomKey(roomID string) (table string, pk string) {
	if chat.IsGuildRoom(roomID) {
		return t.Guild, roomID
	}
	return t.Core, "ROOM#" + roomID
}

// CoreOnlyRoomKey is the router variant for data sources bound to the
// core table. Guild rooms get the sentinel key and resolve to an empty
// result rather than silently querying the wrong table.
func (t Tables) CoreOnlyRoomKey(roomID string) (table string, pk string) {
	if chat.IsGuildRoom(roomID) {
		return t.Core, UnsupportedKey
	}
	return t.Core, "ROOM#" + roomID
}
