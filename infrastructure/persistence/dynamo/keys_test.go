package dynamo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTables = Tables{Core: "gg_core", Guild: "gg_guild", Connections: "gg_connections"}

func TestRoomKey_CoreRoom(t *testing.T) {
	table, pk := testTables.RoomKey("ROOM1")

	assert.Equal(t, "gg_core", table)
	assert.Equal(t, "ROOM#ROOM1", pk)
}

func TestRoomKey_GuildRoom(t *testing.T) {
	table, pk := testTables.RoomKey("GUILD#raid-night")

	assert.Equal(t, "gg_guild", table)
	assert.Equal(t, "GUILD#raid-night", pk)
}

func TestCoreOnlyRoomKey(t *testing.T) {
	table, pk := testTables.CoreOnlyRoomKey("ROOM1")
	assert.Equal(t, "gg_core", table)
	assert.Equal(t, "ROOM#ROOM1", pk)

	table, pk = testTables.CoreOnlyRoomKey("GUILD#raid-night")
	assert.Equal(t, "gg_core", table)
	assert.Equal(t, UnsupportedKey, pk)
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "USER#u1", UserPK("u1"))
	assert.Equal(t, "PROFILE#u1", ProfileSK("u1"))
	assert.Equal(t, "EMAIL#a@b.com", EmailPK("a@b.com"))
	assert.Equal(t, "GOAL#g1", GoalSK("g1"))
	assert.Equal(t, "MSG#1700000000123#m1", MessageSK(1700000000123, "m1"))
	assert.Equal(t, "MSG#1700000000123", MessageSKAfter(1700000000123))
	assert.Equal(t, "MSG#m1", MessagePK("m1"))
	assert.Equal(t, "REACT#fire#u1", ReactionSK("fire", "u1"))
	assert.Equal(t, "BADGE#b1", BadgeSK("b1"))
	assert.Equal(t, "CONN#c1", ConnectionPK("c1"))
}
