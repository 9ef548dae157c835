package events

import "time"

// SourceBackend identifies this service on the event bus
const SourceBackend = "goalsguild.backend"

// DomainEvent is the base interface for all domain events.
// Events represent something that has happened in the past; the
// gamification XP writers consume them off the bus.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// UserSignedUp is raised when a profile is created
type UserSignedUp struct {
	BaseEvent
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// NewUserSignedUp creates a UserSignedUp event
func NewUserSignedUp(userID, email string, timestamp time.Time) UserSignedUp {
	return UserSignedUp{
		BaseEvent: BaseEvent{
			AggregateID: userID,
			EventType:   "user.signed_up",
			Timestamp:   timestamp,
			Version:     1,
		},
		UserID: userID,
		Email:  email,
	}
}

// GoalCreated is raised when a new goal is created
type GoalCreated struct {
	BaseEvent
	GoalID string `json:"goal_id"`
	UserID string `json:"user_id"`
}

// NewGoalCreated creates a GoalCreated event
func NewGoalCreated(goalID, userID string, timestamp time.Time) GoalCreated {
	return GoalCreated{
		BaseEvent: BaseEvent{
			AggregateID: goalID,
			EventType:   "goal.created",
			Timestamp:   timestamp,
			Version:     1,
		},
		GoalID: goalID,
		UserID: userID,
	}
}

// MessageSent is raised when a chat message is written
type MessageSent struct {
	BaseEvent
	MessageID string `json:"message_id"`
	RoomID    string `json:"room_id"`
	SenderID  string `json:"sender_id"`
}

// NewMessageSent creates a MessageSent event
func NewMessageSent(messageID, roomID, senderID string, timestamp time.Time) MessageSent {
	return MessageSent{
		BaseEvent: BaseEvent{
			AggregateID: messageID,
			EventType:   "chat.message_sent",
			Timestamp:   timestamp,
			Version:     1,
		},
		MessageID: messageID,
		RoomID:    roomID,
		SenderID:  senderID,
	}
}

// ReactionToggled is raised when a reaction is added or removed.
// Idempotent no-ops do not raise events.
type ReactionToggled struct {
	BaseEvent
	MessageID string `json:"message_id"`
	Shortcode string `json:"shortcode"`
	UserID    string `json:"user_id"`
	Added     bool   `json:"added"`
}

// NewReactionToggled creates a ReactionToggled event
func NewReactionToggled(messageID, shortcode, userID string, added bool, timestamp time.Time) ReactionToggled {
	return ReactionToggled{
		BaseEvent: BaseEvent{
			AggregateID: messageID,
			EventType:   "chat.reaction_toggled",
			Timestamp:   timestamp,
			Version:     1,
		},
		MessageID: messageID,
		Shortcode: shortcode,
		UserID:    userID,
		Added:     added,
	}
}
