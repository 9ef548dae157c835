package resolver

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"

	"goalsguild-backend/domain/chat"
	"goalsguild-backend/domain/events"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
	"goalsguild-backend/pkg/utils"
)

type messageItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Type      string `dynamodbav:"Type"`
	MessageID string `dynamodbav:"MessageID"`
	RoomID    string `dynamodbav:"RoomID"`
	SenderID  string `dynamodbav:"SenderID"`
	Nickname  string `dynamodbav:"Nickname,omitempty"`
	Text      string `dynamodbav:"Text"`
	Timestamp int64  `dynamodbav:"Timestamp"`
}

func (it *messageItem) toMessage() chat.Message {
	return chat.Message{
		MessageID: it.MessageID,
		RoomID:    it.RoomID,
		SenderID:  it.SenderID,
		Nickname:  it.Nickname,
		Text:      it.Text,
		Timestamp: it.Timestamp,
	}
}

// ListMessagesArgs page a room's history. After is a millisecond
// timestamp for incremental polling; messages at or after it return.
type ListMessagesArgs struct {
	RoomID    string `json:"roomId" validate:"required,min=1,max=128"`
	Limit     int32  `json:"limit,omitempty"`
	After     int64  `json:"after,omitempty" validate:"omitempty,gte=0"`
	NextToken string `json:"nextToken,omitempty"`
}

// ListMessagesResolver resolves listMessages: newest-first history of a
// room, routed to the table that owns it. A core-only deployment routes
// guild rooms to a key that matches nothing, so they read as empty
// rather than leaking across tables.
type ListMessagesResolver struct {
	tables   dynamo.Tables
	defLimit int32
	maxLimit int32
	coreOnly bool
}

// NewListMessagesResolver creates the resolver
func NewListMessagesResolver(tables dynamo.Tables, defLimit, maxLimit int32, coreOnly bool) *ListMessagesResolver {
	return &ListMessagesResolver{tables: tables, defLimit: defLimit, maxLimit: maxLimit, coreOnly: coreOnly}
}

func (r *ListMessagesResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	var args ListMessagesArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	table, pk := r.tables.RoomKey(args.RoomID)
	if r.coreOnly {
		table, pk = r.tables.CoreOnlyRoomKey(args.RoomID)
	}

	keyCond := &dynamo.KeyCondition{PK: pk}
	if args.After > 0 {
		keyCond.SKAfter = dynamo.MessageSKAfter(args.After)
	} else {
		keyCond.SKPrefix = dynamo.MessageSKPrefix
	}

	return &dynamo.Operation{
		Kind:         dynamo.OpQuery,
		Table:        table,
		KeyCondition: keyCond,
		Limit:        dynamo.ClampLimit(args.Limit, r.defLimit, r.maxLimit),
		ScanForward:  false,
		NextToken:    args.NextToken,
	}, nil
}

func (r *ListMessagesResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}

	messages := make([]chat.Message, 0, len(res.Items))
	for _, raw := range res.Items {
		var item messageItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal message")
		}
		messages = append(messages, item.toMessage())
	}
	return chat.MessagePage{Messages: messages, NextToken: res.NextToken}, nil
}

// SendMessageArgs are the sendMessage inputs
type SendMessageArgs struct {
	RoomID   string `json:"roomId" validate:"required,min=1,max=128"`
	Text     string `json:"text" validate:"required,min=1,max=4000"`
	Nickname string `json:"nickname,omitempty" validate:"omitempty,max=50"`
}

// SendMessageResolver resolves the sendMessage mutation. Sender
// identity always comes from the caller, never from arguments.
type SendMessageResolver struct {
	tables dynamo.Tables
	newID  func() string
	nowMs  func() int64
}

// NewSendMessageResolver creates the resolver
func NewSendMessageResolver(tables dynamo.Tables) *SendMessageResolver {
	return &SendMessageResolver{
		tables: tables,
		newID:  func() string { return uuid.New().String() },
		nowMs:  utils.NowMillis,
	}
}

func (r *SendMessageResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}

	var args SendMessageArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	msg := chat.Message{
		MessageID: r.newID(),
		RoomID:    args.RoomID,
		SenderID:  sub,
		Nickname:  args.Nickname,
		Text:      args.Text,
		Timestamp: r.nowMs(),
	}

	table, pk := r.tables.RoomKey(args.RoomID)
	item := messageItem{
		PK:        pk,
		SK:        dynamo.MessageSK(msg.Timestamp, msg.MessageID),
		Type:      "ChatMessage",
		MessageID: msg.MessageID,
		RoomID:    msg.RoomID,
		SenderID:  msg.SenderID,
		Nickname:  msg.Nickname,
		Text:      msg.Text,
		Timestamp: msg.Timestamp,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal message")
	}

	c.stash = msg

	return &dynamo.Operation{
		Kind:  dynamo.OpPut,
		Table: table,
		Item:  av,
	}, nil
}

func (r *SendMessageResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}
	msg, ok := c.stash.(chat.Message)
	if !ok {
		return nil, errors.NewInternalError("message state lost between build and map")
	}
	return msg, nil
}

// DomainEvents reports the sent message for WebSocket fan-out
func (r *SendMessageResolver) DomainEvents(c *Context, result interface{}) []events.DomainEvent {
	msg, ok := result.(chat.Message)
	if !ok {
		return nil
	}
	return []events.DomainEvent{events.NewMessageSent(msg.MessageID, msg.RoomID, msg.SenderID, time.Now())}
}
