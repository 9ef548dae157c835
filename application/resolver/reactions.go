package resolver

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"goalsguild-backend/domain/chat"
	"goalsguild-backend/domain/events"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
	"goalsguild-backend/pkg/utils"
)

type reactionItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Type      string `dynamodbav:"Type"`
	MessageID string `dynamodbav:"MessageID"`
	Shortcode string `dynamodbav:"Shortcode"`
	UserID    string `dynamodbav:"UserID"`
	CreatedAt string `dynamodbav:"CreatedAt,omitempty"`
}

// ReactionArgs identify one (message, shortcode) pair for the caller
type ReactionArgs struct {
	MessageID string `json:"messageId" validate:"required,min=1,max=128"`
	Shortcode string `json:"shortcode" validate:"required,min=1,max=64"`
}

// AddReactionResolver resolves the addReaction mutation. The reaction
// row's existence is the state; a conditional put makes concurrent and
// repeated adds collapse to a single no-op instead of an error.
type AddReactionResolver struct {
	tables dynamo.Tables
}

// NewAddReactionResolver creates the resolver
func NewAddReactionResolver(tables dynamo.Tables) *AddReactionResolver {
	return &AddReactionResolver{tables: tables}
}

func (r *AddReactionResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}

	var args ReactionArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	item := reactionItem{
		PK:        dynamo.MessagePK(args.MessageID),
		SK:        dynamo.ReactionSK(args.Shortcode, sub),
		Type:      "Reaction",
		MessageID: args.MessageID,
		Shortcode: args.Shortcode,
		UserID:    sub,
		CreatedAt: utils.NowRFC3339(),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal reaction")
	}

	return &dynamo.Operation{
		Kind:      dynamo.OpPut,
		Table:     r.tables.Core,
		Item:      av,
		Condition: "attribute_not_exists(SK)",
	}, nil
}

func (r *AddReactionResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	var args ReactionArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	if res.CondFailed {
		// Already reacted; repeating the call changes nothing
		return chat.ReactionResult{MessageID: args.MessageID, Shortcode: args.Shortcode, Added: false, Delta: 0}, nil
	}
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}
	return chat.ReactionResult{MessageID: args.MessageID, Shortcode: args.Shortcode, Added: true, Delta: 1}, nil
}

// DomainEvents reports actual state changes only
func (r *AddReactionResolver) DomainEvents(c *Context, result interface{}) []events.DomainEvent {
	rr, ok := result.(chat.ReactionResult)
	if !ok || rr.Delta == 0 {
		return nil
	}
	sub, err := c.CallerID()
	if err != nil {
		return nil
	}
	return []events.DomainEvent{events.NewReactionToggled(rr.MessageID, rr.Shortcode, sub, true, time.Now())}
}

// RemoveReactionResolver resolves the removeReaction mutation as a
// conditional delete, the mirror of addReaction.
type RemoveReactionResolver struct {
	tables dynamo.Tables
}

// NewRemoveReactionResolver creates the resolver
func NewRemoveReactionResolver(tables dynamo.Tables) *RemoveReactionResolver {
	return &RemoveReactionResolver{tables: tables}
}

func (r *RemoveReactionResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}

	var args ReactionArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	return &dynamo.Operation{
		Kind:  dynamo.OpDelete,
		Table: r.tables.Core,
		Key: dynamo.Key{
			PK: dynamo.MessagePK(args.MessageID),
			SK: dynamo.ReactionSK(args.Shortcode, sub),
		},
		Condition: "attribute_exists(PK)",
	}, nil
}

func (r *RemoveReactionResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	var args ReactionArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	if res.CondFailed {
		// Nothing to remove; repeating the call changes nothing
		return chat.ReactionResult{MessageID: args.MessageID, Shortcode: args.Shortcode, Added: false, Delta: 0}, nil
	}
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}
	return chat.ReactionResult{MessageID: args.MessageID, Shortcode: args.Shortcode, Added: false, Delta: -1}, nil
}

// DomainEvents reports actual state changes only
func (r *RemoveReactionResolver) DomainEvents(c *Context, result interface{}) []events.DomainEvent {
	rr, ok := result.(chat.ReactionResult)
	if !ok || rr.Delta == 0 {
		return nil
	}
	sub, err := c.CallerID()
	if err != nil {
		return nil
	}
	return []events.DomainEvent{events.NewReactionToggled(rr.MessageID, rr.Shortcode, sub, false, time.Now())}
}

// ListReactionsArgs identify the message whose reactions to list
type ListReactionsArgs struct {
	MessageID string `json:"messageId" validate:"required,min=1,max=128"`
}

// ListReactionsResolver resolves listReactions: every reaction row
// under a message's partition.
type ListReactionsResolver struct {
	tables dynamo.Tables
}

// NewListReactionsResolver creates the resolver
func NewListReactionsResolver(tables dynamo.Tables) *ListReactionsResolver {
	return &ListReactionsResolver{tables: tables}
}

func (r *ListReactionsResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	var args ListReactionsArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	return &dynamo.Operation{
		Kind:  dynamo.OpQuery,
		Table: r.tables.Core,
		KeyCondition: &dynamo.KeyCondition{
			PK:       dynamo.MessagePK(args.MessageID),
			SKPrefix: dynamo.ReactionSKPrefix,
		},
		ScanForward: true,
	}, nil
}

func (r *ListReactionsResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}

	reactions := make([]chat.Reaction, 0, len(res.Items))
	for _, raw := range res.Items {
		var item reactionItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal reaction")
		}
		reactions = append(reactions, chat.Reaction{
			MessageID: item.MessageID,
			Shortcode: item.Shortcode,
			UserID:    item.UserID,
			CreatedAt: item.CreatedAt,
		})
	}
	return reactions, nil
}
