package resolver

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"

	"goalsguild-backend/domain/events"
	"goalsguild-backend/domain/goal"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
	"goalsguild-backend/pkg/utils"
)

type goalItem struct {
	PK          string   `dynamodbav:"PK"`
	SK          string   `dynamodbav:"SK"`
	Type        string   `dynamodbav:"Type"`
	GoalID      string   `dynamodbav:"GoalID"`
	UserID      string   `dynamodbav:"UserID"`
	Title       string   `dynamodbav:"Title"`
	Description string   `dynamodbav:"Description,omitempty"`
	Status      string   `dynamodbav:"Status"`
	Deadline    string   `dynamodbav:"Deadline,omitempty"`
	Tags        []string `dynamodbav:"Tags,omitempty"`
	CreatedAt   string   `dynamodbav:"CreatedAt,omitempty"`
	UpdatedAt   string   `dynamodbav:"UpdatedAt,omitempty"`
}

func (it *goalItem) toGoal() goal.Goal {
	g := goal.Goal{
		GoalID:      it.GoalID,
		UserID:      it.UserID,
		Title:       it.Title,
		Description: it.Description,
		Status:      it.Status,
		Deadline:    it.Deadline,
		Tags:        it.Tags,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
	g.ApplyDefaults()
	return g
}

// MyGoalsArgs filter and page the caller's goal list
type MyGoalsArgs struct {
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=active paused completed archived"`
	Limit     int32  `json:"limit,omitempty"`
	NextToken string `json:"nextToken,omitempty"`
}

// GoalPage is one page of goals
type GoalPage struct {
	Goals     []goal.Goal `json:"goals"`
	NextToken string      `json:"nextToken,omitempty"`
}

// MyGoalsResolver resolves myGoals: all goal rows under the caller's
// partition, optionally filtered by status.
type MyGoalsResolver struct {
	tables   dynamo.Tables
	defLimit int32
	maxLimit int32
}

// NewMyGoalsResolver creates the resolver
func NewMyGoalsResolver(tables dynamo.Tables, defLimit, maxLimit int32) *MyGoalsResolver {
	return &MyGoalsResolver{tables: tables, defLimit: defLimit, maxLimit: maxLimit}
}

func (r *MyGoalsResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}

	var args MyGoalsArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	op := &dynamo.Operation{
		Kind:  dynamo.OpQuery,
		Table: r.tables.Core,
		KeyCondition: &dynamo.KeyCondition{
			PK:       dynamo.UserPK(sub),
			SKPrefix: dynamo.GoalSKPrefix,
		},
		Limit:       dynamo.ClampLimit(args.Limit, r.defLimit, r.maxLimit),
		ScanForward: true,
		NextToken:   args.NextToken,
	}
	if args.Status != "" {
		op.Filters = append(op.Filters, dynamo.Filter{Attribute: "Status", Value: args.Status})
	}
	return op, nil
}

func (r *MyGoalsResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}

	goals := make([]goal.Goal, 0, len(res.Items))
	for _, raw := range res.Items {
		var item goalItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal goal")
		}
		goals = append(goals, item.toGoal())
	}
	return GoalPage{Goals: goals, NextToken: res.NextToken}, nil
}

// CreateGoalArgs are the createGoal inputs
type CreateGoalArgs struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Deadline    string   `json:"deadline,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=40"`
}

// CreateGoalResolver resolves the createGoal mutation
type CreateGoalResolver struct {
	tables dynamo.Tables
	newID  func() string
	now    func() string
}

// NewCreateGoalResolver creates the resolver
func NewCreateGoalResolver(tables dynamo.Tables) *CreateGoalResolver {
	return &CreateGoalResolver{
		tables: tables,
		newID:  func() string { return uuid.New().String() },
		now:    utils.NowRFC3339,
	}
}

func (r *CreateGoalResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}

	var args CreateGoalArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	now := r.now()
	item := goalItem{
		GoalID:      r.newID(),
		UserID:      sub,
		Type:        "Goal",
		Title:       args.Title,
		Description: args.Description,
		Status:      goal.StatusActive,
		Deadline:    args.Deadline,
		Tags:        args.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	item.PK = dynamo.UserPK(sub)
	item.SK = dynamo.GoalSK(item.GoalID)

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal goal")
	}

	// Stash the built goal so the mapper returns exactly what was
	// written, id included.
	c.stash = item.toGoal()

	return &dynamo.Operation{
		Kind:      dynamo.OpPut,
		Table:     r.tables.Core,
		Item:      av,
		Condition: "attribute_not_exists(SK)",
	}, nil
}

func (r *CreateGoalResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.CondFailed {
		return nil, errors.NewConflictError("goal already exists")
	}
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}
	g, ok := c.stash.(goal.Goal)
	if !ok {
		return nil, errors.NewInternalError("goal state lost between build and map")
	}
	return g, nil
}

// DomainEvents reports the new goal to the event bus
func (r *CreateGoalResolver) DomainEvents(c *Context, result interface{}) []events.DomainEvent {
	g, ok := result.(goal.Goal)
	if !ok {
		return nil
	}
	return []events.DomainEvent{events.NewGoalCreated(g.GoalID, g.UserID, time.Now())}
}
