package resolver

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"goalsguild-backend/domain/gamification"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
)

type xpSummaryItem struct {
	PK                string  `dynamodbav:"PK"`
	SK                string  `dynamodbav:"SK"`
	Type              string  `dynamodbav:"Type"`
	UserID            string  `dynamodbav:"UserID"`
	TotalXP           int     `dynamodbav:"TotalXP"`
	CurrentLevel      int     `dynamodbav:"CurrentLevel,omitempty"`
	XPForCurrentLevel int     `dynamodbav:"XPForCurrentLevel,omitempty"`
	XPForNextLevel    int     `dynamodbav:"XPForNextLevel,omitempty"`
	XPProgress        float64 `dynamodbav:"XPProgress,omitempty"`
}

// MyLevelProgressResolver resolves myLevelProgress from the caller's XP
// summary row. The XP writers create the summary at signup, so a
// missing row is a not-found condition rather than a fresh account.
type MyLevelProgressResolver struct {
	tables dynamo.Tables
}

// NewMyLevelProgressResolver creates the resolver
func NewMyLevelProgressResolver(tables dynamo.Tables) *MyLevelProgressResolver {
	return &MyLevelProgressResolver{tables: tables}
}

func (r *MyLevelProgressResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}
	return &dynamo.Operation{
		Kind:  dynamo.OpGet,
		Table: r.tables.Core,
		Key: dynamo.Key{
			PK: dynamo.UserPK(sub),
			SK: dynamo.XPSummarySK,
		},
	}, nil
}

func (r *MyLevelProgressResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}

	if res.Item == nil {
		return nil, errors.NewNotFoundError("level progress")
	}

	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}

	var item xpSummaryItem
	if err := attributevalue.UnmarshalMap(res.Item, &item); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal xp summary")
	}

	lp := gamification.LevelProgress{
		UserID:            sub,
		TotalXP:           item.TotalXP,
		CurrentLevel:      item.CurrentLevel,
		XPForCurrentLevel: item.XPForCurrentLevel,
		XPForNextLevel:    item.XPForNextLevel,
		XPProgress:        item.XPProgress,
	}
	lp.ApplyDefaults()
	return lp, nil
}
