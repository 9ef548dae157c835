package resolver

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"goalsguild-backend/domain/gamification"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
)

type badgeDefinitionItem struct {
	PK          string `dynamodbav:"PK"`
	SK          string `dynamodbav:"SK"`
	Type        string `dynamodbav:"Type"`
	BadgeID     string `dynamodbav:"BadgeID"`
	Name        string `dynamodbav:"Name"`
	Description string `dynamodbav:"Description,omitempty"`
	Category    string `dynamodbav:"Category"`
	Rarity      string `dynamodbav:"Rarity"`
	IconURL     string `dynamodbav:"IconURL,omitempty"`
	Target      int    `dynamodbav:"Target"`
}

type badgeProgressItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Type      string `dynamodbav:"Type"`
	UserID    string `dynamodbav:"UserID"`
	BadgeID   string `dynamodbav:"BadgeID"`
	Progress  int    `dynamodbav:"Progress"`
	Target    int    `dynamodbav:"Target"`
	Earned    bool   `dynamodbav:"Earned"`
	EarnedAt  string `dynamodbav:"EarnedAt,omitempty"`
	UpdatedAt string `dynamodbav:"UpdatedAt,omitempty"`
}

// BadgeDefinitionsArgs optionally narrow the catalog
type BadgeDefinitionsArgs struct {
	Category string `json:"category,omitempty" validate:"omitempty,max=64"`
	Rarity   string `json:"rarity,omitempty" validate:"omitempty,oneof=common rare epic legendary"`
}

// BadgeDefinitionsResolver resolves badgeDefinitions: the global badge
// catalog via a type-filtered scan. The catalog is small and static, so
// a scan is acceptable here where it would not be for user data.
type BadgeDefinitionsResolver struct {
	tables dynamo.Tables
}

// NewBadgeDefinitionsResolver creates the resolver
func NewBadgeDefinitionsResolver(tables dynamo.Tables) *BadgeDefinitionsResolver {
	return &BadgeDefinitionsResolver{tables: tables}
}

func (r *BadgeDefinitionsResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	var args BadgeDefinitionsArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	op := &dynamo.Operation{
		Kind:    dynamo.OpScan,
		Table:   r.tables.Core,
		Filters: []dynamo.Filter{{Attribute: "Type", Value: "BadgeDefinition"}},
	}
	if args.Category != "" {
		op.Filters = append(op.Filters, dynamo.Filter{Attribute: "Category", Value: args.Category})
	}
	if args.Rarity != "" {
		op.Filters = append(op.Filters, dynamo.Filter{Attribute: "Rarity", Value: args.Rarity})
	}
	return op, nil
}

func (r *BadgeDefinitionsResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}

	defs := make([]gamification.BadgeDefinition, 0, len(res.Items))
	for _, raw := range res.Items {
		var item badgeDefinitionItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal badge definition")
		}
		defs = append(defs, gamification.BadgeDefinition{
			BadgeID:     item.BadgeID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Rarity:      item.Rarity,
			IconURL:     item.IconURL,
			Target:      item.Target,
		})
	}
	return defs, nil
}

// MyBadgesResolver resolves myBadges: the caller's badge-progress rows
type MyBadgesResolver struct {
	tables dynamo.Tables
}

// NewMyBadgesResolver creates the resolver
func NewMyBadgesResolver(tables dynamo.Tables) *MyBadgesResolver {
	return &MyBadgesResolver{tables: tables}
}

func (r *MyBadgesResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}
	return &dynamo.Operation{
		Kind:  dynamo.OpQuery,
		Table: r.tables.Core,
		KeyCondition: &dynamo.KeyCondition{
			PK:       dynamo.UserPK(sub),
			SKPrefix: dynamo.BadgeSKPrefix,
		},
		ScanForward: true,
	}, nil
}

func (r *MyBadgesResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}

	badges := make([]gamification.BadgeProgress, 0, len(res.Items))
	for _, raw := range res.Items {
		var item badgeProgressItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal badge progress")
		}
		bp := gamification.BadgeProgress{
			UserID:    item.UserID,
			BadgeID:   item.BadgeID,
			Progress:  item.Progress,
			Target:    item.Target,
			Earned:    item.Earned,
			EarnedAt:  item.EarnedAt,
			UpdatedAt: item.UpdatedAt,
		}
		bp.ApplyDefaults()
		badges = append(badges, bp)
	}
	return badges, nil
}
