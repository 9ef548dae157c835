package resolver

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"goalsguild-backend/domain/user"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
	"goalsguild-backend/pkg/utils"
)

// profileItem is the DynamoDB row shape for a user profile
type profileItem struct {
	PK                      string                       `dynamodbav:"PK"`
	SK                      string                       `dynamodbav:"SK"`
	Type                    string                       `dynamodbav:"Type"`
	UserID                  string                       `dynamodbav:"UserID"`
	Email                   string                       `dynamodbav:"Email"`
	FullName                string                       `dynamodbav:"FullName"`
	Nickname                string                       `dynamodbav:"Nickname,omitempty"`
	BirthDate               string                       `dynamodbav:"BirthDate,omitempty"`
	Status                  string                       `dynamodbav:"Status,omitempty"`
	Country                 string                       `dynamodbav:"Country,omitempty"`
	Language                string                       `dynamodbav:"Language,omitempty"`
	Tags                    []string                     `dynamodbav:"Tags,omitempty"`
	Tier                    string                       `dynamodbav:"Tier,omitempty"`
	NotificationPreferences user.NotificationPreferences `dynamodbav:"NotificationPreferences"`
	CreatedAt               string                       `dynamodbav:"CreatedAt,omitempty"`
	UpdatedAt               string                       `dynamodbav:"UpdatedAt,omitempty"`
}

func (it *profileItem) toProfile() user.Profile {
	p := user.Profile{
		UserID:                  it.UserID,
		Email:                   it.Email,
		FullName:                it.FullName,
		Nickname:                it.Nickname,
		BirthDate:               it.BirthDate,
		Status:                  it.Status,
		Country:                 it.Country,
		Language:                it.Language,
		Tags:                    it.Tags,
		Tier:                    it.Tier,
		NotificationPreferences: it.NotificationPreferences,
		CreatedAt:               it.CreatedAt,
		UpdatedAt:               it.UpdatedAt,
	}
	p.ApplyDefaults()
	return p
}

// MyProfileResolver resolves the myProfile field: the caller's own
// profile row, never a caller-supplied user id.
type MyProfileResolver struct {
	tables dynamo.Tables
}

// NewMyProfileResolver creates the resolver
func NewMyProfileResolver(tables dynamo.Tables) *MyProfileResolver {
	return &MyProfileResolver{tables: tables}
}

func (r *MyProfileResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}
	return &dynamo.Operation{
		Kind:  dynamo.OpGet,
		Table: r.tables.Core,
		Key: dynamo.Key{
			PK: dynamo.UserPK(sub),
			SK: dynamo.ProfileSK(sub),
		},
	}, nil
}

func (r *MyProfileResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}
	if res.Item == nil {
		return nil, errors.NewNotFoundError("profile")
	}

	var item profileItem
	if err := attributevalue.UnmarshalMap(res.Item, &item); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal profile")
	}
	return item.toProfile(), nil
}

// UpdateProfileArgs are the editable profile fields. The client echoes
// the account email; the write is rejected unless it matches the
// stored one, so the uniqueness record stays consistent.
type UpdateProfileArgs struct {
	Email                   string                        `json:"email" validate:"required,email"`
	FullName                string                        `json:"fullName" validate:"required,min=1,max=120"`
	Nickname                string                        `json:"nickname,omitempty" validate:"omitempty,max=50"`
	BirthDate               string                        `json:"birthDate,omitempty"`
	Country                 string                        `json:"country,omitempty" validate:"omitempty,len=2"`
	Language                string                        `json:"language,omitempty" validate:"omitempty,min=2,max=8"`
	Tags                    []string                      `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=40"`
	NotificationPreferences *user.NotificationPreferences `json:"notificationPreferences,omitempty"`
}

// UpdateProfileResolver resolves the updateProfile mutation as a
// conditional full-row put.
type UpdateProfileResolver struct {
	tables dynamo.Tables
}

// NewUpdateProfileResolver creates the resolver
func NewUpdateProfileResolver(tables dynamo.Tables) *UpdateProfileResolver {
	return &UpdateProfileResolver{tables: tables}
}

func (r *UpdateProfileResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}

	var args UpdateProfileArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	prefs := user.DefaultNotificationPreferences()
	if args.NotificationPreferences != nil {
		prefs = *args.NotificationPreferences
	}

	item := profileItem{
		PK:                      dynamo.UserPK(sub),
		SK:                      dynamo.ProfileSK(sub),
		Type:                    "UserProfile",
		UserID:                  sub,
		Email:                   args.Email,
		FullName:                args.FullName,
		Nickname:                args.Nickname,
		BirthDate:               args.BirthDate,
		Status:                  user.DefaultStatus,
		Country:                 args.Country,
		Language:                args.Language,
		Tags:                    args.Tags,
		NotificationPreferences: prefs,
		UpdatedAt:               utils.NowRFC3339(),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal profile")
	}

	return &dynamo.Operation{
		Kind:      dynamo.OpPut,
		Table:     r.tables.Core,
		Item:      av,
		Condition: "attribute_exists(PK) AND Email = :email",
		ConditionValues: dynamo.StringValues(map[string]string{
			":email": args.Email,
		}),
	}, nil
}

func (r *UpdateProfileResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.CondFailed {
		// Either no profile exists yet or the echoed email does not
		// match the stored one.
		return nil, errors.NewNotFoundError("profile")
	}
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}

	var args UpdateProfileArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}
	sub, _ := c.CallerID()

	prefs := user.DefaultNotificationPreferences()
	if args.NotificationPreferences != nil {
		prefs = *args.NotificationPreferences
	}

	p := user.Profile{
		UserID:                  sub,
		Email:                   args.Email,
		FullName:                args.FullName,
		Nickname:                args.Nickname,
		BirthDate:               args.BirthDate,
		Country:                 args.Country,
		Language:                args.Language,
		Tags:                    args.Tags,
		NotificationPreferences: prefs,
		UpdatedAt:               utils.NowRFC3339(),
	}
	p.ApplyDefaults()
	return p, nil
}
