package resolver

import (
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"goalsguild-backend/domain/events"
	"goalsguild-backend/domain/user"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
	"goalsguild-backend/pkg/utils"
)

const (
	profileExistsReason = "profile already exists"
	emailTakenReason    = "email already registered"
	emailUniqueItemType = "EmailUniqueness"
)

// emailUniqueItem reserves an email address for one user. Its existence
// alone is the claim; the transaction fails if it is already present.
type emailUniqueItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Type      string `dynamodbav:"Type"`
	UserID    string `dynamodbav:"UserID"`
	CreatedAt string `dynamodbav:"CreatedAt"`
}

// CreateUserArgs are the signup inputs
type CreateUserArgs struct {
	Email     string   `json:"email" validate:"required,email"`
	FullName  string   `json:"fullName" validate:"required,min=1,max=120"`
	Nickname  string   `json:"nickname,omitempty" validate:"omitempty,max=50"`
	BirthDate string   `json:"birthDate,omitempty"`
	Country   string   `json:"country,omitempty" validate:"omitempty,len=2"`
	Language  string   `json:"language,omitempty" validate:"omitempty,min=2,max=8"`
	Tags      []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=40"`
}

// CreateUserResolver resolves the createUser mutation. The profile row
// and the email uniqueness row are written in one transaction so a
// half-registered account can never exist.
type CreateUserResolver struct {
	tables dynamo.Tables
}

// NewCreateUserResolver creates the resolver
func NewCreateUserResolver(tables dynamo.Tables) *CreateUserResolver {
	return &CreateUserResolver{tables: tables}
}

func (r *CreateUserResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	sub, err := c.CallerID()
	if err != nil {
		return nil, err
	}

	var args CreateUserArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	now := utils.NowRFC3339()
	email := strings.ToLower(strings.TrimSpace(args.Email))

	profile := profileItem{
		PK:                      dynamo.UserPK(sub),
		SK:                      dynamo.ProfileSK(sub),
		Type:                    "UserProfile",
		UserID:                  sub,
		Email:                   email,
		FullName:                args.FullName,
		Nickname:                args.Nickname,
		BirthDate:               args.BirthDate,
		Status:                  user.DefaultStatus,
		Country:                 args.Country,
		Language:                args.Language,
		Tags:                    args.Tags,
		Tier:                    user.DefaultTier,
		NotificationPreferences: user.DefaultNotificationPreferences(),
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	profileAV, err := attributevalue.MarshalMap(profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal profile")
	}

	unique := emailUniqueItem{
		PK:        dynamo.EmailPK(email),
		SK:        dynamo.EmailUniqueSK,
		Type:      emailUniqueItemType,
		UserID:    sub,
		CreatedAt: now,
	}
	uniqueAV, err := attributevalue.MarshalMap(unique)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal email uniqueness record")
	}

	return &dynamo.Operation{
		Kind: dynamo.OpTransactWrite,
		TransactItems: []dynamo.TransactPut{
			{
				Table:         r.tables.Core,
				Item:          profileAV,
				Condition:     "attribute_not_exists(PK)",
				FailureReason: profileExistsReason,
			},
			{
				Table:         r.tables.Core,
				Item:          uniqueAV,
				Condition:     "attribute_not_exists(PK)",
				FailureReason: emailTakenReason,
			},
		},
	}, nil
}

func (r *CreateUserResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.CondFailed {
		reason := "account already exists"
		if len(res.FailedReasons) > 0 {
			reason = res.FailedReasons[0]
		}
		return nil, errors.NewConflictError(reason)
	}
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}

	sub, _ := c.CallerID()
	var args CreateUserArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}

	p := user.Profile{
		UserID:                  sub,
		Email:                   strings.ToLower(strings.TrimSpace(args.Email)),
		FullName:                args.FullName,
		Nickname:                args.Nickname,
		BirthDate:               args.BirthDate,
		Country:                 args.Country,
		Language:                args.Language,
		Tags:                    args.Tags,
		NotificationPreferences: user.DefaultNotificationPreferences(),
		CreatedAt:               utils.NowRFC3339(),
	}
	p.ApplyDefaults()
	return p, nil
}

// DomainEvents reports the signup to the event bus once it succeeded
func (r *CreateUserResolver) DomainEvents(c *Context, result interface{}) []events.DomainEvent {
	p, ok := result.(user.Profile)
	if !ok {
		return nil
	}
	return []events.DomainEvent{events.NewUserSignedUp(p.UserID, p.Email, time.Now())}
}

// IsEmailAvailableArgs carry the address to probe
type IsEmailAvailableArgs struct {
	Email string `json:"email" validate:"required,email"`
}

// IsEmailAvailableResolver resolves isEmailAvailable by probing the
// uniqueness record. The answer is advisory; the signup transaction is
// the actual gate.
type IsEmailAvailableResolver struct {
	tables dynamo.Tables
}

// NewIsEmailAvailableResolver creates the resolver
func NewIsEmailAvailableResolver(tables dynamo.Tables) *IsEmailAvailableResolver {
	return &IsEmailAvailableResolver{tables: tables}
}

func (r *IsEmailAvailableResolver) BuildRequest(c *Context) (*dynamo.Operation, error) {
	var args IsEmailAvailableArgs
	if err := c.BindArgs(&args); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(args.Email))
	return &dynamo.Operation{
		Kind:  dynamo.OpGet,
		Table: r.tables.Core,
		Key: dynamo.Key{
			PK: dynamo.EmailPK(email),
			SK: dynamo.EmailUniqueSK,
		},
	}, nil
}

func (r *IsEmailAvailableResolver) MapResponse(c *Context, res *dynamo.Result) (interface{}, error) {
	if res.Err != nil {
		return nil, mapUpstream(res.Err)
	}
	return res.Item == nil, nil
}
