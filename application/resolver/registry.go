package resolver

import (
	"goalsguild-backend/infrastructure/persistence/dynamo"
)

// Field names as they appear in the GraphQL schema
const (
	FieldMyProfile        = "myProfile"
	FieldUpdateProfile    = "updateProfile"
	FieldCreateUser       = "createUser"
	FieldIsEmailAvailable = "isEmailAvailable"
	FieldMyGoals          = "myGoals"
	FieldCreateGoal       = "createGoal"
	FieldListMessages     = "listMessages"
	FieldSendMessage      = "sendMessage"
	FieldListReactions    = "listReactions"
	FieldAddReaction      = "addReaction"
	FieldRemoveReaction   = "removeReaction"
	FieldMyLevelProgress  = "myLevelProgress"
	FieldBadgeDefinitions = "badgeDefinitions"
	FieldMyBadges         = "myBadges"
)

// NewDefaultRegistry wires every field resolver. coreOnly selects the
// room routing for deployments whose data source can only reach the
// core table; the full resolver stack routes guild rooms normally.
func NewDefaultRegistry(tables dynamo.Tables, defLimit, maxLimit int32, coreOnly bool) *Registry {
	reg := NewRegistry()

	reg.Register(FieldMyProfile, NewMyProfileResolver(tables))
	reg.Register(FieldUpdateProfile, NewUpdateProfileResolver(tables))
	reg.Register(FieldCreateUser, NewCreateUserResolver(tables))
	reg.Register(FieldIsEmailAvailable, NewIsEmailAvailableResolver(tables))

	reg.Register(FieldMyGoals, NewMyGoalsResolver(tables, defLimit, maxLimit))
	reg.Register(FieldCreateGoal, NewCreateGoalResolver(tables))

	reg.Register(FieldListMessages, NewListMessagesResolver(tables, defLimit, maxLimit, coreOnly))
	reg.Register(FieldSendMessage, NewSendMessageResolver(tables))
	reg.Register(FieldListReactions, NewListReactionsResolver(tables))
	reg.Register(FieldAddReaction, NewAddReactionResolver(tables))
	reg.Register(FieldRemoveReaction, NewRemoveReactionResolver(tables))

	reg.Register(FieldMyLevelProgress, NewMyLevelProgressResolver(tables))
	reg.Register(FieldBadgeDefinitions, NewBadgeDefinitionsResolver(tables))
	reg.Register(FieldMyBadges, NewMyBadgesResolver(tables))

	return reg
}
