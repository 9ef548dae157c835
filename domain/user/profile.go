package user

// Defaults applied when a profile row lacks optional attributes. The
// GraphQL contract never returns null for these fields.
const (
	DefaultLanguage = "en"
	DefaultTier     = "free"
	DefaultStatus   = "active"
)

// NotificationPreferences controls per-channel notification delivery
type NotificationPreferences struct {
	EmailEnabled bool `json:"emailEnabled"`
	PushEnabled  bool `json:"pushEnabled"`
	QuestUpdates bool `json:"questUpdates"`
	GuildChat    bool `json:"guildChat"`
}

// DefaultNotificationPreferences returns the preferences assigned at signup
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		EmailEnabled: true,
		PushEnabled:  true,
		QuestUpdates: true,
		GuildChat:    true,
	}
}

// Profile is the public profile shape returned to GraphQL and REST callers
type Profile struct {
	UserID                  string                  `json:"userId"`
	Email                   string                  `json:"email"`
	FullName                string                  `json:"fullName"`
	Nickname                string                  `json:"nickname,omitempty"`
	BirthDate               string                  `json:"birthDate,omitempty"`
	Status                  string                  `json:"status"`
	Country                 string                  `json:"country,omitempty"`
	Language                string                  `json:"language"`
	Tags                    []string                `json:"tags"`
	Tier                    string                  `json:"tier"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences"`
	CreatedAt               string                  `json:"createdAt,omitempty"`
	UpdatedAt               string                  `json:"updatedAt,omitempty"`
}

// ApplyDefaults fills optional attributes absent from storage
func (p *Profile) ApplyDefaults() {
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if p.Tier == "" {
		p.Tier = DefaultTier
	}
	if p.Status == "" {
		p.Status = DefaultStatus
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
