package goal

// Goal statuses
const (
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// Goal is the goal shape returned to callers
type Goal struct {
	GoalID      string   `json:"goalId"`
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Deadline    string   `json:"deadline,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// ApplyDefaults fills optional attributes absent from storage
func (g *Goal) ApplyDefaults() {
	if g.Status == "" {
		g.Status = StatusActive
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}
}

// ValidStatus reports whether s is a recognized goal status filter
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusArchived:
		return true
	}
	return false
}
