package gamification

// Badge rarities
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// BadgeDefinition describes an earnable badge. Definitions are global
// rows retrieved via a filtered scan, not a key lookup.
type BadgeDefinition struct {
	BadgeID     string `json:"badgeId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Rarity      string `json:"rarity"`
	IconURL     string `json:"iconUrl,omitempty"`
	Target      int    `json:"target"`
}

// BadgeProgress is one user's progress toward a badge
type BadgeProgress struct {
	UserID    string `json:"userId"`
	BadgeID   string `json:"badgeId"`
	Progress  int    `json:"progress"`
	Target    int    `json:"target"`
	Earned    bool   `json:"earned"`
	EarnedAt  string `json:"earnedAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ApplyDefaults fills progress counters absent from storage
func (bp *BadgeProgress) ApplyDefaults() {
	if bp.Progress < 0 {
		bp.Progress = 0
	}
	if bp.Target <= 0 {
		bp.Target = 1
	}
}
