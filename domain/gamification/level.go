package gamification

// Leveling curve: advancing from level n to n+1 costs n * xpPerStep XP,
// so the cumulative threshold for level n is xpPerStep * n * (n-1) / 2.
// Matches the thresholds the XP writers use; read-only here.
const xpPerStep = 100

// XPForLevel returns the cumulative XP required to reach the given level
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return xpPerStep * level * (level - 1) / 2
}

// LevelForXP returns the level a given XP total corresponds to
func LevelForXP(totalXP int) int {
	level := 1
	for XPForLevel(level+1) <= totalXP {
		level++
	}
	return level
}

// LevelProgress is the XP summary shape returned to callers
type LevelProgress struct {
	UserID            string  `json:"userId"`
	TotalXP           int     `json:"totalXp"`
	CurrentLevel      int     `json:"currentLevel"`
	XPForCurrentLevel int     `json:"xpForCurrentLevel"`
	XPForNextLevel    int     `json:"xpForNextLevel"`
	XPProgress        float64 `json:"xpProgress"`
}

// ApplyDefaults recomputes derived fields when the summary row lacks
// counters, so the contract never returns zero-valued thresholds for a
// nonzero XP total.
func (lp *LevelProgress) ApplyDefaults() {
	if lp.CurrentLevel == 0 {
		lp.CurrentLevel = LevelForXP(lp.TotalXP)
	}
	if lp.XPForCurrentLevel == 0 {
		lp.XPForCurrentLevel = XPForLevel(lp.CurrentLevel)
	}
	if lp.XPForNextLevel == 0 {
		lp.XPForNextLevel = XPForLevel(lp.CurrentLevel + 1)
	}
	if lp.XPProgress == 0 {
		span := lp.XPForNextLevel - lp.XPForCurrentLevel
		if span > 0 {
			lp.XPProgress = float64(lp.TotalXP-lp.XPForCurrentLevel) / float64(span) * 100
			if lp.XPProgress < 0 {
				lp.XPProgress = 0
			}
			if lp.XPProgress > 100 {
				lp.XPProgress = 100
			}
		}
	}
}
