package scoring

// Level is a named tier reached at a fixed credit-balance threshold
type Level struct {
	Level      int    `json:"level"`
	Name       string `json:"name"`
	MinCredits int    `json:"min_credits"`
}

// levels is ordered ascending by MinCredits; LevelForBalance scans it from
// the top so the highest threshold at or below the balance wins.
var levels = []Level{
	{Level: 1, Name: "Beginner", MinCredits: 0},
	{Level: 2, Name: "Apprentice", MinCredits: 100},
	{Level: 3, Name: "Specialist", MinCredits: 300},
	{Level: 4, Name: "Expert", MinCredits: 600},
	{Level: 5, Name: "Master", MinCredits: 1000},
	{Level: 6, Name: "Legend", MinCredits: 1500},
}

// Levels returns a copy of the level table
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// LevelForBalance returns the highest level whose threshold is at or below
// the balance. Balances below every threshold map to the lowest level.
func LevelForBalance(balance int) Level {
	for i := len(levels) - 1; i >= 0; i-- {
		if balance >= levels[i].MinCredits {
			return levels[i]
		}
	}
	return levels[0]
}

// LevelProgress describes how far a balance has advanced towards the next tier
type LevelProgress struct {
	Current       Level  `json:"current"`
	Next          *Level `json:"next,omitempty"`
	Progress      int    `json:"progress"` // percent, 0-100
	CreditsToNext int    `json:"credits_to_next"`
}

// ProgressToNextLevel computes percentage progress from the current tier's
// threshold to the next tier's. At the top tier progress is 100 with no
// next level.
func ProgressToNextLevel(balance int) LevelProgress {
	current := LevelForBalance(balance)
	if current.Level == levels[len(levels)-1].Level {
		return LevelProgress{Current: current, Progress: 100}
	}

	next := levels[current.Level] // table index equals level number - 1
	span := next.MinCredits - current.MinCredits
	progress := (balance - current.MinCredits) * 100 / span
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return LevelProgress{
		Current:       current,
		Next:          &next,
		Progress:      progress,
		CreditsToNext: next.MinCredits - balance,
	}
}
