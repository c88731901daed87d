package scoring

import "testing"

func TestCreditsFromTimeSaved(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		expected int
	}{
		{"zero minutes", 0, 0},
		{"under one hour floors down", 59, 9},
		{"exactly one hour", 60, 10},
		{"ninety minutes", 90, 15},
		{"ten hours", 600, 100},
		{"fractional hour floors", 119, 19},
		{"negative input", -30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CreditsFromTimeSaved(tt.minutes); got != tt.expected {
				t.Errorf("CreditsFromTimeSaved(%d) = %d, want %d", tt.minutes, got, tt.expected)
			}
		})
	}
}

func TestLevelForBalance(t *testing.T) {
	tests := []struct {
		balance  int
		expected int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{600, 4},
		{1000, 5},
		{1499, 5},
		{1500, 6},
		{10000, 6},
		{-50, 1},
	}

	for _, tt := range tests {
		if got := LevelForBalance(tt.balance); got.Level != tt.expected {
			t.Errorf("LevelForBalance(%d).Level = %d, want %d", tt.balance, got.Level, tt.expected)
		}
	}
}

func TestLevelForBalance_Monotonic(t *testing.T) {
	prev := 0
	for balance := 0; balance <= 2000; balance += 25 {
		level := LevelForBalance(balance).Level
		if level < prev {
			t.Fatalf("level decreased from %d to %d at balance %d", prev, level, balance)
		}
		prev = level
	}
}

func TestProgressToNextLevel(t *testing.T) {
	tests := []struct {
		name          string
		balance       int
		wantProgress  int
		wantNextLevel int // 0 means no next level
	}{
		{"fresh user", 0, 0, 2},
		{"halfway to apprentice", 50, 50, 2},
		{"just reached apprentice", 100, 0, 3},
		{"halfway through specialist band", 450, 50, 4},
		{"top tier", 1500, 100, 0},
		{"beyond top tier", 9999, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressToNextLevel(tt.balance)
			if got.Progress != tt.wantProgress {
				t.Errorf("Progress = %d, want %d", got.Progress, tt.wantProgress)
			}
			if tt.wantNextLevel == 0 {
				if got.Next != nil {
					t.Errorf("Next = %+v, want nil at top tier", got.Next)
				}
			} else if got.Next == nil || got.Next.Level != tt.wantNextLevel {
				t.Errorf("Next = %+v, want level %d", got.Next, tt.wantNextLevel)
			}
		})
	}
}

func TestProgressToNextLevel_CreditsToNext(t *testing.T) {
	got := ProgressToNextLevel(250)
	if got.CreditsToNext != 50 {
		t.Errorf("CreditsToNext = %d, want 50", got.CreditsToNext)
	}
}
