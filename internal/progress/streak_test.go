package progress

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUpdateStreak(t *testing.T) {
	tests := []struct {
		name        string
		lastDate    string
		streak      int
		now         time.Time
		wantStreak  int
		wantDate    string
		wantChanged bool
	}{
		{
			name:        "first ever practice",
			lastDate:    "",
			streak:      0,
			now:         day("2025-06-10"),
			wantStreak:  1,
			wantDate:    "2025-06-10",
			wantChanged: true,
		},
		{
			name:        "same day is a no-op",
			lastDate:    "2025-06-10",
			streak:      4,
			now:         day("2025-06-10"),
			wantStreak:  4,
			wantDate:    "2025-06-10",
			wantChanged: false,
		},
		{
			name:        "consecutive day increments",
			lastDate:    "2025-06-09",
			streak:      4,
			now:         day("2025-06-10"),
			wantStreak:  5,
			wantDate:    "2025-06-10",
			wantChanged: true,
		},
		{
			name:        "two-day gap resets",
			lastDate:    "2025-06-07",
			streak:      9,
			now:         day("2025-06-10"),
			wantStreak:  1,
			wantDate:    "2025-06-10",
			wantChanged: true,
		},
		{
			name:        "month boundary increments",
			lastDate:    "2025-05-31",
			streak:      2,
			now:         day("2025-06-01"),
			wantStreak:  3,
			wantDate:    "2025-06-01",
			wantChanged: true,
		},
		{
			name:        "year boundary increments",
			lastDate:    "2024-12-31",
			streak:      10,
			now:         day("2025-01-01"),
			wantStreak:  11,
			wantDate:    "2025-01-01",
			wantChanged: true,
		},
		{
			name:        "future stored date resets",
			lastDate:    "2025-06-12",
			streak:      6,
			now:         day("2025-06-10"),
			wantStreak:  1,
			wantDate:    "2025-06-10",
			wantChanged: true,
		},
		{
			name:        "malformed stored date resets",
			lastDate:    "not-a-date",
			streak:      6,
			now:         day("2025-06-10"),
			wantStreak:  1,
			wantDate:    "2025-06-10",
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.LastPracticeDate = tt.lastDate
			p.CurrentStreak = tt.streak

			changed := p.UpdateStreak(tt.now)

			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if p.CurrentStreak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", p.CurrentStreak, tt.wantStreak)
			}
			if p.LastPracticeDate != tt.wantDate {
				t.Errorf("last date = %q, want %q", p.LastPracticeDate, tt.wantDate)
			}
		})
	}
}

func TestUpdateStreakIdempotentWithinDay(t *testing.T) {
	p := New()
	now := day("2025-06-10")

	p.UpdateStreak(now)
	for i := 0; i < 5; i++ {
		if p.UpdateStreak(now.Add(time.Duration(i) * time.Hour)) {
			t.Fatalf("visit %d on the same day modified the record", i)
		}
	}
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", p.CurrentStreak)
	}
}
