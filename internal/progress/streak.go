package progress

import "time"

// DateLayout is the calendar-day format used for LastPracticeDate.
const DateLayout = "2006-01-02"

// UpdateStreak advances the day streak for a practice visit at the given
// time, using the local calendar day. Transitions:
//
//   - first ever visit: streak becomes 1
//   - same day as last visit: no change
//   - last visit was yesterday: streak increments
//   - any longer gap (or an unparseable stored date): streak resets to 1
//
// Returns true if the record was modified.
func (p *UserProgress) UpdateStreak(now time.Time) bool {
	today := now.Format(DateLayout)
	if p.LastPracticeDate == today {
		return false
	}

	if p.LastPracticeDate == "" {
		p.CurrentStreak = 1
		p.LastPracticeDate = today
		return true
	}

	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	if p.LastPracticeDate == yesterday {
		p.CurrentStreak++
	} else {
		p.CurrentStreak = 1
	}
	p.LastPracticeDate = today
	return true
}
