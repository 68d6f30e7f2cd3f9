package gamify

import (
	"time"

	"lifeboard/internal/storage"
)

// ChallengeWindowDays is the fixed duration of a started challenge.
const ChallengeWindowDays = 30

// ChallengeExpired reports whether a challenge's window has passed. Expired
// incomplete challenges are deliberately not auto-failed; they simply stop
// counting events.
func ChallengeExpired(ch storage.Challenge, today time.Time) bool {
	// Calendar-date strings compare lexicographically, so the boundary holds
	// in every zone.
	return ch.EndDate != "" && today.Format(storage.DateLayout) > ch.EndDate
}

// ChallengeCounts reports whether an event today should increment the
// challenge.
func ChallengeCounts(ch storage.Challenge, today time.Time) bool {
	return ch.Active && !ChallengeExpired(ch, today)
}
