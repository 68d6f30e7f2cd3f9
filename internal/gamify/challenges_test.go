package gamify

import (
	"testing"
	"time"

	"lifeboard/internal/storage"
)

func TestChallengeExpiredBoundary(t *testing.T) {
	ch := storage.Challenge{EndDate: "2026-03-10", Active: true}
	zone := time.FixedZone("UTC+2", 2*3600)

	cases := []struct {
		name    string
		today   time.Time
		expired bool
	}{
		{"day before", time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC), false},
		{"end date itself", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), false},
		{"day after", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), true},
		// Local midnight in a UTC-positive zone must not shift the boundary.
		{"end date, ahead-of-UTC zone", time.Date(2026, 3, 10, 1, 0, 0, 0, zone), false},
		{"day after, ahead-of-UTC zone", time.Date(2026, 3, 11, 1, 0, 0, 0, zone), true},
	}
	for _, c := range cases {
		if got := ChallengeExpired(ch, c.today); got != c.expired {
			t.Errorf("%s: expired=%v, want %v", c.name, got, c.expired)
		}
	}
}

func TestChallengeCounts(t *testing.T) {
	today := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	if !ChallengeCounts(storage.Challenge{EndDate: "2026-03-20", Active: true}, today) {
		t.Fatal("live active challenge should count")
	}
	if ChallengeCounts(storage.Challenge{EndDate: "2026-03-20", Active: false}, today) {
		t.Fatal("inactive challenge counted")
	}
	if ChallengeCounts(storage.Challenge{EndDate: "2026-03-01", Active: true}, today) {
		t.Fatal("expired challenge counted")
	}
}
