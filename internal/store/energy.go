package store

import (
	"context"
	"time"

	"lifeboard/internal/storage"
)

// LogEnergy records today's (or the given date's) energy level and optional
// mood. One entry per date: logging the same date overwrites.
func (s *Store) LogEnergy(ctx context.Context, date string, level int, mood storage.Mood) (storage.EnergyLog, error) {
	if date == "" {
		date = s.today()
	}
	if _, err := time.Parse(storage.DateLayout, date); err != nil {
		return storage.EnergyLog{}, StateError{Kind: "energy log", ID: date, Msg: "invalid date"}
	}
	if level < 1 || level > 5 {
		return storage.EnergyLog{}, StateError{Kind: "energy log", ID: date, Msg: "level must be 1-5"}
	}

	entry := storage.EnergyLog{Date: date, Level: level, Mood: mood}
	err := s.mutate(ctx, func(st *storage.State) error {
		logs := append([]storage.EnergyLog(nil), st.EnergyLogs...)
		replaced := false
		for i := range logs {
			if logs[i].Date == date {
				logs[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			logs = append(logs, entry)
		}
		st.EnergyLogs = logs
		s.evaluateAchievementsLocked(st, s.now())
		return nil
	})
	return entry, err
}
