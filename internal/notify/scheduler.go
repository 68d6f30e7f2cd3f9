package notify

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"lifeboard/internal/insight"
	"lifeboard/internal/storage"
	"lifeboard/internal/store"
)

// DefaultPollInterval is the default cadence for re-evaluating reminder
// triggers.
const DefaultPollInterval = 15 * time.Minute

// Scheduler polls store state and fires reminders. It only reads: races with
// user edits are harmless. It skips entirely while the store is unhydrated
// or locked, or while notifications are disabled.
type Scheduler struct {
	store    *store.Store
	notifier Notifier
	log      *zap.Logger
	interval time.Duration

	ticker *time.Ticker
	done   chan struct{}

	lastDigest string // calendar day of the last morning digest
	lastReview string // calendar day of the last evening review
}

func NewScheduler(st *store.Store, n Notifier, log *zap.Logger, interval time.Duration) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Scheduler{store: st, notifier: n, log: log, interval: interval}
}

// Start begins polling in a background goroutine.
func (s *Scheduler) Start() {
	if s.ticker != nil {
		return
	}
	s.ticker = time.NewTicker(s.interval)
	s.done = make(chan struct{})
	go func() {
		for {
			select {
			case <-s.done:
				return
			case now := <-s.ticker.C:
				s.Poll(now)
			}
		}
	}()
	s.log.Info("notification scheduler started", zap.Duration("interval", s.interval))
}

// Stop clears the ticker. Safe to call more than once.
func (s *Scheduler) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.log.Info("notification scheduler stopped")
}

// Poll runs one trigger evaluation. Exposed so a CLI invocation can force a
// check without waiting for the ticker.
func (s *Scheduler) Poll(now time.Time) {
	if !s.store.Hydrated() || s.store.Locked() {
		return
	}
	st := s.store.GetState()
	if !st.Profile.Notifications.Enabled {
		return
	}
	if s.notifier.Permission() != PermissionGranted {
		return
	}

	today := now.Format("2006-01-02")
	if s.lastDigest != today && pastTimeOfDay(now, st.Profile.Notifications.MorningTime) {
		s.lastDigest = today

		pending := 0
		for _, t := range st.Tasks {
			if t.Status == storage.TaskPending && t.ScheduledDate == today {
				pending++
			}
		}
		if pending > 0 {
			s.notifier.Send("Today's plan", fmt.Sprintf("%d task(s) scheduled for today", pending))
		}

		if due := store.ContactsDue(st.Contacts, now); len(due) > 0 {
			s.notifier.Send("Stay in touch", fmt.Sprintf("%d contact(s) are due for a catch-up", len(due)))
		}

		if _, best := insight.BestStreak(st.Habits, st.HabitLogs, now); best > 0 {
			loggedToday := false
			for _, l := range st.HabitLogs {
				if l.Date == today && l.Completed {
					loggedToday = true
					break
				}
			}
			if !loggedToday {
				s.notifier.Send("Keep the streak", fmt.Sprintf("Your best streak is %d day(s). Don't break it today.", best))
			}
		}
	}

	if s.lastReview != today && pastTimeOfDay(now, st.Profile.Notifications.EveningTime) {
		s.lastReview = today

		logged := false
		for _, e := range st.EnergyLogs {
			if e.Date == today {
				logged = true
				break
			}
		}
		if !logged {
			s.notifier.Send("Evening review", "How was today? Log your energy before bed.")
		}
	}
}

// pastTimeOfDay reports whether now is at or after an "HH:MM" wall time.
func pastTimeOfDay(now time.Time, hhmm string) bool {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return true
	}
	return now.Hour() > h || (now.Hour() == h && now.Minute() >= m)
}
