package insight

import (
	"time"

	"lifeboard/internal/storage"
)

// Briefing is the weekly view over the trailing 7 calendar days (today plus
// the 6 prior days, not a calendar week).
type Briefing struct {
	CompletedTasks   int
	CreatedTasks     int
	CompletionRate   float64 // percent
	AvgEnergy        float64
	HabitConsistency float64 // percent
	Income           float64
	Expenses         float64
	BestWeekday      time.Weekday
	HasBestWeekday   bool
	Recommendation   string
}

const briefingDays = 7

// WeeklyBriefing aggregates the trailing week. The completion-rate
// denominator treats zero created tasks as one so the rate is a defined
// number rather than NaN.
func WeeklyBriefing(st storage.State, today time.Time) Briefing {
	var b Briefing

	byDate := map[string]int{}
	weekdayCount := map[time.Weekday]int{}
	for _, t := range st.Tasks {
		if inWindow(t.CreatedAt.Format(storage.DateLayout), today, briefingDays) {
			b.CreatedTasks++
		}
		if t.Status == storage.TaskCompleted && t.CompletedAt != nil {
			d := t.CompletedAt.Format(storage.DateLayout)
			if inWindow(d, today, briefingDays) {
				b.CompletedTasks++
				byDate[d]++
				weekdayCount[t.CompletedAt.Weekday()]++
			}
		}
	}

	denom := b.CreatedTasks
	if denom == 0 {
		denom = 1
	}
	b.CompletionRate = float64(b.CompletedTasks) / float64(denom) * 100

	var energySum, energyN int
	for _, e := range st.EnergyLogs {
		if inWindow(e.Date, today, briefingDays) {
			energySum += e.Level
			energyN++
		}
	}
	if energyN > 0 {
		b.AvgEnergy = float64(energySum) / float64(energyN)
	}

	b.HabitConsistency = habitConsistency(st.Habits, st.HabitLogs, today, briefingDays)

	for _, tx := range st.Transactions {
		if !inWindow(tx.Date, today, briefingDays) {
			continue
		}
		switch tx.Type {
		case storage.TxIncome:
			b.Income += tx.Amount
		case storage.TxExpense:
			b.Expenses += tx.Amount
		}
	}

	bestN := 0
	for wd, n := range weekdayCount {
		if n > bestN || (n == bestN && b.HasBestWeekday && wd < b.BestWeekday) {
			b.BestWeekday = wd
			b.HasBestWeekday = true
			bestN = n
		}
	}

	b.Recommendation = recommend(b)
	return b
}

// habitConsistency is the share of expected daily check-ins that actually
// happened across active habits in the window.
func habitConsistency(habits []storage.Habit, logs []storage.HabitLog, today time.Time, days int) float64 {
	active := 0
	for _, h := range habits {
		if h.Active && !h.Archived {
			active++
		}
	}
	if active == 0 {
		return 0
	}

	done := 0
	for _, l := range logs {
		if l.Completed && inWindow(l.Date, today, days) {
			done++
		}
	}
	pct := float64(done) / float64(active*days) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// recommend picks a single free-text recommendation. The rules are ordered:
// weak habit consistency wins over low energy, which wins over spending more
// than you earn, which wins over the default praise.
func recommend(b Briefing) string {
	switch {
	case b.HabitConsistency < 50:
		return "Your habit consistency slipped below 50% this week. Pick one habit and protect it."
	case b.AvgEnergy > 0 && b.AvgEnergy < 2.5:
		return "Energy has been low this week. Consider lighter scheduling and earlier nights."
	case b.Expenses > b.Income:
		return "You spent more than you earned this week. Worth a look at the ledger."
	default:
		return "Solid week. Keep the momentum going."
	}
}
