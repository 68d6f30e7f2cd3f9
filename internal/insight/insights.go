package insight

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"lifeboard/internal/storage"
)

type InsightKind string

const (
	InsightBestDayAhead InsightKind = "best_day_ahead"
	InsightEnergyOutput InsightKind = "energy_productivity"
	InsightHabitMood    InsightKind = "habit_mood"
	InsightSpendEnergy  InsightKind = "spend_energy"
	InsightPeakHour     InsightKind = "peak_hour"
	InsightNeedData     InsightKind = "need_data"
)

type Insight struct {
	Kind    InsightKind
	Message string
}

const (
	minCorrelationSamples = 5
	correlationThreshold  = 0.4
	minHourSamples        = 10
)

// SmartInsights runs the fixed heuristic battery. Each heuristic emits zero
// or one insight. The best-day-ahead prediction, when it fires, is always
// surfaced first; the rest keep evaluation order. An empty battery yields a
// single "log more data" fallback.
func SmartInsights(st storage.State, today time.Time) []Insight {
	var out []Insight

	if in, ok := bestDayAhead(st.Tasks, today); ok {
		out = append(out, in)
	}
	if in, ok := energyProductivity(st.Tasks, st.EnergyLogs); ok {
		out = append(out, in)
	}
	if in, ok := habitMood(st.HabitLogs, st.EnergyLogs); ok {
		out = append(out, in)
	}
	if in, ok := spendOnLowEnergy(st.Transactions, st.EnergyLogs); ok {
		out = append(out, in)
	}
	if in, ok := peakHour(st.Tasks); ok {
		out = append(out, in)
	}

	if len(out) == 0 {
		out = append(out, Insight{
			Kind:    InsightNeedData,
			Message: "Not enough data yet. Keep logging tasks, energy and habits to unlock insights.",
		})
	}
	return out
}

// bestDayAhead predicts whether tomorrow is historically your strongest
// weekday for completions.
func bestDayAhead(tasks []storage.Task, today time.Time) (Insight, bool) {
	counts := map[time.Weekday]int{}
	total := 0
	for _, t := range tasks {
		if t.Status == storage.TaskCompleted && t.CompletedAt != nil {
			counts[t.CompletedAt.Weekday()]++
			total++
		}
	}
	if total < minCorrelationSamples {
		return Insight{}, false
	}

	var best time.Weekday
	bestN := -1
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if counts[wd] > bestN {
			best = wd
			bestN = counts[wd]
		}
	}

	tomorrow := today.AddDate(0, 0, 1).Weekday()
	if tomorrow != best || bestN == 0 {
		return Insight{}, false
	}
	return Insight{
		Kind:    InsightBestDayAhead,
		Message: fmt.Sprintf("Tomorrow is a %s — historically your most productive day. Line up something meaningful.", best),
	}, true
}

func energyProductivity(tasks []storage.Task, energy []storage.EnergyLog) (Insight, bool) {
	completions := completionsByDate(tasks)

	var xs, ys []float64
	for _, e := range energy {
		xs = append(xs, float64(e.Level))
		ys = append(ys, float64(completions[e.Date]))
	}
	if len(xs) < minCorrelationSamples {
		return Insight{}, false
	}
	r := stat.Correlation(xs, ys, nil)
	if r < correlationThreshold {
		return Insight{}, false
	}
	return Insight{
		Kind:    InsightEnergyOutput,
		Message: "You complete noticeably more tasks on high-energy days. Schedule hard work after good nights.",
	}, true
}

func habitMood(logs []storage.HabitLog, energy []storage.EnergyLog) (Insight, bool) {
	habitDays := map[string]bool{}
	for _, l := range logs {
		if l.Completed {
			habitDays[l.Date] = true
		}
	}

	var xs, ys []float64
	for _, e := range energy {
		mood := e.Mood.Score()
		if mood == 0 {
			continue
		}
		done := 0.0
		if habitDays[e.Date] {
			done = 1.0
		}
		xs = append(xs, done)
		ys = append(ys, float64(mood))
	}
	if len(xs) < minCorrelationSamples {
		return Insight{}, false
	}
	r := stat.Correlation(xs, ys, nil)
	if r < correlationThreshold {
		return Insight{}, false
	}
	return Insight{
		Kind:    InsightHabitMood,
		Message: "Days with a habit check-in tend to be better-mood days. Your routines are pulling their weight.",
	}, true
}

// spendOnLowEnergy flags expense clustering on low-energy (level <= 2) days.
func spendOnLowEnergy(txs []storage.Transaction, energy []storage.EnergyLog) (Insight, bool) {
	lowDays := map[string]bool{}
	levelKnown := map[string]bool{}
	for _, e := range energy {
		levelKnown[e.Date] = true
		if e.Level <= 2 {
			lowDays[e.Date] = true
		}
	}

	var lowSpend, lowN, otherSpend, otherN float64
	for _, tx := range txs {
		if tx.Type != storage.TxExpense || !levelKnown[tx.Date] {
			continue
		}
		if lowDays[tx.Date] {
			lowSpend += tx.Amount
			lowN++
		} else {
			otherSpend += tx.Amount
			otherN++
		}
	}
	if lowN < 2 || otherN < 2 {
		return Insight{}, false
	}
	if lowSpend/lowN < 1.5*(otherSpend/otherN) {
		return Insight{}, false
	}
	return Insight{
		Kind:    InsightSpendEnergy,
		Message: "You spend noticeably more on low-energy days. Watch impulse purchases when you're drained.",
	}, true
}

func peakHour(tasks []storage.Task) (Insight, bool) {
	counts := map[int]int{}
	total := 0
	for _, t := range tasks {
		if t.Status == storage.TaskCompleted && t.CompletedAt != nil {
			counts[t.CompletedAt.Hour()]++
			total++
		}
	}
	if total < minHourSamples {
		return Insight{}, false
	}
	best, bestN := 0, -1
	for h := 0; h < 24; h++ {
		if counts[h] > bestN {
			best = h
			bestN = counts[h]
		}
	}
	return Insight{
		Kind:    InsightPeakHour,
		Message: fmt.Sprintf("Your peak productivity hour is around %02d:00. Guard it for deep work.", best),
	}, true
}
