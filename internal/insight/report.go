package insight

import (
	"time"

	"lifeboard/internal/storage"
)

// QuarterlyReport looks back over the trailing 90 days.
type QuarterlyReport struct {
	CompletedTasks int
	CreatedTasks   int
	CompletionRate float64 // percent
	AvgEnergy      float64
	TopSkill       string
	NetBalance     float64
	MediaFinished  int
	BestStreakDays int
	BestStreakName string
}

const reportDays = 90

func Quarterly(st storage.State, today time.Time) QuarterlyReport {
	var r QuarterlyReport

	skillCompletions := map[string]int{}
	for _, t := range st.Tasks {
		if inWindow(t.CreatedAt.Format(storage.DateLayout), today, reportDays) {
			r.CreatedTasks++
		}
		if t.Status == storage.TaskCompleted && t.CompletedAt != nil &&
			inWindow(t.CompletedAt.Format(storage.DateLayout), today, reportDays) {
			r.CompletedTasks++
			if t.SkillID != "" {
				skillCompletions[t.SkillID]++
			}
		}
	}
	denom := r.CreatedTasks
	if denom == 0 {
		denom = 1
	}
	r.CompletionRate = float64(r.CompletedTasks) / float64(denom) * 100

	var sum, n int
	for _, e := range st.EnergyLogs {
		if inWindow(e.Date, today, reportDays) {
			sum += e.Level
			n++
		}
	}
	if n > 0 {
		r.AvgEnergy = float64(sum) / float64(n)
	}

	topN := 0
	for skill, cnt := range skillCompletions {
		if cnt > topN || (cnt == topN && r.TopSkill != "" && skill < r.TopSkill) {
			r.TopSkill = skill
			topN = cnt
		}
	}

	for _, tx := range st.Transactions {
		if !inWindow(tx.Date, today, reportDays) {
			continue
		}
		switch tx.Type {
		case storage.TxIncome:
			r.NetBalance += tx.Amount
		case storage.TxExpense:
			r.NetBalance -= tx.Amount
		}
	}

	for _, m := range st.Media {
		if m.Status == storage.MediaCompleted {
			r.MediaFinished++
		}
	}

	best, days := BestStreak(st.Habits, st.HabitLogs, today)
	r.BestStreakDays = days
	r.BestStreakName = best.Title

	return r
}

// Balance is the all-time ledger total: income minus expenses.
func Balance(txs []storage.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		switch tx.Type {
		case storage.TxIncome:
			total += tx.Amount
		case storage.TxExpense:
			total -= tx.Amount
		}
	}
	return total
}

// LifeScore blends task success and energy into one scalar: 60% task
// success rate, 40% doubled mean energy (both on a 0..100 scale).
func LifeScore(st storage.State) float64 {
	completed, created := 0, 0
	for _, t := range st.Tasks {
		switch t.Status {
		case storage.TaskCompleted:
			completed++
			created++
		case storage.TaskPending, storage.TaskCancelled:
			created++
		}
	}
	taskRate := 0.0
	if created > 0 {
		taskRate = float64(completed) / float64(created) * 100
	}

	var sum, n int
	for _, e := range st.EnergyLogs {
		sum += e.Level
		n++
	}
	energyScore := 0.0
	if n > 0 {
		mean := float64(sum) / float64(n)
		energyScore = mean * 2 * 10 // 1..5 doubled, scaled to percent
		if energyScore > 100 {
			energyScore = 100
		}
	}

	return 0.6*taskRate + 0.4*energyScore
}
