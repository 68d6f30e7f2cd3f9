package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lifeboard/internal/storage"
)

func completedOn(d time.Time) storage.Task {
	return storage.Task{Status: storage.TaskCompleted, CompletedAt: &d, CreatedAt: d}
}

func TestWeeklyBriefingAggregates(t *testing.T) {
	today := day("2024-03-10")
	st := storage.DefaultState()

	st.Tasks = []storage.Task{
		completedOn(day("2024-03-09")),
		completedOn(day("2024-03-10")),
		{Status: storage.TaskPending, CreatedAt: day("2024-03-08")},
		// Outside the trailing week on both axes.
		completedOn(day("2024-02-01")),
	}
	st.EnergyLogs = []storage.EnergyLog{
		{Date: "2024-03-08", Level: 2},
		{Date: "2024-03-09", Level: 3},
		{Date: "2024-03-10", Level: 4},
	}
	st.Transactions = []storage.Transaction{
		{Date: "2024-03-09", Amount: 100, Type: storage.TxIncome},
		{Date: "2024-03-10", Amount: 30, Type: storage.TxExpense},
	}

	b := WeeklyBriefing(st, today)
	assert.Equal(t, 2, b.CompletedTasks)
	assert.Equal(t, 3, b.CreatedTasks)
	assert.InDelta(t, 66.7, b.CompletionRate, 0.1)
	assert.InDelta(t, 3.0, b.AvgEnergy, 0.001)
	assert.InDelta(t, 100.0, b.Income, 0.001)
	assert.InDelta(t, 30.0, b.Expenses, 0.001)
}

func TestWeeklyBriefingWindowInAheadOfUTCZone(t *testing.T) {
	// Local midnight in a UTC-positive zone precedes UTC midnight of the
	// same date; entries dated today must still land in the window.
	today := time.Date(2024, 3, 10, 14, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	st := storage.DefaultState()
	st.EnergyLogs = []storage.EnergyLog{{Date: "2024-03-10", Level: 3}}

	b := WeeklyBriefing(st, today)
	assert.InDelta(t, 3.0, b.AvgEnergy, 0.001)
}

func TestWeeklyBriefingZeroCreatedDenominator(t *testing.T) {
	today := day("2024-03-10")
	st := storage.DefaultState()
	// One completion from a task created long ago: created-in-window is 0.
	st.Tasks = []storage.Task{{
		Status:      storage.TaskCompleted,
		CreatedAt:   day("2024-01-01"),
		CompletedAt: ptrTime(day("2024-03-10")),
	}}

	b := WeeklyBriefing(st, today)
	assert.Equal(t, 0, b.CreatedTasks)
	// Denominator clamps to 1, so the rate is 100 rather than NaN.
	assert.InDelta(t, 100.0, b.CompletionRate, 0.001)
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestHabitConsistencyCapsAtHundred(t *testing.T) {
	today := day("2024-03-10")
	st := storage.DefaultState()
	st.Habits = []storage.Habit{{ID: "h1", Title: "Read", Active: true}}
	// Duplicate-day logs can push raw consistency past 100%.
	for i := 0; i < 10; i++ {
		st.HabitLogs = append(st.HabitLogs, storage.HabitLog{HabitID: "h1", Date: "2024-03-10", Completed: true})
	}

	b := WeeklyBriefing(st, today)
	assert.InDelta(t, 100.0, b.HabitConsistency, 0.001)
}

func TestRecommendationPriority(t *testing.T) {
	// Weak habits outrank everything.
	b := Briefing{HabitConsistency: 20, AvgEnergy: 1.0, Expenses: 10, Income: 0}
	assert.Contains(t, recommend(b), "habit")

	// Then low energy.
	b = Briefing{HabitConsistency: 80, AvgEnergy: 2.0, Expenses: 10, Income: 0}
	assert.Contains(t, recommend(b), "Energy")

	// Then overspending.
	b = Briefing{HabitConsistency: 80, AvgEnergy: 4.0, Expenses: 10, Income: 0}
	assert.Contains(t, recommend(b), "spent")

	// Otherwise praise.
	b = Briefing{HabitConsistency: 80, AvgEnergy: 4.0, Expenses: 0, Income: 10}
	assert.Contains(t, recommend(b), "Solid week")
}

func TestQuarterlyReport(t *testing.T) {
	today := day("2024-03-31")
	st := storage.DefaultState()
	d := day("2024-03-01")
	st.Tasks = []storage.Task{
		{Status: storage.TaskCompleted, CreatedAt: d, CompletedAt: &d, SkillID: "mental"},
		{Status: storage.TaskCompleted, CreatedAt: d, CompletedAt: &d, SkillID: "mental"},
		{Status: storage.TaskCompleted, CreatedAt: d, CompletedAt: &d, SkillID: "physical"},
	}
	st.Transactions = []storage.Transaction{
		{Date: "2024-03-05", Amount: 200, Type: storage.TxIncome},
		{Date: "2024-03-06", Amount: 50, Type: storage.TxExpense},
	}
	st.Media = []storage.MediaItem{
		{Status: storage.MediaCompleted},
		{Status: storage.MediaBacklog},
	}

	r := Quarterly(st, today)
	assert.Equal(t, 3, r.CompletedTasks)
	assert.Equal(t, "mental", r.TopSkill)
	assert.InDelta(t, 150.0, r.NetBalance, 0.001)
	assert.Equal(t, 1, r.MediaFinished)
}

func TestBalance(t *testing.T) {
	txs := []storage.Transaction{
		{Amount: 100, Type: storage.TxIncome},
		{Amount: 40, Type: storage.TxExpense},
		{Amount: 10, Type: storage.TxExpense},
	}
	assert.InDelta(t, 50.0, Balance(txs), 0.001)
	assert.InDelta(t, 0.0, Balance(nil), 0.001)
}

func TestLifeScore(t *testing.T) {
	st := storage.DefaultState()
	// Empty state scores zero on both components.
	assert.InDelta(t, 0.0, LifeScore(st), 0.001)

	d := time.Now()
	st.Tasks = []storage.Task{
		{Status: storage.TaskCompleted, CompletedAt: &d},
		{Status: storage.TaskPending},
	}
	st.EnergyLogs = []storage.EnergyLog{{Date: "2024-03-10", Level: 4}}

	// 0.6*50 + 0.4*min(4*2*10,100) = 30 + 32 = 62.
	assert.InDelta(t, 62.0, LifeScore(st), 0.001)
}

func TestLifeScoreEnergyCap(t *testing.T) {
	st := storage.DefaultState()
	st.EnergyLogs = []storage.EnergyLog{{Date: "2024-03-10", Level: 5}}

	// 5*2*10 would be 100 exactly; the cap keeps it there.
	assert.InDelta(t, 40.0, LifeScore(st), 0.001)
}
