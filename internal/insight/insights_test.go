package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lifeboard/internal/storage"
)

func TestSmartInsightsFallback(t *testing.T) {
	got := SmartInsights(storage.DefaultState(), day("2024-03-10"))

	assert.Len(t, got, 1)
	assert.Equal(t, InsightNeedData, got[0].Kind)
}

func TestBestDayAheadFiresBeforeTomorrow(t *testing.T) {
	// 2024-03-10 is a Sunday; stack completions on Mondays so the
	// prediction targets tomorrow.
	st := storage.DefaultState()
	for _, d := range []string{"2024-02-12", "2024-02-19", "2024-02-26", "2024-03-04"} {
		ts := day(d).Add(10 * time.Hour)
		st.Tasks = append(st.Tasks, storage.Task{Status: storage.TaskCompleted, CompletedAt: &ts})
	}
	ts := day("2024-03-05").Add(10 * time.Hour) // one stray Tuesday
	st.Tasks = append(st.Tasks, storage.Task{Status: storage.TaskCompleted, CompletedAt: &ts})

	got := SmartInsights(st, day("2024-03-10"))
	assert.NotEmpty(t, got)
	assert.Equal(t, InsightBestDayAhead, got[0].Kind)
	assert.Contains(t, got[0].Message, "Monday")
}

func TestBestDayAheadSilentWhenTomorrowIsOrdinary(t *testing.T) {
	st := storage.DefaultState()
	for _, d := range []string{"2024-02-12", "2024-02-19", "2024-02-26", "2024-03-04", "2024-03-04"} {
		ts := day(d).Add(10 * time.Hour)
		st.Tasks = append(st.Tasks, storage.Task{Status: storage.TaskCompleted, CompletedAt: &ts})
	}

	// Today is Monday, so tomorrow (Tuesday) is not the best day.
	got := SmartInsights(st, day("2024-03-11"))
	for _, in := range got {
		assert.NotEqual(t, InsightBestDayAhead, in.Kind)
	}
}

func TestEnergyProductivityCorrelation(t *testing.T) {
	st := storage.DefaultState()
	// Completions scale perfectly with energy level across five days.
	dates := []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"}
	for i, d := range dates {
		level := i + 1
		st.EnergyLogs = append(st.EnergyLogs, storage.EnergyLog{Date: d, Level: level})
		for j := 0; j < level; j++ {
			ts := day(d).Add(time.Duration(j+1) * time.Hour)
			st.Tasks = append(st.Tasks, storage.Task{Status: storage.TaskCompleted, CompletedAt: &ts})
		}
	}

	got := SmartInsights(st, day("2024-03-06"))
	kinds := map[InsightKind]bool{}
	for _, in := range got {
		kinds[in.Kind] = true
	}
	assert.True(t, kinds[InsightEnergyOutput], "expected the energy/productivity insight, got %v", got)
}

func TestPeakHourNeedsSamples(t *testing.T) {
	st := storage.DefaultState()
	for i := 0; i < 9; i++ {
		ts := day("2024-03-01").AddDate(0, 0, i).Add(9 * time.Hour)
		st.Tasks = append(st.Tasks, storage.Task{Status: storage.TaskCompleted, CompletedAt: &ts})
	}

	for _, in := range SmartInsights(st, day("2024-03-20")) {
		assert.NotEqual(t, InsightPeakHour, in.Kind, "peak hour fired below the sample floor")
	}

	ts := day("2024-03-10").Add(9 * time.Hour)
	st.Tasks = append(st.Tasks, storage.Task{Status: storage.TaskCompleted, CompletedAt: &ts})

	found := false
	for _, in := range SmartInsights(st, day("2024-03-20")) {
		if in.Kind == InsightPeakHour {
			found = true
			assert.Contains(t, in.Message, "09:00")
		}
	}
	assert.True(t, found, "peak hour silent at the sample floor")
}

func TestSpendOnLowEnergy(t *testing.T) {
	st := storage.DefaultState()
	st.EnergyLogs = []storage.EnergyLog{
		{Date: "2024-03-01", Level: 1},
		{Date: "2024-03-02", Level: 2},
		{Date: "2024-03-03", Level: 4},
		{Date: "2024-03-04", Level: 5},
	}
	st.Transactions = []storage.Transaction{
		{Date: "2024-03-01", Amount: 90, Type: storage.TxExpense},
		{Date: "2024-03-02", Amount: 110, Type: storage.TxExpense},
		{Date: "2024-03-03", Amount: 10, Type: storage.TxExpense},
		{Date: "2024-03-04", Amount: 20, Type: storage.TxExpense},
	}

	kinds := map[InsightKind]bool{}
	for _, in := range SmartInsights(st, day("2024-03-05")) {
		kinds[in.Kind] = true
	}
	assert.True(t, kinds[InsightSpendEnergy])
}
