package store

import (
	"time"

	"lifeboard/internal/storage"
)

// cloneState deep-copies the aggregate so snapshots never alias live store
// memory. Mutators always build fresh collection values, so a committed
// snapshot stays consistent even while new mutations land.
func cloneState(st storage.State) storage.State {
	out := st
	out.Tasks = cloneTasks(st.Tasks)
	out.Goals = append([]storage.Goal(nil), st.Goals...)
	out.Habits = cloneHabits(st.Habits)
	out.HabitLogs = append([]storage.HabitLog(nil), st.HabitLogs...)
	out.EnergyLogs = append([]storage.EnergyLog(nil), st.EnergyLogs...)
	out.Transactions = append([]storage.Transaction(nil), st.Transactions...)
	out.Contacts = cloneContacts(st.Contacts)
	out.Media = append([]storage.MediaItem(nil), st.Media...)
	out.Notes = append([]storage.Note(nil), st.Notes...)
	out.Tags = append([]storage.Tag(nil), st.Tags...)
	out.Profile = cloneProfile(st.Profile)
	return out
}

func cloneTasks(ts []storage.Task) []storage.Task {
	out := append([]storage.Task(nil), ts...)
	for i := range out {
		out[i].Subtasks = append([]storage.Subtask(nil), out[i].Subtasks...)
		out[i].TagIDs = append([]string(nil), out[i].TagIDs...)
		if out[i].CompletedAt != nil {
			v := *out[i].CompletedAt
			out[i].CompletedAt = &v
		}
	}
	return out
}

func cloneHabits(hs []storage.Habit) []storage.Habit {
	out := append([]storage.Habit(nil), hs...)
	for i := range out {
		out[i].TargetDays = append([]time.Weekday(nil), out[i].TargetDays...)
	}
	return out
}

func cloneContacts(cs []storage.Contact) []storage.Contact {
	out := append([]storage.Contact(nil), cs...)
	for i := range out {
		out[i].Interactions = append([]storage.Interaction(nil), out[i].Interactions...)
	}
	return out
}

func cloneProfile(p storage.Profile) storage.Profile {
	out := p
	out.SkillXP = make(map[string]int, len(p.SkillXP))
	for k, v := range p.SkillXP {
		out.SkillXP[k] = v
	}
	out.UnlockedAchievements = append([]string(nil), p.UnlockedAchievements...)
	out.Inventory = append([]string(nil), p.Inventory...)
	out.Challenges = append([]storage.Challenge(nil), p.Challenges...)
	return out
}
