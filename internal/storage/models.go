package storage

import "time"

// DateLayout is the calendar-date format used everywhere a field holds a day
// rather than an instant.
const DateLayout = "2006-01-02"

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
	TaskCancelled TaskStatus = "cancelled"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskCompleted, TaskCancelled:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurNone, RecurDaily, RecurWeekly, RecurMonthly:
		return true
	default:
		return false
	}
}

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is the central unit of work. GoalID, SkillID and TagIDs are weak
// references: they may point at deleted entities and lookups must treat a
// miss as "uncategorized" rather than an error.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Notes         string     `json:"notes,omitempty"`
	Status        TaskStatus `json:"status"`
	ScheduledDate string     `json:"scheduledDate,omitempty"`
	GoalID        string     `json:"goalId,omitempty"`
	SkillID       string     `json:"skillId,omitempty"`
	Priority      Priority   `json:"priority"`
	Recurrence    Recurrence `json:"recurrence"`
	Subtasks      []Subtask  `json:"subtasks,omitempty"`
	TagIDs        []string   `json:"tagIds,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalAbandoned GoalStatus = "abandoned"
)

type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Horizon     string     `json:"horizon,omitempty"`
	Status      GoalStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type HabitFrequency string

const (
	HabitDaily        HabitFrequency = "daily"
	HabitWeekly       HabitFrequency = "weekly"
	HabitSpecificDays HabitFrequency = "specific_days"
	HabitMonthly      HabitFrequency = "monthly"
)

func (f HabitFrequency) IsValid() bool {
	switch f {
	case HabitDaily, HabitWeekly, HabitSpecificDays, HabitMonthly:
		return true
	default:
		return false
	}
}

type Habit struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Frequency   HabitFrequency `json:"frequency"`
	TargetDays  []time.Weekday `json:"targetDays,omitempty"`
	TargetCount int            `json:"targetCount,omitempty"`
	GoalID      string         `json:"goalId,omitempty"`
	Active      bool           `json:"active"`
	Archived    bool           `json:"archived"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// HabitLog records one habit check-in. Logs are upserted by (HabitID, Date)
// so at most one entry exists per habit per calendar day.
type HabitLog struct {
	HabitID   string `json:"habitId"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodLow   Mood = "low"
	MoodBad   Mood = "bad"
)

// MoodScore maps a mood to a 1..5 scale for the correlation heuristics.
func (m Mood) Score() int {
	switch m {
	case MoodGreat:
		return 5
	case MoodGood:
		return 4
	case MoodOkay:
		return 3
	case MoodLow:
		return 2
	case MoodBad:
		return 1
	default:
		return 0
	}
}

// EnergyLog holds one reading per date; logging the same date again
// overwrites the previous entry.
type EnergyLog struct {
	Date  string `json:"date"`
	Level int    `json:"level"`
	Mood  Mood   `json:"mood,omitempty"`
}

type TransactionType string

const (
	TxIncome  TransactionType = "income"
	TxExpense TransactionType = "expense"
)

type Transaction struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	Amount float64         `json:"amount"`
	Type   TransactionType `json:"type"`
	Label  string          `json:"label,omitempty"`
}

type Interaction struct {
	Date string `json:"date"`
	Type string `json:"type,omitempty"`
	Note string `json:"note,omitempty"`
}

type Contact struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Category          string        `json:"category,omitempty"`
	ReminderFrequency int           `json:"reminderFrequency,omitempty"` // days between touch-points, 0 = no reminder
	Birthday          string        `json:"birthday,omitempty"`          // MM-DD
	LastContacted     string        `json:"lastContacted,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	Interactions      []Interaction `json:"interactions,omitempty"`
}

type MediaType string

const (
	MediaBook   MediaType = "book"
	MediaMovie  MediaType = "movie"
	MediaSeries MediaType = "series"
	MediaGame   MediaType = "game"
)

func (m MediaType) IsValid() bool {
	switch m {
	case MediaBook, MediaMovie, MediaSeries, MediaGame:
		return true
	default:
		return false
	}
}

type MediaStatus string

const (
	MediaBacklog    MediaStatus = "backlog"
	MediaInProgress MediaStatus = "in_progress"
	MediaCompleted  MediaStatus = "completed"
	MediaAbandoned  MediaStatus = "abandoned"
)

func (m MediaStatus) IsValid() bool {
	switch m {
	case MediaBacklog, MediaInProgress, MediaCompleted, MediaAbandoned:
		return true
	default:
		return false
	}
}

type MediaItem struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Type   MediaType   `json:"type"`
	Status MediaStatus `json:"status"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Challenge struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	TargetCount  int    `json:"targetCount"`
	CurrentCount int    `json:"currentCount"`
	RewardXP     int    `json:"rewardXp"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Active       bool   `json:"active"`
}

type NotificationSettings struct {
	Enabled     bool   `json:"enabled"`
	MorningTime string `json:"morningTime,omitempty"` // "HH:MM"
	EveningTime string `json:"eveningTime,omitempty"`
}

// Profile carries the gamification ledger and user preferences. XP is the
// spendable total; per-skill XP feeds skill levels independently.
type Profile struct {
	XP                   int                  `json:"xp"`
	SkillXP              map[string]int       `json:"skillXp"`
	UnlockedAchievements []string             `json:"unlockedAchievements"`
	Inventory            []string             `json:"inventory"`
	PIN                  string               `json:"pin,omitempty"`
	SecurityEnabled      bool                 `json:"securityEnabled"`
	Notifications        NotificationSettings `json:"notifications"`
	Theme                string               `json:"theme,omitempty"`
	OnboardingDone       bool                 `json:"onboardingDone"`
	Challenges           []Challenge          `json:"challenges,omitempty"`
}

// State is the whole persisted aggregate. It is serialized wholesale under a
// fixed key after every mutation and rehydrated wholesale on start.
type State struct {
	Tasks        []Task        `json:"tasks"`
	Goals        []Goal        `json:"goals"`
	Habits       []Habit       `json:"habits"`
	HabitLogs    []HabitLog    `json:"habitLogs"`
	EnergyLogs   []EnergyLog   `json:"energyLogs"`
	Transactions []Transaction `json:"transactions"`
	Contacts     []Contact     `json:"contacts"`
	Media        []MediaItem   `json:"media"`
	Notes        []Note        `json:"notes"`
	Tags         []Tag         `json:"tags"`
	Profile      Profile       `json:"profile"`
}

// DefaultState returns the aggregate used before any snapshot exists.
func DefaultState() State {
	return State{
		Profile: Profile{
			SkillXP: map[string]int{},
			Notifications: NotificationSettings{
				MorningTime: "08:00",
				EveningTime: "20:00",
			},
			Theme: "default",
		},
	}
}
