package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifeboard/internal/gamify"
	"lifeboard/internal/insight"
	"lifeboard/internal/storage"
	"lifeboard/internal/store"
	"lifeboard/internal/ui"
)

type dashModel struct {
	ctx context.Context
	st  *store.Store

	width  int
	height int

	state    storage.State
	selected int

	pinBuffer string
	pinError  bool

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state storage.State
}

type completedMsg struct {
	title string
	res   *store.CompleteResult
	err   error
}

type pinClearMsg struct{}

func newDashModel(ctx context.Context, st *store.Store) dashModel {
	return dashModel{
		ctx:     ctx,
		st:      st,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{state: m.st.GetState()}
	}
}

func (m dashModel) completeCmd(id, title string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.st.CompleteTask(m.ctx, id)
		return completedMsg{title: title, res: res, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.state = msg.state
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed %q: +%d XP", msg.title, msg.res.XPAwarded)
		if msg.res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp
		}
		return m, m.loadCmd()
	case pinClearMsg:
		m.pinBuffer = ""
		m.pinError = false
		return m, nil
	case tea.KeyMsg:
		if m.st.Locked() {
			return m.updateLocked(msg)
		}
		return m.updateUnlocked(msg)
	}
	return m, nil
}

// updateLocked is the PIN entry state machine: digits accumulate; the 4th
// digit attempts the unlock; a wrong PIN shows an error briefly and then
// clears the buffer.
func (m dashModel) updateLocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := msg.String(); {
	case s == "ctrl+c" || s == "q":
		return m, tea.Quit
	case m.pinError:
		return m, nil
	case s == "backspace" && len(m.pinBuffer) > 0:
		m.pinBuffer = m.pinBuffer[:len(m.pinBuffer)-1]
		return m, nil
	case len(s) == 1 && s >= "0" && s <= "9":
		m.pinBuffer += s
		if len(m.pinBuffer) < 4 {
			return m, nil
		}
		if err := m.st.Unlock(m.pinBuffer); err != nil {
			m.pinError = true
			return m, tea.Tick(600*time.Millisecond, func(time.Time) tea.Msg { return pinClearMsg{} })
		}
		m.pinBuffer = ""
		return m, m.loadCmd()
	}
	return m, nil
}

func (m dashModel) updateUnlocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, ok := m.st.CurrentCelebration(); ok {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", " ":
			m.st.DismissCelebration()
			return m, m.loadCmd()
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.todayTasks())-1 {
			m.selected++
		}
		return m, nil
	case "c", " ":
		tasks := m.todayTasks()
		if m.selected < 0 || m.selected >= len(tasks) {
			return m, nil
		}
		t := tasks[m.selected]
		m.lastLog = fmt.Sprintf("Completing %q…", t.Title)
		return m, m.completeCmd(t.ID, t.Title)
	}
	return m, nil
}

// todayTasks lists pending tasks scheduled today or unscheduled, in slice
// order.
func (m dashModel) todayTasks() []storage.Task {
	today := time.Now().Format(storage.DateLayout)
	var out []storage.Task
	for _, t := range m.state.Tasks {
		if t.Status != storage.TaskPending {
			continue
		}
		if t.ScheduledDate == "" || t.ScheduledDate == today {
			out = append(out, t)
		}
	}
	return out
}

func (m dashModel) View() string {
	if m.st.Locked() {
		return m.viewLocked()
	}
	if c, ok := m.st.CurrentCelebration(); ok {
		return m.viewCelebration(c)
	}

	var b strings.Builder
	p := m.state.Profile
	level := gamify.LevelForXP(p.XP)

	b.WriteString(ui.Heading(ui.IconSparkle, "Lifeboard") + "\n\n")
	b.WriteString(ui.LabelValue("Level", level) + "  " + ui.ProgressBar(gamify.LevelProgress(p.XP), 24) + "\n")
	b.WriteString(ui.LabelValue("XP", fmt.Sprintf("%d (next at %d)", p.XP, level*gamify.LevelSize)) + "\n")
	b.WriteString(ui.LabelValue("Life score", fmt.Sprintf("%.0f", insight.LifeScore(m.state))) + "\n\n")

	b.WriteString(ui.H2.Render(ui.IconTask+" Today") + "\n")
	tasks := m.todayTasks()
	if len(tasks) == 0 {
		b.WriteString(ui.Muted.Render("Nothing pending. Add something with `lb add`.") + "\n")
	}
	for i, t := range tasks {
		line := fmt.Sprintf("  %s %s", ui.StatusText(string(t.Status)), t.Title)
		if i == m.selected {
			line = ui.SelectedRow.Render("▸" + line[1:])
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	b.WriteString(ui.H2.Render(ui.IconHabit+" Streaks") + "\n")
	now := time.Now()
	for _, h := range m.state.Habits {
		if h.Archived {
			continue
		}
		s := insight.Streak(m.state.HabitLogs, h.ID, now)
		b.WriteString(fmt.Sprintf("  %s %s — %d day(s)\n", ui.IconFire, h.Title, s))
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("j/k move · space complete · r refresh · q quit") + "\n")
	return b.String()
}

func (m dashModel) viewLocked() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconLock, "Lifeboard is locked") + "\n\n")
	dots := strings.Repeat("● ", len(m.pinBuffer)) + strings.Repeat("○ ", 4-len(m.pinBuffer))
	if m.pinError {
		b.WriteString(ui.Bad.Render(dots) + "\n")
		b.WriteString(ui.Bad.Render("Wrong PIN") + "\n")
	} else {
		b.WriteString(ui.Key.Render(dots) + "\n")
		b.WriteString(ui.Muted.Render("Enter your 4-digit PIN") + "\n")
	}
	return b.String()
}

func (m dashModel) viewCelebration(c store.Celebration) string {
	icon := ui.IconTrophy
	if c.Kind == store.CelebrationLevelUp {
		icon = ui.IconBolt
	}
	panel := ui.Panel.Render(
		ui.Heading(icon, c.Title) + "\n" +
			ui.Muted.Render(c.Detail) + "\n\n" +
			ui.Muted.Render("enter to continue"),
	)
	return "\n" + panel + "\n"
}

// Run starts the dashboard TUI and blocks until quit.
func Run(ctx context.Context, st *store.Store) error {
	p := tea.NewProgram(newDashModel(ctx, st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
