package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parthsharma232007/arc-ascension/internal/engine"
	"github.com/parthsharma232007/arc-ascension/internal/storage"
	"github.com/parthsharma232007/arc-ascension/internal/ui"
)

// RunDashboard opens the interactive dashboard for an onboarded profile.
func RunDashboard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newDashboardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type section int

const (
	sectionMissions section = iota
	sectionTasks
)

type dashboardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile *storage.Profile
	quote   string

	section  section
	selected int

	spin       spinner.Model
	generating bool

	lastLog string
	err     error
}

type profileLoadedMsg struct {
	profile *storage.Profile
	err     error
}

type missionDoneMsg struct {
	res *engine.MissionResult
	err error
}

type taskChangedMsg struct {
	action string
	found  bool
	err    error
}

type regeneratedMsg struct {
	profile *storage.Profile
	err     error
}

func newDashboardModel(ctx context.Context, svc *engine.Service) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return dashboardModel{
		ctx:     ctx,
		svc:     svc,
		spin:    sp,
		lastLog: "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Load(m.ctx)
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (m dashboardModel) completeMissionCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteMission(m.ctx, id)
		return missionDoneMsg{res: res, err: err}
	}
}

func (m dashboardModel) toggleTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		found, err := m.svc.ToggleTask(m.ctx, id)
		return taskChangedMsg{action: "toggle", found: found, err: err}
	}
}

func (m dashboardModel) deleteTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		found, err := m.svc.DeleteTask(m.ctx, id)
		return taskChangedMsg{action: "delete", found: found, err: err}
	}
}

func (m dashboardModel) regenerateCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.RegenerateDailyTasks(m.ctx)
		return regeneratedMsg{profile: p, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profileLoadedMsg:
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		if m.quote == "" {
			m.quote = ui.RandomQuote(m.profile.Arc)
		}
		m.clampSelection()
		return m, nil

	case missionDoneMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res == nil {
			m.lastLog = "Already done."
			return m, nil
		}
		m.lastLog = engine.FormatMissionToast(msg.res)
		if msg.res.LevelUp {
			m.lastLog += "  " + ui.BadgeLevelUp + fmt.Sprintf(" → level %d", msg.res.LevelAfter)
		}
		return m, m.loadCmd()

	case taskChangedMsg:
		if msg.err != nil {
			m.lastLog = "Task update failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.found {
			m.lastLog = "Task not found."
			return m, nil
		}
		m.lastLog = "Task updated."
		return m, m.loadCmd()

	case regeneratedMsg:
		m.generating = false
		if msg.err != nil {
			m.lastLog = "Generation failed — try again with g."
			return m, nil
		}
		m.profile = msg.profile
		m.lastLog = fmt.Sprintf("Generated %d tasks for today.", len(msg.profile.Tasks))
		m.clampSelection()
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "tab":
		if m.section == sectionMissions {
			m.section = sectionTasks
		} else {
			m.section = sectionMissions
		}
		m.selected = 0
		return m, nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < m.sectionLen()-1 {
			m.selected++
		}
		return m, nil
	case "g":
		if m.generating {
			m.lastLog = "Generation already running…"
			return m, nil
		}
		m.generating = true
		m.lastLog = "Generating today's tasks…"
		return m, tea.Batch(m.spin.Tick, m.regenerateCmd())
	case "c", " ":
		return m.activateSelection()
	case "d":
		if m.section != sectionTasks || m.profile == nil {
			return m, nil
		}
		if m.selected >= len(m.profile.Tasks) {
			return m, nil
		}
		id := m.profile.Tasks[m.selected].ID
		m.lastLog = "Deleting task…"
		return m, m.deleteTaskCmd(id)
	}
	return m, nil
}

func (m dashboardModel) activateSelection() (tea.Model, tea.Cmd) {
	if m.profile == nil {
		return m, nil
	}
	switch m.section {
	case sectionMissions:
		if m.selected >= len(m.profile.Missions) {
			return m, nil
		}
		mission := m.profile.Missions[m.selected]
		if mission.Completed {
			m.lastLog = "Already done."
			return m, nil
		}
		m.lastLog = "Completing " + mission.Title + "…"
		return m, m.completeMissionCmd(mission.ID)
	case sectionTasks:
		if m.selected >= len(m.profile.Tasks) {
			return m, nil
		}
		return m, m.toggleTaskCmd(m.profile.Tasks[m.selected].ID)
	}
	return m, nil
}

func (m dashboardModel) sectionLen() int {
	if m.profile == nil {
		return 0
	}
	if m.section == sectionMissions {
		return len(m.profile.Missions)
	}
	return len(m.profile.Tasks)
}

func (m *dashboardModel) clampSelection() {
	if n := m.sectionLen(); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.profile == nil {
		return "Arc Ascension — loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderMeters())
	b.WriteString("\n\n")
	b.WriteString(m.renderMissions())
	b.WriteString("\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m dashboardModel) renderHeader() string {
	p := m.profile
	name := ui.ArcStyle(p.Arc).Render(strings.ToUpper(p.Name))
	bar := ui.Bar(p.XP, p.XPToNextLevel, 30)
	line1 := fmt.Sprintf("%s %s  %s  %s %d", ui.IconArc, name, ui.Muted.Render(p.Avatar.Name+" · "+p.Avatar.Series), ui.IconTrophy+" LVL", p.Level)
	line2 := fmt.Sprintf("XP %d/%d %s   %s %d day streak", p.XP, p.XPToNextLevel, bar, ui.IconFlame, p.Streak)
	line3 := ui.Muted.Render("“" + m.quote + "”")
	return line1 + "\n" + line2 + "\n" + line3
}

func (m dashboardModel) renderMeters() string {
	p := m.profile
	return strings.Join([]string{
		ui.H2.Render("Progress"),
		ui.Meter("Mental", p.MentalProgress, 100, 20),
		ui.Meter("Physical", p.PhysicalProgress, 100, 20),
		ui.Meter("Overall", p.OverallProgress, 100, 20),
	}, "\n")
}

func (m dashboardModel) renderMissions() string {
	out := []string{ui.H2.Render(ui.IconBolt + " Missions")}
	for i, mission := range m.profile.Missions {
		cursor := "  "
		if m.section == sectionMissions && i == m.selected {
			cursor = ui.SelectedRow.Render("> ")
		}
		check := ui.TaskCheckbox(mission.Completed)
		title := mission.Title
		if mission.Completed {
			title = ui.Muted.Render(title)
		}
		out = append(out, fmt.Sprintf("%s%s %s %s", cursor, check, title, ui.Gold.Render(fmt.Sprintf("+%d", mission.XPReward))))
	}
	return strings.Join(out, "\n")
}

func (m dashboardModel) renderTasks() string {
	header := ui.H2.Render(ui.IconScroll + " Daily Tasks")
	if m.generating {
		header += " " + m.spin.View() + ui.Muted.Render("generating…")
	}
	out := []string{header}
	if len(m.profile.Tasks) == 0 {
		out = append(out, ui.Muted.Render("  (no tasks yet — press g to generate)"))
	}
	for i, t := range m.profile.Tasks {
		cursor := "  "
		if m.section == sectionTasks && i == m.selected {
			cursor = ui.SelectedRow.Render("> ")
		}
		line := fmt.Sprintf("%s%s %s", cursor, ui.TaskCheckbox(t.Completed), t.Title)
		if t.Time != "" {
			line += " " + ui.Muted.Render("("+t.Time+")")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m dashboardModel) renderFooter() string {
	keys := ui.Muted.Render("tab: switch · j/k: move · space: complete/toggle · d: delete task · g: generate · q: quit")
	return keys + "\n" + m.lastLog
}
