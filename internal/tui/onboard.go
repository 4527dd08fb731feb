package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parthsharma232007/arc-ascension/internal/engine"
	"github.com/parthsharma232007/arc-ascension/internal/storage"
	"github.com/parthsharma232007/arc-ascension/internal/ui"
)

// RunOnboarding walks the questionnaire and persists the assembled profile
// through the service. Returns the profile, or nil if the user quit early.
func RunOnboarding(ctx context.Context, svc *engine.Service, out io.Writer) (*storage.Profile, error) {
	m := newOnboardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	om, ok := final.(onboardModel)
	if !ok {
		return nil, nil
	}
	if om.err != nil {
		return nil, om.err
	}
	return om.profile, nil
}

type onboardStep int

const (
	stepName onboardStep = iota
	stepArc
	stepGoal
	stepAvatar
	stepFocus
	stepDifficulty
	stepTime
	stepDone
)

type arcOption struct {
	arc   engine.Arc
	title string
	desc  string
}

type goalOption struct {
	goal  engine.Category
	title string
	desc  string
}

var arcOptions = []arcOption{
	{engine.ArcHero, "Hero Arc", "Rise to become the greatest version of yourself"},
	{engine.ArcVillain, "Villain Arc", "Embrace power and dominance"},
	{engine.ArcRedemption, "Redemption Arc", "Transform and overcome your past"},
	{engine.ArcInter, "Inter Arc", "Journey within for personal growth"},
}

var goalOptions = []goalOption{
	{engine.CategoryMental, "Mental Development", "Focus on mind, learning, and wisdom"},
	{engine.CategoryPhysical, "Physical Development", "Build strength, endurance, and health"},
	{engine.CategoryOverall, "Overall Development", "Balance mind, body, and spirit"},
}

var focusOptions = []string{"fitness", "mindfulness", "learning", "discipline", "creativity", "social"}
var difficultyOptions = []string{"easy", "moderate", "hard"}
var timeOptions = []string{"15 minutes", "30 minutes", "1 hour", "2+ hours"}

type onboardModel struct {
	ctx context.Context
	svc *engine.Service

	step     onboardStep
	cursor   int
	nameIn   textinput.Model
	selected map[int]bool // focus-area multi-select

	name    string
	arc     engine.Arc
	goal    engine.Category
	avatars []storage.Avatar
	avatar  storage.Avatar
	prefs   storage.TaskPreferences

	profile *storage.Profile
	err     error
	warn    string
}

func newOnboardModel(ctx context.Context, svc *engine.Service) onboardModel {
	in := textinput.New()
	in.Placeholder = "Enter your name"
	in.CharLimit = 40
	in.Focus()
	return onboardModel{
		ctx:      ctx,
		svc:      svc,
		nameIn:   in,
		selected: map[int]bool{},
	}
}

func (m onboardModel) Init() tea.Cmd {
	return textinput.Blink
}

type onboardedMsg struct {
	profile *storage.Profile
	err     error
}

func (m onboardModel) assembleCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Onboard(m.ctx, engine.OnboardingInput{
			Name:        m.name,
			Arc:         m.arc,
			Goal:        m.goal,
			Avatar:      m.avatar,
			Preferences: m.prefs,
		})
		return onboardedMsg{profile: p, err: err}
	}
}

func (m onboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case onboardedMsg:
		if msg.err != nil {
			var verr engine.ValidationError
			if errors.As(msg.err, &verr) {
				// Validation failures keep the user in the flow.
				m.warn = verr.Error()
				m.step = stepName
				m.cursor = 0
				return m, nil
			}
			m.err = msg.err
			return m, tea.Quit
		}
		m.profile = msg.profile
		m.step = stepDone
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		if m.step == stepName {
			if msg.String() == "enter" {
				if strings.TrimSpace(m.nameIn.Value()) == "" {
					m.warn = "name is required"
					return m, nil
				}
				m.name = strings.TrimSpace(m.nameIn.Value())
				m.warn = ""
				m.step = stepArc
				return m, nil
			}
			var cmd tea.Cmd
			m.nameIn, cmd = m.nameIn.Update(msg)
			return m, cmd
		}
		return m.handleChoiceKey(msg)
	}

	if m.step == stepName {
		var cmd tea.Cmd
		m.nameIn, cmd = m.nameIn.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m onboardModel) handleChoiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.choiceCount()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case " ":
		if m.step == stepFocus {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case "enter":
		return m.confirmChoice()
	}
	return m, nil
}

func (m onboardModel) choiceCount() int {
	switch m.step {
	case stepArc:
		return len(arcOptions)
	case stepGoal:
		return len(goalOptions)
	case stepAvatar:
		return len(m.avatars)
	case stepFocus:
		return len(focusOptions)
	case stepDifficulty:
		return len(difficultyOptions)
	case stepTime:
		return len(timeOptions)
	}
	return 0
}

func (m onboardModel) confirmChoice() (tea.Model, tea.Cmd) {
	m.warn = ""
	switch m.step {
	case stepArc:
		m.arc = arcOptions[m.cursor].arc
		m.avatars = engine.AvatarsForArc(m.arc)
		m.step = stepGoal
	case stepGoal:
		m.goal = goalOptions[m.cursor].goal
		m.step = stepAvatar
	case stepAvatar:
		m.avatar = m.avatars[m.cursor]
		m.step = stepFocus
	case stepFocus:
		var areas []string
		for i, opt := range focusOptions {
			if m.selected[i] {
				areas = append(areas, opt)
			}
		}
		if len(areas) == 0 {
			m.warn = "pick at least one focus area (space to select)"
			return m, nil
		}
		m.prefs.FocusAreas = areas
		m.step = stepDifficulty
	case stepDifficulty:
		m.prefs.Difficulty = difficultyOptions[m.cursor]
		m.step = stepTime
	case stepTime:
		m.prefs.TimeAvailable = timeOptions[m.cursor]
		return m, m.assembleCmd()
	}
	m.cursor = 0
	return m, nil
}

func (m onboardModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconArc, "Arc Ascension — Begin Your Transformation") + "\n\n")
	if m.warn != "" {
		b.WriteString(ui.Warn.Render(ui.IconWarn+" "+m.warn) + "\n\n")
	}

	switch m.step {
	case stepName:
		b.WriteString(ui.H2.Render("What's your name?") + "\n")
		b.WriteString(m.nameIn.View() + "\n\n")
		b.WriteString(ui.Muted.Render("enter: continue · esc: quit") + "\n")
	case stepArc:
		b.WriteString(ui.H2.Render("Choose Your Arc") + "\n")
		for i, opt := range arcOptions {
			b.WriteString(m.choiceLine(i, ui.ArcStyle(string(opt.arc)).Render(opt.title), opt.desc))
		}
		b.WriteString(m.choiceHelp(false))
	case stepGoal:
		b.WriteString(ui.H2.Render("Choose Your Goal") + "\n")
		for i, opt := range goalOptions {
			b.WriteString(m.choiceLine(i, opt.title, opt.desc))
		}
		b.WriteString(m.choiceHelp(false))
	case stepAvatar:
		b.WriteString(ui.H2.Render("Choose Your Avatar") + "\n")
		for i, a := range m.avatars {
			b.WriteString(m.choiceLine(i, a.Name, a.Series))
		}
		b.WriteString(m.choiceHelp(false))
	case stepFocus:
		b.WriteString(ui.H2.Render("Pick Your Focus Areas") + "\n")
		for i, opt := range focusOptions {
			mark := "[ ]"
			if m.selected[i] {
				mark = ui.Good.Render("[x]")
			}
			b.WriteString(m.choiceLine(i, mark+" "+opt, ""))
		}
		b.WriteString(m.choiceHelp(true))
	case stepDifficulty:
		b.WriteString(ui.H2.Render("How hard should daily tasks be?") + "\n")
		for i, opt := range difficultyOptions {
			b.WriteString(m.choiceLine(i, opt, ""))
		}
		b.WriteString(m.choiceHelp(false))
	case stepTime:
		b.WriteString(ui.H2.Render("How much time per day?") + "\n")
		for i, opt := range timeOptions {
			b.WriteString(m.choiceLine(i, opt, ""))
		}
		b.WriteString(m.choiceHelp(false))
	case stepDone:
		b.WriteString(ui.Good.Render(ui.IconSparkle + " Profile created. Your arc begins.\n"))
	}
	return b.String()
}

func (m onboardModel) choiceLine(i int, title, desc string) string {
	cursor := "  "
	if i == m.cursor {
		cursor = ui.SelectedRow.Render("> ")
	}
	line := cursor + title
	if desc != "" {
		line += " " + ui.Muted.Render("— "+desc)
	}
	return line + "\n"
}

func (m onboardModel) choiceHelp(multi bool) string {
	help := "j/k: move · enter: select · esc: quit"
	if multi {
		help = "j/k: move · space: toggle · enter: confirm · esc: quit"
	}
	return "\n" + ui.Muted.Render(help) + "\n"
}
