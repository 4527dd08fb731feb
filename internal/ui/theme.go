package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Arc Ascension theme (CLI + TUI).
// Kept intentionally small: reusable styles, per-arc accents, a few emojis.

const (
	IconArc     = "🌀"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFlame   = "🔥"
	IconBrain   = "🧠"
	IconMuscle  = "💪"
	IconStar    = "🌟"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLoop    = "🔁"
	IconScroll  = "📜"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

// arcColors maps each narrative arc to its accent color.
var arcColors = map[string]lipgloss.Color{
	"hero":       cGold,
	"villain":    cBad,
	"redemption": lipgloss.Color("99"), // purple
	"inter":      cPrimary,
}

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// ArcStyle returns a bold style in the arc's accent color.
func ArcStyle(arc string) lipgloss.Style {
	c, ok := arcColors[strings.ToLower(strings.TrimSpace(arc))]
	if !ok {
		c = cAccent
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Meter renders a labeled text progress bar, value out of total.
func Meter(label string, value, total, width int) string {
	return fmt.Sprintf("%s %s %s", Key.Render(label+":"), Bar(value, total, width), Muted.Render(fmt.Sprintf("%d/%d", value, total)))
}

// Bar renders a plain [###---] progress bar.
func Bar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// TaskCheckbox renders a task's completion state.
func TaskCheckbox(completed bool) string {
	if completed {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
