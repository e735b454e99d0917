// AngelaMos | 2026
// theme.go

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carterperez-dev/taskhabit/internal/domain"
)

const (
	IconTask    = "📝"
	IconHabit   = "🔁"
	IconDone    = "✅"
	IconPending = "⬜"
	IconTrophy  = "🏆"
	IconSparkle = "✨"
	IconFire    = "🔥"
	IconLock    = "🔒"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")
	cAccent  = lipgloss.Color("205")
	cGood    = lipgloss.Color("42")
	cWarn    = lipgloss.Color("214")
	cBad     = lipgloss.Color("196")
	cMuted   = lipgloss.Color("244")
	cGold    = lipgloss.Color("220")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cMuted).
		Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

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

func PriorityText(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return Bad.Render(string(p))
	case domain.PriorityMedium:
		return Warn.Render(string(p))
	default:
		return Muted.Render(string(p))
	}
}

// TaskLine renders one row of a task list.
func TaskLine(t domain.Task) string {
	check := IconPending
	if t.Completed {
		check = IconDone
	}

	kind := IconTask
	if t.IsHabit {
		kind = IconHabit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", check, kind, t.Title)
	fmt.Fprintf(&b, " %s", Muted.Render("["+t.Category.Label()+"]"))
	fmt.Fprintf(&b, " %s", PriorityText(t.Priority))
	if t.IsHabit && t.Streak > 0 {
		fmt.Fprintf(&b, " %s", Gold.Render(fmt.Sprintf("%s %d", IconFire, t.Streak)))
	}
	if t.StartTime != "" {
		fmt.Fprintf(&b, " %s", Muted.Render(t.StartTime))
	}
	fmt.Fprintf(&b, " %s", Muted.Render(t.ID))
	return b.String()
}
