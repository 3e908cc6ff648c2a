// Package ui provides terminal user interface components for the pomo app.
package ui

import (
	"fmt"
	"strings"
	"time"

	"pomo/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// sparkLevels maps a normalized value to a bar glyph.
var sparkLevels = []rune(" ▁▂▃▄▅▆▇█")

// StatsPane shows daily goal totals, the focus streak, and a 7-day focus
// hours sparkline from the stats log.
type StatsPane struct {
	store   *store.Store
	styles  *Styles
	focused bool
	width   int
	height  int
}

// NewStatsPane creates a new stats pane.
func NewStatsPane(st *store.Store, styles *Styles) *StatsPane {
	return &StatsPane{store: st, styles: styles}
}

// SetSize sets the pane dimensions.
func (p *StatsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *StatsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *StatsPane) IsFocused() bool {
	return p.focused
}

// Update handles messages for the stats pane. The pane is read-only; it
// re-renders from the store on every view.
func (p *StatsPane) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// View renders the stats pane.
func (p *StatsPane) View() string {
	var b strings.Builder

	b.WriteString(p.styles.PaneTitleStyle.Render("STATS"))
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	// Daily goal summary
	goals := p.store.DailyGoalSummary()
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Goal:   ") +
		p.styles.StatValueStyle.Render(formatGoalHours(goals.GoalHours)))
	b.WriteString("\n")
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Logged: ") +
		p.styles.StatValueStyle.Render(formatGoalHours(goals.SpentHours)))
	b.WriteString("\n")
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Left:   ") +
		p.styles.StatValueStyle.Render(formatGoalHours(goals.RemainingHours)))
	b.WriteString("\n\n")

	// Focus streak
	if streak := p.store.FocusStreak(); streak > 0 {
		b.WriteString("  " + p.styles.StreakStyle.Render(fmt.Sprintf("🔥 %d day focus streak", streak)))
		b.WriteString("\n\n")
	}

	// Last 7 days of focus hours
	b.WriteString("  " + p.styles.StatLabelStyle.Render("Last 7 days"))
	b.WriteString("\n")
	b.WriteString(p.renderSparkline(p.store.RecentStats(7)))
	b.WriteString("\n\n")

	// Routine goals for today
	routines := p.store.Routines()
	if len(routines) > 0 {
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Routines"))
		b.WriteString("\n")
		for _, r := range routines {
			marker := p.styles.TaskCheckboxPending
			if r.TimeGoalHours > 0 && r.TimeSpent >= r.TimeGoalHours {
				marker = p.styles.TaskCheckboxDone
			}
			name := runewidth.Truncate(r.Name, max(8, p.width-18), "..")
			b.WriteString(fmt.Sprintf("  %s %s %s\n", marker, name,
				p.styles.StatLabelStyle.Render(fmt.Sprintf("%.1f/%.1fh", r.TimeSpent, r.TimeGoalHours))))
		}
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// renderSparkline draws the focus hours of the given days as a bar strip
// with weekday initials underneath. Days arrive oldest first.
func (p *StatsPane) renderSparkline(days []store.DayStat) string {
	var maxHours float64
	for _, d := range days {
		if d.Hours > maxHours {
			maxHours = d.Hours
		}
	}

	var bars, labels strings.Builder
	for _, d := range days {
		level := 0
		if maxHours > 0 {
			level = int(d.Hours / maxHours * float64(len(sparkLevels)-1))
		}
		bars.WriteRune(sparkLevels[level])
		bars.WriteRune(' ')

		if t, err := time.ParseInLocation(store.DateFormat, d.Date, time.Local); err == nil {
			labels.WriteString(t.Format("Mon")[:1])
		} else {
			labels.WriteString("?")
		}
		labels.WriteRune(' ')
	}

	total := 0.0
	for _, d := range days {
		total += d.Hours
	}

	return "  " + p.styles.StatValueStyle.Render(strings.TrimRight(bars.String(), " ")) + "\n" +
		"  " + p.styles.StatLabelStyle.Render(strings.TrimRight(labels.String(), " ")) + "\n" +
		"  " + p.styles.StatLabelStyle.Render(fmt.Sprintf("%.1fh this week", total))
}

// formatGoalHours renders fractional hours as "2.0h".
func formatGoalHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}
