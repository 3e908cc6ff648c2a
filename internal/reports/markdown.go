// Package reports provides daily and weekly report generation for the pomo app.
package reports

import (
	"fmt"
	"strings"
)

// FormatDailyMarkdown renders a daily report as human-readable Markdown.
func FormatDailyMarkdown(report *DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Daily Report: %s\n\n", report.Date.Format("Monday, January 2, 2006"))

	fmt.Fprintf(&b, "## Focus Time\n\n")
	fmt.Fprintf(&b, "- Logged: %s\n", formatHours(report.Focus.Hours))
	if report.Focus.GoalHours > 0 {
		fmt.Fprintf(&b, "- Goal: %s (%.0f%%)\n", formatHours(report.Focus.GoalHours), report.Focus.Progress*100)
	}
	if report.Focus.Streak > 0 {
		fmt.Fprintf(&b, "- Streak: %d day(s)\n", report.Focus.Streak)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Tasks (%d done, %d pending)\n\n", report.Tasks.CompletedCount, report.Tasks.PendingCount)
	if len(report.Tasks.Completed) > 0 {
		b.WriteString("### Completed\n\n")
		for _, t := range report.Tasks.Completed {
			writeTaskLine(&b, t, true)
		}
		b.WriteString("\n")
	}
	if len(report.Tasks.Pending) > 0 {
		b.WriteString("### Pending\n\n")
		for _, t := range report.Tasks.Pending {
			writeTaskLine(&b, t, false)
		}
		b.WriteString("\n")
	}

	if len(report.Goals) > 0 {
		b.WriteString("## Project Goals\n\n")
		for _, goal := range report.Goals {
			fmt.Fprintf(&b, "- %s: %s / %s (%.0f%%)\n",
				goal.Project, formatHours(goal.SpentHours), formatHours(goal.GoalHours), goal.Percentage)
		}
		b.WriteString("\n")
	}

	if report.Routines.TotalCount > 0 {
		fmt.Fprintf(&b, "## Routines (%d/%d)\n\n", report.Routines.CompletedCount, report.Routines.TotalCount)
		for _, r := range report.Routines.Routines {
			marker := "[ ]"
			if r.Done {
				marker = "[x]"
			}
			fmt.Fprintf(&b, "- %s %s: %s / %s\n", marker, r.Name, formatHours(r.Spent), formatHours(r.GoalHours))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n\nGenerated at %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	return b.String()
}

// FormatWeeklyMarkdown renders a weekly report as human-readable Markdown.
func FormatWeeklyMarkdown(report *WeeklyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weekly Report: %s - %s\n\n",
		report.StartDate.Format("Jan 2"), report.EndDate.Format("Jan 2, 2006"))

	fmt.Fprintf(&b, "## Focus Time\n\n")
	fmt.Fprintf(&b, "- Total: %s\n", formatHours(report.Focus.TotalHours))
	fmt.Fprintf(&b, "- Daily average: %s\n", formatHours(report.Focus.DailyAverage))
	if report.Focus.BestDay != "" {
		fmt.Fprintf(&b, "- Best day: %s\n", report.Focus.BestDay)
	}
	b.WriteString("\n")

	b.WriteString("| Day | Focus | Done | Pending |\n")
	b.WriteString("|-----|-------|------|---------|\n")
	for i, day := range report.Focus.ByDay {
		tasks := report.Tasks.ByDay[i]
		fmt.Fprintf(&b, "| %s %s | %s | %d | %d |\n",
			day.DayOfWeek[:3], day.Date, formatHours(day.Hours), tasks.Completed, tasks.Pending)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Tasks\n\n")
	fmt.Fprintf(&b, "- Completed: %d\n", report.Tasks.TotalCompleted)
	fmt.Fprintf(&b, "- Pending: %d\n\n", report.Tasks.TotalPending)
	if len(report.Tasks.ByProject) > 0 {
		b.WriteString("### By Project\n\n")
		for _, pc := range report.Tasks.ByProject {
			fmt.Fprintf(&b, "- %s: %d\n", pc.Project, pc.Count)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n\nGenerated at %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	return b.String()
}

func writeTaskLine(b *strings.Builder, t TaskLine, done bool) {
	marker := "[ ]"
	if done {
		marker = "[x]"
	}
	fmt.Fprintf(b, "- %s %s (%s)", marker, t.Title, t.Project)
	if t.Minutes > 0 {
		fmt.Fprintf(b, " - %dm", t.Minutes)
	}
	if t.Pomodoros > 0 {
		fmt.Fprintf(b, ", %d pomodoro(s)", t.Pomodoros)
	}
	if t.Streak > 1 {
		fmt.Fprintf(b, ", %d day streak", t.Streak)
	}
	b.WriteString("\n")
}

// formatHours renders fractional hours as "1h 30m" or "45m".
func formatHours(hours float64) string {
	minutes := int(hours*60 + 0.5)
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
