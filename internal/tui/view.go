package tui

import (
	"fmt"
	"strings"
	"time"
)

// eventPaneSize is the number of recent events shown below the table
const eventPaneSize = 8

// View renders the dashboard
func (m Model) View() string {
	var b strings.Builder

	uptime := (time.Duration(m.status.UptimeSeconds) * time.Second).String()
	header := fmt.Sprintf("vigil  %d site(s)  %s  up %s", m.status.Sites, m.status.Status, uptime)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render("Recent events"))
	b.WriteString("\n")
	if len(m.events) == 0 {
		b.WriteString(dimStyle.Render("  (none yet)"))
		b.WriteString("\n")
	}
	for _, e := range m.events {
		b.WriteString("  ")
		b.WriteString(formatEventLine(e.Timestamp, e.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.connectionError != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf(" disconnected: %v ", m.connectionError)))
	} else {
		b.WriteString(statusBarStyle.Render("q quit  r refresh"))
	}

	return b.String()
}

// renderTable renders the site table with colored status cells
func (m Model) renderTable() string {
	// bubbles/table renders plain text; re-style the status column by line
	lines := strings.Split(m.table.View(), "\n")
	for i, line := range lines {
		for _, status := range []string{"action_fired", "alerting", "degraded", "healthy", "unknown"} {
			if strings.Contains(line, " "+status+" ") {
				styled := statusStyle(status).Render(status)
				lines[i] = strings.Replace(line, status, styled, 1)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// tableHeight returns the table height for the current window size
func (m Model) tableHeight() int {
	h := m.height - eventPaneSize - 6
	if h < 3 {
		h = 3
	}
	return h
}

func formatEventLine(rfc3339, message string) string {
	ts, err := time.Parse(time.RFC3339Nano, rfc3339)
	if err != nil {
		return message
	}
	return dimStyle.Render(ts.Format("15:04:05")) + " " + message
}
