package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/internal/screen"
)

// Table renders a padded text table with a styled header row. Cell values
// may carry ANSI styling; widths are computed on the visible text.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// TicketRows maps tickets into table cells with styled badges.
func TicketRows(tickets []domain.Ticket) [][]string {
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		pkg := ""
		if t.PackageTitle != nil {
			pkg = *t.PackageTitle
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", t.TicketID),
			StatusBadge(t.Status),
			PriorityBadge(t.Priority),
			t.Subject,
			pkg,
			t.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows
}

// TicketHeaders pairs with TicketRows.
func TicketHeaders() []string {
	return []string{"REF", "STATUS", "PRIORITY", "SUBJECT", "PACKAGE", "CREATED"}
}

// Banner renders a screen banner, or nothing when it is empty.
func Banner(b screen.Banner) string {
	switch b.Level {
	case screen.BannerSuccess:
		return successStyle.Render(b.Text)
	case screen.BannerError:
		return errorStyle.Render(b.Text)
	default:
		return ""
	}
}
