package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gevp/console/internal/client/models"
)

type palette struct {
	accent  lipgloss.Color
	muted   lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
}

var palettes = map[models.Theme]palette{
	models.ThemeLight: {
		accent:  lipgloss.Color("#1D4ED8"),
		muted:   lipgloss.Color("#6B7280"),
		success: lipgloss.Color("#15803D"),
		danger:  lipgloss.Color("#B91C1C"),
	},
	models.ThemeDark: {
		accent:  lipgloss.Color("#93C5FD"),
		muted:   lipgloss.Color("#9CA3AF"),
		success: lipgloss.Color("#86EFAC"),
		danger:  lipgloss.Color("#FCA5A5"),
	},
}

// renderer styles console output for one theme.
type renderer struct {
	p palette
}

func newRenderer(t models.Theme) renderer {
	p, ok := palettes[t]
	if !ok {
		p = palettes[models.ThemeLight]
	}
	return renderer{p: p}
}

// table renders rows under headers, zebra-striping the body.
func (r renderer) table(headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(r.p.accent).Padding(0, 1)
	even := lipgloss.NewStyle().Padding(0, 1)
	odd := even.Foreground(r.p.muted)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.p.muted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row%2 == 0:
				return even
			default:
				return odd
			}
		}).
		String()
}

func (r renderer) title(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(r.p.accent).Render(s)
}

func (r renderer) success(s string) string {
	return lipgloss.NewStyle().Foreground(r.p.success).Render(s)
}

func (r renderer) failure(s string) string {
	return lipgloss.NewStyle().Foreground(r.p.danger).Render(s)
}

func (r renderer) muted(s string) string {
	return lipgloss.NewStyle().Foreground(r.p.muted).Render(s)
}
