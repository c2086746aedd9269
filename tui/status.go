package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// adventurer's vitals and location. The bar turns red while in combat.
func (m Model) renderStatusBar() string {
	s := m.engine.State
	p := s.Player

	location := "???"
	if room := s.CurrentRoom(); room != nil {
		location = room.Name
	}

	left := fmt.Sprintf(" %s  Lv %d  HP %d/%d  %dg", p.Name, p.Level, p.HP, p.MaxHP, p.Gold)
	right := fmt.Sprintf("XP %d/%d  T:%d ", p.XP, p.XPToNext, s.TurnCount)

	middle := location
	if s.InCombat && s.CurrentEnemy != nil {
		middle = fmt.Sprintf("%s  !! %s %d/%d HP !!", location, s.CurrentEnemy.Name, s.CurrentEnemy.HP, s.CurrentEnemy.MaxHP)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 2 {
		middle = location
		gap = m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	}
	if gap < 2 {
		gap = 2
	}
	leftPad := gap / 2
	rightPad := gap - leftPad

	bar := left + strings.Repeat(" ", leftPad) + middle + strings.Repeat(" ", rightPad) + right

	style := styleStatusBar
	if s.InCombat {
		style = styleStatusCombat
	}
	return style.Width(m.width).Render(bar)
}
