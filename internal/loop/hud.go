package loop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hudLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	hudValue  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	hudAccent = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	hudWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	hudHelp   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const helpLine = "space strategy · arrows/wasd shove · g gravity · r reseed · p pause · q quit"

// hudLines renders the status lines shown under the arena.
func (s *Session) hudLines() []string {
	stats := s.World.Stats()

	field := func(label, value string) string {
		return hudLabel.Render(label+" ") + hudValue.Render(value)
	}

	parts := []string{
		hudLabel.Render("strategy ") + hudAccent.Render(stats.Strategy.String()),
		field("bodies", fmt.Sprint(len(s.World.Particles()))),
		field("checks", fmt.Sprint(stats.Checks)),
		field("pass", fmt.Sprintf("%.3fms", float64(stats.PassDuration.Microseconds())/1000)),
		field("energy", fmt.Sprintf("%.4g", s.World.Energy())),
		field("tick", fmt.Sprint(stats.Tick)),
		field("fps", fmt.Sprintf("%.0f", s.fps)),
	}
	status := strings.Join(parts, "  ")

	var flags []string
	if s.GravityOn {
		flags = append(flags, hudWarn.Render("gravity"))
	}
	if s.Paused {
		flags = append(flags, hudWarn.Render("paused"))
	}
	if len(flags) > 0 {
		status += "  " + strings.Join(flags, " ")
	}

	return []string{status, hudHelp.Render(helpLine)}
}
