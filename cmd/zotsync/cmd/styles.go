package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	bannerStyle  = lipgloss.NewStyle().Bold(true)
)

func okMark() string {
	return successStyle.Render("✓")
}

func failMark() string {
	return errorStyle.Render("✗")
}

func skipMark() string {
	return skipStyle.Render("⊙")
}

// printBanner prints a title between full-width rules, the shape the
// summary block uses as well.
func printBanner(title string) {
	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Println(bannerStyle.Render(title))
	fmt.Println(rule)
}
