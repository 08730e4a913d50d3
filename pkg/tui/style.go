package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/unowned-ai/reflections/pkg/insights"
)

// UI styles and layout settings
// Color palette "Blue Moon" from https://gogh-co.github.io/Gogh/
const (
	colorGray     = "#353b52"
	colorDim      = "#6c7393"
	colorWhite    = "#ffffff"
	colorGreen    = "#acfab4"
	colorGreenDim = "#b4c4b4"
	colorRed      = "#e61f44"
	colorRedDim   = "#d06178"
	colorPurple   = "#b9a3eb"
	colorBlue     = "#89ddff"

	bordersAndPaddingWidth = 4
	sparklineHeight        = 6
	textareaHeight         = 3
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue)).
			Background(lipgloss.Color(colorGray)).
			Padding(0, 2).Align(lipgloss.Center)
	subtitleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray)).
			Background(lipgloss.Color(colorGreen))
	dangerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorGray)).
				Background(lipgloss.Color(colorRed))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPurple))
	moodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen))
	sparkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlue))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorGray)).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDim))
)

// Function to colorize text based on its status
// 0 (default) - neutral, 1 - green, 2 - red
func TextStatusColorize(text string, status int) string {
	switch status {
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreenDim)).Render(text)
	case 2:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorRedDim)).Render(text)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim)).Render(text)
	}
}

// Generates pointer symbol when line in focus
func generateLinePointer(isPoint bool, length int) string {
	if isPoint {
		return ">" + strings.Repeat(" ", length-1)
	}
	return strings.Repeat(" ", length)
}

// cloudWordStyle maps a theme weight onto terminal attributes. Terminals
// have one font size, so size becomes bold/underline and opacity becomes
// a color ramp from dim to bright.
func cloudWordStyle(w insights.CloudWeight) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch {
	case w.Opacity >= 1:
		style = style.Foreground(lipgloss.Color(colorBlue))
	case w.Opacity >= 0.75:
		style = style.Foreground(lipgloss.Color(colorPurple))
	case w.Opacity >= 0.6:
		style = style.Foreground(lipgloss.Color(colorGreenDim))
	default:
		style = style.Foreground(lipgloss.Color(colorDim))
	}
	if w.Size >= 1.5 {
		style = style.Bold(true)
	}
	if w.Size >= 2.5 {
		style = style.Underline(true)
	}
	return style
}

// moodBar draws the slider, e.g. "◀ 7/10 ▶ ■■■■■■■□□□".
func moodBar(mood int, focused bool) string {
	bar := strings.Repeat("■", mood) + strings.Repeat("□", 10-mood)
	left, right := "  ", "  "
	if focused {
		left, right = "◀ ", " ▶"
	}
	return left + moodStyle.Render(bar) + right + textStyle.Render(" "+strconv.Itoa(mood)+"/10")
}

// confirmOptions renders the yes/no pair with the current choice highlighted.
func confirmOptions(yesSelected bool) string {
	yesOpt, noOpt := "Yes", "No"
	if yesSelected {
		yesOpt = dangerSelectedStyle.Render(" >" + yesOpt)
		noOpt = inactiveStyle.Render("  " + noOpt)
	} else {
		yesOpt = inactiveStyle.Render("  " + yesOpt)
		noOpt = selectedStyle.Render(" >" + noOpt)
	}
	return yesOpt + "\n" + noOpt
}
