package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const AppName = "poddeck"

// ASCII art logo lines for poddeck - canonical definition
var LogoLines = []string{
	"▄▄▄▄▄   ▄▄▄▄  ▄▄▄▄▄  ▄▄▄▄▄  ▄▄▄▄▄ ▄▄▄▄ ▄   ▄",
	"█   █ █    █ █   ██ █   ██ █     █    █ ▄▀ ",
	"█▀▀▀▀ █    █ █    █ █    █ █▀▀▀  █    █▀█  ",
	"█     █▄▄▄▄█ █▄▄▄█▀ █▄▄▄█▀ █▄▄▄▄ █▄▄▄ █  ▀▄",
}

const CompactLogo = "poddeck ›"

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#FFA86B"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#4ECDC4"),
}

var (
	PrimaryColor   = lipgloss.Color("#FF6B6B")
	SecondaryColor = lipgloss.Color("#4ECDC4")
	AccentColor    = lipgloss.Color("#95E1D3")

	BackgroundColor = lipgloss.Color("#1A1A2E")
	SurfaceColor    = lipgloss.Color("#16213E")
	TextColor       = lipgloss.Color("#EAEAEA")
	MutedColor      = lipgloss.Color("#94A3B8")

	ErrorColor   = lipgloss.Color("#EF4444")
	SuccessColor = lipgloss.Color("#10B981")
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Bold(true).
			Padding(0, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	PillStyle = lipgloss.NewStyle().
			Foreground(BackgroundColor).
			Background(SecondaryColor).
			Padding(0, 1)

	ModalTextStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	TimeStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Faint(true)
)

func GetWelcomeMessage() string {
	return GetCompactBanner("No shows match the current filters")
}

func GetCompactBanner(message string) string {
	var coloredLines []string
	for _, line := range LogoLines {
		coloredLines = append(coloredLines, LogoStyle.Render(line))
	}

	logo := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		HelpStyle.Render(message),
	)
}

// ShowBanner prints the startup banner to stdout before the program
// takes over the terminal.
func ShowBanner(version string) {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)
	lines[len(LogoLines)] = ""

	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("    Podcast Catalog Browser %s", versionTag))
	} else {
		lines = append(lines, "    Podcast Catalog Browser")
	}

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}
		colorIdx := i % len(BannerColors)
		style := lipgloss.NewStyle().
			Foreground(BannerColors[colorIdx]).
			Bold(i < len(LogoLines))
		coloredLines = append(coloredLines, style.Render(line))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SecondaryColor).
		Padding(1, 3).
		MarginTop(1)

	banner := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	fmt.Println(lipgloss.NewStyle().
		Width(70).
		Align(lipgloss.Center).
		MarginBottom(1).
		Render(borderStyle.Render(banner)))
}
