package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Brand palette shared by the CLI's terminal output.
var (
	cliPrimary = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#3B82F6"}
	cliSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#22C55E"}
	cliMuted   = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	cliTitle = lipgloss.NewStyle().Foreground(cliPrimary).Bold(true)
	cliDim   = lipgloss.NewStyle().Foreground(cliMuted)
	cliWarn  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})

	successCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cliSuccess).
			Padding(0, 2)

	kvKeyStyle = lipgloss.NewStyle().Foreground(cliMuted).Width(14)
)

// kvPair is a key/value line in a summary block.
type kvPair struct {
	Key   string
	Value string
}

// renderKeyValueLines renders aligned key/value lines for summary output.
func renderKeyValueLines(pairs []kvPair) string {
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, kvKeyStyle.Render(p.Key)+" "+p.Value)
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a bordered success block with a title and
// detail lines.
func renderSuccessCard(title string, details ...string) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(cliSuccess).Bold(true).Render("✓ " + title))
	for _, d := range details {
		if d == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(d)
	}
	return successCard.Render(b.String())
}

// PrintBanner prints the CLI banner with the current version.
func PrintBanner(version string) {
	banner := cliTitle.Render("create-expo-jmobile") + " " + cliDim.Render(version)
	tagline := cliDim.Render("Scaffold a themed Expo Router app")
	fmt.Println()
	fmt.Println(banner)
	fmt.Println(tagline)
	fmt.Println()
}

// renderNextSteps renders the post-generation instructions as terminal
// markdown. Falls back to the raw markdown when the renderer cannot be
// constructed (e.g. unknown terminal background).
func renderNextSteps(appName string) string {
	md := fmt.Sprintf(`## Next steps

1. `+"`cd %s`"+`
2. `+"`npx expo start`"+`

Edit screens under `+"`app/`"+` and shared pieces under `+"`components/`"+`.
Theme tokens live in `+"`constants/theme.ts`"+`.
`, appName)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
