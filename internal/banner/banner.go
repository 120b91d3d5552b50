package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Info struct {
	Address string
	DocRoot string
	Mode    string
	Version string
}

// Render lays out info as a bordered box using the given colour profile.
func Render(info Info, profile termenv.Profile) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		PaddingBottom(1)

	keyStyle := r.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Width(10)

	valueStyle := r.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Bold(true)

	boxStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(0, 2)

	rows := [][2]string{
		{"address", "http://" + info.Address},
		{"root", info.DocRoot},
		{"mode", info.Mode},
		{"version", info.Version},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("hello_server"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(row[0]), valueStyle.Render(row[1])))
	}

	return boxStyle.Render(b.String())
}

// Print writes the banner to w, colouring it only when w is a terminal
// that supports it.
func Print(w io.Writer, info Info) error {
	profile := termenv.NewOutput(w).EnvColorProfile()
	_, err := fmt.Fprintln(w, Render(info, profile))
	return err
}
