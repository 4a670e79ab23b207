package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubeforge/nxncube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stickerStyles = map[nxncube.Color]lipgloss.Style{
		nxncube.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		nxncube.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		nxncube.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		nxncube.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		nxncube.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		nxncube.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
)

// renderCube renders the cube's unfolded net with colored sticker letters.
func renderCube(c *nxncube.Cube) string {
	var b strings.Builder
	n := c.Size()
	indent := strings.Repeat(" ", 2*n)
	writeRow := func(f nxncube.Face, row int) {
		for col := 0; col < n; col++ {
			color := c.ColorAt(f, row, col)
			b.WriteString(stickerStyles[color].Render(color.String()))
			b.WriteByte(' ')
		}
	}
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(nxncube.FaceU, row)
		b.WriteByte('\n')
	}
	sides := []nxncube.Face{nxncube.FaceL, nxncube.FaceF, nxncube.FaceR, nxncube.FaceB}
	for row := 0; row < n; row++ {
		for _, f := range sides {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(nxncube.FaceD, row)
		b.WriteByte('\n')
	}
	return b.String()
}
