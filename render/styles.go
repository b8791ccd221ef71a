// SPDX-License-Identifier: MIT

package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvlinalg/linsys"
)

// styles is the palette of one output stream.
type styles struct {
	heading lipgloss.Style
	muted   lipgloss.Style
	status  map[linsys.Classification]lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#888899")),
		status: map[linsys.Classification]lipgloss.Style{
			linsys.Unique:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88")),
			linsys.Infinite:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00")),
			linsys.Inconsistent: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")),
		},
	}
}
