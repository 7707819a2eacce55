package display

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// mutedColor is the grey used for unit labels.
const mutedColor = lipgloss.Color("244")

// Renderer writes rows as terminal text.
// The color profile is detected from the writer given to [NewRenderer].
type Renderer struct {
	lg    *lipgloss.Renderer
	plain lipgloss.Style
	bold  lipgloss.Style
	muted lipgloss.Style
}

// NewRenderer returns a renderer for output written to w.
func NewRenderer(w io.Writer) *Renderer {
	lg := lipgloss.NewRenderer(w)
	return &Renderer{
		lg:    lg,
		plain: lg.NewStyle(),
		bold:  lg.NewStyle().Bold(true),
		muted: lg.NewStyle().Foreground(mutedColor),
	}
}

// SetColorProfile overrides the detected color profile.
// termenv.Ascii disables all styling.
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.lg.SetColorProfile(p)
}

// ColorProfile returns the color profile used for rendering.
func (r *Renderer) ColorProfile() termenv.Profile {
	return r.lg.ColorProfile()
}

// Render returns the row as a single line of styled text.
func (r *Renderer) Render(row Row) string {
	var number strings.Builder
	for _, s := range row.Number {
		number.WriteString(r.style(s.Style).Render(s.Text))
	}
	gap := strings.Repeat(" ", row.Spacing)
	label := r.style(row.Label.Style).Render(row.Label.Text)
	return lipgloss.JoinHorizontal(lipgloss.Center, number.String(), gap, label)
}

func (r *Renderer) style(s Style) lipgloss.Style {
	switch s {
	case Bold:
		return r.bold
	case Muted:
		return r.muted
	default:
		return r.plain
	}
}
