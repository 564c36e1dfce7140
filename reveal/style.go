package reveal

import "github.com/charmbracelet/lipgloss"

// Style controls how revealed text is drawn.
type Style struct {
	Text   lipgloss.Style
	Marker lipgloss.Style

	Glyph         string // drawn for marked.U200B
	SentinelGlyph string // drawn for marked.U200BBase16
}

// DefaultStyle returns a Style bound to the default lipgloss renderer.
func DefaultStyle() Style {
	return StyleFor(lipgloss.DefaultRenderer())
}

// StyleFor returns the default Style bound to r.
func StyleFor(r *lipgloss.Renderer) Style {
	return Style{
		Text:          r.NewStyle(),
		Marker:        r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Glyph:         "·",
		SentinelGlyph: "¤",
	}
}

func (st Style) glyphFor(sentinel bool) string {
	if sentinel {
		if st.SentinelGlyph != "" {
			return st.SentinelGlyph
		}
		return "¤"
	}
	if st.Glyph != "" {
		return st.Glyph
	}
	return "·"
}
