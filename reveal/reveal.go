package reveal

import (
	"strings"

	"github.com/volkovasystems/u200b/internal/grapheme"
	"github.com/volkovasystems/u200b/marked"
)

// Render returns text with every occurrence of m drawn as the matching glyph
// in st.Marker, and the text between markers drawn in st.Text. An invalid m
// leaves the text unsplit.
func Render(text string, m marked.Marker, st Style) string {
	if text == "" {
		return ""
	}
	if !m.Valid() {
		return st.Text.Render(text)
	}

	glyph := st.Marker.Render(st.glyphFor(m == marked.U200BBase16))
	pieces := strings.Split(text, string(m))

	var sb strings.Builder
	for i, p := range pieces {
		if i > 0 {
			sb.WriteString(glyph)
		}
		if p != "" {
			sb.WriteString(st.Text.Render(p))
		}
	}
	return sb.String()
}

// RenderText renders the joined form of t with its active marker. Like any
// read of t, it applies the default insertion when t is untouched.
func RenderText(t *marked.Text, st Style) string {
	text := t.ToText()
	return Render(text, t.Marker(), st)
}

// Width returns the number of terminal cells text occupies. U+200B takes
// none, so text marked with U200B is exactly as wide as its raw form.
func Width(text string) int {
	return grapheme.Width(text)
}

// Boundaries returns, for each occurrence of m in text, the grapheme column
// of the marker-free text at which it falls.
func Boundaries(text string, m marked.Marker) []int {
	if text == "" || !m.Valid() {
		return nil
	}
	pieces := strings.Split(text, string(m))
	if len(pieces) < 2 {
		return nil
	}

	out := make([]int, 0, len(pieces)-1)
	col := 0
	for _, p := range pieces[:len(pieces)-1] {
		col += grapheme.Count(p)
		out = append(out, col)
	}
	return out
}
