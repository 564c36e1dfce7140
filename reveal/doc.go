// Package reveal makes the invisible boundaries of marked text visible.
//
// It is meant for debugging and inspection: Render draws each marker as a
// styled glyph, Width reports how many terminal cells the text really takes,
// and Boundaries lists where each marker falls in the plain text.
package reveal
