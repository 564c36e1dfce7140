package marked

import "strings"

// Release returns a copy of the fragments. If no boundary operation has run
// yet it performs Insert() first, so reading an untouched Text mutates it.
func (t *Text) Release() []string {
	if !t.Touched() {
		t.log.Trace("default insert on first read")
		t.Insert()
	}
	return cloneStrings(t.fragments)
}

// ValueOf is Release.
func (t *Text) ValueOf() []string { return t.Release() }

// Join joins the released fragments with separator, or with
// Options.Separator when no separator is passed. Only the first separator is
// used.
func (t *Text) Join(separator ...string) string {
	sep := t.opt.Separator
	if len(separator) > 0 {
		sep = separator[0]
	}
	return strings.Join(t.Release(), sep)
}

// ToText joins the released fragments with no separator.
func (t *Text) ToText() string {
	return strings.Join(t.Release(), "")
}

// String implements fmt.Stringer through ToText.
func (t *Text) String() string { return t.ToText() }

// Separate splits the current fragments, joined with no separator, on the
// marker. It reads the fragments as they are and never applies the default
// insertion, so an untouched Text comes back as one piece.
func (t *Text) Separate() []string {
	text := strings.Join(t.fragments, "")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, string(t.marker))
}

// Raw returns the joined text with no marker of either form. The marker is
// re-detected against the materialized fragments, which may carry a
// different form than the one last set.
func (t *Text) Raw() string {
	text := t.ToText()
	t.DetectMarker()
	return StripMarkers(text, t.marker)
}

// ReplaceSeparator drops the marker structure and replaces every separator
// in the plain text with token. An empty separator means DefaultSeparator.
// Like Separate, it leaves an untouched Text untouched.
func (t *Text) ReplaceSeparator(separator, token string) string {
	if separator == "" {
		separator = DefaultSeparator
	}
	plain := strings.Join(t.Separate(), "")
	return strings.Join(strings.Split(plain, separator), token)
}

// Replace is ReplaceSeparator.
func (t *Text) Replace(separator, token string) string {
	return t.ReplaceSeparator(separator, token)
}
