package marked

import (
	"regexp"
	"strings"
)

// Append adds values after the current fragments and then suffixes every
// fragment, old and new, with the marker.
func (t *Text) Append(values ...any) *Text {
	added := t.mutatorValues(values)
	all := append(cloneStrings(t.fragments), added...)
	m := string(t.marker)
	for i := range all {
		all[i] += m
	}
	t.fragments = all
	t.record(OpAppend)
	return t
}

// Prepend adds values before the current fragments and then prefixes every
// fragment, new and old, with the marker.
func (t *Text) Prepend(values ...any) *Text {
	added := t.mutatorValues(values)
	all := append(added, t.fragments...)
	m := string(t.marker)
	for i := range all {
		all[i] = m + all[i]
	}
	t.fragments = all
	t.record(OpPrepend)
	return t
}

// insertGlue is placed after the marker while joining and then split away,
// so any fragment that already holds it is split there as well.
const insertGlue = "[,]"

// Insert adds values after the current fragments, joins everything with the
// marker followed by insertGlue, and splits the result on insertGlue. Each
// resulting fragment but the last ends with the marker. An empty Text
// becomes a single empty fragment.
func (t *Text) Insert(values ...any) *Text {
	added := t.mutatorValues(values)
	all := append(cloneStrings(t.fragments), added...)
	joined := strings.Join(all, string(t.marker)+insertGlue)
	t.fragments = strings.Split(joined, insertGlue)
	t.record(OpInsert)
	return t
}

// InsertAt adds values after the current fragments and replaces the first
// match of pattern in each fragment with the marker. Fragments without a
// match are left as they are. A nil pattern makes InsertAt behave as Insert.
func (t *Text) InsertAt(pattern *regexp.Regexp, values ...any) *Text {
	if pattern == nil {
		return t.Insert(values...)
	}
	added := t.mutatorValues(values)
	all := append(cloneStrings(t.fragments), added...)
	for i, f := range all {
		all[i] = replaceFirst(pattern, f, string(t.marker))
	}
	t.fragments = all
	t.record(OpInsert)
	return t
}

func (t *Text) mutatorValues(values []any) []string {
	texts, dropped := textValues(values, true)
	if dropped > 0 {
		t.log.Trace("dropped non-text values", "count", dropped)
	}
	return texts
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) - (loc[1] - loc[0]) + len(repl))
	sb.WriteString(s[:loc[0]])
	sb.WriteString(repl)
	sb.WriteString(s[loc[1]:])
	return sb.String()
}
