package marked

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/volkovasystems/u200b/internal/grapheme"
)

// DefaultSeparator is used by ReplaceSeparator when no separator is given.
const DefaultSeparator = " "

type Options struct {
	Separator    string       // Join separator when none is passed; default: ""
	HistoryLimit int          // default: 1000
	Logger       hclog.Logger // default: null logger
}

// Text is an ordered sequence of fragments plus the log of boundary
// operations that produced its current shape.
//
// A Text is not safe for concurrent use. Reads may mutate it (see Release),
// so callers sharing one across goroutines must serialize every call.
type Text struct {
	original  []string
	fragments []string
	history   []Operation
	marker    Marker
	version   uint64

	opt Options
	log hclog.Logger
}

// New builds a Text from values using default Options.
//
// Values are flattened one level ([]string, []any and []fmt.Stringer are
// spliced in) and coerced to text: strings as is, []byte as UTF-8,
// fmt.Stringer through String, errors through Error, and numbers and bools
// through fmt.Sprint. A nested *Text contributes its current fragments
// joined, without being read through Release, so it is left as it was.
// Anything else, and anything that coerces to the empty string, is dropped.
func New(values ...any) *Text {
	return NewWithOptions(Options{}, values...)
}

func NewWithOptions(opt Options, values ...any) *Text {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if opt.HistoryLimit < 0 {
		opt.HistoryLimit = 1
	}
	if opt.Logger == nil {
		opt.Logger = hclog.NewNullLogger()
	}

	texts, dropped := textValues(values, false)
	t := &Text{
		original:  texts,
		fragments: cloneStrings(texts),
		marker:    DetectMarker(strings.Join(texts, "")),
		opt:       opt,
		log:       opt.Logger,
	}
	if dropped > 0 {
		t.log.Trace("dropped non-text values", "count", dropped)
	}
	return t
}

// Original returns the fragments as supplied to the constructor.
func (t *Text) Original() []string { return cloneStrings(t.original) }

// Fragments returns the current fragments without triggering the default
// insertion that Release performs.
func (t *Text) Fragments() []string { return cloneStrings(t.fragments) }

// Len returns the number of current fragments.
func (t *Text) Len() int { return len(t.fragments) }

func (t *Text) Marker() Marker { return t.marker }

// Width returns the terminal cell width of the current fragments joined.
// U200B takes no cells; U200BBase16 takes one per byte. It does not apply the
// default insertion.
func (t *Text) Width() int {
	return grapheme.Width(strings.Join(t.fragments, ""))
}

// Version increases on every mutation, including the implicit insertion
// performed by the first read.
func (t *Text) Version() uint64 { return t.version }

// SetMarker switches the marker used by later operations. Fragments already
// marked keep their marker.
func (t *Text) SetMarker(m Marker) error {
	if !m.Valid() {
		t.log.Debug("rejected marker", "marker", m.Name())
		return fmt.Errorf("%w: %q", ErrInvalidMarker, string(m))
	}
	if m != t.marker {
		t.marker = m
		t.version++
	}
	return nil
}

// DetectMarker resets the marker to whichever form the joined fragments
// carry. See the package level DetectMarker for precedence.
func (t *Text) DetectMarker() *Text {
	m := DetectMarker(strings.Join(t.fragments, ""))
	if m != t.marker {
		t.marker = m
		t.version++
	}
	return t
}

// Clear restores the constructor fragments and forgets the history. The
// marker is kept.
func (t *Text) Clear() *Text {
	t.fragments = cloneStrings(t.original)
	t.history = nil
	t.version++
	t.log.Trace("cleared", "fragments", len(t.fragments), "version", t.version)
	return t
}

// Revert is Clear.
func (t *Text) Revert() *Text { return t.Clear() }

func cloneStrings(in []string) []string {
	return append([]string(nil), in...)
}
