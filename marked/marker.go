package marked

import (
	"errors"
	"fmt"
	"strings"
)

// Marker is the string that encodes a fragment boundary.
type Marker string

const (
	// U200B is the zero width space.
	U200B Marker = "\u200b"

	// U200BBase16 stands in for U200B where the code point itself would be
	// lost or escaped.
	U200BBase16 Marker = "ffffffff0000200bffffffff"
)

// ErrInvalidMarker is returned when a marker other than U200B or U200BBase16
// is supplied.
var ErrInvalidMarker = errors.New("invalid marker")

// Valid reports whether m is one of the recognized markers.
func (m Marker) Valid() bool {
	return m == U200B || m == U200BBase16
}

func (m Marker) String() string { return string(m) }

// Name returns a printable name for m.
func (m Marker) Name() string {
	switch m {
	case U200B:
		return "u200b"
	case U200BBase16:
		return "u200b-base16"
	default:
		return fmt.Sprintf("%q", string(m))
	}
}

// ParseMarker returns s as a Marker, accepting either the marker text itself
// or its Name.
func ParseMarker(s string) (Marker, error) {
	switch s {
	case string(U200B), "u200b":
		return U200B, nil
	case string(U200BBase16), "u200b-base16":
		return U200BBase16, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMarker, s)
}

// DetectMarker reports which marker text carries. U200B wins when both are
// present; text with neither resolves to U200B.
func DetectMarker(text string) Marker {
	if strings.Contains(text, string(U200B)) {
		return U200B
	}
	if strings.Contains(text, string(U200BBase16)) {
		return U200BBase16
	}
	return U200B
}

// StripMarkers removes every occurrence of both marker forms, starting with
// first. Removal repeats until no marker is left, since taking one out can
// join the text around it into a new sentinel.
func StripMarkers(text string, first Marker) string {
	other := U200BBase16
	if first == U200BBase16 {
		other = U200B
	}
	for {
		next := strings.ReplaceAll(text, string(first), "")
		next = strings.ReplaceAll(next, string(other), "")
		if next == text {
			return text
		}
		text = next
	}
}
