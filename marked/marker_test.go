package marked

import (
	"errors"
	"strings"
	"testing"
)

func TestMarker_Valid(t *testing.T) {
	cases := []struct {
		m    Marker
		want bool
	}{
		{m: U200B, want: true},
		{m: U200BBase16, want: true},
		{m: "", want: false},
		{m: " ", want: false},
		{m: "200b", want: false},
		{m: Marker(strings.ToUpper(string(U200BBase16))), want: false},
	}
	for _, tc := range cases {
		if got := tc.m.Valid(); got != tc.want {
			t.Fatalf("Valid(%q): got %v, want %v", string(tc.m), got, tc.want)
		}
	}
}

func TestParseMarker(t *testing.T) {
	cases := []struct {
		in   string
		want Marker
	}{
		{in: "\u200b", want: U200B},
		{in: "u200b", want: U200B},
		{in: "ffffffff0000200bffffffff", want: U200BBase16},
		{in: "u200b-base16", want: U200BBase16},
	}
	for _, tc := range cases {
		got, err := ParseMarker(tc.in)
		if err != nil {
			t.Fatalf("ParseMarker(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMarker(%q)=%q, want %q", tc.in, got.Name(), tc.want.Name())
		}
	}

	if _, err := ParseMarker("-"); !errors.Is(err, ErrInvalidMarker) {
		t.Fatalf("ParseMarker(%q): err=%v, want ErrInvalidMarker", "-", err)
	}
}

func TestDetectMarker_Precedence(t *testing.T) {
	z, h := string(U200B), string(U200BBase16)
	cases := []struct {
		name string
		text string
		want Marker
	}{
		{name: "empty", text: "", want: U200B},
		{name: "plain", text: "hello world", want: U200B},
		{name: "zero width", text: "a" + z + "b", want: U200B},
		{name: "sentinel", text: "a" + h + "b", want: U200BBase16},
		{name: "both", text: "a" + h + "b" + z, want: U200B},
		{name: "partial sentinel", text: "ffffffff0000200b", want: U200B},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectMarker(tc.text); got != tc.want {
				t.Fatalf("DetectMarker=%s, want %s", got.Name(), tc.want.Name())
			}
		})
	}
}

func TestStripMarkers_RemovesBothForms(t *testing.T) {
	z, h := string(U200B), string(U200BBase16)
	in := z + "a" + h + "b" + z + h + "c"
	for _, first := range []Marker{U200B, U200BBase16} {
		if got, want := StripMarkers(in, first), "abc"; got != want {
			t.Fatalf("StripMarkers(first=%s)=%q, want %q", first.Name(), got, want)
		}
	}
}

func TestStripMarkers_RemovesRebuiltSentinel(t *testing.T) {
	z := string(U200B)
	in := "ffffffff0000" + z + "200bffffffff" + "ffffffff0000200b" + string(U200BBase16) + "ffffffff"
	for _, first := range []Marker{U200B, U200BBase16} {
		got := StripMarkers(in, first)
		if strings.Contains(got, string(U200BBase16)) || strings.Contains(got, z) {
			t.Fatalf("StripMarkers(first=%s)=%q still carries a marker", first.Name(), got)
		}
	}
}
