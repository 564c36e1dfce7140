// Package marked implements Text, an ordered sequence of string fragments
// whose boundaries are recorded with an invisible marker.
//
// The joined form of a Text looks exactly like the plain concatenation of its
// fragments, yet the boundaries can be recovered with Separate. Two marker
// forms are recognized: U200B (the zero width space) and U200BBase16, a
// hexadecimal sentinel used where the raw code point cannot travel.
//
// Reading an untouched Text (Release, Join, ToText, ValueOf and everything
// built on them) first applies a default Insert, so the first read places the
// marker between every pair of adjacent fragments.
package marked
