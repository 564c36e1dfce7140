package u200b

import (
	_ "embed"
	"regexp"
	"strings"
)

// The VERSION file is the single source of the release number.
//
//go:embed VERSION
var rawVersion string

var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the release number of this module, e.g. "0.1.0".
func Version() string {
	return strings.TrimSpace(rawVersion)
}

// VersionTag is Version with the "v" prefix Go module tags carry.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver checks v against SemVer 2.0.0, ignoring surrounding whitespace.
// A leading "v" is rejected: pass Version, not VersionTag.
func IsSemver(v string) bool {
	return semverPattern.MatchString(strings.TrimSpace(v))
}
