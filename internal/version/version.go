// Package version parses the semantic versions carried by canonical data and
// recovers the version a generated suite was built from.
package version

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SemverRegex validates semantic version strings.
var SemverRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(-([a-zA-Z0-9]+(\.[a-zA-Z0-9]+)*))?(\+([a-zA-Z0-9]+(\.[a-zA-Z0-9]+)*))?$`)

// recordedRegex matches the version line every dialect writes into a
// suite preamble.
var recordedRegex = regexp.MustCompile(`(?m)^\s*//!?\s*Canonical data version:\s*(\S+)\s*$`)

// Semver is a parsed semantic version.
type Semver struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Build      string
}

// Validate checks that v is a semantic version.
func Validate(v string) error {
	if !SemverRegex.MatchString(v) {
		return fmt.Errorf("invalid semver format: %q", v)
	}
	return nil
}

// Parse parses a semantic version string.
func Parse(v string) (*Semver, error) {
	m := SemverRegex.FindStringSubmatch(v)
	if m == nil {
		return nil, fmt.Errorf("invalid semver format: %q", v)
	}
	// the regex admits digits only in these groups
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return &Semver{Major: major, Minor: minor, Patch: patch, Prerelease: m[5], Build: m[8]}, nil
}

// String returns the semver string representation.
func (s *Semver) String() string {
	out := fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
	if s.Prerelease != "" {
		out += "-" + s.Prerelease
	}
	if s.Build != "" {
		out += "+" + s.Build
	}
	return out
}

// Compare orders s against o by semver precedence. Build metadata is ignored.
func (s *Semver) Compare(o *Semver) int {
	if c := cmp.Compare(s.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(s.Minor, o.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(s.Patch, o.Patch); c != 0 {
		return c
	}
	switch {
	case s.Prerelease == o.Prerelease:
		return 0
	case s.Prerelease == "":
		return 1
	case o.Prerelease == "":
		return -1
	}

	as, bs := strings.Split(s.Prerelease, "."), strings.Split(o.Prerelease, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

// Compare compares two semver strings: -1 if a < b, 0 if equal, 1 if a > b.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// Recorded returns the canonical data version written into the preamble of
// a generated suite, if any.
func Recorded(suite string) (string, bool) {
	m := recordedRegex.FindStringSubmatch(suite)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Downgrade reports whether replacing a suite built from version recorded
// with one built from next moves to older canonical data. Versions that do
// not parse never count as a downgrade.
func Downgrade(recorded, next string) bool {
	c, err := Compare(recorded, next)
	return err == nil && c > 0
}

// compareIdentifier orders prerelease identifiers: numeric ones compare as
// integers and sort before alphanumeric ones.
func compareIdentifier(a, b string) int {
	an, aNum := numeric(a)
	bn, bNum := numeric(b)
	switch {
	case aNum && bNum:
		return cmp.Compare(an, bn)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(a, b)
}

func numeric(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strings.ContainsAny(s, "+-") {
		return 0, false
	}
	return n, true
}
