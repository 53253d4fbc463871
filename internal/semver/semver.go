// Package semver parses the dotted numeric version names used for installed
// Python versions and derives the executable names each version ships.
package semver

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// ErrInvalidVersion is returned when a version string is not major.minor[.patch]
var ErrInvalidVersion = errors.New("invalid version")

// Version is a parsed major.minor.patch version. Patch is zero when the
// source string had only two components.
type Version struct {
	Major int
	Minor int
	Patch int

	// HasPatch records whether the patch component was present
	HasPatch bool
}

// Parse parses "major.minor" or "major.minor.patch". Every component must be
// a non-empty run of decimal digits.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := parseComponent(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}

	v := Version{Major: nums[0], Minor: nums[1]}
	if len(nums) == 3 {
		v.Patch = nums[2]
		v.HasPatch = true
	}
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseComponent(p string) (int, error) {
	if p == "" {
		return 0, ErrInvalidVersion
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return 0, ErrInvalidVersion
		}
	}
	return strconv.Atoi(p)
}

// String formats the version the way it was parsed.
func (v Version) String() string {
	if v.HasPatch {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1 if a < b, 0 if equal, 1 if a > b.
// A missing patch compares as zero.
func Compare(a, b Version) int {
	switch {
	case a.Major != b.Major:
		return sign(a.Major - b.Major)
	case a.Minor != b.Minor:
		return sign(a.Minor - b.Minor)
	default:
		return sign(a.Patch - b.Patch)
	}
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

// InterpreterNames returns the interpreter executables a version directory
// holds: python and pythonw, each with a major suffix, a major+minor suffix
// (e.g. python39) and no suffix.
func (v Version) InterpreterNames() []string {
	var names []string
	for _, suffix := range []string{v.majorSuffix(), v.majorMinorSuffix(), ""} {
		names = append(names, ExeName("python"+suffix), ExeName("pythonw"+suffix))
	}
	return names
}

// ScriptNames returns the package-manager executables found in a version's
// Scripts directory.
func (v Version) ScriptNames() []string {
	var names []string
	for _, suffix := range []string{"", v.majorSuffix(), v.majorMinorSuffix()} {
		names = append(names, ExeName("pip"+suffix))
	}
	for _, suffix := range []string{"", fmt.Sprintf("-%d.%d", v.Major, v.Minor)} {
		names = append(names, ExeName("easy_install"+suffix))
	}
	return names
}

func (v Version) majorSuffix() string {
	return strconv.Itoa(v.Major)
}

func (v Version) majorMinorSuffix() string {
	return fmt.Sprintf("%d%d", v.Major, v.Minor)
}

// ExeName appends the platform executable extension to name.
func ExeName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
