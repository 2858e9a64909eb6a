package vertools

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	// ErrParse is returned when no well-formed __version__ assignment is found.
	ErrParse = errors.New("failed to find __version__ assignment")
	// ErrInvalidKind is returned for an increment kind other than major, minor or micro.
	ErrInvalidKind = errors.New("invalid increment kind")
)

// versionPattern matches a whole line assigning a quoted X.Y.Z string to
// __version__. Trailing content after the closing quote rejects the line.
var versionPattern = regexp.MustCompile(`(?m)^__version__\s*=\s*['"](\d+\.\d+\.\d+)['"]\s*$`)

// Kind selects which version component Increment bumps.
type Kind int

const (
	Major Kind = iota + 1
	Minor
	Micro
)

// Kinds lists the valid increment kinds in order of significance.
var Kinds = []Kind{Major, Minor, Micro}

func (k Kind) String() string {
	switch k {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Micro:
		return "micro"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "major", "minor" or "micro" (in any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	case "micro":
		return Micro, nil
	}
	return 0, fmt.Errorf("%w: %q (want one of major, minor, micro)", ErrInvalidKind, s)
}

// SemanticVersion is an immutable major.minor.micro triple. Components are
// arbitrary-precision, so incrementing never overflows.
type SemanticVersion struct {
	major, minor, micro *big.Int
}

// New builds a SemanticVersion from fixed-size components.
func New(major, minor, micro uint64) SemanticVersion {
	return SemanticVersion{
		major: new(big.Int).SetUint64(major),
		minor: new(big.Int).SetUint64(minor),
		micro: new(big.Int).SetUint64(micro),
	}
}

// Major returns a copy of the major component.
func (v SemanticVersion) Major() *big.Int { return copyInt(v.major) }

// Minor returns a copy of the minor component.
func (v SemanticVersion) Minor() *big.Int { return copyInt(v.minor) }

// Micro returns a copy of the micro component.
func (v SemanticVersion) Micro() *big.Int { return copyInt(v.micro) }

// String renders the version as "major.minor.micro" with no prefix.
func (v SemanticVersion) String() string {
	return v.Major().String() + "." + v.Minor().String() + "." + v.Micro().String()
}

// Equal reports whether both versions have identical components.
func (v SemanticVersion) Equal(o SemanticVersion) bool {
	return Compare(v, o) == 0
}

// canonical returns the "v"-prefixed form understood by x/mod/semver.
func (v SemanticVersion) canonical() string {
	return "v" + v.String()
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b.
func Compare(a, b SemanticVersion) int {
	return semver.Compare(a.canonical(), b.canonical())
}

// copyInt treats a nil component as zero so the zero SemanticVersion is 0.0.0.
func copyInt(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x)
}

// Parse extracts the version assigned to __version__ in contents.
// The first matching line wins.
func Parse(contents string) (SemanticVersion, error) {
	m := versionPattern.FindStringSubmatch(contents)
	if m == nil {
		return SemanticVersion{}, ErrParse
	}
	return parseTriple(m[1])
}

// parseTriple converts a "X.Y.Z" string of decimal digits into a version.
func parseTriple(s string) (SemanticVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return SemanticVersion{}, fmt.Errorf("%w: unexpected version format %q", ErrParse, s)
	}
	var nums [3]*big.Int
	for i, p := range parts {
		n, ok := new(big.Int).SetString(p, 10)
		if !ok || n.Sign() < 0 {
			return SemanticVersion{}, fmt.Errorf("%w: malformed component %q in %q", ErrParse, p, s)
		}
		nums[i] = n
	}
	return SemanticVersion{major: nums[0], minor: nums[1], micro: nums[2]}, nil
}

// Increment returns v with the component selected by k bumped by one.
// Lower-order components reset to zero; higher-order ones are unchanged.
func Increment(v SemanticVersion, k Kind) (SemanticVersion, error) {
	one := big.NewInt(1)
	major, minor, micro := v.Major(), v.Minor(), v.Micro()

	switch k {
	case Major:
		major.Add(major, one)
		minor.SetInt64(0)
		micro.SetInt64(0)
	case Minor:
		minor.Add(minor, one)
		micro.SetInt64(0)
	case Micro:
		micro.Add(micro, one)
	default:
		return SemanticVersion{}, fmt.Errorf("%w: %s", ErrInvalidKind, k)
	}

	return SemanticVersion{major: major, minor: minor, micro: micro}, nil
}
