package vertools

import (
	"fmt"
	"os"
)

// Result holds metadata about a single read or bump.
type Result struct {
	Old     SemanticVersion // Version found in the file.
	New     SemanticVersion // Version after applying Kind; equals Old when Kind is zero.
	Kind    Kind            // Component that was bumped, or zero for a plain read.
	Written bool            // Whether the file was rewritten with New.
}

// ReadFile reads path and extracts its __version__ assignment.
func ReadFile(path string) (SemanticVersion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("failed to read version file: %w", err)
	}
	v, err := Parse(string(data))
	if err != nil {
		return SemanticVersion{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// WriteFile replaces the version digits of the __version__ assignment in
// path with v. Every other byte of the file, quotes included, is preserved.
func WriteFile(path string, v SemanticVersion) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat version file: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read version file: %w", err)
	}

	loc := versionPattern.FindSubmatchIndex(data)
	if loc == nil {
		return fmt.Errorf("%s: %w", path, ErrParse)
	}
	start, end := loc[2], loc[3]

	out := make([]byte, 0, len(data)+8)
	out = append(out, data[:start]...)
	out = append(out, v.String()...)
	out = append(out, data[end:]...)

	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write version file: %w", err)
	}
	return nil
}

// Run reads the version in path and, when kind is non-zero, bumps it.
// With write set, a bumped version is written back to path.
//
// Supported kind values are Major, Minor, Micro, or zero for a plain read.
func Run(path string, kind Kind, write bool) (Result, error) {
	var res Result

	cur, err := ReadFile(path)
	if err != nil {
		return res, err
	}
	res.Old = cur
	res.New = cur

	if kind == 0 {
		return res, nil
	}

	next, err := Increment(cur, kind)
	if err != nil {
		return res, err
	}
	if Compare(next, cur) <= 0 {
		return res, fmt.Errorf("new version (%s) does not advance current version (%s)", next, cur)
	}
	res.New = next
	res.Kind = kind

	if write {
		if err := WriteFile(path, next); err != nil {
			return res, err
		}
		res.Written = true
	}
	return res, nil
}
