package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// BumpKind selects which version field a release increments.
type BumpKind string

// The three supported bump kinds. Any other token is rejected with
// ErrUnknownBumpKind.
const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

const versionSegments = 3 // major.minor.patch

// ParseBumpKind validates a bump token coming from the CLI or a workflow file.
func ParseBumpKind(token string) (BumpKind, error) {
	switch BumpKind(token) {
	case BumpMajor, BumpMinor, BumpPatch:
		return BumpKind(token), nil
	default:
		return "", fmt.Errorf("%w: %q (expected patch, minor or major)", ErrUnknownBumpKind, token)
	}
}

// SemanticVersion is an immutable major.minor.patch triple. The canonical
// textual form is "v<major>.<minor>.<patch>".
type SemanticVersion struct {
	Major int
	Minor int
	Patch int
}

// ParseSemanticVersion parses a tag or version string. A single leading "v"
// is accepted; signs, pre-release suffixes and build metadata are not.
func ParseSemanticVersion(text string) (SemanticVersion, error) {
	trimmed := strings.TrimPrefix(text, "v")

	segments := strings.Split(trimmed, ".")
	if len(segments) != versionSegments {
		return SemanticVersion{}, fmt.Errorf(
			"%w: %q must have exactly three dot-separated segments", ErrInvalidFormat, text,
		)
	}

	numbers := make([]int, versionSegments)
	for i, segment := range segments {
		// ParseUint rejects "+" and "-" prefixes, so "v+1.2.3" fails here.
		value, err := strconv.ParseUint(segment, 10, 31)
		if err != nil {
			return SemanticVersion{}, fmt.Errorf(
				"%w: segment %q of %q is not a non-negative integer", ErrInvalidFormat, segment, text,
			)
		}
		numbers[i] = int(value)
	}

	return SemanticVersion{Major: numbers[0], Minor: numbers[1], Patch: numbers[2]}, nil
}

// Bump returns a new version with the field selected by kind incremented and
// every lower field reset to zero. Unrecognized kinds fail with
// ErrUnknownBumpKind instead of returning the version unchanged.
func (v SemanticVersion) Bump(kind BumpKind) (SemanticVersion, error) {
	switch kind {
	case BumpMajor:
		return SemanticVersion{Major: v.Major + 1, Minor: 0, Patch: 0}, nil
	case BumpMinor:
		return SemanticVersion{Major: v.Major, Minor: v.Minor + 1, Patch: 0}, nil
	case BumpPatch:
		return SemanticVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return SemanticVersion{}, fmt.Errorf("%w: %q", ErrUnknownBumpKind, kind)
	}
}

// String renders the canonical "v<major>.<minor>.<patch>" form.
func (v SemanticVersion) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions lexicographically by (major, minor, patch),
// returning -1, 0 or 1.
func (v SemanticVersion) Compare(other SemanticVersion) int {
	pairs := [versionSegments][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, pair := range pairs {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// DiffKind classifies the transition from previous to next as the single bump
// that produces it. The second return is false when the transition is not a
// clean major, minor or patch step.
func DiffKind(previous, next SemanticVersion) (BumpKind, bool) {
	major, _ := previous.Bump(BumpMajor)
	minor, _ := previous.Bump(BumpMinor)
	patch, _ := previous.Bump(BumpPatch)

	switch next {
	case major:
		return BumpMajor, true
	case minor:
		return BumpMinor, true
	case patch:
		return BumpPatch, true
	default:
		return "", false
	}
}
