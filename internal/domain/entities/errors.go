package entities

import "errors"

// Sentinel errors for the release workflow. Every failure surfaced by a
// command wraps one of these so callers can classify it with errors.Is.
var (
	// ErrInvalidFormat reports a tag or version string whose shape or
	// numeric components cannot be parsed.
	ErrInvalidFormat = errors.New("invalid semantic version format")

	// ErrUnknownBumpKind reports a bump token outside patch, minor, major.
	ErrUnknownBumpKind = errors.New("unknown bump kind")

	// ErrMissingArgument reports a required CLI input that was not supplied.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrGatewayUnavailable reports a failed read from the source control
	// gateway.
	ErrGatewayUnavailable = errors.New("source control gateway unavailable")
)
