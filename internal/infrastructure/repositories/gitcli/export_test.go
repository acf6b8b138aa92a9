package gitcli

// ParseLog exports parseLog for testing.
var ParseLog = parseLog //nolint:gochecknoglobals // test export

// IsNoTagSignal exports isNoTagSignal for testing.
var IsNoTagSignal = isNoTagSignal //nolint:gochecknoglobals // test export

// FieldSeparator exports fieldSeparator for testing.
const FieldSeparator = fieldSeparator
