package entities

// OutputValue is one named value published to the output sink, e.g. the
// computed new version under the name "new_version".
type OutputValue struct {
	Name  string
	Value string
}
