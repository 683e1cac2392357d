package dropdown

// OptIndex is an option index that may be absent.
// The zero value is NoIndex.
type OptIndex struct {
	i  int
	ok bool
}

// NoIndex is the absent index.
var NoIndex = OptIndex{}

// SomeIndex wraps a present index.
func SomeIndex(i int) OptIndex {
	return OptIndex{i: i, ok: true}
}

// Get returns the index and whether it is present.
func (o OptIndex) Get() (int, bool) {
	return o.i, o.ok
}

// IsSet reports whether the index is present.
func (o OptIndex) IsSet() bool { return o.ok }
