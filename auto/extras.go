package auto

// ExtraCoders is a caller-supplied override registry consulted before
// generation (§4.6 step 1 "Override"). Hash must uniquely identify the set
// of overrides so the coder cache, keyed in part on it, never aliases two
// distinct override sets under the same cache entry (§4.7).
type ExtraCoders struct {
	Hash   string
	Coders map[string]CoderPair
}

// NewExtraCoders builds an empty override registry identified by hash.
// Callers registering coders must pick a hash that changes whenever the
// registered set changes, e.g. a version string or a hash of the type
// names involved.
func NewExtraCoders(hash string) *ExtraCoders {
	return &ExtraCoders{Hash: hash, Coders: make(map[string]CoderPair)}
}

// Register adds or replaces the override for typeName.
func (e *ExtraCoders) Register(typeName string, pair CoderPair) *ExtraCoders {
	e.Coders[typeName] = pair
	return e
}

func (e *ExtraCoders) lookup(typeName string) (CoderPair, bool) {
	if e == nil {
		return CoderPair{}, false
	}
	pair, ok := e.Coders[typeName]
	return pair, ok
}

func (e *ExtraCoders) hash() string {
	if e == nil {
		return ""
	}
	return e.Hash
}
