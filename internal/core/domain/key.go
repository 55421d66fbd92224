package domain

import "unique"

// NodeKey is the top-level key of a document entry ("GameObject", "Transform", ...).
// Scene files repeat a small set of keys hundreds of thousands of times, so the
// value is interned through a unique.Handle.
type NodeKey struct {
	h unique.Handle[string]
}

// NewNodeKey interns s and returns it as a NodeKey.
func NewNodeKey(s string) NodeKey {
	return NodeKey{h: unique.Make(s)}
}

// String returns the key text. The zero NodeKey yields "".
func (k NodeKey) String() string {
	var zero unique.Handle[string]
	if k.h == zero {
		return ""
	}
	return k.h.Value()
}

// IsZero reports whether the key was never set.
func (k NodeKey) IsZero() bool {
	var zero unique.Handle[string]
	return k.h == zero
}
