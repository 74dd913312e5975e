package shellattr

// Item is an opaque resolver-owned reference to a shell namespace location.
// It exists only between a successful Resolve and the matching Release and
// must never outlive the classification call that acquired it.
type Item interface {
	// Release frees the reference. Called at most once.
	Release()
}

// Resolver parses a display-name path into an item reference and its
// attribute mask. Implementations are the sole authority on path validity:
// whatever string the user typed is forwarded verbatim, whether it is an
// absolute path, a UNC share, a shell: URI, or garbage.
//
// On a non-OK status no item reference was allocated and the other two
// return values must be ignored.
type Resolver interface {
	Resolve(path string, requested Mask) (Item, Mask, Status)
}
