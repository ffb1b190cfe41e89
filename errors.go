package art

import "errors"

var (
	// ErrOutOfMemory is returned when an insert or grow cannot allocate.
	// Go's allocator panics rather than returning an error on
	// exhaustion, so this sentinel is effectively unreachable in
	// practice; it is kept as part of the public error surface since a
	// future caller-supplied arena allocator could make it reachable
	// without changing the API.
	ErrOutOfMemory = errors.New("art: out of memory")

	// ErrEmptyKey is returned by Insert and Search for a zero-length
	// key. The empty key has no byte to branch on, so it is rejected
	// outright rather than given sentinel-terminator semantics.
	ErrEmptyKey = errors.New("art: empty key is not supported")

	// ErrKeyIsPrefix is returned when inserting a key that is a strict
	// byte-prefix of an already-present key, or vice-versa. Without a
	// terminator byte or an extra flag on the internal node, such a key
	// has nowhere unambiguous to live, so insertion rejects it rather
	// than introducing a sentinel terminator.
	ErrKeyIsPrefix = errors.New("art: key is a byte-prefix of an existing key")
)
