package art

import "github.com/sibellavia/go-art/internal/artnode"

// InsertResult reports what Insert did with a given key: whether a new
// leaf was added or an existing key's value was replaced.
type InsertResult uint8

const (
	// Inserted means the key was not previously present and a new leaf
	// was added.
	Inserted InsertResult = iota
	// Replaced means the key already existed; its value was replaced
	// and the tree's size is unchanged.
	Replaced
)

func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Tree is the ART handle: a root pointer and a size counter. The zero
// value is ready to use (an empty tree), but New is the documented
// constructor.
//
// Tree is not safe for concurrent use without external synchronization.
type Tree struct {
	root artnode.Node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of reachable leaves in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Close releases the tree's root reference. Go's garbage collector owns
// node lifetime once nothing references them, so this reclaims the
// tree without any explicit free traversal; calling it is optional but
// makes the teardown point visible in caller code the way an explicit
// destroy would in a manually-managed language. Idempotent on an
// already-empty tree.
func (t *Tree) Close() {
	t.root = nil
	t.size = 0
}

// Search looks up key and returns its value and true if present, or nil
// and false otherwise.
func (t *Tree) Search(key []byte) ([]byte, bool, error) {
	if len(key) == 0 {
		return nil, false, ErrEmptyKey
	}
	value, ok := search(t.root, key, 0)
	return value, ok, nil
}

// Insert adds or replaces key's value. See errors.go for when it
// returns ErrEmptyKey or ErrKeyIsPrefix instead of mutating the tree.
func (t *Tree) Insert(key, value []byte) (InsertResult, []byte, error) {
	if len(key) == 0 {
		return 0, nil, ErrEmptyKey
	}
	result, old, err := insert(&t.root, key, value, 0)
	if err != nil {
		return 0, nil, err
	}
	if result == Inserted {
		t.size++
	}
	return result, old, nil
}
