package art

import "github.com/sibellavia/go-art/internal/artnode"

// WalkFunc is called for every leaf visited during a Walk. Returning
// false stops the walk early.
type WalkFunc func(key, value []byte) bool

// Walk visits every key in the tree in ascending lexicographic order.
// It is the minimal ordered traversal needed to exercise order
// preservation end to end, not a general range-scan facility.
func (t *Tree) Walk(fn WalkFunc) {
	walk(t.root, fn)
}

// walk returns false if fn asked to stop early, so callers can short
// circuit out of nested Each callbacks.
func walk(n artnode.Node, fn WalkFunc) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *artnode.Leaf:
		return fn(v.Key, v.Value)
	case artnode.InnerNode:
		cont := true
		v.Each(func(_ byte, child artnode.Node) {
			if cont {
				cont = walk(child, fn)
			}
		})
		return cont
	default:
		return true
	}
}
