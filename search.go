package art

import "github.com/sibellavia/go-art/internal/artnode"

// search descends the tree, consuming key bytes at each level:
//
//  1. start at root, depth 0
//  2. nil node -> not found
//  3. leaf node -> compare full key
//  4. inner node -> match prefix, advance depth, mismatch -> not found
//  5. depth >= len(key) with no leaf at this exact node -> not found
//     (the full prefix can run past the end of key when it overflows
//     the cache, so this is a >= check, not ==)
//  6. look up the next byte's child and recurse
func search(n artnode.Node, key []byte, depth int) ([]byte, bool) {
	for {
		if n == nil {
			return nil, false
		}

		if leaf, ok := n.(*artnode.Leaf); ok {
			if leaf.MatchesKey(key) {
				return leaf.Value, true
			}
			return nil, false
		}

		inner := n.(artnode.InnerNode)
		newDepth, ok := advancePastPrefix(inner, key, depth)
		if !ok {
			return nil, false
		}
		depth = newDepth

		if depth >= len(key) {
			return nil, false
		}

		slot := inner.ChildSlot(key[depth])
		if slot == nil {
			return nil, false
		}
		n = *slot
		depth++
	}
}

// advancePastPrefix matches key[depth:] against the node's compressed
// prefix and returns the depth after consuming it, or ok=false on
// mismatch. When the node's true prefix is longer than what is cached
// (the "optimistic prefix"), this advances past the full prefix length
// without per-byte verification of the uncached tail: the
// tree's own invariants guarantee every leaf beneath this node shares
// that tail, so the only place a genuine mismatch can surface is the
// final exact-key comparison at the leaf. This keeps lookups branch-light
// on the common case instead of paying for a leaf descent on every
// prefix-compressed node, at the cost of occasionally walking one level
// deeper before discovering a NotFound that a pessimistic check could
// have caught earlier; search never mutates the tree, so false descents
// are free of correctness risk. Because the returned depth is the full
// (possibly cache-overflowing) prefix length added to depth, it can run
// past len(key); the caller must compare with >=, not ==.
func advancePastPrefix(inner artnode.InnerNode, key []byte, depth int) (int, bool) {
	h := inner.Header()
	cacheLen := len(h.Prefix())
	k := artnode.MatchPrefix(h, key, depth)
	if k < cacheLen {
		return depth, false
	}
	return depth + h.PrefixLen(), true
}
