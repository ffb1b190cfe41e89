package art

import "github.com/sibellavia/go-art/internal/artnode"

// insert recurses down the tree, installing or replacing a leaf. slot
// is the parent's child pointer (or the tree's root field on the
// outermost call): the caller holds a pointer to the slot so the node
// living there can be replaced by a split or a grown variant without
// the caller needing to know it happened.
func insert(slot *artnode.Node, key, value []byte, depth int) (InsertResult, []byte, error) {
	n := *slot

	// 1. Empty slot: install a fresh leaf.
	if n == nil {
		*slot = artnode.NewLeaf(key, value)
		return Inserted, nil, nil
	}

	// 2. Slot holds a leaf.
	if leaf, ok := n.(*artnode.Leaf); ok {
		if leaf.MatchesKey(key) {
			old := leaf.Value
			leaf.Value = append([]byte(nil), value...)
			return Replaced, old, nil
		}

		p := artnode.CommonPrefixLen(leaf.Key, key, depth)
		d2 := depth + p
		if d2 >= len(leaf.Key) || d2 >= len(key) {
			// One key is a strict byte-prefix of the other; rejected
			// rather than given sentinel-terminator semantics.
			return 0, nil, ErrKeyIsPrefix
		}

		n4 := artnode.NewNode4()
		n4.SetPrefix(key[depth:d2], p)
		n4.AddChild(leaf.Key[d2], leaf)
		n4.AddChild(key[d2], artnode.NewLeaf(key, value))
		*slot = n4
		return Inserted, nil, nil
	}

	// 3. Slot holds an inner node.
	inner := n.(artnode.InnerNode)
	newDepth, divergedAt, diverged := matchOrDiverge(inner, key, depth)
	if diverged {
		return splitNode(slot, inner, key, value, depth, divergedAt)
	}
	depth = newDepth

	if depth == len(key) {
		// The key being inserted is a strict prefix of every key under
		// this node; rejected without a terminator byte convention.
		return 0, nil, ErrKeyIsPrefix
	}

	b := key[depth]
	if childSlot := inner.ChildSlot(b); childSlot != nil {
		return insert(childSlot, key, value, depth+1)
	}

	if inner.Full() {
		grown := inner.Grow()
		*slot = grown
		inner = grown
	}
	inner.AddChild(b, artnode.NewLeaf(key, value))
	return Inserted, nil, nil
}

// matchOrDiverge matches key[depth:] against inner's compressed prefix.
// If the key diverges inside the prefix, it returns the divergence
// offset (relative to depth) and diverged=true. Otherwise it returns the
// depth reached after consuming the whole prefix.
//
// Unlike the read-only search path, insertion must know the true
// divergence point even when the prefix overflows the cache, because a
// split needs the byte the old node's subtree actually branches on. So
// where the cache is exhausted but the node's real prefix is longer,
// this consults a descendant leaf for the remaining bytes (the
// "pessimistic" check).
func matchOrDiverge(inner artnode.InnerNode, key []byte, depth int) (newDepth, divergedAt int, diverged bool) {
	h := inner.Header()
	cacheLen := len(h.Prefix())
	fullLen := h.PrefixLen()

	k := artnode.MatchPrefix(h, key, depth)
	if k < cacheLen {
		return depth, k, true
	}
	if fullLen <= cacheLen {
		return depth + fullLen, 0, false
	}

	// Cache fully matched but the true prefix runs longer; verify the
	// remainder against any descendant leaf's key.
	leaf := artnode.AnyLeaf(inner)
	if leaf == nil {
		// An inner node always has at least 2 children, so this is
		// unreachable in a well-formed tree.
		return depth, cacheLen, true
	}
	agree := cacheLen
	for agree < fullLen && depth+agree < len(key) && depth+agree < len(leaf.Key) &&
		key[depth+agree] == leaf.Key[depth+agree] {
		agree++
	}
	if agree < fullLen {
		return depth, agree, true
	}
	return depth + fullLen, 0, false
}

// splitNode handles the case where the key diverges m bytes into
// inner's compressed prefix. A new N4 is inserted in inner's place,
// carrying the common prefix; inner is demoted to a child of it with its
// own prefix trimmed, and a fresh leaf becomes the sibling child for the
// new key.
func splitNode(slot *artnode.Node, inner artnode.InnerNode, key, value []byte, depth, m int) (InsertResult, []byte, error) {
	if depth+m >= len(key) {
		// The new key ends exactly at the branch point: it is a strict
		// prefix of every key reachable from inner.
		return 0, nil, ErrKeyIsPrefix
	}

	h := inner.Header()
	cacheLen := len(h.Prefix())
	fullLen := h.PrefixLen()

	var leaf *artnode.Leaf
	leafFor := func() *artnode.Leaf {
		if leaf == nil {
			leaf = artnode.AnyLeaf(inner)
		}
		return leaf
	}

	var oldByte byte
	if m < cacheLen {
		oldByte = h.Prefix()[m]
	} else {
		oldByte = leafFor().Key[depth+m]
	}

	// inner's new prefix is its old prefix with the first m+1 bytes
	// (the shared run plus the byte it now branches on) removed. Bytes
	// beyond the old cache were never stored, so when the new cache
	// needs them it must read them back from a descendant leaf rather
	// than shifting stale cache contents.
	newPrefixLen := fullLen - m - 1
	newCacheLen := newPrefixLen
	if newCacheLen > artnode.MaxPrefixLen {
		newCacheLen = artnode.MaxPrefixLen
	}
	newCache := make([]byte, newCacheLen)
	if m+1+newCacheLen <= cacheLen {
		copy(newCache, h.Prefix()[m+1:m+1+newCacheLen])
	} else {
		copy(newCache, leafFor().Key[depth+m+1:depth+m+1+newCacheLen])
	}

	n4 := artnode.NewNode4()
	n4.SetPrefix(key[depth:depth+m], m)

	h.SetPrefix(newCache, newPrefixLen)
	n4.AddChild(oldByte, inner)

	newKeyByte := key[depth+m]
	n4.AddChild(newKeyByte, artnode.NewLeaf(key, value))

	*slot = n4
	return Inserted, nil, nil
}
