package artnode

import "golang.org/x/exp/slices"

// Node16 is an inner node with 5-16 children, matched with a 16-wide
// compare (SIMD where available, portable binary search otherwise).
// This module ships only the portable binary-search path (see
// findchild_amd64.go / findchild_other.go for the documented SIMD
// seam); correctness is identical either way, only throughput differs.
type Node16 struct {
	InnerHeader
	keys     [16]byte
	children [16]Node
}

// NewNode16 returns an empty Node16.
func NewNode16() *Node16 {
	return &Node16{}
}

// Kind implements Node.
func (*Node16) Kind() Kind { return KindNode16 }

// Header implements InnerNode.
func (n *Node16) Header() *InnerHeader { return &n.InnerHeader }

func (n *Node16) indexOf(b byte) int {
	return findChildN16(n.keys[:n.numChildren], b)
}

// findChildN16Fallback performs a binary search over the sorted key
// bytes using golang.org/x/exp/slices rather than hand-rolling
// sort.Search.
func findChildN16Fallback(keys []byte, b byte) int {
	idx, found := slices.BinarySearch(keys, b)
	if !found {
		return -1
	}
	return idx
}

// ChildSlot implements InnerNode.
func (n *Node16) ChildSlot(b byte) *Node {
	if idx := n.indexOf(b); idx >= 0 {
		return &n.children[idx]
	}
	return nil
}

// Full implements InnerNode.
func (n *Node16) Full() bool { return n.numChildren >= 16 }

// AddChild implements InnerNode, keeping keys sorted for binary search.
func (n *Node16) AddChild(b byte, child Node) {
	idx, _ := slices.BinarySearch(n.keys[:n.numChildren], b)
	copy(n.keys[idx+1:n.numChildren+1], n.keys[idx:n.numChildren])
	copy(n.children[idx+1:n.numChildren+1], n.children[idx:n.numChildren])
	n.keys[idx] = b
	n.children[idx] = child
	n.numChildren++
}

// growFromNode16Into fills n from src for Node16.Grow: for each occupied
// (key, child), assign it the next free slot and record slot+1
// (1-based, 0 means absent) in the 256-wide index.
func (n *Node48) growFromNode16Into(src *Node16) {
	n.copyHeaderFrom(&src.InnerHeader)
	for i := 0; i < src.numChildren; i++ {
		slot := n.numChildren
		n.children[slot] = src.children[i]
		n.index[src.keys[i]] = byte(slot + 1)
		n.numChildren++
	}
}

// Grow implements InnerNode.
func (n *Node16) Grow() InnerNode {
	n48 := NewNode48()
	n48.growFromNode16Into(n)
	return n48
}

// Each implements InnerNode.
func (n *Node16) Each(fn func(b byte, child Node)) {
	for i := 0; i < n.numChildren; i++ {
		fn(n.keys[i], n.children[i])
	}
}
