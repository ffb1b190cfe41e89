package artnode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// allTheBytes is a fixed permutation of byte values, front-loaded with
// edge cases (zero, 0xff) so N16/N48/N256 tests exercise ordering
// across the full range.
var allTheBytes = []byte{
	'Z', 'a', 0x0, 0xff, '1', '-', '}', '_', '#', '~', ')', 0x81, 0xe5, '0', 0x6, '^',
	'E', 0x14, 0xc2, 0xec, 'O', 0x9c, 'C', 'd', 0xef, 0x98, 0x95, ']', '[', '8', 0x8, 0xb7,
}

func TestNode16FindChild(t *testing.T) {
	n := NewNode16()
	for i := 0; i < 12; i++ {
		b := allTheBytes[i]
		n.AddChild(b, NewLeaf([]byte{b}, []byte{b}))
	}

	for i := 0; i < 12; i++ {
		b := allTheBytes[i]
		slot := n.ChildSlot(b)
		require.NotNil(t, slot, "byte %#x", b)
		leaf := (*slot).(*Leaf)
		require.Equal(t, []byte{b}, leaf.Key)
	}

	require.Nil(t, n.ChildSlot(0x7f))
}

func TestNode16StaysSortedForBinarySearch(t *testing.T) {
	n := NewNode16()
	for i := 0; i < 16; i++ {
		n.AddChild(allTheBytes[i], NewLeaf([]byte{allTheBytes[i]}, nil))
	}
	var seen []byte
	n.Each(func(b byte, _ Node) { seen = append(seen, b) })
	for i := 1; i < len(seen); i++ {
		require.Less(t, seen[i-1], seen[i])
	}
}

func TestNode16GrowToNode48(t *testing.T) {
	n := NewNode16()
	n.SetPrefix([]byte("key"), 3)
	for i := 0; i < 16; i++ {
		b := allTheBytes[i]
		n.AddChild(b, NewLeaf([]byte{b}, []byte{b}))
	}

	grown := n.Grow()
	n48, ok := grown.(*Node48)
	require.True(t, ok)
	require.Equal(t, 16, n48.NumChildren())
	require.Equal(t, []byte("key"), n48.Prefix())

	for i := 0; i < 16; i++ {
		b := allTheBytes[i]
		slot := n48.ChildSlot(b)
		require.NotNil(t, slot, "byte %#x", b)
		leaf := (*slot).(*Leaf)
		require.Equal(t, []byte{b}, leaf.Key)
	}
}
