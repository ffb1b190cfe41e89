package art

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sibellavia/go-art/internal/artnode"
)

// dumper renders a tree as an indented, box-drawn tree for debugging and
// for the structural assertions in dump_test.go. Covers all four inner
// variants plus the leaf, working directly against the artnode.Node
// interface rather than unsafe.Pointer header casts.
type dumper struct {
	buf         bytes.Buffer
	nChildStack []int
}

// String renders root as a tree. An empty tree renders as "(empty)".
func (t *Tree) String() string {
	if t.root == nil {
		return "(empty)"
	}
	d := &dumper{}
	d.dumpNode(t.root)
	return d.buf.String()
}

func (d *dumper) padding() (head, body string) {
	depth := len(d.nChildStack)
	if depth == 0 {
		return "───", "   "
	}
	pad := "    " + strings.Repeat("│  ", depth-1)
	left := d.nChildStack[len(d.nChildStack)-1]
	if left == 1 {
		return pad + "└──", pad + "   "
	}
	return pad + "├──", pad + "│  "
}

func (d *dumper) dumpNode(n artnode.Node) {
	head, pad := d.padding()

	switch v := n.(type) {
	case *artnode.Leaf:
		fmt.Fprintf(&d.buf, "%s Leaf\n", head)
		fmt.Fprintf(&d.buf, "%s key:   %q\n", pad, v.Key)
		fmt.Fprintf(&d.buf, "%s value: %q\n", pad, v.Value)

	case artnode.InnerNode:
		h := v.Header()
		fmt.Fprintf(&d.buf, "%s %s\n", head, v.Kind())
		fmt.Fprintf(&d.buf, "%s prefixLen: %d\n", pad, h.PrefixLen())
		fmt.Fprintf(&d.buf, "%s prefix:    %q\n", pad, h.Prefix())
		fmt.Fprintf(&d.buf, "%s children:  %d\n", pad, h.NumChildren())

		d.nChildStack = append(d.nChildStack, h.NumChildren())
		i := 0
		v.Each(func(b byte, child artnode.Node) {
			i++
			d.nChildStack[len(d.nChildStack)-1] = h.NumChildren() - i + 1
			d.dumpNode(child)
		})
		d.nChildStack = d.nChildStack[:len(d.nChildStack)-1]
	}
}
