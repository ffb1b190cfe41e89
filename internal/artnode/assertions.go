package artnode

var (
	_ InnerNode = (*Node4)(nil)
	_ InnerNode = (*Node16)(nil)
	_ InnerNode = (*Node48)(nil)
	_ InnerNode = (*Node256)(nil)
	_ Node      = (*Leaf)(nil)
)
