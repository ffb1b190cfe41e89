//go:build amd64

package artnode

// No generated SSE2 16-way compare ships with this module (see
// DESIGN.md for why); a future github.com/mmcloughlin/avo-generated
// file would add a findChildN16SIMD(keys []byte, b byte) int here with
// identical semantics to findChildN16Fallback, only faster, and this
// would call it instead.
func findChildN16(keys []byte, b byte) int {
	return findChildN16Fallback(keys, b)
}
