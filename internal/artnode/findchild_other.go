//go:build !amd64

package artnode

// The SIMD seam documented in findchild_amd64.go has no
// architecture-specific counterpart here.
func findChildN16(keys []byte, b byte) int {
	return findChildN16Fallback(keys, b)
}
