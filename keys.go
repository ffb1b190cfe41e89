package art

import "encoding/binary"

// Uint64Key encodes v as 8 big-endian bytes so lexicographic byte-order
// comparison of the resulting key agrees with numeric order. A thin
// typed helper layered on top of the byte-string core for callers who
// want integer keys.
func Uint64Key(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

// Uint32Key encodes v as 4 big-endian bytes; see Uint64Key.
func Uint32Key(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

// Uint16Key encodes v as 2 big-endian bytes; see Uint64Key.
func Uint16Key(v uint16) []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	return buf
}
