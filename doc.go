// Package art implements an in-memory Adaptive Radix Tree: an ordered
// associative index mapping byte-string keys to owned value blobs, whose
// internal nodes dynamically switch among four layouts (fanouts 4, 16,
// 48, 256) to balance memory density against lookup cost. Path
// compression (lazy expansion plus prefix collapsing) keeps tree depth
// proportional to the distinguishing length between keys rather than to
// key length itself.
//
// The tree is not safe for concurrent use. Callers needing concurrent
// access must serialize readers and writers externally (e.g. with a
// sync.RWMutex).
//
// Deletion, range scans beyond the in-order Walk, and any form of
// persistence or versioning are out of scope for this package.
package art
