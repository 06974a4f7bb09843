package bitvec

import (
	"encoding/binary"
	"math/bits"
	"slices"
)

// Vector is a fixed-width bit vector over leaf indices.
//
// Word 0 holds bits 0-63, word 1 holds bits 64-127, and so on. Operations
// assume the caller respects the vector's width; no bounds checking is
// performed on bit indices.
type Vector []uint64

// WordsFor returns the number of 64-bit words needed to hold n bits.
func WordsFor(n int) int {
	return (n + 63) / 64
}

// New returns a zeroed vector with the given word count.
func New(words int) Vector {
	return make(Vector, words)
}

// Set sets bit i.
func (v Vector) Set(i int) {
	v[i>>6] |= 1 << (uint(i) & 63)
}

// Test reports whether bit i is set.
func (v Vector) Test(i int) bool {
	return v[i>>6]&(1<<(uint(i)&63)) != 0
}

// UnionWith ORs other into v word by word. Both vectors must have the same
// word count.
func (v Vector) UnionWith(other Vector) {
	for i, w := range other {
		v[i] |= w
	}
}

// OnesCount returns the number of set bits.
func (v Vector) OnesCount() int {
	n := 0
	for _, w := range v {
		n += bits.OnesCount64(w)
	}
	return n
}

// Complement returns a new vector with the first n bits of v flipped.
// Bits at index n and above remain zero, so the result stays a valid
// membership set over an n-leaf universe.
func (v Vector) Complement(n int) Vector {
	out := New(len(v))
	for i, w := range v {
		out[i] = ^w
	}
	if rem := uint(n) & 63; rem != 0 {
		out[len(out)-1] &= (1 << rem) - 1
	}
	return out
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Equal reports whether v and other have identical word sequences.
func (v Vector) Equal(other Vector) bool {
	return slices.Equal(v, other)
}

// Compare orders vectors lexicographically over their word sequences.
// It returns -1, 0 or +1 in the manner of cmp.Compare.
func (v Vector) Compare(other Vector) int {
	return slices.Compare(v, other)
}

// Key returns a byte-exact string form of the word sequence for use as a
// map or set key. Keys of equal-width vectors sort in the same order as
// Compare (big-endian word encoding).
func (v Vector) Key() string {
	b := make([]byte, 8*len(v))
	for i, w := range v {
		binary.BigEndian.PutUint64(b[i*8:], w)
	}
	return string(b)
}
