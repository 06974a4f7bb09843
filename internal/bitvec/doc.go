// Package bitvec provides the fixed-width, word-packed bit vectors used to
// encode leaf membership sets. Bit i of a vector corresponds to leaf index i.
//
// Vectors are plain []uint64 values. All vectors taking part in one tree
// comparison share the same word count, which keeps union, comparison and
// key derivation branch-free over the word sequence.
package bitvec
