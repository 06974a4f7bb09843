// Package testutil provides deterministic helpers for tests: a seeded RNG,
// a parenthesized tree-literal builder, random binary topologies, and a
// node-identifier permutation helper.
//
// The tree-literal builder constructs fixture trees only; parsing of
// production tree-file formats is out of scope for this module.
package testutil
