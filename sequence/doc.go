// Package sequence defines the vocabulary shared by every node-sequence
// generator: the Sequence and Corpus types, the Generator contract, the
// token codec that maps node IDs to words, and the sentinel errors callers
// branch on.
//
// Contract
//
//	Generate(g, rng) returns a Corpus ordered round-major then node-ascending.
//	Every node with at least one incident edge appears in at least one
//	Sequence; isolated nodes produce no Sequence at all.
//
// Randomness is always an explicit *rand.Rand; a nil handle is rejected with
// ErrNilRand so that two runs with equally seeded sources are identical.
//
// Tokens
//
//	Token(id) is the decimal form of id ("0", "1", ...); ParseToken reverses it.
//	The embedding row of node i is always looked up under Token(i).
package sequence
