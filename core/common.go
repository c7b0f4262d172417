// Package core implements Brands' untraceable offline electronic cash
// scheme: account registration, a blind-signature coin withdrawal between
// a spender and an issuer, non-interactive coin verification and spend
// against a receiver, and identity extraction from two distinct spend
// transcripts of the same coin.
//
// Every value here is an arbitrary-precision integer modulo a safe prime
// p = 2q+1. The package performs no I/O: it is a pure computational
// library, synchronous and deterministic given its random inputs. Params,
// Coin, PartialCoin and SpentCoin are immutable once constructed and may
// be freely shared across goroutines without synchronization; Withdrawal
// is immutable except that PartialCoinFromWithdrawal clears its embedded
// PartialCoin; Issuer is immutable after construction; Spender is
// mutated only by SetRegistrationID.
package core

import "math/big"

// leBytes returns the little-endian, minimal-length byte encoding of n,
// the wire form hashToNumber's inputs use. big.Int.Bytes returns
// big-endian; this reverses it and never pads.
func leBytes(n *big.Int) []byte {
	be := n.Bytes()
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le
}

// concatBytes concatenates the given byte slices in order, with no
// delimiter and no length prefix. Part of the hash_to_number wire
// contract: two independent implementations must produce identical
// digests for identical inputs.
func concatBytes(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
