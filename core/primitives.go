package core

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"math/big"
)

// randomScalar returns a uniformly random integer in [0, modulus), read
// from crypto/rand.Reader. Every protocol scalar (the issuer's x and w,
// the spender's u1 and the PartialCoin's s, x1, x2, u, v) is sampled
// through this one helper. The Params constructors in params.go do not
// use it: they read crypto/rand.Reader directly.
func randomScalar(modulus *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, modulus)
}

// hashToNumber concatenates the elements of data in order, with no
// length prefix and no separator (part of the wire contract), computes
// HMAC-SHA256 over the result with key, and reinterprets the 32-byte tag
// as a little-endian unsigned integer. Callers reduce the result mod p
// or mod q as their protocol step requires; this function never reduces.
func hashToNumber(key []byte, data ...[]byte) *big.Int {
	mac := hmac.New(sha256.New, key)
	mac.Write(concatBytes(data...))
	tag := mac.Sum(nil)

	le := make([]byte, len(tag))
	for i, b := range tag {
		le[len(tag)-1-i] = b
	}
	return new(big.Int).SetBytes(le)
}

// modPow returns base^exp mod m.
func modPow(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// modMul returns (a*b) mod m.
func modMul(a, b, m *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), m)
}

// modInv returns the modular inverse of a mod m. a is always expected to
// lie in [1, m) with m prime, so failure is a programming error, never a
// condition this package's own callers should see in practice; it is
// surfaced via a nil return so the one caller that can legitimately hit
// it (SpentCoin.RevealIdentity, when two challenges coincide) can turn it
// into the documented ErrNonInvertible instead of panicking.
func modInv(a, m *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, m)
}

// modSub returns (a-b) mod m using the positive representative: if the
// natural subtraction would be negative, m is added back before
// reducing.
func modSub(a, b, m *big.Int) *big.Int {
	d := new(big.Int).Sub(a, b)
	d.Mod(d, m)
	return d
}
