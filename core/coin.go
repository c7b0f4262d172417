package core

import "math/big"

// Coin is the spendable output of a completed withdrawal: seven
// scalars c1..c6, cd. c1, c2, c3, c4, c5 are group elements mod p; c6
// and cd are scalars mod q and mod p respectively. Coin equality is
// component-wise equality of every field; Coin is immutable once
// built by Spender.MakeCoin.
type Coin struct {
	C1, C2, C3, C4, C5 *big.Int
	C6                 *big.Int
	Cd                 *big.Int
}

// Verify checks a coin's self-consistency against the issuer's public
// key h: that it rejects the degenerate c1 = 1 case, that its cd field
// matches the Fiat-Shamir hash of (c1, c2, c3, c4, c5), and that the
// two Schnorr-style signature equations hold. All three checks are
// necessary; Verify returns false on the first that fails.
func (c Coin) Verify(h *big.Int, p Params) bool {
	one := big.NewInt(1)
	if c.C1.Cmp(one) == 0 {
		return false
	}

	cd := hashToNumber(p.SchemeKey, leBytes(c.C1), leBytes(c.C2), leBytes(c.C3), leBytes(c.C4), leBytes(c.C5))
	cd.Mod(cd, p.P)
	if cd.Cmp(c.Cd) != 0 {
		return false
	}

	lhs1 := modMul(c.C4, modPow(h, c.Cd, p.P), p.P)
	rhs1 := modPow(p.G, c.C6, p.P)
	if lhs1.Cmp(rhs1) != 0 {
		return false
	}

	lhs2 := modMul(c.C5, modPow(c.C3, c.Cd, p.P), p.P)
	rhs2 := modPow(c.C1, c.C6, p.P)
	return lhs2.Cmp(rhs2) == 0
}

// NewCoinChallenge derives the deterministic challenge d for spending
// c, from a receiver-supplied message and the coin's c1, c2 fields.
// message is used directly as the HMAC key, not the scheme's
// scheme_key: this challenge is a per-payment binding chosen by the
// receiver, not a protocol-wide constant. The result is the raw HMAC
// integer, unreduced. Reusing message for a second challenge against
// the same coin is the receiver's responsibility to avoid; see
// SpentCoin.RevealIdentity.
func NewCoinChallenge(message []byte, c Coin) *big.Int {
	return hashToNumber(message, leBytes(c.C1), leBytes(c.C2))
}

// SpentCoin is a coin together with one spend transcript (r1, r2)
// produced against a particular CoinChallenge. SpentCoin equality is
// defined over the embedded Coin only, deliberately ignoring r1, r2:
// two SpentCoins carrying the same Coin but different (r1, r2) are
// equal under this predicate, which is precisely how a double spend
// of the same coin is detected by a set keyed on Coin.
type SpentCoin struct {
	Coin   Coin
	R1, R2 *big.Int
}

// Equal reports whether c and other carry the same seven scalars.
// Coin's fields are *big.Int pointers, so Go's built-in == compares
// pointer identity, not value. Use Equal wherever two Coin values
// arriving from different sources must be compared. (Package
// doublespend does not call Equal: it keys its set on the decimal
// string of C1 alone.)
func (c Coin) Equal(other Coin) bool {
	return c.C1.Cmp(other.C1) == 0 &&
		c.C2.Cmp(other.C2) == 0 &&
		c.C3.Cmp(other.C3) == 0 &&
		c.C4.Cmp(other.C4) == 0 &&
		c.C5.Cmp(other.C5) == 0 &&
		c.C6.Cmp(other.C6) == 0 &&
		c.Cd.Cmp(other.Cd) == 0
}

// Equal reports whether sc and other carry the same Coin, ignoring
// their spend transcripts (r1, r2).
func (sc SpentCoin) Equal(other SpentCoin) bool {
	return sc.Coin.Equal(other.Coin)
}

// Verify checks that the spend transcript (r1, r2) is consistent with
// the coin and the challenge d under which it claims to have been
// produced: c1^d * c2 == g1^r1 * g2^r2 (mod p).
func (sc SpentCoin) Verify(d *big.Int, p Params) bool {
	lhs := modMul(modPow(sc.Coin.C1, d, p.P), sc.Coin.C2, p.P)
	rhs := modMul(modPow(p.G1, sc.R1, p.P), modPow(p.G2, sc.R2, p.P), p.P)
	return lhs.Cmp(rhs) == 0
}

// RevealIdentity recovers the spender's long-term identity i = g1^u1
// from two SpentCoins of the same coin, produced against two distinct
// challenges. It panics if sc and other do not share the same Coin.
// That precondition is the caller's to uphold, since calling this on
// two unrelated coins is a programming error, not a runtime condition
// this package can usefully recover from. It returns ErrNonInvertible
// if the two challenges coincide, in which case extraction is
// mathematically undefined rather than merely uninformative.
func (sc SpentCoin) RevealIdentity(other SpentCoin, p Params) (*Identity, error) {
	if !sc.Coin.Equal(other.Coin) {
		panic("core: RevealIdentity called on SpentCoins of different coins")
	}

	dr1 := modSub(sc.R1, other.R1, p.Q)
	dr2 := modSub(sc.R2, other.R2, p.Q)

	if dr2.Sign() == 0 {
		return nil, ErrNonInvertible
	}
	dr2Inv := modInv(dr2, p.Q)
	if dr2Inv == nil {
		return nil, ErrNonInvertible
	}

	exp := modMul(dr1, dr2Inv, p.Q)
	return modPow(p.G1, exp, p.P), nil
}
