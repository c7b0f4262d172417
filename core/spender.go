package core

import "math/big"

// PartialCoin holds the spender's private witnesses s, x1, x2, along
// with the blinding factors u, v used to mask a withdrawal transcript.
// Once a PartialCoin has been used in a Spend, it must never be reused
// for a second Spend of the same Coin. Reuse is exactly what leaks
// the spender's identity; see SpentCoin.RevealIdentity.
type PartialCoin struct {
	S, X1, X2 *big.Int
	U, V      *big.Int
}

// Withdrawal is the spender's local state between Withdraw and
// MakeCoin: the issuer's (a, b) pair, the derived group elements
// (A, B, z', a', b'), the unblinded challenge c', and the PartialCoin
// that produced them. MakeCoin reads A, B, z', a', b', c' and the
// PartialCoin's u, v directly off of it. PartialCoinFromWithdrawal
// extracts the PartialCoin for later use by Spend, consuming it from
// w: a second call returns the zero PartialCoin.
type Withdrawal struct {
	AByIssuer, BByIssuer *big.Int
	A, B, Z              *big.Int
	Ad, Bd               *big.Int
	Cd                   *big.Int

	partial *PartialCoin
}

// PartialCoinFromWithdrawal extracts the PartialCoin embedded in w,
// clearing it from w so it cannot be extracted a second time. Call
// this once, after MakeCoin, to obtain the value Spend needs.
func PartialCoinFromWithdrawal(w *Withdrawal) PartialCoin {
	if w.partial == nil {
		return PartialCoin{}
	}
	pc := *w.partial
	w.partial = nil
	return pc
}

// Spender holds one account's long-term secret u1 and its derived
// identity i = g1^u1 mod p, and, once registered with an issuer, its
// registration id z = (i*g2)^x. A Spender with a nil z has not yet
// been registered; SetRegistrationID must be called before Withdraw or
// VerifyWithdrawalResponse will succeed. i is not an independent
// secret: it must equal g1^u1 for the equation SpentCoin.Verify checks
// to hold, which is exactly what lets two spends of the same coin be
// combined to recover u1.
type Spender struct {
	Params Params
	I      *big.Int
	u1     *big.Int
	z      *big.Int
}

// NewSpender samples a fresh blinding secret u1 and derives the
// account identity i = g1^u1 mod p that the issuer will register.
func NewSpender(params Params) (*Spender, error) {
	u1, err := randomScalar(params.Q)
	if err != nil {
		return nil, err
	}
	i := modPow(params.G1, u1, params.P)
	return &Spender{Params: params, I: i, u1: u1}, nil
}

// SetRegistrationID records the registration id z returned by
// Issuer.Register for this spender's identity i. It must be called
// exactly once, after registration and before any withdrawal.
func (sp *Spender) SetRegistrationID(z *big.Int) {
	sp.z = z
}

// Withdraw blinds the issuer's withdrawal parameters wp into a
// Withdrawal transcript and its embedded PartialCoin, and returns the
// blinded challenge c = c' * u^-1 mod q the spender forwards to the
// issuer for signing. It returns ErrNotRegistered if SetRegistrationID has not
// yet been called.
func (sp *Spender) Withdraw(wp WithdrawalParams) (*Withdrawal, *big.Int, error) {
	if sp.z == nil {
		return nil, nil, ErrNotRegistered
	}
	p, q := sp.Params.P, sp.Params.Q

	s, err := randomScalar(q)
	if err != nil {
		return nil, nil, err
	}
	x1, err := randomScalar(q)
	if err != nil {
		return nil, nil, err
	}
	x2, err := randomScalar(q)
	if err != nil {
		return nil, nil, err
	}
	u, err := randomScalar(q)
	if err != nil {
		return nil, nil, err
	}
	v, err := randomScalar(q)
	if err != nil {
		return nil, nil, err
	}

	base := modMul(sp.I, sp.Params.G2, p)
	a := modPow(base, s, p)
	b := modMul(modPow(sp.Params.G1, x1, p), modPow(sp.Params.G2, x2, p), p)
	zPrime := modPow(sp.z, s, p)

	ad := modMul(modPow(wp.A, u, p), modPow(sp.Params.G, v, p), p)
	su := modMul(s, u, q)
	bd := modMul(modPow(wp.B, su, p), modPow(a, v, p), p)

	cd := hashToNumber(sp.Params.SchemeKey,
		leBytes(a), leBytes(b), leBytes(zPrime), leBytes(ad), leBytes(bd))
	cd.Mod(cd, p)

	w := &Withdrawal{
		AByIssuer: wp.A, BByIssuer: wp.B,
		A: a, B: b, Z: zPrime,
		Ad: ad, Bd: bd, Cd: cd,
		partial: &PartialCoin{S: s, X1: x1, X2: x2, U: u, V: v},
	}

	uInv := modInv(u, q)
	c := modMul(cd, uInv, q)

	return w, c, nil
}

// VerifyWithdrawalResponse checks the issuer's signature response r
// against the issuer's public key h and w's embedded (a, b) pair. It
// confirms g^r == a*h^c and (i*g2)^r == b*z^c (mod p), the two
// equations that bind r to the issuer's secret key without the issuer
// ever learning which coin it signed. It returns false if
// SetRegistrationID has not been called.
func (sp *Spender) VerifyWithdrawalResponse(h *big.Int, w *Withdrawal, c, r *big.Int) bool {
	if sp.z == nil {
		return false
	}
	p := sp.Params.P

	lhs1 := modPow(sp.Params.G, r, p)
	rhs1 := modMul(w.AByIssuer, modPow(h, c, p), p)
	if lhs1.Cmp(rhs1) != 0 {
		return false
	}

	base := modMul(sp.I, sp.Params.G2, p)
	lhs2 := modPow(base, r, p)
	rhs2 := modMul(w.BByIssuer, modPow(sp.z, c, p), p)
	return lhs2.Cmp(rhs2) == 0
}

// MakeCoin assembles the final spendable Coin from a withdrawal
// transcript and the issuer's signature response r, blinding r by w's
// embedded PartialCoin's u and v exponents into c6 = r*u + v mod q.
// MakeCoin only reads the PartialCoin; call PartialCoinFromWithdrawal
// afterward to obtain it for Spend.
func (sp *Spender) MakeCoin(w *Withdrawal, r *big.Int) Coin {
	q := sp.Params.Q
	c6 := modMul(r, w.partial.U, q)
	c6 = new(big.Int).Add(c6, w.partial.V)
	c6.Mod(c6, q)

	return Coin{
		C1: w.A,
		C2: w.B,
		C3: w.Z,
		C4: w.Ad,
		C5: w.Bd,
		C6: c6,
		Cd: w.Cd,
	}
}

// Spend derives the SpentCoin for challenge d, revealing
// r1 = d*u1*s + x1 mod q and r2 = d*s + x2 mod q. pc must come from
// PartialCoinFromWithdrawal and must not be reused: a second call to
// Spend with the same pc but a distinct d is the double-spend event
// that SpentCoin.RevealIdentity is built to punish.
func (sp *Spender) Spend(c Coin, pc PartialCoin, d *big.Int) SpentCoin {
	q := sp.Params.Q

	du1s := modMul(modMul(d, sp.u1, q), pc.S, q)
	r1 := new(big.Int).Add(du1s, pc.X1)
	r1.Mod(r1, q)

	ds := modMul(d, pc.S, q)
	r2 := new(big.Int).Add(ds, pc.X2)
	r2.Mod(r2, q)

	return SpentCoin{Coin: c, R1: r1, R2: r2}
}
