package core

import "math/big"

// WithdrawalParams is the issuer's public pair (a, b) handed to the
// spender at the start of a withdrawal.
type WithdrawalParams struct {
	A, B *big.Int
}

// withdrawalResponseParams is the issuer's private witness w, paired
// with the WithdrawalParams it was generated alongside. The type is
// unexported and w has no exported accessor, but a value of it is not
// invalidated by WithdrawalResponse: passing the same value again with
// a second challenge is possible and would leak the issuer's secret
// key x. The caller must discard it after one use.
type withdrawalResponseParams struct {
	w *big.Int
}

// Issuer holds the bank's long-term key pair: a secret x and public
// identity h = g^x mod p. Issuer is immutable after construction and
// safe to share across goroutines.
type Issuer struct {
	Params Params
	H      *big.Int
	x      *big.Int
}

// NewIssuer samples a fresh secret x and derives the issuer's public
// identity h = g^x mod p.
func NewIssuer(params Params) (*Issuer, error) {
	x, err := randomScalar(params.Q)
	if err != nil {
		return nil, err
	}
	h := modPow(params.G, x, params.P)
	return &Issuer{Params: params, H: h, x: x}, nil
}

// Register returns the spender's registration id z = (i*g2)^x mod p.
// The issuer is trusted to have authenticated i out-of-band before
// calling Register; this package performs no such authentication.
// A misrepresented i can later be double-spent without attribution,
// and preventing that is the caller's responsibility, not this
// function's.
func (iss *Issuer) Register(i *big.Int) *big.Int {
	base := modMul(i, iss.Params.G2, iss.Params.P)
	return modPow(base, iss.x, iss.Params.P)
}

// SetupWithdrawal samples a fresh witness w and returns the public pair
// (a, b) = (g^w, (i*g2)^w) together with the private witness, kept
// paired with this specific (a, b) instance.
func (iss *Issuer) SetupWithdrawal(i *big.Int) (WithdrawalParams, withdrawalResponseParams) {
	w, err := randomScalar(iss.Params.Q)
	if err != nil {
		// randomScalar only fails if the entropy source is broken, which
		// this package treats as unrecoverable rather than threading a
		// second error return through every withdrawal-setup caller.
		panic(err)
	}
	a := modPow(iss.Params.G, w, iss.Params.P)
	base := modMul(i, iss.Params.G2, iss.Params.P)
	b := modPow(base, w, iss.Params.P)
	return WithdrawalParams{A: a, B: b}, withdrawalResponseParams{w: w}
}

// WithdrawalResponse computes r = w + c*x mod q from the private
// witness produced by SetupWithdrawal and the spender's challenge c.
// wp is taken by value and is not marked as used: calling
// WithdrawalResponse twice with the witness from the same
// SetupWithdrawal call but different challenges is not prevented, and
// would leak x. Each witness must be used for one challenge only.
func (iss *Issuer) WithdrawalResponse(wp withdrawalResponseParams, c *big.Int) *big.Int {
	cx := modMul(c, iss.x, iss.Params.Q)
	r := new(big.Int).Add(wp.w, cx)
	return r.Mod(r, iss.Params.Q)
}
