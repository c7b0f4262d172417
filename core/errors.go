package core

import "errors"

// ParseError reports that a decimal string passed to
// ParamsFromDecimalStrings could not be interpreted as a non-negative
// integer. ParamsFromNamedGroup also returns it, with Field "bits", for
// a bit length that names no known group.
type ParseError struct {
	// Field names which input was rejected: one of Params's five decimal
	// inputs "p", "q", "g", "g1", "g2", or "bits".
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return "core: failed to parse " + e.Field + " as a decimal integer: " + e.Value
}

var (
	// ErrNotRegistered is returned by Spender.Withdraw when called before
	// SetRegistrationID. Spender.VerifyWithdrawalResponse returns only a
	// bool and reports false in that case.
	ErrNotRegistered = errors.New("core: spender has no registration id; call SetRegistrationID first")

	// ErrNonInvertible is returned by SpentCoin.RevealIdentity when the
	// two spend transcripts share the same challenge d. Extraction is
	// mathematically undefined (a 0/0 ratio) in that case, not merely
	// uninformative, and callers must filter duplicate challenges
	// before invoking RevealIdentity.
	ErrNonInvertible = errors.New("core: spend challenges coincide; identity extraction is undefined")
)
