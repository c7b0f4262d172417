package core

import "math/big"

// Identity is a group element mod p: the spender's public account
// identity i = g1^u1, and also the type RevealIdentity recovers. It is
// a plain alias of big.Int, not a distinct type, since every
// arithmetic operation the rest of the package needs is already
// defined on big.Int.
type Identity = big.Int

// RegistrationID is the group element z an issuer hands back from
// Register, later consumed by SetRegistrationID.
type RegistrationID = big.Int
