package core

import (
	"fmt"
	"math/big"
	"strings"
)

//
// Helper formatting functions.
//

// formatBigInt formats a big.Int by showing only the first n digits.
func formatBigInt(n *big.Int, digits int) string {
	if n == nil {
		return "<nil>"
	}
	str := n.String()
	if len(str) > digits {
		return str[:digits] + "..."
	}
	return str
}

//
// String methods for all types.
//

// String satisfies the fmt.Stringer interface for Params.
func (p Params) String() string {
	var b strings.Builder
	b.WriteString("Params {\n")
	b.WriteString(fmt.Sprintf("# P:  %s\n", formatBigInt(p.P, 100)))
	b.WriteString(fmt.Sprintf("# Q:  %s\n", formatBigInt(p.Q, 100)))
	b.WriteString(fmt.Sprintf("# G:  %s\n", formatBigInt(p.G, 100)))
	b.WriteString(fmt.Sprintf("# G1: %s\n", formatBigInt(p.G1, 100)))
	b.WriteString(fmt.Sprintf("# G2: %s\n", formatBigInt(p.G2, 100)))
	b.WriteString("}\n")
	return b.String()
}

// String satisfies the fmt.Stringer interface for Issuer. The secret
// x is never printed.
func (iss Issuer) String() string {
	var b strings.Builder
	b.WriteString("Issuer {\n")
	b.WriteString(fmt.Sprintf("# H: %s\n", formatBigInt(iss.H, 100)))
	b.WriteString("}\n")
	return b.String()
}

// String satisfies the fmt.Stringer interface for Spender. The secret
// u1 is never printed.
func (sp Spender) String() string {
	var b strings.Builder
	b.WriteString("Spender {\n")
	b.WriteString(fmt.Sprintf("# I: %s\n", formatBigInt(sp.I, 100)))
	registered := "no"
	if sp.z != nil {
		registered = "yes"
	}
	b.WriteString(fmt.Sprintf("# Registered: %s\n", registered))
	b.WriteString("}\n")
	return b.String()
}

// String satisfies the fmt.Stringer interface for PartialCoin.
func (pc PartialCoin) String() string {
	var b strings.Builder
	b.WriteString("PartialCoin {\n")
	b.WriteString(fmt.Sprintf("# S:  %s\n", formatBigInt(pc.S, 100)))
	b.WriteString(fmt.Sprintf("# X1: %s\n", formatBigInt(pc.X1, 100)))
	b.WriteString(fmt.Sprintf("# X2: %s\n", formatBigInt(pc.X2, 100)))
	b.WriteString(fmt.Sprintf("# U:  %s\n", formatBigInt(pc.U, 100)))
	b.WriteString(fmt.Sprintf("# V:  %s\n", formatBigInt(pc.V, 100)))
	b.WriteString("}\n")
	return b.String()
}

// String satisfies the fmt.Stringer interface for Withdrawal.
func (w Withdrawal) String() string {
	var b strings.Builder
	b.WriteString("Withdrawal {\n")
	b.WriteString(fmt.Sprintf("# A:  %s\n", formatBigInt(w.A, 100)))
	b.WriteString(fmt.Sprintf("# B:  %s\n", formatBigInt(w.B, 100)))
	b.WriteString(fmt.Sprintf("# Z:  %s\n", formatBigInt(w.Z, 100)))
	b.WriteString(fmt.Sprintf("# Ad: %s\n", formatBigInt(w.Ad, 100)))
	b.WriteString(fmt.Sprintf("# Bd: %s\n", formatBigInt(w.Bd, 100)))
	b.WriteString(fmt.Sprintf("# Cd: %s\n", formatBigInt(w.Cd, 100)))
	b.WriteString("}\n")
	return b.String()
}

// String satisfies the fmt.Stringer interface for Coin.
func (c Coin) String() string {
	var b strings.Builder
	b.WriteString("Coin {\n")
	b.WriteString(fmt.Sprintf("# C1: %s\n", formatBigInt(c.C1, 100)))
	b.WriteString(fmt.Sprintf("# C2: %s\n", formatBigInt(c.C2, 100)))
	b.WriteString(fmt.Sprintf("# C3: %s\n", formatBigInt(c.C3, 100)))
	b.WriteString(fmt.Sprintf("# C4: %s\n", formatBigInt(c.C4, 100)))
	b.WriteString(fmt.Sprintf("# C5: %s\n", formatBigInt(c.C5, 100)))
	b.WriteString(fmt.Sprintf("# C6: %s\n", formatBigInt(c.C6, 100)))
	b.WriteString(fmt.Sprintf("# Cd: %s\n", formatBigInt(c.Cd, 100)))
	b.WriteString("}\n")
	return b.String()
}

// String satisfies the fmt.Stringer interface for SpentCoin.
func (sc SpentCoin) String() string {
	var b strings.Builder
	b.WriteString("SpentCoin {\n")
	b.WriteString(sc.Coin.String())
	b.WriteString(fmt.Sprintf("# R1: %s\n", formatBigInt(sc.R1, 100)))
	b.WriteString(fmt.Sprintf("# R2: %s\n", formatBigInt(sc.R2, 100)))
	b.WriteString("}\n")
	return b.String()
}
