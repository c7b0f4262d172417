package core

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"brandscash/internal/modp"
)

// Params is the public group description shared by every actor in the
// scheme: a safe prime p = 2q+1, its Sophie Germain companion q, and
// three pairwise-distinct generators g, g1, g2 of the order-q subgroup
// of Z_p^*. scheme_key binds the HMAC used by hashToNumber during
// withdrawal and coin verification. Params is immutable once
// constructed; share it by value or by reference across goroutines
// freely.
type Params struct {
	SchemeKey []byte
	P, Q      *big.Int
	G, G1, G2 *big.Int
}

// ParamsFromDecimalStrings parses five decimal strings into a Params,
// bundled with the caller-supplied scheme key. It performs no structural
// validation of the group (p prime, p=2q+1, generator order, etc.): it
// only requires each string to parse as a non-negative integer.
func ParamsFromDecimalStrings(schemeKey []byte, p, q, g, g1, g2 string) (Params, error) {
	fields := []struct{ name, value string }{
		{"p", p}, {"q", q}, {"g", g}, {"g1", g1}, {"g2", g2},
	}
	parsed := make([]*big.Int, len(fields))
	for i, f := range fields {
		n, ok := new(big.Int).SetString(f.value, 10)
		if !ok {
			return Params{}, &ParseError{Field: f.name, Value: f.value}
		}
		parsed[i] = n
	}

	return Params{
		SchemeKey: append([]byte(nil), schemeKey...),
		P:         parsed[0],
		Q:         parsed[1],
		G:         parsed[2],
		G1:        parsed[3],
		G2:        parsed[4],
	}, nil
}

// ParamsFromNamedGroup builds Params from one of the well-known RFC
// 3526 / 5054 MODP safe-prime groups (1024, 1536, 2048, or 3072 bits).
// p and q come directly from the named group; the three generators g,
// g1, g2 are sampled independently as random elements of order q,
// rejecting collisions so the three end up pairwise distinct.
func ParamsFromNamedGroup(bits int, schemeKey []byte) (Params, error) {
	group, ok := modp.Lookup(bits)
	if !ok {
		return Params{}, &ParseError{Field: "bits", Value: strconv.Itoa(bits)}
	}

	p := new(big.Int).Set(group.N)
	q := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)

	g, err := randomGeneratorOfOrderQ(p, q)
	if err != nil {
		return Params{}, err
	}
	g1, err := distinctGeneratorOfOrderQ(p, q, g)
	if err != nil {
		return Params{}, err
	}
	g2, err := distinctGeneratorOfOrderQ(p, q, g, g1)
	if err != nil {
		return Params{}, err
	}

	return Params{
		SchemeKey: append([]byte(nil), schemeKey...),
		P:         p,
		Q:         q,
		G:         g,
		G1:        g1,
		G2:        g2,
	}, nil
}

// ParamsRandomToy builds Params by searching for a small safe prime pair
// (p, q), for use in tests only: q is the next odd prime at or above a
// random starting point below bound, accepted when p = 2q+1 is also
// prime, so p itself can be up to about twice bound. It is segregated
// from ParamsFromNamedGroup and ParamsFromDecimalStrings by name and
// doc comment: never use it to mint coins that need to hold real value.
func ParamsRandomToy(schemeKey []byte, bound int64) (Params, error) {
	if bound < 8 {
		bound = 8
	}
	boundBig := big.NewInt(bound)

	var p, q *big.Int
	for {
		candidate, err := rand.Int(rand.Reader, boundBig)
		if err != nil {
			return Params{}, err
		}
		if candidate.Cmp(big.NewInt(5)) < 0 {
			continue
		}
		q = nextPrime(candidate)
		if q.Cmp(big.NewInt(2)) == 0 {
			continue
		}
		p = new(big.Int).Add(new(big.Int).Lsh(q, 1), big.NewInt(1))
		if p.ProbablyPrime(20) {
			break
		}
	}

	g, err := randomGeneratorOfOrderQ(p, q)
	if err != nil {
		return Params{}, err
	}
	g1, err := distinctGeneratorOfOrderQ(p, q, g)
	if err != nil {
		return Params{}, err
	}
	g2, err := distinctGeneratorOfOrderQ(p, q, g, g1)
	if err != nil {
		return Params{}, err
	}

	return Params{
		SchemeKey: append([]byte(nil), schemeKey...),
		P:         p,
		Q:         q,
		G:         g,
		G1:        g1,
		G2:        g2,
	}, nil
}

// nextPrime returns the smallest odd prime >= n.
func nextPrime(n *big.Int) *big.Int {
	cand := new(big.Int).Set(n)
	if cand.Bit(0) == 0 {
		cand.Add(cand, big.NewInt(1))
	}
	for !cand.ProbablyPrime(20) {
		cand.Add(cand, big.NewInt(2))
	}
	return cand
}

// randomGeneratorOfOrderQ samples a random bit-length b in [2, bits(p)),
// then a random candidate of that bit length, squares it mod p (killing
// the order-2 component of Z_p^*, whose order is 2q), and retries until
// the result is neither 0 nor 1. What remains is an element whose order
// divides q, hence (q being prime) exactly q.
func randomGeneratorOfOrderQ(p, q *big.Int) (*big.Int, error) {
	return distinctGeneratorOfOrderQ(p, q)
}

// distinctGeneratorOfOrderQ behaves like randomGeneratorOfOrderQ but also
// rejects any candidate equal to one of the already-chosen generators.
func distinctGeneratorOfOrderQ(p, q *big.Int, taken ...*big.Int) (*big.Int, error) {
	bitLen := p.BitLen()
	one := big.NewInt(1)

	for {
		bSpan := bitLen - 2
		if bSpan < 1 {
			bSpan = 1
		}
		offset, err := rand.Int(rand.Reader, big.NewInt(int64(bSpan)))
		if err != nil {
			return nil, err
		}
		b := 2 + int(offset.Int64())

		limit := new(big.Int).Lsh(one, uint(b))
		x, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return nil, err
		}
		if x.Cmp(big.NewInt(2)) < 0 {
			continue
		}

		cand := modPow(x, big.NewInt(2), p)
		if cand.Cmp(one) == 0 {
			continue
		}

		collision := false
		for _, t := range taken {
			if t.Cmp(cand) == 0 {
				collision = true
				break
			}
		}
		if collision {
			continue
		}

		return cand, nil
	}
}

