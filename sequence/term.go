package sequence

import (
	"math/big"
	"math/bits"

	"github.com/agbru/calckit"
)

// Term computes the exact n-th Fibonacci term using the fast doubling
// algorithm.
//
// Uses the identities:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k+1)² + F(k)²
//
// walking the bits of n from the most significant down, for O(log n)
// big-integer steps. The result has roughly n*GrowthFactor bits.
func Term(n uint64) *big.Int {
	fk := big.NewInt(0)  // F(k)
	fk1 := big.NewInt(1) // F(k+1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// F(2k) = F(k) * (2*F(k+1) - F(k))
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)

		// F(2k+1) = F(k+1)² + F(k)²
		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)

		fk.Set(t1)
		fk1.Set(t2)

		// If the bit is set, shift the pair to F(2k+1), F(2k+2).
		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}

	return fk
}

// TermMod computes F(n) mod m using the same doubling ladder with every
// step reduced, keeping memory at O(log m) regardless of n. This makes it
// suitable for the last K digits of F(n) for arbitrarily large n.
//
// A nil or non-positive modulus fails with calckit.ErrInvalidArgument.
func TermMod(n uint64, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, calckit.NewInvalidArgument("sequence.TermMod", "modulus must be positive")
	}

	if n == 0 {
		return big.NewInt(0), nil
	}

	fk := big.NewInt(0)  // F(k) mod m
	fk1 := big.NewInt(1) // F(k+1) mod m
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// F(2k) = F(k) * (2*F(k+1) - F(k)) mod m. The difference can go
		// negative once the pair is reduced; Mod is Euclidean, so the
		// result lands back in [0, m).
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mod(t1, m)
		t1.Mul(t1, fk)
		t1.Mod(t1, m)

		// F(2k+1) = F(k+1)² + F(k)² mod m
		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)
		t2.Mod(t2, m)

		fk.Set(t1)
		fk1.Set(t2)

		if (n>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			t1.Mod(t1, m)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}

	return fk, nil
}
