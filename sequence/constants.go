package sequence

// ─────────────────────────────────────────────────────────────────────────────
// Sequence Limits
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxUint64Term is the largest index n for which F(n) fits in a uint64.
	// F(93) = 12200160415121876738 < 2^64, while F(94) does not fit.
	//
	// Fibonacci returns exact values through this index; later slice terms
	// wrap modulo 2^64. Term is exact for every index.
	MaxUint64Term = 93

	// MaxUint64TermValue is F(MaxUint64Term), the largest Fibonacci number
	// representable in a uint64.
	MaxUint64TermValue uint64 = 12200160415121876738

	// GrowthFactor is log2(phi), where phi ≈ 1.618 (golden ratio).
	// Used to estimate the bit length of F(n): bits(F(n)) ≈ n * GrowthFactor.
	GrowthFactor = 0.69424
)
