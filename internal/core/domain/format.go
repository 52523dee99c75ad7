package domain

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatNumber renders v with the fewest digits that read back to the same value.
// Negative zero prints as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed renders v with exactly prec decimals.
// Ties on the exact binary value round away from zero, so 0.125 becomes "0.13".
func FormatFixed(v float64, prec int) string {
	if prec < 0 {
		prec = 0
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}

	r := new(big.Rat).SetFloat64(v)

	neg := r.Sign() < 0
	r.Abs(r)

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))

	q, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(r.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	digits := q.String()
	if prec > 0 {
		if len(digits) <= prec {
			digits = strings.Repeat("0", prec-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-prec] + "." + digits[len(digits)-prec:]
	}

	if neg {
		return "-" + digits
	}
	return digits
}
