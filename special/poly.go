package special

// HornerEval evaluates a polynomial at x given its coefficients ordered
// from lowest degree to highest: coeffs[0] + coeffs[1]*x + ... +
// coeffs[n]*x^n.
func HornerEval(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}
	return acc
}

// HornerEvalComplex evaluates a real-coefficient polynomial at a complex
// point.
func HornerEvalComplex(coeffs []float64, x complex128) complex128 {
	if len(coeffs) == 0 {
		return 0
	}
	acc := complex(coeffs[len(coeffs)-1], 0)
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = acc*x + complex(coeffs[i], 0)
	}
	return acc
}

// PolyDerivative returns the coefficients of the derivative of the
// polynomial described by coeffs (lowest degree first), by the standard
// coefficient-shifting rule: d/dx sum a_i x^i = sum i*a_i x^(i-1).
func PolyDerivative(coeffs []float64) []float64 {
	if len(coeffs) <= 1 {
		return []float64{}
	}
	out := make([]float64, len(coeffs)-1)
	for i := 1; i < len(coeffs); i++ {
		out[i-1] = float64(i) * coeffs[i]
	}
	return out
}

// LegendreP evaluates the Legendre polynomial of degree n at x via the
// three-term recurrence (n+1)P_{n+1}(x) = (2n+1) x P_n(x) - n P_{n-1}(x).
func LegendreP(n int, x float64) float64 {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return x
	}
	pPrev, pCur := 1.0, x
	for k := 1; k < n; k++ {
		pNext := (float64(2*k+1)*x*pCur - float64(k)*pPrev) / float64(k+1)
		pPrev, pCur = pCur, pNext
	}
	return pCur
}
