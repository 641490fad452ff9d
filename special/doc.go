// Package special implements the scalar special functions the rest of the
// Fresnel inversion engine is built on: Bessel J0/I0, the Fresnel cosine
// and sine integrals, the principal branch of the Lambert W function,
// erf/erfc, and small polynomial-evaluation helpers (Horner's scheme,
// coefficient-shift derivatives, Legendre polynomials).
package special
