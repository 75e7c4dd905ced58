package aberration

import "math"

// ChiSymmetric computes the rotationally symmetric phase error from the
// C10, C30 and C50 coefficients only (Kirkland Eq. 2.6).
//
// alpha holds scattering semiangles in radians, wavelength is in Ångström.
func ChiSymmetric(alpha []float64, wavelength float64, p *Params) []float64 {
	c10 := p.at("C10")
	c30 := p.at("C30")
	c50 := p.at("C50")

	pre := 2 * math.Pi / wavelength
	out := make([]float64, len(alpha))

	for i, a := range alpha {
		a2 := a * a
		out[i] = pre * (a2*c10/2 + a2*a2*c30/4 + a2*a2*a2*c50/6)
	}

	return out
}

// ChiPolar computes the polar expansion of the phase error up to fifth
// order (Kirkland Eq. 2.22).
//
// Each expansion order is evaluated only when one of its coefficients is
// non-zero; a skipped order contributes exactly zero, so the result is
// identical either way.
func ChiPolar(alpha, phi []float64, wavelength float64, p *Params) []float64 {
	c10, c12, phi12 := p.at("C10"), p.at("C12"), p.at("phi12")
	c21, phi21, c23, phi23 := p.at("C21"), p.at("phi21"), p.at("C23"), p.at("phi23")
	c30, c32, phi32, c34, phi34 := p.at("C30"), p.at("C32"), p.at("phi32"), p.at("C34"), p.at("phi34")
	c41, phi41, c43, phi43, c45, phi45 := p.at("C41"), p.at("phi41"), p.at("C43"), p.at("phi43"), p.at("C45"), p.at("phi45")
	c50, c52, phi52, c54, phi54, c56, phi56 := p.at("C50"), p.at("C52"), p.at("phi52"), p.at("C54"), p.at("phi54"), p.at("C56"), p.at("phi56")

	order1 := c10 != 0 || c12 != 0 || phi12 != 0
	order2 := c21 != 0 || phi21 != 0 || c23 != 0 || phi23 != 0
	order3 := c30 != 0 || c32 != 0 || phi32 != 0 || c34 != 0 || phi34 != 0
	order4 := c41 != 0 || phi41 != 0 || c43 != 0 || phi43 != 0 || c45 != 0 || phi45 != 0
	order5 := c50 != 0 || c52 != 0 || phi52 != 0 || c54 != 0 || phi54 != 0 || c56 != 0 || phi56 != 0

	pre := 2 * math.Pi / wavelength
	out := make([]float64, len(alpha))

	for i, a := range alpha {
		a2 := a * a
		f := phi[i]
		chi := 0.0

		if order1 {
			chi += a2 / 2 * (c10 + c12*math.Cos(2*(f-phi12)))
		}

		if order2 {
			chi += a2 * a / 3 * (c21*math.Cos(f-phi21) + c23*math.Cos(3*(f-phi23)))
		}

		if order3 {
			chi += a2 * a2 / 4 * (c30 + c32*math.Cos(2*(f-phi32)) + c34*math.Cos(4*(f-phi34)))
		}

		if order4 {
			chi += a2 * a2 * a / 5 * (c41*math.Cos(f-phi41) + c43*math.Cos(3*(f-phi43)) + c45*math.Cos(5*(f-phi45)))
		}

		if order5 {
			chi += a2 * a2 * a2 / 6 * (c50 + c52*math.Cos(2*(f-phi52)) + c54*math.Cos(4*(f-phi54)) + c56*math.Cos(6*(f-phi56)))
		}

		out[i] = pre * chi
	}

	return out
}

// phaseFactor converts a phase error into the unit-modulus aberration
// factor exp(-i*chi).
func phaseFactor(chi []float64) []complex128 {
	out := make([]complex128, len(chi))
	for i, x := range chi {
		out[i] = complex(math.Cos(x), -math.Sin(x))
	}

	return out
}

// SymmetricPhaseFactor returns exp(-i*chi) for the symmetric phase error.
func SymmetricPhaseFactor(alpha []float64, wavelength float64, p *Params) []complex128 {
	return phaseFactor(ChiSymmetric(alpha, wavelength, p))
}

// PolarPhaseFactor returns exp(-i*chi) for the polar phase error.
func PolarPhaseFactor(alpha, phi []float64, wavelength float64, p *Params) []complex128 {
	return phaseFactor(ChiPolar(alpha, phi, wavelength, p))
}

// Aperture computes the objective aperture factor.
//
// With rolloff zero the mask is a hard step at the cutoff angle. With
// rolloff positive the edge is softened over a width of rolloff*cutoff by a
// raised-cosine ramp. An unbounded cutoff yields an all-ones mask.
func Aperture(alpha []float64, cutoff, rolloff float64) []float64 {
	out := make([]float64, len(alpha))

	if math.IsInf(cutoff, 1) {
		for i := range out {
			out[i] = 1
		}

		return out
	}

	if rolloff > 0 {
		width := rolloff * cutoff
		for i, a := range alpha {
			switch {
			case a > cutoff:
				out[i] = 0
			case a > cutoff-width:
				out[i] = 0.5 * (1 + math.Cos(math.Pi*(a-cutoff+width)/width))
			default:
				out[i] = 1
			}
		}

		return out
	}

	for i, a := range alpha {
		if a < cutoff {
			out[i] = 1
		}
	}

	return out
}

// TemporalEnvelope computes the chromatic damping envelope
// exp(-(pi/2 * focalSpread * alpha^2 / wavelength)^2).
//
// A zero focal spread yields an all-ones array.
func TemporalEnvelope(alpha []float64, wavelength, focalSpread float64) []float64 {
	out := make([]float64, len(alpha))
	pre := 0.5 * math.Pi / wavelength * focalSpread

	for i, a := range alpha {
		x := pre * a * a
		out[i] = math.Exp(-x * x)
	}

	return out
}

// SpatialEnvelope computes the partial-coherence damping envelope from the
// squared gradient of the phase error in (alpha, phi) coordinates.
//
// The gradient terms are the closed-form derivatives of ChiPolar. A zero
// angular spread degenerates to an all-ones array through sign(0) = 0.
func SpatialEnvelope(alpha, phi []float64, wavelength, angularSpread float64, p *Params) []float64 {
	c10, c12, phi12 := p.at("C10"), p.at("C12"), p.at("phi12")
	c21, phi21, c23, phi23 := p.at("C21"), p.at("phi21"), p.at("C23"), p.at("phi23")
	c30, c32, phi32, c34, phi34 := p.at("C30"), p.at("C32"), p.at("phi32"), p.at("C34"), p.at("phi34")
	c41, phi41, c43, phi43, c45, phi45 := p.at("C41"), p.at("phi41"), p.at("C43"), p.at("phi43"), p.at("C45"), p.at("phi45")
	c50, c52, phi52, c54, phi54, c56, phi56 := p.at("C50"), p.at("C52"), p.at("phi52"), p.at("C54"), p.at("phi54"), p.at("C56"), p.at("phi56")

	pre := 2 * math.Pi / wavelength
	scale := -sign(angularSpread) * (angularSpread / 2) * (angularSpread / 2)
	out := make([]float64, len(alpha))

	for i, a := range alpha {
		f := phi[i]
		a2 := a * a

		dchiDk := pre * ((c12*math.Cos(2*(f-phi12))+c10)*a +
			(c23*math.Cos(3*(f-phi23))+c21*math.Cos(f-phi21))*a2 +
			(c34*math.Cos(4*(f-phi34))+c32*math.Cos(2*(f-phi32))+c30)*a2*a +
			(c45*math.Cos(5*(f-phi45))+c43*math.Cos(3*(f-phi43))+c41*math.Cos(f-phi41))*a2*a2 +
			(c56*math.Cos(6*(f-phi56))+c54*math.Cos(4*(f-phi54))+c52*math.Cos(2*(f-phi52))+c50)*a2*a2*a)

		dchiDphi := -pre * (1.0/2*(2*c12*math.Sin(2*(f-phi12)))*a +
			1.0/3*(3*c23*math.Sin(3*(f-phi23))+c21*math.Sin(f-phi21))*a2 +
			1.0/4*(4*c34*math.Sin(4*(f-phi34))+2*c32*math.Sin(2*(f-phi32)))*a2*a +
			1.0/5*(5*c45*math.Sin(5*(f-phi45))+3*c43*math.Sin(3*(f-phi43))+c41*math.Sin(f-phi41))*a2*a2 +
			1.0/6*(6*c56*math.Sin(6*(f-phi56))+4*c54*math.Sin(4*(f-phi54))+2*c52*math.Sin(2*(f-phi52)))*a2*a2*a)

		out[i] = math.Exp(scale * (dchiDk*dchiDk + dchiDphi*dchiDphi))
	}

	return out
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
