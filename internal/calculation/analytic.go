package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/hullwhite/internal/domain"
)

// AnalyticZeroCouponPrice returns the closed-form affine price P(0,T) = A*exp(-B*r0)
// for a constant mean level:
//
//	B = (1 - exp(-aT)) / a
//	ln A = (theta - sigma²/(2a²))(B - T) - sigma²B²/(4a)
//
// With a == 0 the limit B = T, ln A = sigma²T³/6 is used. It serves as a
// benchmark for simulated prices and is not used by the single-path pricer.
func AnalyticZeroCouponPrice(params domain.ModelParameters, maturity float64) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if params.ThetaFunc != nil {
		return 0, fmt.Errorf("%w: closed form needs a constant mean level", domain.ErrInvalidParameter)
	}
	if math.IsNaN(maturity) || math.IsInf(maturity, 0) || maturity <= 0 {
		return 0, fmt.Errorf("%w: maturity must be a positive finite number of years, got %v", domain.ErrInvalidParameter, maturity)
	}

	a, sigma, theta, T := params.A, params.Sigma, params.Theta, maturity
	s2 := sigma * sigma

	if a == 0 {
		return math.Exp(-params.R0*T + s2*T*T*T/6), nil
	}

	b := -math.Expm1(-a*T) / a
	lnA := (theta-s2/(2*a*a))*(b-T) - s2*b*b/(4*a)
	return math.Exp(lnA - b*params.R0), nil
}
