package scale

import (
	"math"

	"github.com/forageapp/forage/internal/model"
)

// Apply scales a base amount by factor under the given policy:
//
//   - fixed: base, regardless of factor
//   - linear (and the zero-value policy): base * factor
//   - proportional: base * factor^exponent (default 0.7)
//   - sublinear: base * factor^exponent (default 0.8)
//   - discrete: round(base * factor) to the nearest integer, snapped
//     to the policy's permitted-value set when one is given; when two
//     permitted values are equidistant the larger wins
//
// Discrete rounding applies even at factor 1: a non-integer base
// normalizes to the nearest integer (or permitted value), so identity
// under discrete holds only for bases already in the target set.
//
// Min/max clamps apply after, lower bound first. Apply is pure and
// total: every (base, policy, factor) tuple produces a deterministic
// result.
func Apply(base float64, policy model.ScalingPolicy, factor float64) float64 {
	var scaled float64

	switch policy.EffectiveKind() {
	case model.PolicyFixed:
		scaled = base
	case model.PolicyProportional:
		scaled = base * math.Pow(factor, exponentOrDefault(policy.Exponent, model.DefaultProportionalExponent))
	case model.PolicySublinear:
		scaled = base * math.Pow(factor, exponentOrDefault(policy.Exponent, model.DefaultSublinearExponent))
	case model.PolicyDiscrete:
		scaled = math.Round(base * factor)
		if len(policy.Values) > 0 {
			scaled = snapToValues(scaled, policy.Values)
		}
	default:
		scaled = base * factor
	}

	if policy.Min != nil && scaled < *policy.Min {
		scaled = *policy.Min
	}
	if policy.Max != nil && scaled > *policy.Max {
		scaled = *policy.Max
	}

	return scaled
}

func exponentOrDefault(exponent, fallback float64) float64 {
	if exponent == 0 {
		return fallback
	}
	return exponent
}

// snapToValues returns the member of values closest to target by
// absolute distance. Ties resolve to the larger member.
func snapToValues(target float64, values []float64) float64 {
	best := values[0]
	bestDist := math.Abs(target - best)

	for _, v := range values[1:] {
		dist := math.Abs(target - v)
		if dist < bestDist || (dist == bestDist && v > best) {
			best = v
			bestDist = dist
		}
	}

	return best
}
