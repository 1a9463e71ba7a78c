package model

// PolicyKind identifies one of the five scaling behaviors.
type PolicyKind string

const (
	// PolicyLinear scales amount * factor. The zero value of
	// ScalingPolicy behaves as linear.
	PolicyLinear PolicyKind = "linear"

	// PolicyProportional scales amount * factor^exponent. Seasoning
	// should not scale 1:1 with batch size.
	PolicyProportional PolicyKind = "proportional"

	// PolicySublinear is proportional with a gentler default exponent.
	PolicySublinear PolicyKind = "sublinear"

	// PolicyFixed never scales.
	PolicyFixed PolicyKind = "fixed"

	// PolicyDiscrete rounds the scaled amount to the nearest integer,
	// optionally snapped to an explicit permitted-value set.
	PolicyDiscrete PolicyKind = "discrete"
)

// Default exponents for the power-law policies.
const (
	DefaultProportionalExponent = 0.7
	DefaultSublinearExponent    = 0.8
)

// ScalingPolicy is a closed tagged variant describing how an
// ingredient's quantity responds to a recipe-wide scale factor.
// Payload fields apply only to the kinds that use them.
type ScalingPolicy struct {
	Kind PolicyKind `json:"kind,omitempty"`

	// Exponent for proportional/sublinear; 0 selects the kind's default.
	Exponent float64 `json:"exponent,omitempty"`

	// Values is the permitted-value set for discrete snapping.
	Values []float64 `json:"values,omitempty"`

	// Min/Max clamp the scaled result. Nil means unbounded.
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Linear returns the default policy.
func Linear() ScalingPolicy {
	return ScalingPolicy{Kind: PolicyLinear}
}

// Proportional returns a proportional policy with the given exponent
// (0 means the 0.7 default).
func Proportional(exponent float64) ScalingPolicy {
	return ScalingPolicy{Kind: PolicyProportional, Exponent: exponent}
}

// Fixed returns a policy that never scales.
func Fixed() ScalingPolicy {
	return ScalingPolicy{Kind: PolicyFixed}
}

// Discrete returns a discrete policy snapped to the given values
// (empty means plain nearest-integer rounding).
func Discrete(values ...float64) ScalingPolicy {
	return ScalingPolicy{Kind: PolicyDiscrete, Values: values}
}

// EffectiveKind resolves the missing-policy case: an unset kind is
// linear by contract.
func (p ScalingPolicy) EffectiveKind() PolicyKind {
	if p.Kind == "" {
		return PolicyLinear
	}
	return p.Kind
}
