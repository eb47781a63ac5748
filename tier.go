package pointfield

import "math/rand/v2"

// FadeTier is one weighted bucket of a tiered random distribution. Weight is
// relative; it does not need to be normalized across a table.
type FadeTier struct {
	Weight float64
	Values Range
}

// TierTable draws a value by first choosing a tier with a single uniform draw
// weighted by FadeTier.Weight, then drawing uniformly from that tier's range.
// Discrete tiers plus a small per-point jitter give rows distinct fast, slow
// and very slow personalities instead of uniform noise.
type TierTable []FadeTier

// DefaultMultiplierTiers are the fade-speed tiers: super fast, medium fast,
// slower visible fade and very slow fade, 25% each.
var DefaultMultiplierTiers = TierTable{
	{Weight: 0.25, Values: Range{15.0, 20.0}},
	{Weight: 0.25, Values: Range{6.0, 9.0}},
	{Weight: 0.25, Values: Range{2.0, 4.0}},
	{Weight: 0.25, Values: Range{0.5, 1.0}},
}

// DefaultLengthTiers are the fade-trail length tiers in units of the active
// column width: very short (30%), medium (30%) and long (40%).
var DefaultLengthTiers = TierTable{
	{Weight: 0.3, Values: Range{0.3, 0.5}},
	{Weight: 0.3, Values: Range{0.8, 1.2}},
	{Weight: 0.4, Values: Range{1.5, 2.5}},
}

// totalWeight sums the positive weights in t.
func (t TierTable) totalWeight() float64 {
	var sum float64
	for _, tier := range t {
		if tier.Weight > 0 {
			sum += tier.Weight
		}
	}
	return sum
}

// Pick returns the index of the tier selected by u ∈ [0, 1). Tiers with a
// non-positive weight are never selected. Returns -1 for an empty table or
// one with no positive weights.
func (t TierTable) Pick(u float64) int {
	total := t.totalWeight()
	if total <= 0 {
		return -1
	}
	target := u * total
	last := -1
	var acc float64
	for i, tier := range t {
		if tier.Weight <= 0 {
			continue
		}
		acc += tier.Weight
		last = i
		if target < acc {
			return i
		}
	}
	// u at or rounding past the top edge lands in the last live tier.
	return last
}

// Sample draws one value from the table. An unusable table yields fallback.
func (t TierTable) Sample(rng *rand.Rand, fallback float64) float64 {
	i := t.Pick(float64Of(rng))
	if i < 0 {
		return fallback
	}
	return t[i].Values.Random(rng)
}

// Bounds returns the smallest range covering every live tier.
func (t TierTable) Bounds() (Range, bool) {
	var r Range
	found := false
	for _, tier := range t {
		if tier.Weight <= 0 {
			continue
		}
		if !found {
			r = tier.Values
			found = true
			continue
		}
		r.Min = min(r.Min, tier.Values.Min)
		r.Max = max(r.Max, tier.Values.Max)
	}
	return r, found
}
