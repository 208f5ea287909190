package domain

import "sort"

// Pure metric helpers shared by the models and the engine. All of them are
// stateless; randomness never enters here. Map aggregations run in key order:
// float addition is not associative, so summing in map iteration order would
// make results differ bit-for-bit between reruns of the same seed.

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Mean returns the arithmetic mean of vs, or 0 for an empty slice.
func Mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// HHI computes the Herfindahl-Hirschman concentration index over the given
// values: sum of squared shares. 1.0 means a single sector holds everything,
// 1/n is the floor for n equal sectors. Scale-invariant in the inputs.
func HHI(values map[string]float64) float64 {
	keys := orderedKeys(values)
	total := 0.0
	for _, k := range keys {
		if v := values[k]; v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return 0
	}
	hhi := 0.0
	for _, k := range keys {
		v := values[k]
		if v <= 0 {
			continue
		}
		share := v / total
		hhi += share * share
	}
	return hhi
}

// TradeBalance is exports minus imports.
func TradeBalance(exports, imports float64) float64 {
	return exports - imports
}

// TradeOpenness is (exports + imports) / GDP. Returns 0 when GDP is not
// positive rather than dividing by zero.
func TradeOpenness(exports, imports, gdp float64) float64 {
	if gdp <= 0 {
		return 0
	}
	return (exports + imports) / gdp
}

// WeightedSum multiplies each value by its weight and sums. Keys present in
// only one of the maps contribute nothing.
func WeightedSum(values, weights map[string]float64) float64 {
	sum := 0.0
	for _, k := range orderedKeys(values) {
		sum += values[k] * weights[k]
	}
	return sum
}

// orderedKeys returns map keys sorted, for order-independent aggregation.
func orderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
