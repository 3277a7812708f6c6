package tsurf

import "math"

// normalizeNoData rewrites every value exactly equal to its property's
// sentinel to NaN. It must run once, after the scan.
func normalizeNoData(props []*propertyBuffer, reg *registry) {
	for i, b := range props {
		s, ok := reg.sentinel(i, len(props))
		if !ok {
			continue
		}
		for j, v := range b.values {
			if v == s {
				b.values[j] = math.NaN()
			}
		}
	}
}
