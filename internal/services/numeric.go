package services

import (
	"math"

	"finpulse/internal/models"
)

// percentile computes the pth percentile of ascending-sorted data using
// linear interpolation between closest ranks (rank = p/100 * (n-1)).
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// buildHistogram bins values into bins equal-width buckets spanning
// [min, max]. The last bucket is closed on the right so the maximum lands in
// it. A degenerate all-equal sample gets its range widened by half a unit on
// each side to keep bucket widths positive.
func buildHistogram(values []float64, bins int) models.Histogram {
	counts := make([]int, bins)
	edges := make([]float64, bins+1)
	if len(values) == 0 {
		return models.Histogram{Counts: counts, BinEdges: edges}
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + width*float64(i)
	}
	edges[bins] = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	return models.Histogram{Counts: counts, BinEdges: edges}
}
