package delta

import (
	"errors"
	"fmt"
)

// Reasons a derived metric is not emitted for an entity this tick.
var (
	ErrNoPrevious         = errors.New("no previous sample")
	ErrNonPositiveElapsed = errors.New("elapsed time not positive")
	ErrCounterReset       = errors.New("counter went backwards")
	ErrNoProgress         = errors.New("total did not advance")
)

// Elapsed returns seconds between two samples.
func Elapsed(prev, curr Sample) float64 {
	return curr.At.Sub(prev.At).Seconds()
}

func deltas(prev Sample, hasPrev bool, curr Sample) ([]uint64, float64, error) {
	if !hasPrev {
		return nil, 0, ErrNoPrevious
	}

	dt := Elapsed(prev, curr)
	if dt <= 0 {
		return nil, 0, ErrNonPositiveElapsed
	}

	if len(prev.Counters) != len(curr.Counters) {
		return nil, 0, fmt.Errorf("%w: counter layout changed", ErrCounterReset)
	}

	out := make([]uint64, len(curr.Counters))
	for i, c := range curr.Counters {
		if c < prev.Counters[i] {
			return nil, 0, ErrCounterReset
		}
		out[i] = c - prev.Counters[i]
	}

	return out, dt, nil
}

// Rates returns Δcounter/Δt for every counter.
func Rates(prev Sample, hasPrev bool, curr Sample) ([]float64, error) {
	d, dt, err := deltas(prev, hasPrev, curr)
	if err != nil {
		return nil, err
	}

	rates := make([]float64, len(d))
	for i, v := range d {
		rates[i] = float64(v) / dt
	}
	return rates, nil
}

// Percentages returns each counter's share of the summed delta, times 100.
func Percentages(prev Sample, hasPrev bool, curr Sample) ([]float64, error) {
	d, _, err := deltas(prev, hasPrev, curr)
	if err != nil {
		return nil, err
	}

	var total uint64
	for _, v := range d {
		total += v
	}
	if total == 0 {
		return nil, ErrNoProgress
	}

	pct := make([]float64, len(d))
	for i, v := range d {
		pct[i] = float64(v) / float64(total) * 100
	}
	return pct, nil
}

// IsSkip reports whether err only means "nothing to emit for this entity".
func IsSkip(err error) bool {
	return errors.Is(err, ErrNoPrevious) ||
		errors.Is(err, ErrNonPositiveElapsed) ||
		errors.Is(err, ErrCounterReset) ||
		errors.Is(err, ErrNoProgress)
}
