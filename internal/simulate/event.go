package simulate

import (
	"valuation-lab/internal/domain"
	"valuation-lab/internal/randvar"
)

// eventKind tags the outcome of per-step discrete-event sampling.
type eventKind int

const (
	eventNone eventKind = iota
	eventJump
	eventStress
)

// event is the tagged outcome consumed by the step loops, replacing inline
// random comparisons scattered through the models.
type event struct {
	kind     eventKind
	jumpSize float64            // log-price jump, eventJump only
	stress   domain.StressEvent // eventStress only
}

// sampleJump draws a probabilistic jump for one step. intensity is the
// expected jump count per year; the per-step trigger probability is
// intensity*dt. Jump size is a random fraction of twice the mean size
// (so the expected magnitude equals meanSize) with a random sign.
func sampleJump(src *randvar.Source, intensity, meanSize, dt float64) event {
	if intensity <= 0 {
		return event{kind: eventNone}
	}
	if src.Uniform() >= intensity*dt {
		return event{kind: eventNone}
	}

	size := src.Uniform() * 2 * meanSize
	if src.Uniform() < 0.5 {
		size = -size
	}
	return event{kind: eventJump, jumpSize: size}
}

// sampleStress checks each configured stress event for one step; the
// per-step trigger probability is annualProbability/stepsPerYear. At most
// one event triggers per step, checked in configured order.
func sampleStress(src *randvar.Source, events []domain.StressEvent, stepsPerYear int) event {
	if stepsPerYear <= 0 {
		return event{kind: eventNone}
	}
	for _, ev := range events {
		if src.Uniform() < ev.AnnualProbability/float64(stepsPerYear) {
			return event{kind: eventStress, stress: ev}
		}
	}
	return event{kind: eventNone}
}

// pickRegime selects one regime via cumulative-probability selection,
// falling through to the last regime if rounding leaves the cumulative sum
// short of 1.0.
func pickRegime(src *randvar.Source, regimes []domain.Regime) domain.Regime {
	if len(regimes) == 0 {
		return domain.Regime{}
	}
	u := src.Uniform()
	cumulative := 0.0
	for _, r := range regimes {
		cumulative += r.Probability
		if u < cumulative {
			return r
		}
	}
	return regimes[len(regimes)-1]
}
