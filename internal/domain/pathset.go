package domain

// PathSet is an ordered sequence of terminal value samples for one model at
// one horizon. Index i of every model's PathSet belongs to the same
// simulated path slot, which is what lets the ensemble combiner preserve
// cross-model structure by combining per index.
//
// Invariant: all values are finite and strictly positive, enforced by
// bounds-clamping inside each simulator. Samples are never discarded;
// discarding would bias the distribution.
type PathSet []float64
