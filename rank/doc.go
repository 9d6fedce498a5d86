// Package rank turns a scored candidate pool into the final ordered,
// justified recommendation list.
//
// The top of the scored pool is summarized into a bounded window and
// handed to the reasoning service, which picks top-K candidates and
// writes a justification for each. Out-of-range and duplicate indices
// in the response are dropped. If the service is missing, errors, or
// yields zero usable selections, the ranker falls back to plain score
// order with a generic justification, so a ranked answer always comes
// back.
package rank
