// Package score computes weighted relevance scores for events against
// structured user intent.
//
// Scoring is purely additive: goal and industry tag matches contribute
// their taxonomy weights, and a fixed bonus table covers combination,
// multi-goal, temporal, demographic, and quality signals. The
// combination bonus dominates so that events serving both the user's
// purpose and their domain always outrank single-dimension matches.
// Every score carries a labeled breakdown for explainability.
package score
