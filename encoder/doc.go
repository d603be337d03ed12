// Package encoder searches for sparse finite state machine encodings: M bit
// patterns of width N whose pairwise Hamming distance is at least D.
//
// The search is a randomized heuristic. A Searcher draws uniformly random
// candidates from an explicitly seeded Source and accepts every candidate that
// keeps its distance to all previously accepted encodings. Each construction
// attempt (segment) may draw at most Budget.MaxDraws candidates, counting
// accepted and rejected draws alike. When a segment runs out of draws the
// partial set is discarded and a new segment starts from one fresh encoding;
// after Budget.MaxRestarts discarded segments the search fails with a
// *SearchExhaustedError.
//
// Identical Params (including the seed) and an identically seeded Source always
// produce the same ordered EncodingSet.
package encoder
