// Package engine coordinates the alternating-turn debate between the two
// advisor backends and decides when the debate is over.
//
// Invariants:
//   - Advisor turns strictly alternate starting with Dr. Nova.
//   - A session ends exactly once: by concession, by mutual rejection, or by
//     a failed generate call (no retry; the transcript up to the last
//     successful turn is preserved).
//
// Flow:
//
//	user(idea) -> nova(text) -> sage(text) -> nova(text) -> ... -> ended
package engine
