// Package debate holds the domain model for a dissertation debate session.
//
// Includes:
//   - Role / Message / Transcript: the append-only conversation record.
//   - State: transcript + whose turn it is + whether the debate has ended.
//   - Persona: the two advisor definitions, including the exact concession
//     phrases that terminate a debate.
//
// Invariants:
//   - The transcript is append-only; messages are never edited or removed.
//   - Ended flips false -> true exactly once per session and never reverts.
package debate
