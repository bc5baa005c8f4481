// Package glitch implements the mutation step catalog: word-level
// edits (reduplication, deletion, swapping, redaction), character
// noise (typos, OCR confusions, zero-width injection, homoglyphs),
// and lexical swaps (homophones, vowel stretching, quote pairs).
//
// Every step satisfies Op and follows one contract:
//
//   - Apply mutates the buffer in place or returns an error leaving
//     it untouched; there are no partial failures.
//   - All randomness flows through the supplied Rng. A step consumes
//     the same number of draws for a given input shape regardless of
//     which internal branches fire, so seeded runs stay reproducible
//     across configuration changes.
//   - Rates are clamped, not rejected. A zero rate is a no-op, a rate
//     of one saturates the step's effect.
//
// Steps are pure with respect to package state: the default lookup
// tables (confusions, homoglyphs, homophones, quote pairs) are
// read-only, and callers may substitute their own.
package glitch
