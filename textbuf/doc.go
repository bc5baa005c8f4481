// Package textbuf provides the segment-indexed text buffer that every
// glitchkit mutation step edits in place.
//
// 🚀 What is a Buffer?
//
//	A Buffer tokenizes input text exactly once into an ordered sequence
//	of Segments — each either a Word (≥1 non-whitespace rune) or a
//	Separator (a run of whitespace) — and maintains derived position
//	metadata (Spans) plus a dense word-index so steps can address the
//	k-th word directly without re-tokenizing after every edit.
//
// Invariants (checked by the test suite, relied on everywhere):
//
//  1. Concatenating all segment texts in order reproduces String().
//  2. Spans are contiguous, non-overlapping and cover the whole buffer
//     in both rune and byte coordinates.
//  3. Word indices are dense (0..WordCount) and strictly increasing in
//     segment order.
//
// # Reindexing
//
// Structural mutators mark the derived metadata dirty instead of
// rebuilding it immediately, so a step issuing many edits pays for one
// reindex, not one per edit. Span-derived accessors (Spans, WordCount,
// WordSegment, ...) refresh the metadata lazily; callers that batch
// several bulk edits should still call Reindex once before reading
// derived data, which is a no-op on a clean buffer.
//
// Buffers are not safe for concurrent use; a pipeline run owns its
// buffer exclusively (see the pipeline package).
package textbuf
