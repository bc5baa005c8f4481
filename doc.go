// Package glitchkit is a deterministic text-corruption toolkit: seed
// it once and it degrades text the same way on every machine, every
// run.
//
// 🚀 What is glitchkit?
//
//	A small, thread-aware, almost-zero-dependency engine that brings together:
//		• Text buffer: segment-indexed words & separators, bulk edits under one reindex
//		• Deterministic RNG: seeded PCG draws, stable seed derivation, weighted sampling
//		• Step catalog: reduplication, deletion, swaps, redaction, typos, OCR noise,
//		  homoglyphs, homophones, zero-width injection, quote styling and more
//		• Pipeline: compile named, seeded steps once, then run them over many texts
//		• Metrics: edit distance, divergence, retention & restructuring scores
//
// ✨ Why choose glitchkit?
//
//   - Reproducible – every byte of corruption is a pure function of (text, seed)
//   - Filter-stable – adding or removing a step never changes another step's seed
//   - Pure Go – no cgo, no asset files, tables ship as package data
//   - Extensible – implement the one-method step contract and join the pipeline
//
// Under the hood, everything is organized under seven subpackages:
//
//	textbuf/  — segment-indexed buffer, edits, spans & normalization
//	rng/      — seeded source, seed derivation & weighted sampling
//	cache/    — insert-once concurrent memoization
//	keyboard/ — adjacency layouts & shift maps for typo modeling
//	glitch/   — the mutation-step contract and the full step catalog
//	pipeline/ — descriptor compilation, filtering, planning & execution
//	metrics/  — corruption-strength scoring over token streams
//
// Quick ASCII example:
//
//	"Hello world" ──reduplicate@1.0──▶ "Hello Hello world world"
//
//	the same seed always lands on the same corruption.
//
//	go get github.com/katalvlaran/glitchkit
package glitchkit
