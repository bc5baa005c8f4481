// Package rng provides the deterministic random machinery shared by
// every mutation step: a seeded PCG generator, stable per-step seed
// derivation, and weighted sampling without replacement.
//
// Determinism contract:
//
//   - The same seed always yields the same draw sequence, across
//     processes and platforms.
//   - Every helper consumes a documented number of draws, so steps can
//     rely on exact draw alignment for reproducibility.
//   - Seed derivation depends only on the master seed and the step's
//     identity (name, scope, order), never on which other steps run.
//
// What the package does NOT provide: cryptographic randomness. Seeds
// and draws here exist for reproducible corruption, not security.
package rng
