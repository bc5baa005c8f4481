// Package pipeline assembles named corruption steps into a compiled,
// reusable plan. Each step owns a seed derived from one master seed
// and its declared name, scope, and order, so filtering steps in or
// out never perturbs the seeds of the steps that remain.
package pipeline
