// Package order assigns each ranked node a horizontal position that keeps
// edge crossings low. Ranks are ordered by repeated barycenter sweeps over
// per-rank layer graphs, honoring cluster membership so that children of a
// compound node stay contiguous, and the best layering seen is kept.
package order
