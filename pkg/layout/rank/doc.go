// Package rank computes the initial vertical layer assignment of a layered
// layout. [LongestPath] produces unnormalized ranks honoring every edge's
// minimum length; [Slack] measures how much an edge could still shrink.
// Downstream refinement and normalization happen elsewhere.
package rank
