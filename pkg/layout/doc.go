// Package layout provides the shared utility surface of the layered layout
// pipeline: synthetic node allocation, rank normalization and compaction,
// layer-matrix construction, chunk-safe reductions, sequence helpers, and
// the rectangle intersection primitive used by edge routing.
//
// The ranking and ordering packages build on these helpers; they hold no
// algorithmic policy of their own.
//
// # Synthetic Nodes
//
// [AddDummyNode] allocates nodes with process-unique identifiers drawn from
// an explicit [IDSource]. [AddBorderNode] and [AddPositionedBorderNode] are
// the two border-node call shapes: one leaves rank and order unset for a
// later phase, the other stores them immediately. [AddBorderSegments]
// installs the persistent per-rank border scaffolding of cluster nodes.
//
// # Rank Maintenance
//
// [NormalizeRanks] rebases ranks to start at zero, [RemoveEmptyRanks]
// collapses interior empty ranks modulo the graph's node-rank factor, and
// [BuildLayerMatrix] materializes the per-rank node sequences the crossing
// counter consumes.
package layout
