// Package dependency orders and moves tasks according to their single
// "depends on" predecessor.
//
// Everything here works on an in-memory snapshot of a board (its tasks
// and its ordered columns) and never mutates it. Malformed snapshots are
// tolerated: a dangling predecessor counts as no predecessor, an unknown
// column stops a walk, and a cycle ends traversal at the first repeated
// task id. Cycle tolerance is a bounded-traversal policy, not a
// resolution; new cycles are rejected when a dependency is written (see
// Graph.WouldCycle).
package dependency
