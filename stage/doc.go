// Package stage runs chains of bulk-synchronous batch computations over
// disk-persisted graphs. A Stage receives the configuration describing its
// input and returns the configuration describing its output (what it wrote
// and where); a Chain runs stages in order, deriving each stage's input
// configuration from the previous stage's output configuration with
// conf.DeriveInput. Configuration is the only thing passed between stages:
// no graph data or other state crosses the boundary in memory.
//
// Optional pre/post hooks (Observer) let you record chain and stage execution
// (log start/end, input/output configurations, duration). Pass
// RunOptions{Observer: myObserver} to Chain.Run; a run ID is generated when
// none is supplied.
//
// Helper stages cover common patterns: Identity, Tap (side effects),
// SetKey (declare an output setting), Require (fail unless keys are present),
// and WithTimeout (context deadline around a stage).
package stage
