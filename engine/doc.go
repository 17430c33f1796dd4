// Package engine implements the SimulationDriver: the per-layer pipeline
// that reveals the guiding tree level by level, seeds each new batch of
// children, and relaxes the layout with a four-barrier repulsion/
// attraction/integration/stats loop per iteration, fanned out over a
// workerpool.Pool. Grounded on spec.md §4.4 and §4.9/§7's failure
// semantics; the four stages and their barriers are the teacher-idiom
// application of workerpool.Pool.SubmitAll/AwaitAll.
package engine
