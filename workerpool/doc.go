// Package workerpool provides a fixed-size FIFO worker pool with
// future-returning submission and orderly shutdown, the concurrency
// primitive the simulation driver uses for its four-barrier-per-iteration
// pipeline. Grounded on LGL's thread_pool.hpp, re-expressed with Go
// channels and sync.WaitGroup in place of condition variables and
// std::packaged_task.
package workerpool
