// Package ioformat reads and writes the LGL and NCOL text graph formats,
// plus the engine's output files (final positions, root id, MST edges,
// per-edge max-level). Grounded on original_source/include/graph.hpp's
// readLGL/writeLGL/writeNCOL and src/lglayout.C's output loops; these are
// the "external collaborators" spec.md §1 explicitly leaves out of the
// simulation core.
package ioformat
