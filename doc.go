// Package lglayout is a parallel force-directed graph layout engine,
// ported from the Large Graph Layout (LGL) algorithm.
//
// 🚀 What is lglayout?
//
//	A thread-safe, mostly-stdlib-free library that lays out arbitrarily
//	large graphs by staging them through a guiding tree, one BFS layer
//	at a time, and relaxing each layer's particles under a spring model:
//
//	  • core/        — the input Graph, Vertex, Edge types (from lvlath)
//	  • guidetree/    — MST + BFS layering that decides reveal order
//	  • simparticle/  — per-vertex particle state (position, mass, force)
//	  • spatialgrid/  — voxel grid for O(1) neighbor queries
//	  • interaction/  — the repulsion/attraction spring-force handler
//	  • schedule/     — partitions voxels across worker goroutines
//	  • workerpool/   — the fan-out/fan-in barrier every pipeline stage uses
//	  • engine/       — the driver: per-layer seed, relax, converge
//	  • ioformat/     — LGL/NCOL graph I/O and result file formats
//
// Quick ASCII example of what a guiding tree does to a graph before
// layout begins:
//
//	    A───B          A (level 0, root)
//	    │   │    ->     └─B (level 1)
//	    C───D              └─C,D (level 2)
//
// See SPEC_FULL.md for the full component design and DESIGN.md for how
// each package maps onto it.
//
//	go get github.com/lglayout/lglayout
package lglayout
