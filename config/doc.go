// Package config centralizes the simulation's tunable parameters behind a
// functional-options constructor, mirroring builder's BuilderOption idiom:
// Default() returns the documented defaults, then each Option mutates the
// Config in order. Validate reports configuration combinations spec.md's
// error-handling design treats as fatal before a run ever starts.
package config
