// Package interaction implements the pairwise spring-repulsion force law,
// collision noise, anchor handling, force limiting, and the first-order
// Euler integrator. Stateless except for tunable scalars held in Handler.
// Grounded on LGL's particleInteractionHandler.hpp.
package interaction
