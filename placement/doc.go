// Package placement seeds the initial positions of a layer's newly-revealed
// children: a direction vector from the center of mass of already-placed
// vertices through the parent, scaled by a dimension-aware placement
// distance, scattered on a small sphere around the resulting spot. Grounded
// on the original engine's layer-reveal seeding step (graph.hpp /
// particleHandler.hpp's position initialization for newly activated nodes).
package placement
