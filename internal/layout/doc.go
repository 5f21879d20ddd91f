// Package layout implements the force-directed layout of a sociogram view.
//
// A Simulation holds mutable node positions for the currently visible nodes
// and nominations. Each call to Tick advances the layout by one bounded step
// applying four forces: centering, link springs, many-body repulsion
// (Barnes-Hut via gonum's barneshut package) and collision. The energy
// parameter alpha decays every tick; once it falls below the minimum the
// simulation stops by itself.
//
// The simulation is reheated when the view changes, when layout parameters
// change with nodes present, or when the viewport is resized. Dragging pins a
// node for the duration of the drag and releases it afterwards.
//
// A Simulation is not safe for concurrent use; the host drives it from a
// single goroutine.
package layout
