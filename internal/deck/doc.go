// Package deck turns the declarative button tree into a navigable,
// stateful grid of cells.
//
// A Node tracks which menu is displayed and how to return to its
// parent; Layout assigns buttons to grid cells (suppressing declared
// Back entries and reserving the bottom-right cell for the automatic
// back affordance on non-root screens); the Navigator dispatches
// presses to the command runner, the toggle orchestrator, or its own
// descend/ascend handling. Labels and icons for toggle cells are a pure
// function of the state store, recomputed on every Grid call.
package deck
