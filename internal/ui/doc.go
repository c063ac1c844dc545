// Package ui renders the deck in the terminal.
//
// The view is a grid of cells mirroring the physical deck layout: a cursor
// moves between cells, enter presses the selected one, esc presses the back
// cell when the current menu has one. Toggle cells are colored by their
// current state and the footer describes whatever the cursor is on. The
// grid redraws on a short interval so presses injected by remote triggers
// appear without local input.
package ui
