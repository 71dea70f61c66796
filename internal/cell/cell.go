// Package cell defines the storage behavior of a single tape cell.
package cell

// Cell is the behavior required from one unit of tape storage.
// Implementations define the cell width and its wrapping arithmetic,
// the virtual machine never depends on a concrete width.
type Cell interface {
	// Increment adds one to the cell value, wrapping at the upper bound.
	Increment()

	// Decrement subtracts one from the cell value, wrapping at zero.
	Decrement()

	// Value returns the current cell value as a byte.
	Value() byte

	// Set stores the given byte into the cell.
	Set(value byte)
}

// Factory creates a new cell initialized to the zero value of its width.
type Factory func() Cell
