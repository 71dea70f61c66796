package cell

// Compile-time check to ensure Byte implements Cell.
var _ Cell = (*Byte)(nil)

// Byte is the reference cell implementation: 8 bits wide with modular
// arithmetic, 255 wraps to 0 on increment and 0 wraps to 255 on decrement.
type Byte uint8

// NewByte returns a new zeroed 8 bit cell.
func NewByte() Cell {
	return new(Byte)
}

// Increment adds one to the cell value, 255 wraps to 0.
func (b *Byte) Increment() {
	*b++
}

// Decrement subtracts one from the cell value, 0 wraps to 255.
func (b *Byte) Decrement() {
	*b--
}

// Value returns the current cell value.
func (b *Byte) Value() byte {
	return byte(*b)
}

// Set stores the given byte into the cell.
func (b *Byte) Set(value byte) {
	*b = Byte(value)
}
