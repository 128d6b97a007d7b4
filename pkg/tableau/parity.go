package tableau

// Parity is one of the four classes of the domino grid 2-coloring.
type Parity byte

const (
	W Parity = 'W' // even column, even row
	X Parity = 'X' // odd column, even row
	Y Parity = 'Y' // even column, odd row
	Z Parity = 'Z' // odd column, odd row
)

// String returns the single-letter class name.
func (p Parity) String() string { return string(rune(p)) }

// ParityOf classifies cell (x, y). Negative coordinates are classified by
// their mathematical parity.
func ParityOf(x, y int) Parity {
	oddX, oddY := x&1 == 1, y&1 == 1
	switch {
	case !oddX && !oddY:
		return W
	case oddX && !oddY:
		return X
	case !oddX && oddY:
		return Y
	default:
		return Z
	}
}
