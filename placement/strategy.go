package placement

// Strategy selects one of the relative-position formulas used to place a
// child frame next to an anchor box.
type Strategy int

const (
	// RightMiddle places the frame to the right of the box, vertically
	// centered on it.
	RightMiddle Strategy = iota
	// Above places the frame directly above the box, bottom edge
	// aligned to the box top.
	Above
	// Below places the frame directly below the box, top edge aligned
	// to the box bottom.
	Below
)

// String returns the string representation of the strategy
func (s Strategy) String() string {
	switch s {
	case RightMiddle:
		return "right-middle"
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "unknown"
	}
}

// order returns the strategy priority for a preferred strategy: the
// preference first, then the remaining two in its fixed fallback order.
func order(pref Strategy) [3]Strategy {
	switch pref {
	case Above:
		return [3]Strategy{Above, Below, RightMiddle}
	case Below:
		return [3]Strategy{Below, Above, RightMiddle}
	default:
		return [3]Strategy{RightMiddle, Above, Below}
	}
}
