package snake

// Kind is the tag of a move outcome.
type Kind int

const (
	// None is returned by a dead snake: nothing happened.
	None Kind = iota
	// Moved means the snake advanced without eating.
	Moved
	// Ate means the snake advanced onto the food and grew by one segment.
	Ate
	// Died means a collision was detected and the snake is now dead.
	Died
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Died:
		return "died"
	default:
		return "unknown"
	}
}

// Cause tells what a snake collided with.
type Cause int

const (
	CauseNone  Cause = iota
	CauseWall        // left the board
	CauseSelf        // ran into its own body
	CauseOther       // ran into another snake
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseOther:
		return "other"
	default:
		return "unknown"
	}
}

// Outcome is the per-tick result of Move. Cause is only set when Kind is Died.
type Outcome struct {
	Kind  Kind
	Cause Cause
}

func moved() Outcome {
	return Outcome{Kind: Moved}
}

func ate() Outcome {
	return Outcome{Kind: Ate}
}

func died(c Cause) Outcome {
	return Outcome{Kind: Died, Cause: c}
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o.Kind == Died {
		return "died (" + o.Cause.String() + ")"
	}
	return o.Kind.String()
}
