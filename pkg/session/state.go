package session

// State is a step of the purchase loop.
type State int

const (
	Browsing State = iota
	Selecting
	Paying
	Dispensing
	Suggesting
	Continuing
	Exited
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Selecting:
		return "selecting"
	case Paying:
		return "paying"
	case Dispensing:
		return "dispensing"
	case Suggesting:
		return "suggesting"
	case Continuing:
		return "continuing"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}
