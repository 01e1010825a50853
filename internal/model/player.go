package model

// Side identifies one of the two players. None marks an empty cell and
// the absence of a winner.
type Side int

const (
	None Side = iota
	Light
	Dark
)

// forwardDelta maps a side to the row direction its men move in.
var forwardDelta = [...]int{
	None:  0,
	Light: 1,
	Dark:  -1,
}

func (s Side) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "none"
}

// Opponent returns the other side. None has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Light:
		return Dark
	case Dark:
		return Light
	}
	return None
}

// Forward returns the row delta a non-king piece of this side moves by.
func (s Side) Forward() int {
	return forwardDelta[s]
}

// BackRank is the row where pieces of this side are promoted.
func (s Side) BackRank() int {
	if s == Light {
		return BoardSize - 1
	}
	return 0
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
