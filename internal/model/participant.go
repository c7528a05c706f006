package model

// ActivityStatus is the explicit, HR-declared activity state of a
// participant. It is independent of the evidence-based Active flag:
// StatusInactive means "confirmed inactive by roster status", while
// StatusUnknown means the roster carried no usable status field.
type ActivityStatus int

const (
	StatusUnknown ActivityStatus = iota
	StatusActive
	StatusInactive
)

func (s ActivityStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// Participant is the canonical accumulator for one real-world person,
// merged across the roster, likes and comments feeds. Descriptive
// attributes are filled on first sighting; metric totals only ever grow.
type Participant struct {
	Identity   string
	Name       string
	Username   string
	ClientID   string
	ClientName string
	Division   string

	Likes    float64
	Comments float64

	// Active flips to true the moment any metric exceeds zero and is
	// never reset.
	Active bool

	// ExplicitStatus is set only from roster status fields.
	ExplicitStatus ActivityStatus

	// FromRoster marks identities that appeared in the roster feed;
	// only those count as evaluated members.
	FromRoster bool

	// RecordCount is the number of source records folded into this
	// accumulator.
	RecordCount int
}
