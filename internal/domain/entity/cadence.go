package entity

// Cadence is the recurrence rule of a chore: how often and in which weeks it
// produces work.
type Cadence string

const (
	// CadenceWeekly produces one occurrence every week.
	CadenceWeekly Cadence = "weekly"
	// CadenceTwiceWeekly produces two occurrences every week.
	CadenceTwiceWeekly Cadence = "twice-weekly"
	// CadenceBiweekly produces one occurrence on even week indices.
	CadenceBiweekly Cadence = "biweekly"
	// CadenceMonthly produces one occurrence in one week out of four,
	// staggered by the chore's position among the monthly chores.
	CadenceMonthly Cadence = "monthly"
	// CadenceQuarterly is the group cadence: when due, every person in the
	// roster receives the chore in the same week.
	CadenceQuarterly Cadence = "quarterly"
)

// Valid returns true if the cadence is a known value.
func (c Cadence) Valid() bool {
	switch c {
	case CadenceWeekly, CadenceTwiceWeekly, CadenceBiweekly, CadenceMonthly, CadenceQuarterly:
		return true
	default:
		return false
	}
}

// IsGroup reports whether the cadence fans out to the whole roster when due.
func (c Cadence) IsGroup() bool {
	return c == CadenceQuarterly
}

// Cadences lists the valid cadence values in ascending frequency order,
// for help texts and validation messages.
var Cadences = []Cadence{
	CadenceWeekly,
	CadenceTwiceWeekly,
	CadenceBiweekly,
	CadenceMonthly,
	CadenceQuarterly,
}
