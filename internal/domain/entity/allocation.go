package entity

// Person is the allocation engine's view of a roster member. Name must be
// unique within one allocation call; Contact is opaque to the engine and is
// carried through for the notification composer (the Slack user id here).
type Person struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// Policy holds the knobs that shape one allocation run.
type Policy struct {
	MinPerWeek           int  `json:"min_per_week"`
	MaxPerWeek           int  `json:"max_per_week"`
	AvoidImmediateRepeat bool `json:"avoid_immediate_repeat"`
	NoDuplicatePerWeek   bool `json:"no_duplicate_per_week"`
	// QuarterlyPerCycle makes quarterly chores due once per four-week
	// sub-cycle instead of once per full twelve-week period.
	QuarterlyPerCycle bool `json:"quarterly_per_cycle"`
}

// Assignment is one accepted (person, chore) tuple within a week.
type Assignment struct {
	Person    string  `json:"person"`
	ChoreID   int64   `json:"chore_id"`
	ChoreName string  `json:"chore_name"`
	Area      string  `json:"area,omitempty"`
	Weight    int     `json:"weight"`
	Cadence   Cadence `json:"cadence"`
	// Group marks shared work assigned to the whole roster at once. Group
	// assignments are never moved by the repair pass.
	Group bool `json:"group,omitempty"`
}

// Unassigned is a chore occurrence that found no eligible candidate in its
// week. Surfaced so callers can count and render it; never silently dropped.
type Unassigned struct {
	ChoreID   int64  `json:"chore_id"`
	ChoreName string `json:"chore_name"`
}

// WeekAssignment is the allocation result for a single week. Counts and
// Loads always aggregate the Assignments list; every mutation updates both
// in the same step.
type WeekAssignment struct {
	Week        int            `json:"week"` // 1-based
	Assignments []Assignment   `json:"assignments"`
	Counts      map[string]int `json:"counts"`
	Loads       map[string]int `json:"loads"`
	Unassigned  []Unassigned   `json:"unassigned,omitempty"`
}

// CycleResult is the full allocation for one cycle, one WeekAssignment per
// week in ascending week order. It is regenerated from scratch whenever any
// input changes; there is no incremental update.
type CycleResult struct {
	Weeks []WeekAssignment `json:"weeks"`
}

// UnassignedCount returns the number of occurrences across the cycle that
// could not be placed.
func (r *CycleResult) UnassignedCount() int {
	total := 0
	for _, w := range r.Weeks {
		total += len(w.Unassigned)
	}
	return total
}
