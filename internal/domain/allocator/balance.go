package allocator

import (
	"sort"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
)

// weekState tracks one week's assignment list together with the aggregates
// that must never drift from it. Every accept/move updates the list, the
// counts, the loads and the held-chores index in the same step.
type weekState struct {
	week   *entity.WeekAssignment
	roster []entity.Person
	// index gives each person's position in the roster snapshot; it is the
	// deterministic tiebreak key for candidate selection.
	index map[string]int
	// holds records which chore ids each person already has this week.
	holds map[string]map[int64]bool
}

func newWeekState(week int, roster []entity.Person) *weekState {
	st := &weekState{
		week: &entity.WeekAssignment{
			Week:        week + 1,
			Assignments: []entity.Assignment{},
			Counts:      make(map[string]int, len(roster)),
			Loads:       make(map[string]int, len(roster)),
		},
		roster: roster,
		index:  make(map[string]int, len(roster)),
		holds:  make(map[string]map[int64]bool, len(roster)),
	}
	for i, p := range roster {
		st.index[p.Name] = i
		st.week.Counts[p.Name] = 0
		st.week.Loads[p.Name] = 0
		st.holds[p.Name] = make(map[int64]bool)
	}
	return st
}

func (st *weekState) accept(person string, chore entity.Chore, group bool) {
	st.week.Assignments = append(st.week.Assignments, entity.Assignment{
		Person:    person,
		ChoreID:   chore.ID,
		ChoreName: chore.Name,
		Area:      chore.Area,
		Weight:    chore.Weight,
		Cadence:   chore.Cadence,
		Group:     group,
	})
	st.week.Counts[person]++
	st.week.Loads[person] += chore.Weight
	st.holds[person][chore.ID] = true
}

// assignGroup locks in the shared occurrences before the balancer runs: each
// group occurrence goes to every person in the roster, once each. The
// duplicate check cannot normally trigger on a fresh week but is kept as a
// guard when the policy is active.
func assignGroup(st *weekState, group []entity.Chore, policy entity.Policy) {
	for _, chore := range group {
		for _, p := range st.roster {
			if policy.NoDuplicatePerWeek && st.holds[p.Name][chore.ID] {
				continue
			}
			st.accept(p.Name, chore, true)
		}
	}
}

// sortOccurrences orders individual occurrences heaviest first, so the
// placements with the most impact on balance happen while every candidate is
// still open. Ties break on chore id; the sort is stable so repeated
// occurrences of one chore keep their expansion order.
func sortOccurrences(occs []entity.Chore) {
	sort.SliceStable(occs, func(i, j int) bool {
		if occs[i].Weight != occs[j].Weight {
			return occs[i].Weight > occs[j].Weight
		}
		return occs[i].ID < occs[j].ID
	})
}

// assignIndividuals runs the greedy balancer over the week's individual
// occurrences. last maps chore id to its previous assignee and is updated as
// assignments are recorded, so repeat-avoidance spans week boundaries.
func assignIndividuals(st *weekState, occs []entity.Chore, last map[int64]string, policy entity.Policy) {
	for _, chore := range occs {
		person, ok := pickCandidate(st, chore, last, policy)
		if !ok {
			// No eligible candidate: the occurrence is dropped, but it
			// stays countable in the week result.
			st.week.Unassigned = append(st.week.Unassigned, entity.Unassigned{
				ChoreID:   chore.ID,
				ChoreName: chore.Name,
			})
			continue
		}
		st.accept(person, chore, false)
		last[chore.ID] = person
	}
}

// pickCandidate selects the assignee for one occurrence: every person under
// the per-week maximum, minus the previous assignee when repeat-avoidance is
// on, minus anyone already holding the chore when the duplicate policy is
// on. Among the eligible it minimizes (count, load, roster index).
func pickCandidate(st *weekState, chore entity.Chore, last map[int64]string, policy entity.Policy) (string, bool) {
	eligible := make([]string, 0, len(st.roster))
	for _, p := range st.roster {
		if st.week.Counts[p.Name] < policy.MaxPerWeek {
			eligible = append(eligible, p.Name)
		}
	}

	if policy.AvoidImmediateRepeat {
		if prev, ok := last[chore.ID]; ok {
			filtered := eligible[:0:len(eligible)]
			for _, name := range eligible {
				if name != prev {
					filtered = append(filtered, name)
				}
			}
			// Availability takes precedence over variety: if excluding the
			// previous assignee empties the set, ignore the rule for this
			// occurrence only.
			if len(filtered) > 0 {
				eligible = filtered
			}
		}
	}

	if policy.NoDuplicatePerWeek {
		filtered := eligible[:0:len(eligible)]
		for _, name := range eligible {
			if !st.holds[name][chore.ID] {
				filtered = append(filtered, name)
			}
		}
		eligible = filtered
	}

	if len(eligible) == 0 {
		return "", false
	}

	best := eligible[0]
	for _, name := range eligible[1:] {
		if less(st, name, best) {
			best = name
		}
	}
	return best, true
}

func less(st *weekState, a, b string) bool {
	if st.week.Counts[a] != st.week.Counts[b] {
		return st.week.Counts[a] < st.week.Counts[b]
	}
	if st.week.Loads[a] != st.week.Loads[b] {
		return st.week.Loads[a] < st.week.Loads[b]
	}
	return st.index[a] < st.index[b]
}
