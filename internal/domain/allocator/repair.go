package allocator

import (
	"sort"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
)

// maxRepairRounds caps the repair loop so infeasible inputs terminate with
// visible residual violations instead of spinning.
const maxRepairRounds = 100

// repairBounds moves individual assignments from people above the weekly
// minimum to people below it, one move per round, until the bound is met or
// no further move exists. Group assignments are never moved; the lightest
// movable assignment is preferred so count repair disturbs load balance as
// little as possible. Residual violations on infeasible catalogs stay
// observable in the week's counts.
func repairBounds(st *weekState, last map[int64]string, policy entity.Policy) {
	for round := 0; round < maxRepairRounds; round++ {
		below, above := splitByMinimum(st, policy.MinPerWeek)
		if len(below) == 0 || len(above) == 0 {
			return
		}

		if !moveOne(st, below, above, last, policy) {
			return
		}
	}
}

// splitByMinimum returns the people under the minimum (roster order) and the
// people over it, the latter sorted by descending count so donations come
// from the most over-loaded first.
func splitByMinimum(st *weekState, min int) (below, above []string) {
	for _, p := range st.roster {
		switch {
		case st.week.Counts[p.Name] < min:
			below = append(below, p.Name)
		case st.week.Counts[p.Name] > min:
			above = append(above, p.Name)
		}
	}
	sort.SliceStable(above, func(i, j int) bool {
		return st.week.Counts[above[i]] > st.week.Counts[above[j]]
	})
	return below, above
}

// moveOne performs at most one donor-to-needy move and reports whether any
// move was possible this round.
func moveOne(st *weekState, below, above []string, last map[int64]string, policy entity.Policy) bool {
	for _, needy := range below {
		for _, donor := range above {
			idx, ok := movableAssignment(st, donor, needy, policy)
			if !ok {
				continue
			}
			move(st, idx, needy, last)
			return true
		}
	}
	return false
}

// movableAssignment finds the donor's lightest assignment that may be handed
// to the needy person: not group work, and not a chore the needy person
// already holds this week when the duplicate policy is active.
func movableAssignment(st *weekState, donor, needy string, policy entity.Policy) (int, bool) {
	best := -1
	for i, a := range st.week.Assignments {
		if a.Person != donor || a.Group {
			continue
		}
		if policy.NoDuplicatePerWeek && st.holds[needy][a.ChoreID] {
			continue
		}
		if best == -1 || a.Weight < st.week.Assignments[best].Weight {
			best = i
		}
	}
	return best, best != -1
}

// move reassigns one tuple and updates counts, loads, holds and the
// last-assignee map in the same step, keeping the aggregates in sync with
// the assignment list.
func move(st *weekState, idx int, needy string, last map[int64]string) {
	a := &st.week.Assignments[idx]
	donor := a.Person

	st.week.Counts[donor]--
	st.week.Loads[donor] -= a.Weight
	delete(st.holds[donor], a.ChoreID)

	a.Person = needy
	st.week.Counts[needy]++
	st.week.Loads[needy] += a.Weight
	st.holds[needy][a.ChoreID] = true

	if last[a.ChoreID] == donor {
		last[a.ChoreID] = needy
	}
}
