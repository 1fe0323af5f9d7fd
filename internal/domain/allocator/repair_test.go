package allocator

import (
	"testing"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(names ...string) []entity.Person {
	roster := make([]entity.Person, 0, len(names))
	for _, n := range names {
		roster = append(roster, entity.Person{Name: n})
	}
	return roster
}

func TestRepairBounds_MovesLightestToNeedy(t *testing.T) {
	st := newWeekState(0, testRoster("alice", "bob", "cara"))

	// alice holds three individual chores, bob one, cara none.
	st.accept("alice", entity.Chore{ID: 1, Name: "windows", Weight: 4}, false)
	st.accept("alice", entity.Chore{ID: 2, Name: "trash", Weight: 1}, false)
	st.accept("alice", entity.Chore{ID: 3, Name: "dishes", Weight: 2}, false)
	st.accept("bob", entity.Chore{ID: 4, Name: "vacuum", Weight: 2}, false)

	last := map[int64]string{1: "alice", 2: "alice", 3: "alice", 4: "bob"}
	repairBounds(st, last, entity.Policy{MinPerWeek: 1, MaxPerWeek: 3})

	assert.Equal(t, 2, st.week.Counts["alice"])
	assert.Equal(t, 1, st.week.Counts["bob"])
	assert.Equal(t, 1, st.week.Counts["cara"])

	// The lightest of alice's assignments moved, and the last-assignee map
	// followed the move.
	assert.Equal(t, 6, st.week.Loads["alice"])
	assert.Equal(t, 1, st.week.Loads["cara"])
	assert.Equal(t, "cara", last[2])

	for _, a := range st.week.Assignments {
		if a.ChoreID == 2 {
			assert.Equal(t, "cara", a.Person)
		}
	}
}

func TestRepairBounds_GroupAssignmentsAreNotMovable(t *testing.T) {
	st := newWeekState(0, testRoster("alice", "bob"))

	// alice is over the minimum only through group work; nothing can move.
	st.accept("alice", entity.Chore{ID: 1, Name: "deep clean", Weight: 4, Cadence: entity.CadenceQuarterly}, true)
	st.accept("alice", entity.Chore{ID: 2, Name: "inventory", Weight: 3, Cadence: entity.CadenceQuarterly}, true)

	last := map[int64]string{}
	repairBounds(st, last, entity.Policy{MinPerWeek: 1, MaxPerWeek: 3})

	assert.Equal(t, 2, st.week.Counts["alice"])
	assert.Equal(t, 0, st.week.Counts["bob"], "group work must never be reassigned")
}

func TestRepairBounds_DuplicatePolicyBlocksMove(t *testing.T) {
	st := newWeekState(0, testRoster("alice", "bob"))

	// bob already holds chore 1, so alice's surplus copies of the same
	// chore cannot move to him even though he is under the minimum.
	st.accept("alice", entity.Chore{ID: 1, Name: "trash run", Weight: 1}, false)
	st.accept("alice", entity.Chore{ID: 1, Name: "trash run", Weight: 1}, false)
	st.accept("alice", entity.Chore{ID: 1, Name: "trash run", Weight: 1}, false)
	st.accept("bob", entity.Chore{ID: 1, Name: "trash run", Weight: 1}, false)

	last := map[int64]string{1: "bob"}
	repairBounds(st, last, entity.Policy{MinPerWeek: 2, MaxPerWeek: 3, NoDuplicatePerWeek: true})

	assert.Equal(t, 3, st.week.Counts["alice"])
	assert.Equal(t, 1, st.week.Counts["bob"], "residual violation stays observable")
}

func TestRepairBounds_NoDonorsAboveMinimum(t *testing.T) {
	st := newWeekState(0, testRoster("alice", "bob", "cara"))

	st.accept("alice", entity.Chore{ID: 1, Name: "dishes", Weight: 2}, false)
	st.accept("bob", entity.Chore{ID: 2, Name: "trash", Weight: 1}, false)

	last := map[int64]string{1: "alice", 2: "bob"}
	repairBounds(st, last, entity.Policy{MinPerWeek: 1, MaxPerWeek: 2})

	// Nobody sits above the minimum, so the bound is unreachable for cara
	// and the pass terminates without touching anything.
	assert.Equal(t, 1, st.week.Counts["alice"])
	assert.Equal(t, 1, st.week.Counts["bob"])
	assert.Equal(t, 0, st.week.Counts["cara"])
}

func TestRepairBounds_TakesFromMostLoadedDonorFirst(t *testing.T) {
	st := newWeekState(0, testRoster("alice", "bob", "cara"))

	st.accept("alice", entity.Chore{ID: 1, Name: "a", Weight: 1}, false)
	st.accept("alice", entity.Chore{ID: 2, Name: "b", Weight: 1}, false)
	st.accept("bob", entity.Chore{ID: 3, Name: "c", Weight: 1}, false)
	st.accept("bob", entity.Chore{ID: 4, Name: "d", Weight: 1}, false)
	st.accept("bob", entity.Chore{ID: 5, Name: "e", Weight: 1}, false)

	last := map[int64]string{}
	repairBounds(st, last, entity.Policy{MinPerWeek: 1, MaxPerWeek: 5})

	require.Equal(t, 1, st.week.Counts["cara"])
	assert.Equal(t, 2, st.week.Counts["bob"], "donation comes from the highest count")
	assert.Equal(t, 2, st.week.Counts["alice"])
}

func TestRepairBounds_AggregatesStayInSync(t *testing.T) {
	st := newWeekState(0, testRoster("alice", "bob"))

	st.accept("alice", entity.Chore{ID: 1, Name: "a", Weight: 3}, false)
	st.accept("alice", entity.Chore{ID: 2, Name: "b", Weight: 2}, false)

	last := map[int64]string{}
	repairBounds(st, last, entity.Policy{MinPerWeek: 1, MaxPerWeek: 2})

	counts := map[string]int{}
	loads := map[string]int{}
	for _, a := range st.week.Assignments {
		counts[a.Person]++
		loads[a.Person] += a.Weight
	}
	for _, p := range st.roster {
		assert.Equal(t, counts[p.Name], st.week.Counts[p.Name], "count for %s", p.Name)
		assert.Equal(t, loads[p.Name], st.week.Loads[p.Name], "load for %s", p.Name)
	}
}
