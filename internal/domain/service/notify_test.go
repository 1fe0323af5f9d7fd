package service

import (
	"testing"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func testWeek() entity.WeekAssignment {
	return entity.WeekAssignment{
		Week: 2,
		Assignments: []entity.Assignment{
			{Person: "Alice", ChoreID: 1, ChoreName: "Dishes", Area: "kitchen", Weight: 2, Cadence: entity.CadenceWeekly},
			{Person: "Bob", ChoreID: 2, ChoreName: "Vacuum", Weight: 3, Cadence: entity.CadenceWeekly},
			{Person: "Alice", ChoreID: 3, ChoreName: "Fridge purge", Area: "kitchen", Weight: 1, Cadence: entity.CadenceQuarterly, Group: true},
			{Person: "Bob", ChoreID: 3, ChoreName: "Fridge purge", Area: "kitchen", Weight: 1, Cadence: entity.CadenceQuarterly, Group: true},
		},
		Counts: map[string]int{"Alice": 1, "Bob": 1},
		Loads:  map[string]int{"Alice": 2, "Bob": 3},
	}
}

func Test_buildWeekMessage(t *testing.T) {
	week := testWeek()
	contacts := map[string]string{"Alice": "U1"}

	msg := buildWeekMessage(week, 4, contacts)

	assert.Contains(t, msg, "Week 2 of 4")
	assert.Contains(t, msg, "<@U1>")
	// Bob has no contact id, falls back to his plain name
	assert.Contains(t, msg, "*Bob*")
	assert.Contains(t, msg, "Dishes (kitchen)")
	assert.Contains(t, msg, "Vacuum")
	assert.Contains(t, msg, "everyone")
	assert.NotContains(t, msg, "Nobody available")
}

func Test_buildWeekMessage_Unassigned(t *testing.T) {
	week := testWeek()
	week.Unassigned = []entity.Unassigned{
		{ChoreID: 4, ChoreName: "Windows"},
	}

	msg := buildWeekMessage(week, 4, nil)

	assert.Contains(t, msg, "Nobody available")
	assert.Contains(t, msg, "Windows")
}

func Test_buildPersonMessage(t *testing.T) {
	week := testWeek()

	msg := buildPersonMessage("Alice", week, 4)
	assert.Contains(t, msg, "week 2 of 4")
	assert.Contains(t, msg, "Dishes (kitchen)")
	assert.Contains(t, msg, "Fridge purge")
	assert.Contains(t, msg, "together with everyone")
	assert.Contains(t, msg, "Total load: 2")

	msg = buildPersonMessage("Cara", week, 4)
	assert.Contains(t, msg, "nothing this week")
}

func Test_groupByPerson(t *testing.T) {
	week := testWeek()

	groups := groupByPerson(week)

	assert.Len(t, groups, 2)
	assert.Equal(t, "Alice", groups[0].person)
	assert.Equal(t, "Bob", groups[1].person)
	assert.Len(t, groups[0].assignments, 2)
	assert.Len(t, groups[1].assignments, 2)
}
