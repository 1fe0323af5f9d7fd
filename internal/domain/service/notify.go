package service

import (
	"fmt"
	"strings"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
)

// buildWeekMessage renders one week of the chore board as a channel
// message. contacts maps person names to Slack user ids; people without a
// contact fall back to their plain name.
func buildWeekMessage(week entity.WeekAssignment, cycleWeeks int, contacts map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧹 *Chore Board* — Week %d of %d\n", week.Week, cycleWeeks)

	byPerson := groupByPerson(week)
	for _, group := range byPerson {
		b.WriteString("\n")
		b.WriteString(mention(group.person, contacts))
		fmt.Fprintf(&b, " — %d chore(s), load %d\n", week.Counts[group.person], week.Loads[group.person])
		for _, a := range group.assignments {
			b.WriteString("  • ")
			b.WriteString(a.ChoreName)
			if a.Area != "" {
				fmt.Fprintf(&b, " (%s)", a.Area)
			}
			fmt.Fprintf(&b, " — weight %d", a.Weight)
			if a.Group {
				b.WriteString(" — everyone")
			}
			b.WriteString("\n")
		}
	}

	if len(week.Unassigned) > 0 {
		b.WriteString("\n⚠️ *Nobody available for:*\n")
		for _, u := range week.Unassigned {
			fmt.Fprintf(&b, "  • %s\n", u.ChoreName)
		}
	}

	return b.String()
}

// buildPersonMessage composes a plain-text draft for one person's weekly
// chores, suitable for a direct message.
func buildPersonMessage(person string, week entity.WeekAssignment, cycleWeeks int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your chores for week %d of %d:\n", week.Week, cycleWeeks)

	found := false
	for _, a := range week.Assignments {
		if a.Person != person {
			continue
		}
		found = true
		b.WriteString("- ")
		b.WriteString(a.ChoreName)
		if a.Area != "" {
			fmt.Fprintf(&b, " (%s)", a.Area)
		}
		fmt.Fprintf(&b, ", weight %d", a.Weight)
		if a.Group {
			b.WriteString(", together with everyone")
		}
		b.WriteString("\n")
	}

	if !found {
		b.WriteString("- nothing this week\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total load: %d\n", week.Loads[person])
	return b.String()
}

type personAssignments struct {
	person      string
	assignments []entity.Assignment
}

// groupByPerson splits a week's assignment list per person, keeping the
// order in which people first appear in the list.
func groupByPerson(week entity.WeekAssignment) []personAssignments {
	index := make(map[string]int)
	var groups []personAssignments
	for _, a := range week.Assignments {
		i, ok := index[a.Person]
		if !ok {
			i = len(groups)
			index[a.Person] = i
			groups = append(groups, personAssignments{person: a.Person})
		}
		groups[i].assignments = append(groups[i].assignments, a)
	}
	return groups
}

func mention(person string, contacts map[string]string) string {
	if id, ok := contacts[person]; ok && id != "" {
		return fmt.Sprintf("<@%s>", id)
	}
	return fmt.Sprintf("*%s*", person)
}
