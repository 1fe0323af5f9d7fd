package allocator

import "github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"

// quarterlyPeriod is the full period, in weeks, of the quarterly cadence
// when Policy.QuarterlyPerCycle is off.
const quarterlyPeriod = 12

// monthlyStagger is the sub-cycle, in weeks, over which monthly chores are
// spread so they do not all land in the same week.
const monthlyStagger = 4

// monthlyRanks returns the zero-based rank of every monthly chore in catalog
// order. The rank decides which week of the four-week sub-cycle the chore
// falls in.
func monthlyRanks(catalog []entity.Chore) map[int64]int {
	ranks := make(map[int64]int)
	rank := 0
	for _, c := range catalog {
		if c.Cadence == entity.CadenceMonthly {
			ranks[c.ID] = rank
			rank++
		}
	}
	return ranks
}

// occurrenceCount resolves how many occurrences of the chore fall in the
// given week. An unrecognized cadence resolves to zero occurrences; the
// resolver never fails.
func occurrenceCount(chore entity.Chore, ranks map[int64]int, week int, quarterlyPerCycle bool) int {
	switch chore.Cadence {
	case entity.CadenceWeekly:
		return 1
	case entity.CadenceTwiceWeekly:
		return 2
	case entity.CadenceBiweekly:
		if week%2 == 0 {
			return 1
		}
		return 0
	case entity.CadenceMonthly:
		if week%monthlyStagger == ranks[chore.ID]%monthlyStagger {
			return 1
		}
		return 0
	case entity.CadenceQuarterly:
		period := quarterlyPeriod
		if quarterlyPerCycle {
			period = monthlyStagger
		}
		if week%period == 0 {
			return 1
		}
		return 0
	default:
		return 0
	}
}
