package allocator

import "github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"

// expandWeek walks the catalog and emits the concrete chore occurrences for
// one week, split into group occurrences (assigned to everyone at once) and
// individual occurrences (assigned to exactly one person each). A chore may
// appear zero, one, or several times.
func expandWeek(catalog []entity.Chore, ranks map[int64]int, week int, quarterlyPerCycle bool) (group, individual []entity.Chore) {
	for _, chore := range catalog {
		count := occurrenceCount(chore, ranks, week, quarterlyPerCycle)
		for i := 0; i < count; i++ {
			if chore.Cadence.IsGroup() {
				group = append(group, chore)
			} else {
				individual = append(individual, chore)
			}
		}
	}
	return group, individual
}
