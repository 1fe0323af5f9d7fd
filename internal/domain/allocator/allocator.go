// Package allocator derives a multi-week chore board from a roster, a chore
// catalog and a policy. Allocate is a pure function: it holds no state, never
// mutates its inputs, and produces the same result for the same snapshots.
package allocator

import (
	"errors"
	"fmt"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
)

// ErrInvalidInput marks configuration errors in the allocation inputs. The
// caller must fix the configuration before retrying; retrying unchanged
// inputs cannot succeed.
var ErrInvalidInput = errors.New("invalid allocation input")

// Allocate computes the full cycle: for each week it expands the catalog
// into occurrences, locks in group work, greedily balances the rest, and
// repairs the per-week count bounds. Unreachable min/max bounds are not an
// error; the returned counts expose any residual violation.
func Allocate(roster []entity.Person, catalog []entity.Chore, cycleWeeks int, policy entity.Policy) (*entity.CycleResult, error) {
	if err := validate(roster, catalog, cycleWeeks, policy); err != nil {
		return nil, err
	}

	normalized := normalizeCatalog(catalog)
	ranks := monthlyRanks(normalized)

	// Last assignee per chore id, threaded across weeks so repeat-avoidance
	// spans week boundaries.
	last := make(map[int64]string)

	result := &entity.CycleResult{Weeks: make([]entity.WeekAssignment, 0, cycleWeeks)}
	for week := 0; week < cycleWeeks; week++ {
		st := newWeekState(week, roster)

		group, individual := expandWeek(normalized, ranks, week, policy.QuarterlyPerCycle)
		assignGroup(st, group, policy)
		sortOccurrences(individual)
		assignIndividuals(st, individual, last, policy)
		repairBounds(st, last, policy)

		result.Weeks = append(result.Weeks, *st.week)
	}

	return result, nil
}

func validate(roster []entity.Person, catalog []entity.Chore, cycleWeeks int, policy entity.Policy) error {
	if len(roster) == 0 {
		return fmt.Errorf("%w: roster is empty", ErrInvalidInput)
	}
	if len(catalog) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidInput)
	}
	if cycleWeeks < 1 {
		return fmt.Errorf("%w: cycle weeks must be at least 1, got %d", ErrInvalidInput, cycleWeeks)
	}
	if policy.MinPerWeek < 0 {
		return fmt.Errorf("%w: min per week must not be negative, got %d", ErrInvalidInput, policy.MinPerWeek)
	}
	if policy.MaxPerWeek < policy.MinPerWeek {
		return fmt.Errorf("%w: max per week %d is below min per week %d", ErrInvalidInput, policy.MaxPerWeek, policy.MinPerWeek)
	}
	seen := make(map[string]bool, len(roster))
	for _, p := range roster {
		if p.Name == "" {
			return fmt.Errorf("%w: person with empty name", ErrInvalidInput)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate person name %q", ErrInvalidInput, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// normalizeCatalog copies the catalog and clamps weights into the valid
// range, so the engine never mutates the caller's slice.
func normalizeCatalog(catalog []entity.Chore) []entity.Chore {
	normalized := make([]entity.Chore, len(catalog))
	copy(normalized, catalog)
	for i := range normalized {
		if normalized[i].Weight < domain.MinChoreWeight {
			normalized[i].Weight = domain.MinChoreWeight
		}
		if normalized[i].Weight > domain.MaxChoreWeight {
			normalized[i].Weight = domain.MaxChoreWeight
		}
	}
	return normalized
}
