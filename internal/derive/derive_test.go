package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/todolist/internal/models"
)

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func todo(id string, p models.Priority, category string, minutes int, done bool) models.Todo {
	return models.Todo{
		ID:        id,
		Text:      "task " + id,
		Priority:  p,
		Category:  category,
		CreatedAt: base.Add(time.Duration(minutes) * time.Minute),
		Completed: done,
	}
}

func ids(todos []models.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

func TestSortByPriorityIsStable(t *testing.T) {
	todos := []models.Todo{
		todo("l1", models.PriorityLow, "X", 0, false),
		todo("h1", models.PriorityHigh, "X", 1, false),
		todo("m1", models.PriorityMedium, "X", 2, false),
		todo("h2", models.PriorityHigh, "X", 3, false),
		todo("l2", models.PriorityLow, "X", 4, false),
		todo("m2", models.PriorityMedium, "X", 5, false),
	}

	sorted := Sort(todos, models.SortByPriority)

	assert.Equal(t, []string{"h1", "h2", "m1", "m2", "l1", "l2"}, ids(sorted))
	// input untouched
	assert.Equal(t, "l1", todos[0].ID)
}

func TestSortByPriorityScenario(t *testing.T) {
	todos := []models.Todo{
		todo("a", models.PriorityLow, "X", 0, false),
		todo("b", models.PriorityHigh, "X", 1, false),
		todo("c", models.PriorityMedium, "X", 2, false),
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids(Sort(todos, models.SortByPriority)))
}

func TestSortByDateNewestFirst(t *testing.T) {
	todos := []models.Todo{
		todo("old", models.PriorityLow, "X", 0, false),
		todo("new", models.PriorityLow, "X", 10, false),
		todo("mid", models.PriorityLow, "X", 5, false),
	}
	assert.Equal(t, []string{"new", "mid", "old"}, ids(Sort(todos, models.SortByDate)))
}

func TestSortByCategoryAscendingStable(t *testing.T) {
	todos := []models.Todo{
		todo("w1", models.PriorityLow, "Work", 0, false),
		todo("e1", models.PriorityLow, "Errands", 1, false),
		todo("w2", models.PriorityLow, "Work", 2, false),
		todo("g1", models.PriorityLow, "General", 3, false),
	}
	assert.Equal(t, []string{"e1", "g1", "w1", "w2"}, ids(Sort(todos, models.SortByCategory)))
}

func TestFilter(t *testing.T) {
	todos := []models.Todo{
		todo("1", models.PriorityLow, "X", 0, true),
		todo("2", models.PriorityLow, "X", 1, false),
		todo("3", models.PriorityLow, "X", 2, true),
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(todos, models.FilterAll)))
	assert.Equal(t, []string{"2"}, ids(Filter(todos, models.FilterActive)))
	assert.Equal(t, []string{"1", "3"}, ids(Filter(todos, models.FilterCompleted)))
	assert.Empty(t, Filter(nil, models.FilterActive))
}

func TestCountTotals(t *testing.T) {
	states := [][]models.Todo{
		nil,
		{todo("1", models.PriorityLow, "X", 0, false)},
		{todo("1", models.PriorityLow, "X", 0, true), todo("2", models.PriorityLow, "X", 0, false), todo("3", models.PriorityLow, "X", 0, true)},
	}
	for _, todos := range states {
		totals := CountTotals(todos)
		assert.Equal(t, len(todos), totals.Total)
		assert.Equal(t, totals.Total, totals.Completed+totals.Remaining)
	}

	totals := CountTotals(states[2])
	assert.Equal(t, Totals{Total: 3, Completed: 2, Remaining: 1}, totals)
}

func TestDistinctCategories(t *testing.T) {
	todos := []models.Todo{
		todo("1", models.PriorityLow, "Work", 0, false),
		todo("2", models.PriorityLow, "Home", 0, false),
		todo("3", models.PriorityLow, "Work", 0, false),
	}
	assert.Equal(t, []string{"Work", "Home"}, DistinctCategories(todos))
	assert.Empty(t, DistinctCategories(nil))
}

func TestBuildSortsThenFilters(t *testing.T) {
	todos := []models.Todo{
		todo("a", models.PriorityLow, "Work", 0, false),
		todo("b", models.PriorityHigh, "Home", 1, true),
		todo("c", models.PriorityMedium, "Work", 2, false),
		todo("d", models.PriorityHigh, "Work", 3, false),
	}

	view := Build(todos, models.FilterActive, models.SortByPriority)

	require.Len(t, view.Todos, 3)
	assert.Equal(t, []string{"d", "c", "a"}, ids(view.Todos))
	// totals cover the whole collection
	assert.Equal(t, Totals{Total: 4, Completed: 1, Remaining: 3}, view.Totals)
	assert.Equal(t, []string{"Work", "Home"}, view.Categories)
	assert.Equal(t, models.FilterActive, view.Filter)
	assert.Equal(t, models.SortByPriority, view.Sort)
}
