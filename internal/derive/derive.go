// Package derive computes read-only views of a todo collection.
// Nothing here mutates its input; every function returns fresh slices.
package derive

import (
	"slices"
	"strings"

	"github.com/balkashynov/todolist/internal/models"
)

// Totals holds aggregate counts. Remaining is always Total - Completed.
type Totals struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Remaining int `json:"remaining"`
}

// View is the snapshot handed to the presentation layer
type View struct {
	Todos      []models.Todo  `json:"todos"`
	Totals     Totals         `json:"totals"`
	Categories []string       `json:"categories"`
	Filter     models.Filter  `json:"filter"`
	Sort       models.SortKey `json:"sort"`
}

// Sort returns a sorted copy of todos. All keys sort stably, so records
// that compare equal keep their input order.
func Sort(todos []models.Todo, key models.SortKey) []models.Todo {
	sorted := slices.Clone(todos)

	switch key {
	case models.SortByPriority:
		slices.SortStableFunc(sorted, func(a, b models.Todo) int {
			return b.Priority.Rank() - a.Priority.Rank()
		})
	case models.SortByCategory:
		slices.SortStableFunc(sorted, func(a, b models.Todo) int {
			return strings.Compare(a.Category, b.Category)
		})
	default:
		// newest first
		slices.SortStableFunc(sorted, func(a, b models.Todo) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return sorted
}

// Filter returns the todos matching mode. Unknown modes behave like all.
func Filter(todos []models.Todo, mode models.Filter) []models.Todo {
	filtered := make([]models.Todo, 0, len(todos))
	for _, todo := range todos {
		switch mode {
		case models.FilterActive:
			if todo.Completed {
				continue
			}
		case models.FilterCompleted:
			if !todo.Completed {
				continue
			}
		}
		filtered = append(filtered, todo)
	}
	return filtered
}

// CountTotals counts all, completed and remaining todos
func CountTotals(todos []models.Todo) Totals {
	var totals Totals
	totals.Total = len(todos)
	for _, todo := range todos {
		if todo.Completed {
			totals.Completed++
		}
	}
	totals.Remaining = totals.Total - totals.Completed
	return totals
}

// DistinctCategories returns each category once, in first-seen order
func DistinctCategories(todos []models.Todo) []string {
	seen := make(map[string]struct{}, len(todos))
	categories := []string{}
	for _, todo := range todos {
		if _, ok := seen[todo.Category]; ok {
			continue
		}
		seen[todo.Category] = struct{}{}
		categories = append(categories, todo.Category)
	}
	return categories
}

// Build runs the view pipeline: sort, then filter. Totals and categories
// describe the whole collection, not just the visible rows.
func Build(todos []models.Todo, filter models.Filter, key models.SortKey) View {
	return View{
		Todos:      Filter(Sort(todos, key), filter),
		Totals:     CountTotals(todos),
		Categories: DistinctCategories(todos),
		Filter:     filter,
		Sort:       key,
	}
}
