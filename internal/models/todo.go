package models

import (
	"fmt"
	"strings"
	"time"
)

// DefaultCategory is used when a todo is created without a category
const DefaultCategory = "General"

// Todo represents a single task record
type Todo struct {
	ID        string
	Text      string
	Completed bool
	Priority  Priority
	Category  string
	CreatedAt time.Time
}

// ShortID returns the first 8 characters of the ID for display
func (t Todo) ShortID() string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}

// Priority is the importance of a todo. The zero value is not a valid priority.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Valid reports whether p is one of low, medium or high
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Rank returns the sort weight: high=3, medium=2, low=1
func (p Priority) Rank() int {
	return int(p)
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return ""
	}
}

// ParsePriority converts "low/medium/high", "med" or "1/2/3" to a Priority
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "1":
		return PriorityLow, nil
	case "medium", "med", "2":
		return PriorityMedium, nil
	case "high", "3":
		return PriorityHigh, nil
	default:
		return 0, fmt.Errorf("invalid priority %q. Use: low, medium, high, 1, 2, or 3", s)
	}
}

// Filter selects which todos a view shows
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

var filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter parses all, active or completed
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range filters {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid filter %q. Use: all, active, or completed", s)
}

// Next cycles all -> active -> completed -> all
func (f Filter) Next() Filter {
	for i, known := range filters {
		if f == known {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}

// SortKey selects the order of a view
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByPriority SortKey = "priority"
	SortByCategory SortKey = "category"
)

var sortKeys = []SortKey{SortByDate, SortByPriority, SortByCategory}

// ParseSortKey parses date, priority or category
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range sortKeys {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q. Use: date, priority, or category", s)
}

// Next cycles date -> priority -> category -> date
func (k SortKey) Next() SortKey {
	for i, known := range sortKeys {
		if k == known {
			return sortKeys[(i+1)%len(sortKeys)]
		}
	}
	return SortByDate
}
