package parser

import (
	"regexp"
	"strings"

	"github.com/balkashynov/todolist/internal/models"
)

var (
	categoryRegex = regexp.MustCompile(`(^|\s)@([\p{L}\p{N}_-]+)`)
	priorityRegex = regexp.MustCompile(`(^|\s)\+([a-zA-Z0-9]+)`)
)

// ParsedTodo represents a todo parsed from quick-add syntax
type ParsedTodo struct {
	Text     string
	Category string
	Priority models.Priority // zero when not given or invalid
	Errors   []string
}

// ParseTodo extracts metadata from a todo line
// Syntax: "Buy milk @Errands +high"
func ParseTodo(input string) ParsedTodo {
	return parse(input, true)
}

// ParseTodoCategory is ParseTodo for callers that already know the priority:
// +tokens are left in the text untouched.
func ParseTodoCategory(input string) ParsedTodo {
	return parse(input, false)
}

func parse(input string, withPriority bool) ParsedTodo {
	result := ParsedTodo{
		Errors: []string{},
	}

	// Extract category (@category), first one wins
	if rest, name, ok := cutToken(categoryRegex, input); ok {
		result.Category = name
		input = rest
	}

	// Extract priority (+high, +3, +med, etc.), first one wins
	if withPriority {
		if rest, value, ok := cutToken(priorityRegex, input); ok {
			priority, err := models.ParsePriority(value)
			if err != nil {
				result.Errors = append(result.Errors, "Invalid priority '"+value+"'. Use: low, medium, high, 1, 2, or 3")
			} else {
				result.Priority = priority
				input = rest
			}
		}
	}

	// Clean up the text (remove extra spaces)
	result.Text = strings.Join(strings.Fields(input), " ")

	return result
}

// cutToken removes the first match of re from input and returns its value group
func cutToken(re *regexp.Regexp, input string) (string, string, bool) {
	loc := re.FindStringSubmatchIndex(input)
	if loc == nil {
		return input, "", false
	}
	return input[:loc[0]] + " " + input[loc[1]:], input[loc[4]:loc[5]], true
}
