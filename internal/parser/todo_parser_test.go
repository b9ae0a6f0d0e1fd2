package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/todolist/internal/models"
)

func TestParseTodo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		text     string
		category string
		priority models.Priority
		errors   int
	}{
		{name: "plain", input: "Buy milk", text: "Buy milk"},
		{name: "category and priority", input: "Buy milk @Errands +high", text: "Buy milk", category: "Errands", priority: models.PriorityHigh},
		{name: "tokens first", input: "+1 @home  water   plants", text: "water plants", category: "home", priority: models.PriorityLow},
		{name: "med alias", input: "Call mom +med", text: "Call mom", priority: models.PriorityMedium},
		{name: "invalid priority", input: "Ship it +asap", text: "Ship it +asap", errors: 1},
		{name: "only the first token is consumed", input: "Call +1 555 +high @a @b", text: "Call 555 +high @b", category: "a", priority: models.PriorityLow},
		{name: "email is not a category", input: "Mail bob@example.com", text: "Mail bob@example.com"},
		{name: "math is not a priority", input: "Check 1+1", text: "Check 1+1"},
		{name: "only tokens", input: "@Work +high", category: "Work", priority: models.PriorityHigh},
		{name: "blank", input: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTodo(tt.input)
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.priority, got.Priority)
			assert.Len(t, got.Errors, tt.errors)
		})
	}
}

func TestParseTodoCategoryKeepsPlusTokens(t *testing.T) {
	tests := []struct {
		input    string
		text     string
		category string
	}{
		{input: "Call +1 555", text: "Call +1 555"},
		{input: "Fix C +bug", text: "Fix C +bug"},
		{input: "Report +low @Home", text: "Report +low", category: "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseTodoCategory(tt.input)
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, tt.category, got.Category)
			assert.Zero(t, got.Priority)
			assert.Empty(t, got.Errors)
		})
	}
}
