package db

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/balkashynov/todolist/internal/models"
)

// DefaultTodoKey is the slot the todo collection is stored under
const DefaultTodoKey = "todos"

// storedTodo is the persisted shape of one todo
type storedTodo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
	CreatedAt string `json:"createdAt"`
}

// TodoRepo serializes the whole todo collection into a single slot
type TodoRepo struct {
	slots  SlotStore
	key    string
	logger *slog.Logger
}

// NewTodoRepo binds a repo to one slot key. logger may be nil.
func NewTodoRepo(slots SlotStore, key string, logger *slog.Logger) *TodoRepo {
	if key == "" {
		key = DefaultTodoKey
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &TodoRepo{slots: slots, key: key, logger: logger}
}

// Load reads the stored collection. A missing, unreadable or malformed
// slot yields an empty collection; Load never fails.
func (r *TodoRepo) Load() []models.Todo {
	raw, ok, err := r.slots.Get(r.key)
	if err != nil {
		r.logger.Warn("failed to read todos, starting empty", "key", r.key, "error", err)
		return []models.Todo{}
	}
	if !ok {
		return []models.Todo{}
	}

	todos, err := decodeTodos(raw)
	if err != nil {
		r.logger.Warn("stored todos are malformed, starting empty", "key", r.key, "error", err)
		return []models.Todo{}
	}

	r.logger.Debug("loaded todos", "key", r.key, "count", len(todos))
	return todos
}

// Save overwrites the slot with the full collection
func (r *TodoRepo) Save(todos []models.Todo) error {
	raw, err := encodeTodos(todos)
	if err != nil {
		return err
	}
	if err := r.slots.Put(r.key, raw); err != nil {
		return err
	}
	r.logger.Debug("saved todos", "key", r.key, "count", len(todos))
	return nil
}

// Clear removes the stored collection; the next Load starts empty
func (r *TodoRepo) Clear() error {
	if err := r.slots.Delete(r.key); err != nil {
		return err
	}
	r.logger.Debug("cleared todos", "key", r.key)
	return nil
}

func encodeTodos(todos []models.Todo) (string, error) {
	stored := make([]storedTodo, 0, len(todos))
	for _, todo := range todos {
		stored = append(stored, storedTodo{
			ID:        todo.ID,
			Text:      todo.Text,
			Completed: todo.Completed,
			Priority:  todo.Priority.String(),
			Category:  todo.Category,
			CreatedAt: todo.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("failed to encode todos: %w", err)
	}
	return string(data), nil
}

func decodeTodos(raw string) ([]models.Todo, error) {
	var stored []storedTodo
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	todos := make([]models.Todo, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))
	for i, s := range stored {
		if s.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}

		text := strings.TrimSpace(s.Text)
		if text == "" {
			return nil, fmt.Errorf("record %d: blank text", i)
		}

		priority, err := models.ParsePriority(s.Priority)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		category := strings.TrimSpace(s.Category)
		if category == "" {
			category = models.DefaultCategory
		}

		createdAt, err := time.Parse(time.RFC3339Nano, s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid createdAt: %w", i, err)
		}

		todos = append(todos, models.Todo{
			ID:        s.ID,
			Text:      text,
			Completed: s.Completed,
			Priority:  priority,
			Category:  category,
			CreatedAt: createdAt.UTC(),
		})
	}

	return todos, nil
}
