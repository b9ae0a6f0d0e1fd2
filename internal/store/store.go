// Package store owns the todo collection and is the only place it is mutated.
package store

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/todolist/internal/derive"
	"github.com/balkashynov/todolist/internal/models"
)

var (
	ErrNotFound  = errors.New("todo not found")
	ErrAmbiguous = errors.New("todo reference is ambiguous")
)

// Persister receives the full collection after every successful mutation
type Persister interface {
	Save(todos []models.Todo) error
}

// Store holds the authoritative, ordered todo collection. Intents are
// applied one at a time; a Store is not safe for concurrent use.
type Store struct {
	todos   []models.Todo
	persist Persister
	logger  *slog.Logger

	now   func() time.Time
	newID func() string

	defaultCategory string
	defaultPriority models.Priority
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now for creation timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the UUID generator
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the logger used for persistence warnings
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithDefaults sets the category and priority used when Add gets none
func WithDefaults(category string, priority models.Priority) Option {
	return func(s *Store) {
		if category = strings.TrimSpace(category); category != "" {
			s.defaultCategory = category
		}
		if priority.Valid() {
			s.defaultPriority = priority
		}
	}
}

// New creates a store seeded with initial. persist may be nil.
func New(initial []models.Todo, persist Persister, opts ...Option) *Store {
	s := &Store{
		todos:           slices.Clone(initial),
		persist:         persist,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:             time.Now,
		newID:           func() string { return uuid.NewString() },
		defaultCategory: models.DefaultCategory,
		defaultPriority: models.PriorityMedium,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new todo. Blank text is a no-op and returns false.
func (s *Store) Add(text string, priority models.Priority, category string) (models.Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Todo{}, false
	}

	if !priority.Valid() {
		priority = s.defaultPriority
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = s.defaultCategory
	}

	todo := models.Todo{
		ID:        s.uniqueID(),
		Text:      text,
		Priority:  priority,
		Category:  category,
		CreatedAt: s.now().UTC().Round(0),
	}
	s.todos = append(s.todos, todo)
	s.save("add")

	return todo, true
}

// Toggle flips the completed flag. Unknown ids are a no-op.
func (s *Store) Toggle(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.todos[i].Completed = !s.todos[i].Completed
	s.save("toggle")
	return true
}

// Delete removes a todo. Unknown ids are a no-op.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.todos = slices.Delete(s.todos, i, i+1)
	s.save("delete")
	return true
}

// Edit replaces the text of a todo with the trimmed text. Blank text and
// unknown ids are no-ops.
func (s *Store) Edit(id, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.todos[i].Text = text
	s.save("edit")
	return true
}

// Todos returns a copy of the collection in insertion order
func (s *Store) Todos() []models.Todo {
	return slices.Clone(s.todos)
}

// Len returns the number of todos
func (s *Store) Len() int {
	return len(s.todos)
}

// Get returns the todo with the given id
func (s *Store) Get(id string) (models.Todo, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Todo{}, false
	}
	return s.todos[i], true
}

// Resolve maps a full id or a unique id prefix to an id
func (s *Store) Resolve(ref string) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", ErrNotFound
	}
	if i := s.index(ref); i >= 0 {
		return s.todos[i].ID, nil
	}

	var match string
	for _, todo := range s.todos {
		if !strings.HasPrefix(strings.ToLower(todo.ID), ref) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("%w: %q matches more than one todo", ErrAmbiguous, ref)
		}
		match = todo.ID
	}
	if match == "" {
		return "", fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return match, nil
}

// View derives the presentation snapshot for the current state
func (s *Store) View(filter models.Filter, key models.SortKey) derive.View {
	return derive.Build(s.todos, filter, key)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.todos, func(t models.Todo) bool { return t.ID == id })
}

// maxIDAttempts bounds how often a custom generator may collide before
// falling back to random UUIDs
const maxIDAttempts = 8

func (s *Store) uniqueID() string {
	for range maxIDAttempts {
		if id := s.newID(); id != "" && s.index(id) < 0 {
			return id
		}
	}

	s.logger.Warn("id generator keeps colliding, using a random uuid", "attempts", maxIDAttempts)
	for {
		if id := uuid.NewString(); s.index(id) < 0 {
			return id
		}
	}
}

// save writes the whole collection. Failures leave memory authoritative.
func (s *Store) save(intent string) {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(s.Todos()); err != nil {
		s.logger.Warn("failed to persist todos", "intent", intent, "count", len(s.todos), "error", err)
	}
}
