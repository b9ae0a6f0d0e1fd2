package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/todolist/internal/derive"
	"github.com/balkashynov/todolist/internal/models"
	"github.com/balkashynov/todolist/internal/parser"
	"github.com/balkashynov/todolist/internal/store"
)

// Mode represents what the list is currently doing with key input
type Mode int

const (
	ModeBrowse Mode = iota
	ModeAdd
	ModeEdit
)

const defaultTasksPerPage = 10

// ListModel is the TUI model for the todo list. It owns no todo state of
// its own: every intent goes to the store and the view is re-derived.
type ListModel struct {
	width  int
	height int

	store   *store.Store
	filter  models.Filter
	sortKey models.SortKey
	view    derive.View

	selected int // index in view.Todos

	mode   Mode
	input  textinput.Model
	editID string
	notice string

	// Pagination
	currentPage  int
	tasksPerPage int

	keys keyMap
}

// NewListModel creates a new list TUI model
func NewListModel(s *store.Store, filter models.Filter, sortKey models.SortKey) ListModel {
	input := textinput.New()
	input.Width = 60
	input.CharLimit = 200
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	m := ListModel{
		store:        s,
		filter:       filter,
		sortKey:      sortKey,
		input:        input,
		tasksPerPage: defaultTasksPerPage,
		keys:         defaultKeyMap(),
	}
	m.refresh()

	return m
}

// Init initializes the model
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Height - header(4) - help/input(2) - borders(4) - margins(2) = content height
		availableHeight := m.height - 12
		if availableHeight < 3 {
			availableHeight = 3
		}
		m.tasksPerPage = availableHeight
		m.currentPage = m.selected / m.tasksPerPage
		return m, nil

	case tea.KeyMsg:
		if m.mode != ModeBrowse {
			return m.handleInputKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	}

	return m, nil
}

// handleBrowseKeys dispatches intents while navigating the list
func (m ListModel) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		return m.moveSelectionUp(), nil

	case key.Matches(msg, m.keys.Down):
		return m.moveSelectionDown(), nil

	case key.Matches(msg, m.keys.PrevPage):
		return m.prevPage(), nil

	case key.Matches(msg, m.keys.NextPage):
		return m.nextPage(), nil

	case key.Matches(msg, m.keys.Toggle):
		if todo, ok := m.selectedTodo(); ok {
			m.store.Toggle(todo.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if todo, ok := m.selectedTodo(); ok {
			m.store.Delete(todo.ID)
			m.notice = "Deleted: " + todo.Text
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		todo, ok := m.selectedTodo()
		if !ok {
			return m, nil
		}
		m.mode = ModeEdit
		m.editID = todo.ID
		m.input.Placeholder = "Task text (required)"
		m.input.SetValue(todo.Text)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.input.Placeholder = "Add a new task... @category +priority"
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.selected = 0
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.sortKey = m.sortKey.Next()
		m.selected = 0
		m.refresh()
		return m, nil
	}

	return m, nil
}

// handleInputKeys handles key input while adding or editing
func (m ListModel) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.closeInput(), nil

	case key.Matches(msg, m.keys.Submit):
		if m.mode == ModeAdd {
			return m.submitAdd(), nil
		}
		return m.submitEdit(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitAdd parses quick syntax and adds the todo. Invalid input keeps the prompt open.
func (m ListModel) submitAdd() ListModel {
	parsed := parser.ParseTodo(m.input.Value())
	if len(parsed.Errors) > 0 {
		m.notice = strings.Join(parsed.Errors, ", ")
		return m
	}

	todo, ok := m.store.Add(parsed.Text, parsed.Priority, parsed.Category)
	if !ok {
		m.notice = "Task text can't be empty"
		return m
	}

	m = m.closeInput()
	m.notice = "Added: " + todo.Text
	m.refresh()
	m.selectID(todo.ID)
	return m
}

// submitEdit saves the new text. Blank text keeps the prompt open.
func (m ListModel) submitEdit() ListModel {
	if !m.store.Edit(m.editID, m.input.Value()) {
		m.notice = "Task text can't be empty"
		return m
	}

	id := m.editID
	m = m.closeInput()
	m.refresh()
	m.selectID(id)
	return m
}

func (m ListModel) closeInput() ListModel {
	m.mode = ModeBrowse
	m.editID = ""
	m.input.SetValue("")
	m.input.Blur()
	return m
}

// refresh re-derives the view from the store and keeps the selection in range
func (m *ListModel) refresh() {
	m.view = m.store.View(m.filter, m.sortKey)

	if m.selected >= len(m.view.Todos) {
		m.selected = len(m.view.Todos) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.currentPage = m.selected / m.tasksPerPage
}

// selectID moves the selection to the todo with id, if visible
func (m *ListModel) selectID(id string) {
	for i, todo := range m.view.Todos {
		if todo.ID == id {
			m.selected = i
			m.currentPage = i / m.tasksPerPage
			return
		}
	}
}

func (m ListModel) selectedTodo() (models.Todo, bool) {
	if m.selected < 0 || m.selected >= len(m.view.Todos) {
		return models.Todo{}, false
	}
	return m.view.Todos[m.selected], true
}

// moveSelectionUp moves the selection up
func (m ListModel) moveSelectionUp() ListModel {
	if m.selected > 0 {
		m.selected--
		m.currentPage = m.selected / m.tasksPerPage
	}
	return m
}

// moveSelectionDown moves the selection down
func (m ListModel) moveSelectionDown() ListModel {
	if m.selected < len(m.view.Todos)-1 {
		m.selected++
		m.currentPage = m.selected / m.tasksPerPage
	}
	return m
}

func (m ListModel) pageCount() int {
	return (len(m.view.Todos) + m.tasksPerPage - 1) / m.tasksPerPage
}

// prevPage goes to previous page
func (m ListModel) prevPage() ListModel {
	if m.currentPage > 0 {
		m.currentPage--
		m.selected = m.currentPage * m.tasksPerPage
	}
	return m
}

// nextPage goes to next page
func (m ListModel) nextPage() ListModel {
	if m.currentPage < m.pageCount()-1 {
		m.currentPage++
		m.selected = m.currentPage * m.tasksPerPage
	}
	return m
}

// View renders the TUI
func (m ListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 1

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTaskTable(leftWidth),
		" ",
		m.renderTaskDetails(rightWidth),
	)

	var bottom string
	if m.mode != ModeBrowse {
		bottom = m.renderInputBar()
	} else {
		bottom = m.renderHelpBar()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		content,
		"",
		bottom,
	)
}

// renderHeader renders the title, counters and the active filter/sort
func (m ListModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	badge := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Padding(0, 1)
	}

	totals := m.view.Totals
	counters := lipgloss.JoinHorizontal(
		lipgloss.Top,
		badge(ColorPrimaryText).Render(fmt.Sprintf("Total: %d", totals.Total)),
		badge(ColorSuccess).Render(fmt.Sprintf("Completed: %d", totals.Completed)),
		badge(ColorAccentBlue).Render(fmt.Sprintf("Remaining: %d", totals.Remaining)),
	)

	modes := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("filter: %s · sort by: %s", m.view.Filter, m.view.Sort))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("📝 Todo List"),
		counters,
		modes,
	)
}

// emptyMessage returns the empty-state text for the current filter
func (m ListModel) emptyMessage() string {
	switch m.filter {
	case models.FilterCompleted:
		return "No completed tasks yet"
	case models.FilterActive:
		return "No active tasks"
	default:
		return "No tasks yet"
	}
}

// renderTaskTable renders the left panel with the task table
func (m ListModel) renderTaskTable(width int) string {
	var b strings.Builder

	if len(m.view.Todos) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render(m.emptyMessage()))
	} else {
		columnHeaderStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright)).
			Padding(0, 1)

		availableWidth := width - 4 // Account for borders
		statusWidth := 3
		priorityWidth := 8
		categoryWidth := 12
		textWidth := availableWidth - statusWidth - priorityWidth - categoryWidth - 6
		if textWidth < 20 {
			textWidth = 20
		}

		headers := fmt.Sprintf("%-*s %-*s %-*s %-*s",
			statusWidth, "",
			textWidth, "TASK",
			priorityWidth, "PRIORITY",
			categoryWidth, "CATEGORY")
		b.WriteString(columnHeaderStyle.Render(headers))
		b.WriteString("\n\n")

		startIndex := m.currentPage * m.tasksPerPage
		endIndex := min(startIndex+m.tasksPerPage, len(m.view.Todos))

		for i := startIndex; i < endIndex; i++ {
			todo := m.view.Todos[i]

			status := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render("○")
			textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
			if todo.Completed {
				status = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓")
				textStyle = textStyle.Foreground(lipgloss.Color(ColorDisabledText)).Strikethrough(true)
			}

			text := Truncate(todo.Text, textWidth)
			category := Truncate(todo.Category, categoryWidth)
			priority := lipgloss.NewStyle().Foreground(priorityColor(todo.Priority)).Render(todo.Priority.String())

			// pad before styling so ANSI codes don't break alignment
			row := fmt.Sprintf("%-*s %s %s %s",
				statusWidth, status,
				textStyle.Render(fmt.Sprintf("%-*s", textWidth, text)),
				priority+strings.Repeat(" ", max(priorityWidth-len(todo.Priority.String()), 0)),
				category)

			if i == m.selected {
				selectedStyle := lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(lipgloss.Color(ColorAccentMain)).
					Bold(true).
					Padding(0, 1)
				b.WriteString(selectedStyle.Render(row))
			} else {
				b.WriteString(" " + row)
			}
			b.WriteString("\n")
		}

		if m.tasksPerPage < len(m.view.Todos) {
			pageInfo := fmt.Sprintf("Page %d/%d (%d tasks)", m.currentPage+1, m.pageCount(), len(m.view.Todos))
			pageStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorHelpText)).
				Align(lipgloss.Center).
				Width(width - 2).
				MarginTop(1)
			b.WriteString(pageStyle.Render(pageInfo))
		}
	}

	outerBorderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)

	return outerBorderStyle.Render(b.String())
}

// renderTaskDetails renders the right panel with task details
func (m ListModel) renderTaskDetails(width int) string {
	var b strings.Builder

	todo, ok := m.selectedTodo()
	if !ok {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width)
		b.WriteString(emptyStyle.Render("Press a to add a task"))
	} else {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Width(width)
		b.WriteString(titleStyle.Render(todo.Text))
		b.WriteString("\n\n")

		status := "active"
		statusColor := ColorSecondaryText
		if todo.Completed {
			status = "completed"
			statusColor = ColorSuccess
		}
		b.WriteString("Status: ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Bold(true).Render(status))
		b.WriteString("\n")

		b.WriteString("Priority: ")
		b.WriteString(lipgloss.NewStyle().Foreground(priorityColor(todo.Priority)).Render(todo.Priority.String()))
		b.WriteString("\n")

		b.WriteString("Category: ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(todo.Category))
		b.WriteString("\n")

		b.WriteString("Created: ")
		b.WriteString(todo.CreatedAt.Local().Format("02/01/2006 15:04"))
		b.WriteString("\n")

		b.WriteString("ID: ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render(todo.ShortID()))
		b.WriteString("\n")
	}

	if len(m.view.Categories) > 0 {
		b.WriteString("\nCategories: ")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render(strings.Join(m.view.Categories, ", ")))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)

	return borderStyle.Render(b.String())
}

// renderInputBar renders the add/edit prompt
func (m ListModel) renderInputBar() string {
	label := "Add: "
	if m.mode == ModeEdit {
		label = "Edit: "
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render(label))
	b.WriteString(m.input.View())
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(m.notice))
	}
	return b.String()
}

// renderHelpBar renders the help bar with hotkey hints
func (m ListModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	var hints []string
	for _, binding := range m.keys.browseHelp() {
		help := binding.Help()
		hints = append(hints, help.Key+" "+help.Desc)
	}

	text := strings.Join(hints, " · ")
	if m.notice != "" {
		text = m.notice + "  |  " + text
	}
	return helpStyle.Render(text)
}

// Truncate shortens s to width runes, adding "..." when cut
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
