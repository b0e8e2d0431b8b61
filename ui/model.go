// Package ui is the terminal chat client: a scrolling conversation log above
// a text field that is disabled while a question is in flight.
package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"lexbg-assistant/service"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const (
	headerHeight = 2
	footerHeight = 4
	maxQueryLen  = 2000
)

// ConversationChangedMsg tells the model to redraw the log
type ConversationChangedMsg struct{}

type submitDoneMsg struct {
	err error
}

// Model is the bubbletea model of the chat client
type Model struct {
	conv     *service.ConversationService
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	renderer *Renderer

	width   int
	height  int
	ready   bool
	loading bool
}

// New creates the chat model for conv
func New(conv *service.ConversationService) Model {
	ti := textinput.New()
	ti.Placeholder = textEN.Placeholder
	ti.CharLimit = maxQueryLen
	ti.Prompt = "› "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return Model{
		conv:     conv,
		input:    ti,
		spinner:  s,
		renderer: NewRenderer(80),
	}
}

// Init starts the cursor blink
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses, resizes and submission results
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(msg.Height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.input.Width = max(msg.Width-8, 10)
		m.renderer = NewRenderer(msg.Width)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case tea.KeyEnter:
			return m.submit()
		}
		if m.loading {
			// input is disabled until the answer arrives
			return m, nil
		}

	case submitDoneMsg:
		m.loading = false
		if msg.err != nil && !errors.Is(msg.err, service.ErrEmptyQuery) {
			log.Printf("Warning: submission rejected: %v", msg.err)
		}
		m.applyLanguage()
		m.refresh()
		return m, m.input.Focus()

	case ConversationChangedMsg:
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.loading || m.conv.InFlight() {
		return m, nil
	}
	query := m.input.Value()
	if strings.TrimSpace(query) == "" {
		return m, nil
	}

	m.loading = true
	m.input.Reset()
	m.input.Blur()
	m.refresh()

	conv := m.conv
	run := func() tea.Msg {
		return submitDoneMsg{err: conv.Submit(context.Background(), query)}
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

// applyLanguage localizes the placeholder to the last question's language
func (m *Model) applyLanguage() {
	m.input.Placeholder = m.text().Placeholder
}

func (m Model) text() text {
	return textFor(service.LooksBulgarian(m.conv.LastQuery()))
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}

	unanswered := make(map[uuid.UUID]bool)
	for _, entry := range m.conv.UnansweredQueries() {
		unanswered[entry.ID] = true
	}

	content := m.renderer.Conversation(m.conv.Entries(), unanswered)
	if m.loading {
		content += "\n\n" + statusStyle.Render(m.spinner.View()+" "+m.text().Searching)
	}

	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

// View draws header, log and input
func (m Model) View() string {
	if !m.ready {
		return "\n  " + m.spinner.View()
	}

	t := m.text()
	header := titleStyle.Render(t.Title)

	box := inputBoxStyle
	if m.loading {
		box = inputBoxDisabledStyle
	}
	input := box.Width(max(m.width-4, 10)).Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewport.View(),
		input,
		statusStyle.Render(t.Help),
	)
}
