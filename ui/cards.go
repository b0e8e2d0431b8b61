package ui

import (
	"fmt"
	"log"
	"strings"

	"lexbg-assistant/models"
	"lexbg-assistant/service"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const minContentWidth = 20

// Renderer draws conversation entries as query bubbles and response cards
type Renderer struct {
	width    int
	markdown *glamour.TermRenderer
}

// NewRenderer creates a renderer for a terminal of the given width
func NewRenderer(width int) *Renderer {
	r := &Renderer{width: max(width, minContentWidth+10)}

	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(r.contentWidth()),
	)
	if err != nil {
		log.Printf("Warning: markdown renderer unavailable, using plain text: %v", err)
	} else {
		r.markdown = md
	}

	return r
}

func (r *Renderer) contentWidth() int {
	return max(r.width-10, minContentWidth)
}

// Conversation renders the whole log top to bottom. Queries listed in
// unanswered get a note that no reply arrived.
func (r *Renderer) Conversation(entries []models.ConversationEntry, unanswered map[uuid.UUID]bool) string {
	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch entry.Kind {
		case models.EntryKindQuery:
			block := r.Query(entry)
			if unanswered[entry.ID] {
				note := textFor(service.LooksBulgarian(entry.Text)).NoReply
				block = lipgloss.JoinVertical(lipgloss.Right, block, statusStyle.Render(note))
			}
			blocks = append(blocks, block)
		case models.EntryKindResponse:
			blocks = append(blocks, r.Response(entry))
		}
	}
	return strings.Join(blocks, "\n\n")
}

// Query renders the user's question as a right-aligned bubble
func (r *Renderer) Query(entry models.ConversationEntry) string {
	t := textFor(service.LooksBulgarian(entry.Text))

	bubble := queryBubbleStyle.
		MaxWidth(r.width - 4).
		Render(lipgloss.NewStyle().Width(min(lipgloss.Width(entry.Text), r.contentWidth())).Render(entry.Text))

	block := lipgloss.JoinVertical(lipgloss.Right, roleStyle.Render(t.You), bubble)
	return lipgloss.PlaceHorizontal(r.width, lipgloss.Right, block)
}

// Response renders the answer as a card with one sub-card per section
func (r *Renderer) Response(entry models.ConversationEntry) string {
	view := service.BuildResponseView(entry.Response())
	t := textFor(view.Bulgarian)

	parts := make([]string, 0, len(view.Sections))
	for _, section := range view.Sections {
		parts = append(parts, r.section(section, t))
	}

	card := responseCardStyle.
		Width(r.width - 4).
		Render(strings.Join(parts, "\n\n"))

	return lipgloss.JoinVertical(lipgloss.Left, roleStyle.Render(t.Assistant), card)
}

func (r *Renderer) section(section service.SectionView, t text) string {
	var b strings.Builder
	if section.Label != "" {
		b.WriteString(sectionLabelStyle.Render(fmt.Sprintf("%d. %s", section.Index, section.Label)))
		b.WriteString("\n")
	}
	b.WriteString(r.body(section.Body))

	if len(section.Articles) > 0 {
		b.WriteString("\n\n")
		b.WriteString(sectionLabelStyle.Render(t.Articles))
		for _, article := range section.Articles {
			b.WriteString("\n")
			b.WriteString(r.article(article, t))
		}
	}

	return sectionCardStyle.Width(r.width - 8).Render(b.String())
}

func (r *Renderer) article(article models.Article, t text) string {
	header := articleNumberStyle.Render(fmt.Sprintf("%s %s", t.Article, article.Number))
	if article.Title != "" {
		header += " " + articleTextStyle.Bold(true).Render(article.Title)
	}
	content := articleTextStyle.Width(r.contentWidth()).Render(article.Content)
	return header + "\n" + content
}

func (r *Renderer) body(body string) string {
	if r.markdown != nil {
		out, err := r.markdown.Render(body)
		if err == nil {
			return strings.Trim(out, "\n")
		}
		log.Printf("Warning: markdown render failed: %v", err)
	}
	return lipgloss.NewStyle().Width(r.contentWidth()).Render(body)
}
