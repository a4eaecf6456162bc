// ABOUTME: Reverse-chronological post feed view
// ABOUTME: Number keys dispatch reactions; f toggles favorite
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"culturadesk/models"
	"culturadesk/store"
)

var feedReactionKeys = map[string]models.ReactionKind{
	"1": models.ReactionLike,
	"2": models.ReactionLove,
	"3": models.ReactionCelebrate,
	"4": models.ReactionInteresting,
}

func (m Model) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.composing {
		return m.updateComposer(msg)
	}

	posts := m.store.State().Posts

	switch key := msg.String(); key {
	case "n":
		m.composing = true
		m.composer.SetValue("")
		return m, m.composer.Focus()

	case "up", "k":
		if m.feedRow > 0 {
			m.feedRow--
		}
		return m, nil

	case "down", "j":
		if m.feedRow < len(posts)-1 {
			m.feedRow++
		}
		return m, nil

	case "f":
		if m.feedRow < len(posts) {
			m.store.Dispatch(store.ToggleFavorite{EntityID: posts[m.feedRow].ID})
		}
		return m, nil

	default:
		if kind, ok := feedReactionKeys[key]; ok && m.feedRow < len(posts) {
			m.store.Dispatch(store.AddReaction{EntityID: posts[m.feedRow].ID, Kind: kind})
		}
		return m, nil
	}
}

func (m Model) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = false
		m.composer.Blur()
		return m, nil

	case "enter":
		content := strings.TrimSpace(m.composer.Value())
		m.composing = false
		m.composer.Blur()
		if content == "" {
			return m, nil
		}
		me := m.store.State().CurrentUser
		m.store.Dispatch(store.AddPost{Post: models.Post{
			ID:         uuid.NewString(),
			AuthorID:   me.ID,
			AuthorName: me.DisplayName,
			Content:    content,
			Date:       time.Now(),
		}})
		m.feedRow = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m Model) viewFeed() string {
	posts := m.store.State().Posts

	title := m.styles.Title.Render("Feed")
	if m.composing {
		prompt := m.styles.Header.Render("New post")
		hint := m.styles.Help.Render("enter publish  esc cancel")
		return lipgloss.JoinVertical(lipgloss.Left, title, prompt, m.composer.View(), hint)
	}
	if len(posts) == 0 {
		empty := m.styles.Dim.Render("Nothing posted yet.")
		help := m.styles.Help.Render("n new  tab board  q quit")
		return lipgloss.JoinVertical(lipgloss.Left, title, empty, help)
	}

	body := ""
	for i, p := range posts {
		header := fmt.Sprintf("%s · %s", p.AuthorName, p.Date.Format("Jan 2 15:04"))
		if p.IsFavorite {
			header += " ★"
		}
		counts := fmt.Sprintf("👍 %d  ❤ %d  🎉 %d  💡 %d  💬 %d",
			p.Reactions[models.ReactionLike],
			p.Reactions[models.ReactionLove],
			p.Reactions[models.ReactionCelebrate],
			p.Reactions[models.ReactionInteresting],
			len(p.Comments))

		card := m.styles.Header.Render(header) + "\n" + p.Content + "\n" + m.styles.Dim.Render(counts)
		style := m.styles.Card
		if i == m.feedRow {
			style = m.styles.Selected
		}
		body += style.Render(card) + "\n"
	}

	help := m.styles.Help.Render("↑/↓ post  1-4 react  f favorite  n new  tab board  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}
