// Package list provides the scrolling sentence list for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/typebank-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/typebank-cli/internal/core/domain"
)

// SentenceList renders one page of sentences with a selection cursor.
type SentenceList struct {
	styles    *styles.Styles
	sentences []domain.Sentence
	selected  int
	width     int
	height    int
}

// NewSentenceList creates a new sentence list component.
func NewSentenceList(s *styles.Styles) *SentenceList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SentenceList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// SetSentences replaces the listed sentences and resets the cursor.
func (l *SentenceList) SetSentences(sentences []domain.Sentence) {
	l.sentences = sentences
	l.selected = 0
}

// Sentences returns the listed sentences.
func (l *SentenceList) Sentences() []domain.Sentence {
	return l.sentences
}

// Selected returns the sentence under the cursor, or nil when the
// list is empty.
func (l *SentenceList) Selected() *domain.Sentence {
	if len(l.sentences) == 0 {
		return nil
	}
	return &l.sentences[l.selected]
}

// SelectedIndex returns the cursor position.
func (l *SentenceList) SelectedIndex() int {
	return l.selected
}

// MoveUp moves the cursor up one row.
func (l *SentenceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the cursor down one row.
func (l *SentenceList) MoveDown() {
	if l.selected < len(l.sentences)-1 {
		l.selected++
	}
}

// SetDimensions updates the rendering size.
func (l *SentenceList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Update handles messages. The list is passive; navigation happens
// through MoveUp/MoveDown calls from the owning view.
func (l *SentenceList) Update(_ tea.Msg) (*SentenceList, tea.Cmd) {
	return l, nil
}

// View renders the list.
func (l *SentenceList) View() string {
	if len(l.sentences) == 0 {
		return l.styles.Muted.Render("No sentences found.")
	}

	var b strings.Builder
	for i, sentence := range l.sentences {
		line := fmt.Sprintf("%6d  [%s/%s]  %s",
			sentence.ID, sentence.Difficulty, sentence.Category,
			truncate(sentence.Text, l.width-28))

		if i == l.selected {
			b.WriteString(l.styles.Selected.Render(line))
		} else {
			b.WriteString(l.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// truncate shortens text to fit one row.
func truncate(text string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}
