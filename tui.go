package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/geocine/mdreader/internal/reader"
)

// readModel is the interactive reading loop: one chapter at a time in a
// scrollable viewport, with a toggleable table of contents
type readModel struct {
	r        *reader.Reader
	viewport viewport.Model
	ready    bool
	showTOC  bool
	width    int
	height   int
}

func newReadModel(r *reader.Reader) readModel {
	return readModel{r: r}
}

func (m readModel) Init() tea.Cmd {
	return nil
}

func (m readModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "n", "right":
			if m.r.Next() {
				m.setChapter()
			}
			return m, nil

		case "p", "left":
			if m.r.Prev() {
				m.setChapter()
			}
			return m, nil

		case "t":
			m.showTOC = !m.showTOC
			if m.ready {
				if m.showTOC {
					m.viewport.SetContent(m.tocContent())
				} else {
					m.setChapter()
				}
				m.viewport.GotoTop()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Header and footer take one line each plus a blank line
		viewHeight := msg.Height - 4
		if viewHeight < 1 {
			viewHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewHeight)
			m.ready = true
			m.setChapter()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *readModel) setChapter() {
	m.showTOC = false
	content, err := m.r.ChapterContent(m.r.CurrentNumber())
	if err != nil {
		content = missingStyle.Render(err.Error())
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m readModel) tocContent() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Table of Contents") + "\n\n")
	for _, n := range m.r.Numbers() {
		ch, _ := m.r.Chapter(n)
		sb.WriteString(tocLine(ch) + "\n")
	}
	return sb.String()
}

func (m readModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	ch := m.r.Current()
	if ch == nil {
		return missingStyle.Render("No chapters to read")
	}

	header := fmt.Sprintf("Chapter %d of %d", ch.Number, m.r.TotalChapters())
	if ch.IsIntro {
		header = "Introduction"
	}
	if ch.IsDraft {
		header += draftStyle.Render(" (DRAFT)")
	}

	title := titleStyle.Render(m.r.BookTitle())
	headerLine := fmt.Sprintf("%s  %s  %s", title, headerStyle.Render(header), dimStyle.Render(ch.Title))

	footer := dimStyle.Render(fmt.Sprintf(
		"n=next  p=previous  t=contents  q=quit  %3.f%%", m.viewport.ScrollPercent()*100))

	return fmt.Sprintf("%s\n\n%s\n%s", headerLine, m.viewport.View(), footer)
}
