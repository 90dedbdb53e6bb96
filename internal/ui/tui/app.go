package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/usecase"
)

type screen int

const (
	screenLoading screen = iota
	screenList
	screenDetail
	screenError
)

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	list list.Model

	batch  []domain.Expression
	failed int
	err    error
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = filepath.Base(deps.InputPath)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenLoading,
		list:  l,
	}
}

func (m model) Init() tea.Cmd { return cmdLoadResults(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case resultsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.scr = screenError
			return m, nil
		}
		m.batch = msg.batch
		m.failed = usecase.CountFailed(msg.batch)

		items := make([]list.Item, 0, len(msg.batch))
		for _, e := range msg.batch {
			items = append(items, resultItem{expr: e})
		}
		m.scr = screenList
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		// Let the list own keys while the filter input is focused.
		if m.scr == screenList && m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenDetail {
				m.scr = screenList
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if m.scr == screenList {
				if _, ok := m.list.SelectedItem().(resultItem); ok {
					m.scr = screenDetail
				}
				return m, nil
			}

		case "esc", "b":
			if m.scr == screenDetail {
				m.scr = screenList
				return m, nil
			}
		}
	}

	if m.scr == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("rpnsort") + "\n" +
		m.theme.Subtitle.Render(m.deps.InputPath) + "\n"

	switch m.scr {
	case screenLoading:
		return wrap.Render(header + "\n" + m.theme.Help.Render("Evaluating…"))

	case screenError:
		body := m.theme.Fail.Render("Cannot load input") + "\n\n" + UserMessage(m.err)
		if m.deps.Debug {
			body += "\n\n" + m.theme.Help.Render("Error: "+m.err.Error())
			if m.deps.LogPath != "" {
				body += "\n" + m.theme.Help.Render("Log:   "+m.deps.LogPath)
			}
		}
		card := m.theme.Card.Render(body)
		return wrap.Render(header + "\n" + card + "\n" + m.theme.Help.Render("q quit"))

	case screenList:
		summary := fmt.Sprintf("%s %d   %s %d",
			m.theme.OK.Render("ok"), len(m.batch)-m.failed,
			m.theme.Fail.Render("failed"), m.failed,
		)
		help := m.theme.Help.Render("↑/↓ navigate • enter details • / filter • q quit")
		return wrap.Render(header + summary + "\n\n" + m.theme.Card.Render(m.list.View()) + "\n" + help)

	case screenDetail:
		it, _ := m.list.SelectedItem().(resultItem)
		card := m.theme.Card.Render(renderDetails(m.theme, it.expr) + "\n" +
			m.theme.Help.Render("esc/b back • q list"))
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
