// Package tui hosts the URL checker view as an interactive Bubble Tea program.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/phishcheck/internal/checker"
	"github.com/ppiankov/phishcheck/internal/model"
	"github.com/ppiankov/phishcheck/internal/render"
	"github.com/ppiankov/phishcheck/internal/util"
)

// pastedMsg reports a finished clipboard read
type pastedMsg struct {
	text string
	err  error
}

// checkedMsg reports a settled request
type checkedMsg struct {
	url     string
	outcome *model.Outcome
	err     error
}

type keyMap struct {
	Submit key.Binding
	Paste  key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Submit, k.Paste, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultKeys() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check url")),
		Paste:  key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste url")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

type modelTUI struct {
	ctx     context.Context
	session *checker.Session
	styles  render.Styles

	ti      textinput.Model
	spin    spinner.Model
	help    help.Model
	keys    keyMap
	width   int
	formErr string // inline hint for a rejected URL, like a browser's field validation bubble
}

func newModel(ctx context.Context, session *checker.Session, styles render.Styles) modelTUI {
	m := modelTUI{
		ctx:     ctx,
		session: session,
		styles:  styles,
		help:    help.New(),
		keys:    defaultKeys(),
		width:   80,
	}

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "Enter website URL..."
	m.ti.CharLimit = 0 // no limit
	m.ti.SetValue(session.State().Query.URL)
	m.ti.CursorEnd()
	m.ti.Focus()

	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	return m
}

// Run starts the interactive view and blocks until the user quits
func Run(ctx context.Context, session *checker.Session, styles render.Styles, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(newModel(ctx, session, styles), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run view: %w", err)
	}
	return nil
}

func (m modelTUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.ti.Width = max(msg.Width-20, 10)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Paste):
			return m, pasteCmd(m.session)
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}

	case pastedMsg:
		m.session.ApplyPaste(msg.text, msg.err)
		if msg.err == nil {
			m.ti.SetValue(m.session.State().Query.URL)
			m.ti.CursorEnd()
			m.formErr = ""
		}
		return m, nil

	case checkedMsg:
		m.session.Finish(msg.url, msg.outcome, msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.session.State().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	if m.ti.Value() != m.session.State().Query.URL {
		m.session.Edit(m.ti.Value())
		m.formErr = ""
	}
	return m, cmd
}

// submit is ignored while a check is running, the same way a disabled button is
func (m modelTUI) submit() (tea.Model, tea.Cmd) {
	if m.session.State().Loading {
		return m, nil
	}

	m.session.Edit(m.ti.Value())
	url, err := m.session.Start()
	switch {
	case errors.Is(err, util.ErrEmptyURL):
		m.formErr = "Please fill out this field."
		return m, nil
	case err != nil:
		m.formErr = "Please enter a URL."
		return m, nil
	}

	m.formErr = ""
	m.ti.SetValue(url)
	return m, tea.Batch(checkCmd(m.ctx, m.session, url), m.spin.Tick)
}

// pasteCmd reads the clipboard off the update loop
func pasteCmd(s *checker.Session) tea.Cmd {
	return func() tea.Msg {
		text, err := s.ReadClipboard()
		return pastedMsg{text: text, err: err}
	}
}

// checkCmd runs the request off the update loop. It always yields a
// checkedMsg, so the submission is always finished.
func checkCmd(ctx context.Context, s *checker.Session, url string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := s.Request(ctx, url)
		return checkedMsg{url: url, outcome: outcome, err: err}
	}
}

func (m modelTUI) View() string {
	st := m.session.State()
	view := render.Build(st)

	title := m.styles.Title.Render(render.Title)

	button := m.styles.Button.Render(view.SubmitLabel)
	if view.Loading {
		button = m.styles.Muted.Render("[" + view.SubmitLabel + "]")
	}
	form := lipgloss.JoinHorizontal(lipgloss.Center, m.styles.Input.Render(m.ti.View()), " ", button)

	blocks := []string{title, "", form}
	if m.formErr != "" {
		blocks = append(blocks, m.styles.Error.Render(m.formErr))
	}
	if view.Loading {
		blocks = append(blocks, render.Loader(m.spin.View(), m.styles))
	}
	if panels := render.Panels(view, m.styles); panels != "" {
		blocks = append(blocks, "", panels)
	}
	blocks = append(blocks, "", m.help.View(m.keys))

	return strings.Join(blocks, "\n") + "\n"
}
