// Package tui implements the interactive container browser: a
// bubbletea program that lists CRX files in a directory, converts the
// selection to a zip archive, and reports the result. All decoding and
// file I/O goes through the services layer; the model only sequences
// states and renders them.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crxtools/go-crx/internal/config"
	"github.com/crxtools/go-crx/internal/services"
)

// state identifies which view is active.
type state int

const (
	// stateBrowser shows the file list and accepts navigation keys.
	stateBrowser state = iota
	// stateProcessing is shown while a conversion command runs.
	stateProcessing
	// stateSuccess shows the written archive path.
	stateSuccess
	// stateError shows a failed conversion.
	stateError
)

// convertDoneMsg delivers an asynchronous conversion result through
// the bubbletea message loop.
type convertDoneMsg struct {
	output string
	err    error
}

// Model is the bubbletea model for the container browser.
type Model struct {
	state     state
	keys      KeyMap
	styles    Styles
	converter *services.ConversionService

	dir    string
	files  []string
	cursor int

	output string
	err    error

	width  int
	height int
}

// NewModel creates a browser over dir. The initial file scan happens
// here so the first frame already shows the list; a scan failure
// starts the model in the error state.
func NewModel(dir string, cfg *config.Config) Model {
	m := Model{
		state:     stateBrowser,
		keys:      DefaultKeyMap,
		styles:    DefaultStyles,
		converter: services.NewConversionService(cfg),
		dir:       dir,
	}
	m.rescan()
	return m
}

// Run starts the browser program over dir in the alternate screen.
func Run(dir string, cfg *config.Config) error {
	program := tea.NewProgram(NewModel(dir, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case convertDoneMsg:
		if msg.err != nil {
			m.state = stateError
			m.err = msg.err
		} else {
			m.state = stateSuccess
			m.output = msg.output
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && m.state != stateProcessing {
		return m, tea.Quit
	}

	switch m.state {
	case stateBrowser:
		switch {
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Refresh):
			m.rescan()
		case key.Matches(msg, m.keys.Convert):
			if len(m.files) > 0 {
				path := m.files[m.cursor]
				m.state = stateProcessing
				return m, m.convertCmd(path)
			}
		}

	case stateProcessing:
		// Ignore input until the conversion command reports back.

	case stateSuccess, stateError:
		if key.Matches(msg, m.keys.Back) {
			m.state = stateBrowser
			m.err = nil
			m.output = ""
			m.rescan()
		}
	}

	return m, nil
}

// convertCmd runs the conversion off the update loop and reports the
// result as a convertDoneMsg.
func (m Model) convertCmd(path string) tea.Cmd {
	converter := m.converter
	return func() tea.Msg {
		output, err := converter.ConvertFile(path)
		return convertDoneMsg{output: output, err: err}
	}
}

// moveCursor moves the selection by delta, wrapping at both ends.
func (m *Model) moveCursor(delta int) {
	if len(m.files) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.files)) % len(m.files)
}

// rescan reloads the file list and clamps the cursor. A scan failure
// switches to the error state; the user can quit or retry with refresh
// once back in the browser.
func (m *Model) rescan() {
	files, err := m.converter.ListArchives(m.dir)
	if err != nil {
		m.state = stateError
		m.err = err
		return
	}
	m.files = files
	if m.cursor >= len(m.files) {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var body string
	switch m.state {
	case stateBrowser:
		body = m.viewBrowser()
	case stateProcessing:
		body = m.styles.Dim.Render("Converting container to zip...\n\nPlease wait...")
	case stateSuccess:
		body = m.styles.Success.Render(fmt.Sprintf("✓ Conversion successful\n\nOutput file: %s", m.output))
	case stateError:
		body = m.styles.Error.Render(fmt.Sprintf("✗ Conversion failed\n\n%v", m.err))
	}

	var sections []string
	sections = append(sections, m.styles.Header.Render("go-crx container browser"))
	sections = append(sections, m.styles.Border.Render(body))
	sections = append(sections, m.styles.Footer.Render(m.footerHint()))
	return strings.Join(sections, "\n")
}

func (m Model) viewBrowser() string {
	if len(m.files) == 0 {
		return m.styles.Dim.Render("No container files found in " + m.dir)
	}

	var b strings.Builder
	for i, path := range m.files {
		name := filepath.Base(path)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(name))
		} else {
			b.WriteString(name)
		}
		if i < len(m.files)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) footerHint() string {
	switch m.state {
	case stateProcessing:
		return "Processing..."
	case stateSuccess, stateError:
		return "enter/space: back to browser | q/esc: quit"
	default:
		return "↑/↓: navigate | enter: convert | r: refresh | q/esc: quit"
	}
}
