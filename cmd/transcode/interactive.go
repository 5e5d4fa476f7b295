package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/textcodec/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	formStyle = lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("#87CEEB"))

	scalarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	input   textinput.Model
	current inspection
}

func newInspectorModel() *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = `text, \xHH for raw bytes`
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &inspectorModel{
		input:   ti,
		current: inspect(nil),
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		m.current = inspect(unescape(v))
	}
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder
	in := m.current

	b.WriteString(titleStyle.Render("UTF Inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(formStyle.Render("decoded"))
	for i, s := range in.steps {
		if i > 0 {
			b.WriteString(" ")
		}
		if sc, ok := s.result.Scalar(); ok {
			b.WriteString(scalarStyle.Render(sc.String()))
		} else {
			b.WriteString(errorStyle.Render(fmt.Sprintf("ERR[%X]", s.bytes)))
		}
	}
	b.WriteString("\n\n")

	for _, f := range transcoder.Forms {
		b.WriteString(formStyle.Render(f.String()))
		b.WriteString(hexUnits(in.units[f], f.UnitSize()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	status := scalarStyle.Render("well-formed")
	if !in.valid {
		status = errorStyle.Render("ill-formed, repaired with U+FFFD")
	}
	fmt.Fprintf(&b, "%d bytes in, %d scalars, %d UTF-8 bytes, %d UTF-16 units, ascii=%v latin1=%v\n%s\n\n",
		len(in.input), in.measure.Scalars, in.measure.UTF8Len, in.measure.UTF16Len,
		in.measure.ASCII, in.measure.Latin1, status)

	b.WriteString(helpStyle.Render("type to inspect • esc quit"))
	return b.String()
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
