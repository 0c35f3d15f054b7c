package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"glint/internal/diag"
	"glint/internal/diagfmt"
	"glint/internal/driver"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive glint REPL",
	Long: "Each non-empty line is compiled as an independent program " +
		"(spec.md's REPL contract); 'exit' quits. Renders with an editable " +
		"transcript when stdin is a terminal, falling back to a plain " +
		"line-buffered loop when it is piped.",
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return compileStdin(cmd)
	}
	color := useColor(cmd, os.Stdout)
	p := tea.NewProgram(newReplModel(color))
	_, err := p.Run()
	return err
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type replModel struct {
	input      textinput.Model
	transcript []string
	color      bool
}

func newReplModel(color bool) replModel {
	ti := textinput.New()
	ti.Placeholder = "decl a : isize…"
	ti.Prompt = "glint> "
	ti.Focus()
	return replModel{input: ti, color: color}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "exit" {
				return m, tea.Quit
			}
			m.transcript = append(m.transcript, promptStyle.Render("glint> ")+line)
			m.transcript = append(m.transcript, m.evalLine(line))
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) evalLine(line string) string {
	r := driver.CompileSource("<repl>", line)
	if r.Err == nil {
		return okStyle.Render("ok")
	}
	if d, ok := r.Err.(*diag.Diagnostic); ok && r.File != nil {
		var buf strings.Builder
		opts := diagfmt.PrettyOpts{Color: m.color, Context: 1}
		_ = diagfmt.Pretty(&buf, "<repl>", r.File, d, opts)
		return errStyle.Render(strings.TrimRight(buf.String(), "\n"))
	}
	return errStyle.Render(r.Err.Error())
}

func (m replModel) View() string {
	var b strings.Builder
	for _, line := range m.transcript {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprint(&b, m.input.View())
	return b.String()
}
