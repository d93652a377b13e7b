package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/vmtest"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type methodInfo struct {
	class     string
	classVal  abi.Value
	name      string
	singleton bool
}

type modelState int

const (
	stateSelectMethod modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	vm        *vmtest.VM
	err       error
	methods   []methodInfo
	instances map[string]abi.Value
	input     textinput.Model
	result    string
	selected  int
	state     modelState
}

func newInteractiveModel(vm *vmtest.VM) *interactiveModel {
	var methods []methodInfo
	for _, name := range vm.ClassNames() {
		class, _ := vm.ConstGet(name)
		for _, m := range vm.SingletonMethodNames(class) {
			methods = append(methods, methodInfo{class: name, classVal: class, name: m, singleton: true})
		}
		for _, m := range vm.MethodNames(class) {
			methods = append(methods, methodInfo{class: name, classVal: class, name: m})
		}
	}

	return &interactiveModel{
		vm:        vm,
		methods:   methods,
		instances: make(map[string]abi.Value),
		state:     stateSelectMethod,
	}
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectMethod && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectMethod && m.selected < len(m.methods)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectMethod:
				m.prepareInput()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callMethod

			case stateShowResult:
				m.state = stateSelectMethod
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectMethod
			case stateShowResult:
				m.state = stateSelectMethod
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "42, 3.14, true, :sym, nil, text"
	ti.Prompt = "args: "
	ti.Width = 50
	ti.Focus()
	m.input = ti
}

// callMethod resolves the receiver (instantiating and caching one per class
// for instance methods), parses the argument literals and funcalls.
func (m *interactiveModel) callMethod() tea.Msg {
	f := m.methods[m.selected]

	recv := f.classVal
	if !f.singleton {
		inst, ok := m.instances[f.class]
		if !ok {
			created, err := receiverFor(m.vm, f.class, f.classVal)
			if err != nil {
				return callResultMsg{err: fmt.Errorf("instantiate %s: %w", f.class, err)}
			}
			m.instances[f.class] = created
			inst = created
		}
		recv = inst
	}

	args, err := parseLiterals(m.vm, m.input.Value())
	if err != nil {
		return callResultMsg{err: err}
	}

	out, err := m.vm.Funcall(recv, f.name, args...)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: formatValue(m.vm, out)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gorb console"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectMethod:
		b.WriteString("Select a method to call:\n\n")
		for i, f := range m.methods {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatMethod(f)))
			} else {
				b.WriteString(cursor + m.formatMethod(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		f := m.methods[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", methodStyle.Render(m.formatMethod(f))))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter call • esc back"))

	case stateShowResult:
		f := m.methods[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", methodStyle.Render(m.formatMethod(f))))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatMethod(f methodInfo) string {
	sep := "#"
	if f.singleton {
		sep = "."
	}
	return classStyle.Render(f.class) + sep + methodStyle.Render(f.name)
}

func runInteractive(vm *vmtest.VM) error {
	p := tea.NewProgram(newInteractiveModel(vm), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
