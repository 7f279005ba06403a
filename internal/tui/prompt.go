package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptCancelled is returned when the user leaves a prompt with esc or
// ctrl+c.
var ErrPromptCancelled = errors.New("ввод отменён")

type promptModel struct {
	title     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newPromptModel(title string, secret bool) promptModel {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 256
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	in.Focus()
	return promptModel{title: title, input: in}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return titleStyle.Render(m.title) + "\n" + m.input.View() + "\n" + helpStyle.Render("enter: подтвердить  esc: отмена") + "\n"
}

// PromptSecret asks for a value without echoing it.
func PromptSecret(title string) (string, error) {
	return runPrompt(newPromptModel(title, true))
}

// PromptText asks for a visible value.
func PromptText(title string) (string, error) {
	return runPrompt(newPromptModel(title, false))
}

func runPrompt(model promptModel) (string, error) {
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}
	result, ok := final.(promptModel)
	if !ok || result.cancelled {
		return "", ErrPromptCancelled
	}
	return result.input.Value(), nil
}
