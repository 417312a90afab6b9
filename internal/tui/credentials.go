// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the interactive prompt shown when the login command
// needs credentials the auth file does not carry.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lahella/models"
)

// ErrPromptCancelled is returned when the operator backs out of the
// prompt without submitting.
var ErrPromptCancelled = errors.New("sign-in cancelled")

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true)
)

// CredentialsModel is the Bubble Tea model for the two-field sign-in
// prompt: email, and password with masked echo.
type CredentialsModel struct {
	inputs    []textinput.Model
	focus     int
	done      bool
	cancelled bool
	errMsg    string
}

// NewCredentialsModel creates the prompt with the email field focused.
func NewCredentialsModel() *CredentialsModel {
	fields := make([]textinput.Model, 2)

	fields[0] = textinput.New()
	fields[0].Placeholder = "email"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "password"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	return &CredentialsModel{inputs: fields}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *CredentialsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. esc and ctrl+c cancel; tab and
// shift+tab move between the fields; enter advances from the email field
// and submits from the password field once both are filled in.
func (m *CredentialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.focusNext()
				return m, nil
			}

			if !m.Credentials().Complete() {
				m.errMsg = "email and password are both required"
				return m, nil
			}

			m.errMsg = ""
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *CredentialsModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in to the course portal"))
	b.WriteString("\n\n")
	b.WriteString("Email:    [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password: [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc cancel │ tab next field │ enter sign in"))
	return b.String()
}

// Credentials returns what the operator has typed so far. The email is
// trimmed; the password is taken verbatim since it may hold spaces.
func (m *CredentialsModel) Credentials() models.Credentials {
	return models.Credentials{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m *CredentialsModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *CredentialsModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// PromptCredentials runs the prompt on the terminal and returns what the
// operator submitted.
func PromptCredentials() (models.Credentials, error) {
	final, err := tea.NewProgram(NewCredentialsModel()).Run()
	if err != nil {
		return models.Credentials{}, fmt.Errorf("run sign-in prompt: %w", err)
	}

	m, ok := final.(*CredentialsModel)
	if !ok || m.cancelled || !m.done {
		return models.Credentials{}, ErrPromptCancelled
	}
	return m.Credentials(), nil
}
