// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m *CredentialsModel, text string) *CredentialsModel {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(*CredentialsModel)
	}
	return m
}

func press(t *testing.T, m *CredentialsModel, key tea.KeyType) *CredentialsModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(*CredentialsModel)
}

// TestCredentialsModel_SubmitsWhenComplete walks the happy path: type the
// email, advance with enter, type the password, submit with enter.
func TestCredentialsModel_SubmitsWhenComplete(t *testing.T) {
	m := NewCredentialsModel()

	m = typeText(t, m, "info@example.org")
	m = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "salasana123")
	m = press(t, m, tea.KeyEnter)

	require.True(t, m.done)
	creds := m.Credentials()
	assert.Equal(t, "info@example.org", creds.Email)
	assert.Equal(t, "salasana123", creds.Password)
}

// TestCredentialsModel_RequiresBothFields checks an empty email blocks
// submission with an error message instead of quitting.
func TestCredentialsModel_RequiresBothFields(t *testing.T) {
	m := NewCredentialsModel()

	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "salasana123")
	m = press(t, m, tea.KeyEnter)

	assert.False(t, m.done)
	assert.NotEmpty(t, m.errMsg)
}

// TestCredentialsModel_EscapeCancels checks esc abandons the prompt.
func TestCredentialsModel_EscapeCancels(t *testing.T) {
	m := NewCredentialsModel()

	m = typeText(t, m, "info@example.org")
	m = press(t, m, tea.KeyEsc)

	assert.True(t, m.cancelled)
	assert.False(t, m.done)
}

// TestCredentialsModel_FocusCycles checks tab and shift+tab wrap around
// the two fields.
func TestCredentialsModel_FocusCycles(t *testing.T) {
	m := NewCredentialsModel()
	require.Equal(t, 0, m.focus)

	m = press(t, m, tea.KeyTab)
	assert.Equal(t, 1, m.focus)

	m = press(t, m, tea.KeyTab)
	assert.Equal(t, 0, m.focus)

	m = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, 1, m.focus)
}

// TestCredentialsModel_PasswordNeverRendered checks the masked echo keeps
// the typed password out of the view.
func TestCredentialsModel_PasswordNeverRendered(t *testing.T) {
	m := NewCredentialsModel()

	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "salasana123")

	assert.NotContains(t, m.View(), "salasana123")
	assert.Equal(t, "salasana123", m.Credentials().Password)
}
