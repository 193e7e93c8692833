package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speccle/internal/logger"
)

func TestUpdateStoresCollectedSpecs(t *testing.T) {
	m := New(nil, logger.Nop())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated, _ = updated.(Model).Update(specsMsg("CPU: test\n"))

	model := updated.(Model)
	assert.Equal(t, "CPU: test\n", model.content)
	assert.Contains(t, model.View(), "CPU: test")
}

func TestUpdateQuitKeys(t *testing.T) {
	m := New(nil, logger.Nop())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewBeforeSizeShowsPlaceholder(t *testing.T) {
	m := New(nil, logger.Nop())

	assert.Contains(t, m.View(), "Detecting system specifications")
}

func TestCopyWithNoContentIsNoop(t *testing.T) {
	m := New(nil, logger.Nop())
	m.ready = true

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})

	assert.Nil(t, cmd)
	assert.Empty(t, updated.(Model).status)
}
