package human

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bnema/glkpilot/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m promptModel, text string) promptModel {
	t.Helper()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	next, ok := updated.(promptModel)
	require.True(t, ok)
	return next
}

func TestPromptModelSubmitsOnEnter(t *testing.T) {
	m := typeText(t, newPromptModel("West of House", 1), " open mailbox ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	final := updated.(promptModel)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, final.submitted)
	assert.Equal(t, "open mailbox", final.command())
	assert.Contains(t, final.View(), "West of House")
	assert.Contains(t, final.View(), "open mailbox")
}

func TestPromptModelCancelsOnEscape(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		updated, cmd := newPromptModel("", 3).Update(tea.KeyMsg{Type: key})
		final := updated.(promptModel)

		require.NotNil(t, cmd)
		assert.True(t, final.cancelled)
		assert.False(t, final.submitted)
		assert.Contains(t, final.View(), "Turn 3")
	}
}

func TestChooseCommandReadsFromInput(t *testing.T) {
	var out bytes.Buffer
	dm := New(strings.NewReader("look\r"), &out)
	require.NoError(t, dm.Initialize(context.Background(), "A dark room."))

	decision, err := dm.ChooseCommand(context.Background(), domain.GameState{})
	require.NoError(t, err)
	assert.Equal(t, "look", decision.Command)
	assert.Equal(t, 1, dm.Metrics()["commands_entered"])
	assert.Contains(t, out.String(), "A dark room.")
}

func TestChooseCommandEscapeCancels(t *testing.T) {
	dm := New(strings.NewReader("\x03"), &bytes.Buffer{})

	_, err := dm.ChooseCommand(context.Background(), domain.NewGameState([]domain.GameTurn{{Number: 1, Command: "n", Response: "Forest"}}, false, nil))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, dm.Metrics()["commands_entered"])
}

func TestChooseCommandHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(strings.NewReader(""), &bytes.Buffer{}).ChooseCommand(ctx, domain.GameState{})
	require.ErrorIs(t, err, context.Canceled)
}
