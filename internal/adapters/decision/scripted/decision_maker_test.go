package scripted

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionMakerPlaysCommandsInOrder(t *testing.T) {
	dm := New([]string{"north", "take lamp"})
	ctx := context.Background()
	state := domain.NewGameState(nil, false, nil)

	first, err := dm.ChooseCommand(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "north", first.Command)
	require.NoError(t, dm.Observe(ctx, "north", "North of House"))

	second, err := dm.ChooseCommand(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "take lamp", second.Command)

	_, err = dm.ChooseCommand(ctx, state)
	require.ErrorIs(t, err, domain.ErrCommandsExhausted)

	assert.Equal(t, domain.Metrics{"commands_played": 1, "commands_remaining": 0}, dm.Metrics())

	require.NoError(t, dm.Reset(ctx))
	again, err := dm.ChooseCommand(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "north", again.Command)
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walkthrough.txt")
	require.NoError(t, os.WriteFile(path, []byte("# opening\nopen mailbox\n\n  read leaflet  \n"), 0o600))

	dm, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"open mailbox", "read leaflet"}, dm.commands)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestChooseCommandHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New([]string{"look"}).ChooseCommand(ctx, domain.GameState{})
	require.ErrorIs(t, err, context.Canceled)
}
