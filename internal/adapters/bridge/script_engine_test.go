package bridge

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/glkpilot/internal/adapters/engine/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgePlaysCloakScript(t *testing.T) {
	engine, err := script.Load(filepath.Join("..", "engine", "script", "testdata", "cloak.toml"))
	require.NoError(t, err)

	b := New(engine, Options{})
	t.Cleanup(func() { _ = b.Dispose() })

	initial, err := b.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, len(initial) > 0)
	assert.Contains(t, initial, "Foyer of the Opera House")
	assert.NotContains(t, initial, "\n\n\n")

	result, err := b.ExecuteCommand(context.Background(), "west")
	require.NoError(t, err)
	assert.Contains(t, result.Output, "Cloakroom")
	assert.False(t, result.GameEnded)

	result, err = b.ExecuteCommand(context.Background(), "hang cloak on hook")
	require.NoError(t, err)
	assert.Equal(t, "You hang the velvet cloak on the small brass hook.", result.Output)

	result, err = b.ExecuteCommand(context.Background(), "anything")
	require.NoError(t, err)
	assert.Contains(t, result.Output, "You have won")

	result, err = b.ExecuteCommand(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, result.GameEnded)
	assert.Empty(t, result.Output)

	inputs := engine.Inputs()
	require.Len(t, inputs, 4)
	assert.Equal(t, "west", inputs[0].Value)
	assert.Equal(t, "char", inputs[3].Type)
	assert.Equal(t, " ", inputs[3].Value)
	for i := 1; i < len(inputs); i++ {
		assert.GreaterOrEqual(t, inputs[i].Gen, inputs[i-1].Gen)
	}
}
