package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name          string
		reply         string
		wantCommand   string
		wantReasoning string
		wantErr       bool
	}{
		{name: "single line", reply: "north", wantCommand: "north"},
		{name: "prompt marker", reply: "> take lamp", wantCommand: "take lamp"},
		{name: "quoted with reasoning", reply: "\n`open door`\nIt is closed.", wantCommand: "open door", wantReasoning: "It is closed."},
		{name: "command label wins", reply: "Thinking first.\ncommand: > west\nDone.", wantCommand: "west", wantReasoning: "Thinking first.\nDone."},
		{name: "blank", reply: " \n\t\n", wantErr: true},
		{name: "label without command", reply: "COMMAND: \"\"", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, reasoning, err := parseCommand(tt.reply)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCommand, command)
			assert.Equal(t, tt.wantReasoning, reasoning)
		})
	}
}

func TestBuildMessagesKeepsRecentTurns(t *testing.T) {
	messages := buildMessages("sys", "Opening", stateWithTurns(5), 2)

	require.Len(t, messages, 6)
	assert.Equal(t, "The game begins:\nOpening\n\n(3 earlier turns omitted)", messages[1].Content)
	assert.Equal(t, "cmd-4", messages[2].Content)
	assert.Equal(t, "resp-5", messages[5].Content)
}

func TestBuildURL(t *testing.T) {
	got, err := buildURL("http://localhost:11434/", "/api/chat")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434/api/chat", got)

	_, err = buildURL("localhost:11434", "/api/chat")
	require.Error(t, err)
}
