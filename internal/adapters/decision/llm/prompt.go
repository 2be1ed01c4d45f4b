package llm

import (
	"fmt"
	"strings"

	"github.com/bnema/glkpilot/internal/domain"
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func buildMessages(systemPrompt, initialOutput string, state domain.GameState, historyTurns int) []message {
	messages := []message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "The game begins:\n" + initialOutput},
	}

	history := state.History
	if len(history) > historyTurns {
		skipped := len(history) - historyTurns
		history = history[skipped:]
		messages[1].Content += fmt.Sprintf("\n\n(%d earlier turns omitted)", skipped)
	}

	for _, turn := range history {
		messages = append(messages,
			message{Role: "assistant", Content: turn.Command},
			message{Role: "user", Content: turn.Response},
		)
	}

	return messages
}

// parseCommand takes the command from a "COMMAND:" line if present, otherwise from
// the first non-empty line. Everything else is returned as reasoning.
func parseCommand(reply string) (string, string, error) {
	lines := strings.Split(strings.ReplaceAll(reply, "\r\n", "\n"), "\n")

	index := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) >= len("command:") && strings.EqualFold(trimmed[:len("command:")], "command:") {
			index = i
			lines[i] = trimmed[len("command:"):]
			break
		}
	}
	if index < 0 {
		for i, line := range lines {
			if strings.TrimSpace(line) != "" {
				index = i
				break
			}
		}
	}
	if index < 0 {
		return "", "", fmt.Errorf("reply contains no command")
	}

	command := cleanCommand(lines[index])
	if command == "" {
		return "", "", fmt.Errorf("reply contains no command")
	}

	rest := append(append([]string{}, lines[:index]...), lines[index+1:]...)
	return command, strings.TrimSpace(strings.Join(rest, "\n")), nil
}

func cleanCommand(line string) string {
	command := strings.TrimSpace(line)
	command = strings.TrimPrefix(command, ">")
	command = strings.TrimSpace(command)
	command = strings.Trim(command, "`\"'")
	return strings.TrimSpace(command)
}
