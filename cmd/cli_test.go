package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/glkpilot/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GLKPILOT_DECISION_KIND", "oracle")

	_, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
}

func TestInvalidDecisionKindFailsBeforePlaying(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "play", cloakStory(t), "--decision", "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown decision kind "oracle"`)
}

func TestPlayScriptedStoryRendersAndSavesTranscript(t *testing.T) {
	home := t.TempDir()
	commands := writeCommandsFixture(t, home, "west", "hang cloak on hook", "north", "z")

	stdout, _, err := executeCLI(t, home,
		"play", cloakStory(t),
		"--decision", "scripted",
		"--commands", commands,
		"--quiet",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cloak.toml")
	assert.Contains(t, stdout, "finished: game ended")
	assert.Contains(t, stdout, "#1 > west")
	assert.Contains(t, stdout, "Cloakroom")
	assert.Contains(t, stdout, "4/100 turns")
	assert.Contains(t, stdout, "commands_played: 4")

	_, err = os.Stat(filepath.Join(home, ".glkpilot", "transcripts.toml"))
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "transcript", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sessions: 1")
	assert.Contains(t, stdout, "4 turns")
	assert.Contains(t, stdout, "game ended")

	stdout, _, err = executeCLI(t, home, "transcript", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "#2 > hang cloak on hook")
	assert.Contains(t, stdout, "You have won")
	assert.Contains(t, stdout, "4/100 turns")
}

func TestPlayHonoursMaxTurnsFlag(t *testing.T) {
	home := t.TempDir()
	commands := writeCommandsFixture(t, home, "west", "hang cloak on hook", "north", "z")

	stdout, _, err := executeCLI(t, home,
		"play", cloakStory(t),
		"--decision", "scripted",
		"--commands", commands,
		"--max-turns", "2",
		"--brief",
		"--quiet",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "finished: turn limit reached")
	assert.Contains(t, stdout, "2/2 turns")
	assert.NotContains(t, stdout, "#1 > west")
}

func TestPlayReportsDecisionFailureAndStillSaves(t *testing.T) {
	home := t.TempDir()
	commands := writeCommandsFixture(t, home, "west")

	stdout, _, err := executeCLI(t, home,
		"play", cloakStory(t),
		"--decision", "scripted",
		"--commands", commands,
		"--quiet",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session failed")
	assert.Contains(t, stdout, "failed:")
	assert.Contains(t, stdout, "#1 > west")

	stdout, _, err = executeCLI(t, home, "transcript", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sessions: 1")
	assert.Contains(t, stdout, "failed")
}

func TestPlayNoSaveLeavesNoTranscript(t *testing.T) {
	home := t.TempDir()
	commands := writeCommandsFixture(t, home, "west", "hang cloak on hook", "north", "z")

	_, _, err := executeCLI(t, home,
		"play", cloakStory(t),
		"--decision", "scripted",
		"--commands", commands,
		"--no-save",
		"--quiet",
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "transcript", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No transcripts saved.")
}

func TestPlayReadsDecisionFromConfigFile(t *testing.T) {
	home := t.TempDir()
	commands := writeCommandsFixture(t, home, "west", "hang cloak on hook", "north", "z")
	writeConfigFixture(t, home, fmt.Sprintf("[decision]\nkind = \"scripted\"\ncommands = %q\n\n[session]\nmax_turns = 3\n", commands))

	stdout, _, err := executeCLI(t, home, "play", cloakStory(t), "--quiet")
	require.NoError(t, err)
	assert.Contains(t, stdout, "decision: scripted")
	assert.Contains(t, stdout, "3/3 turns")
}

func TestPlayMissingStoryFails(t *testing.T) {
	home := t.TempDir()
	commands := writeCommandsFixture(t, home, "look")

	_, _, err := executeCLI(t, home,
		"play", filepath.Join(home, "missing.toml"),
		"--decision", "scripted",
		"--commands", commands,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prepare story")
}

func TestPlayWithOllamaShowsProgressSpinner(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		requests.Add(1)
		time.Sleep(150 * time.Millisecond)
		_, _ = fmt.Fprint(w, `{"message":{"role":"assistant","content":"look"},"prompt_eval_count":10,"eval_count":2}`)
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("GLKPILOT_LLM_BASE_URL", server.URL)

	stdout, stderr, err := executeCLI(t, home, "play", cloakStory(t), "--decision", "llm", "--dialect", "ollama")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Playing cloak.toml")
	assert.Contains(t, stdout, "#4 > look")
	assert.Contains(t, stdout, "requests: 4")
	assert.Equal(t, int32(4), requests.Load())
}

func TestKeySetCheckRemoveRoundTrip(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "key", "check", "--dialect", "openai")
	require.NoError(t, err)
	assert.Equal(t, "glkpilot/openai/api_key: not stored\n", stdout)

	stdout, _, err = executeCLI(t, home, "key", "set", "--dialect", "openai", "--value", "sk-test")
	require.NoError(t, err)
	assert.Equal(t, "stored glkpilot/openai/api_key\n", stdout)

	stdout, _, err = executeCLI(t, home, "key", "check", "--dialect", "openai")
	require.NoError(t, err)
	assert.Equal(t, "glkpilot/openai/api_key: stored\n", stdout)

	_, _, err = executeCLI(t, home, "key", "remove", "--dialect", "openai")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "key", "check", "--dialect", "openai")
	require.NoError(t, err)
	assert.Contains(t, stdout, "not stored")
}

func TestKeySetReadsValueFromStdin(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLIWithInput(t, home, "sk-from-stdin\n", "key", "set", "--dialect", "openai")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "key", "check", "--dialect", "openai")
	require.NoError(t, err)
	assert.Contains(t, stdout, ": stored")
}

func TestKeySetRejectsEmptyValue(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLIWithInput(t, home, "\n", "key", "set", "--dialect", "openai")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key value is required")
}

func TestPlayWithOpenAISendsStoredKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"> west\nThe cloakroom is west."}}],"usage":{"prompt_tokens":20,"completion_tokens":5}}`)
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("GLKPILOT_LLM_BASE_URL", server.URL)

	_, _, err := executeCLI(t, home, "key", "set", "--dialect", "openai", "--value", "sk-test")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home,
		"play", cloakStory(t),
		"--decision", "llm",
		"--dialect", "openai",
		"--model", "gpt-4o-mini",
		"--quiet",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "#1 > west")
	assert.Contains(t, stdout, "completion_tokens: 20")
}

func TestPlayWithOpenAIWithoutKeyFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("GLKPILOT_LLM_BASE_URL", server.URL)

	stdout, _, err := executeCLI(t, home, "play", cloakStory(t), "--decision", "llm", "--dialect", "openai", "--quiet")
	require.Error(t, err)
	assert.Contains(t, stdout, "glkpilot key set")
}

func TestTranscriptShowUnknownIDFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "transcript", "show", "20250101-000000.000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcript not found")
}

func TestTranscriptShowJSONOutput(t *testing.T) {
	home := t.TempDir()
	commands := writeCommandsFixture(t, home, "west", "hang cloak on hook", "north", "z")

	_, _, err := executeCLI(t, home, "play", cloakStory(t), "--decision", "scripted", "--commands", commands, "--quiet")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "transcript", "list", "--json")
	require.NoError(t, err)
	var summaries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &summaries))
	require.Len(t, summaries, 1)
	id, ok := summaries[0]["ID"].(string)
	require.True(t, ok)

	stdout, _, err = executeCLI(t, home, "transcript", "show", id, "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"Command": "west"`)
	assert.Contains(t, stdout, `"StopReason": "game_ended"`)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home string, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func cloakStory(t *testing.T) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("..", "internal", "adapters", "engine", "script", "testdata", "cloak.toml"))
	require.NoError(t, err)
	return path
}

func writeCommandsFixture(t *testing.T, home string, commands ...string) string {
	t.Helper()

	path := filepath.Join(home, "commands.txt")
	content := "# cloak walkthrough\n" + strings.Join(commands, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeConfigFixture(t *testing.T, home string, content string) {
	t.Helper()

	dir := filepath.Join(home, ".glkpilot")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
}
