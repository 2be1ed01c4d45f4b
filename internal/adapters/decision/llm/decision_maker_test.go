package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string    `json:"model"`
	Stream      *bool     `json:"stream"`
	Messages    []message `json:"messages"`
	Temperature *float64  `json:"temperature"`
}

func stateWithTurns(n int) domain.GameState {
	history := make([]domain.GameTurn, 0, n)
	for i := 1; i <= n; i++ {
		history = append(history, domain.GameTurn{
			Number:   i,
			Command:  fmt.Sprintf("cmd-%d", i),
			Response: fmt.Sprintf("resp-%d", i),
		})
	}
	return domain.NewGameState(history, false, nil)
}

func TestOllamaDialectChoosesCommand(t *testing.T) {
	var captured capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = fmt.Fprint(w, `{"message":{"role":"assistant","content":"> open mailbox\nThe mailbox might hold a clue."},"prompt_eval_count":120,"eval_count":9}`)
	}))
	defer server.Close()

	dm, err := New(Config{Dialect: DialectOllama, BaseURL: server.URL, Model: "llama3.2:3b"}, server.Client(), nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, dm.Initialize(context.Background(), "West of House"))

	decision, err := dm.ChooseCommand(context.Background(), stateWithTurns(1))
	require.NoError(t, err)
	assert.Equal(t, domain.Decision{Command: "open mailbox", Reasoning: "The mailbox might hold a clue."}, decision)

	assert.Equal(t, "llama3.2:3b", captured.Model)
	require.NotNil(t, captured.Stream)
	assert.False(t, *captured.Stream)
	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "The game begins:\nWest of House", captured.Messages[1].Content)
	assert.Equal(t, message{Role: "assistant", Content: "cmd-1"}, captured.Messages[2])
	assert.Equal(t, message{Role: "user", Content: "resp-1"}, captured.Messages[3])

	metrics := dm.Metrics()
	assert.Equal(t, int64(1), metrics["requests"])
	assert.Equal(t, int64(0), metrics["failures"])
	assert.Equal(t, int64(120), metrics["prompt_tokens"])
	assert.Equal(t, int64(9), metrics["completion_tokens"])
}

func TestOpenAIDialectSendsBearerFromSecretStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var captured capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		require.NotNil(t, captured.Temperature)
		assert.InDelta(t, 0.3, *captured.Temperature, 1e-9)

		_, _ = fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"I should look around.\nCOMMAND: \"look\""}}],"usage":{"prompt_tokens":50,"completion_tokens":7}}`)
	}))
	defer server.Close()

	secrets := mocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, "llm/openai/api_key").Return("sk-test\n", nil).Once()

	dm, err := New(Config{
		Dialect:     DialectOpenAI,
		BaseURL:     server.URL + "/v1/",
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		APIKeyRef:   "llm/openai/api_key",
	}, server.Client(), secrets, nil, nil)
	require.NoError(t, err)

	for range 2 {
		decision, err := dm.ChooseCommand(context.Background(), domain.GameState{})
		require.NoError(t, err)
		assert.Equal(t, "look", decision.Command)
		assert.Equal(t, "I should look around.", decision.Reasoning)
	}
	assert.Equal(t, int64(100), dm.Metrics()["prompt_tokens"])
}

func TestOpenAIDialectMissingKey(t *testing.T) {
	secrets := mocks.NewMockSecretStore(t)
	secrets.EXPECT().Get(mock.Anything, "llm/openai/api_key").Return("", domain.ErrSecretNotFound)

	dm, err := New(Config{Dialect: DialectOpenAI, BaseURL: "http://127.0.0.1:1", Model: "m", APIKeyRef: "llm/openai/api_key"}, nil, secrets, nil, nil)
	require.NoError(t, err)

	_, err = dm.ChooseCommand(context.Background(), domain.GameState{})
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.Contains(t, err.Error(), "glkpilot key set")
}

func TestChooseCommandReportsHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = fmt.Fprint(w, `{"error":"model \"nope\" not found, try pulling it first"}`)
	}))
	defer server.Close()

	dm, err := New(Config{Dialect: DialectOllama, BaseURL: server.URL, Model: "nope"}, server.Client(), nil, nil, nil)
	require.NoError(t, err)

	_, err = dm.ChooseCommand(context.Background(), domain.GameState{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 404")
	assert.Contains(t, err.Error(), "try pulling it first")
	assert.Equal(t, int64(1), dm.Metrics()["failures"])
}

func TestChooseCommandRejectsEmptyReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"message":{"content":"   \n  "}}`)
	}))
	defer server.Close()

	dm, err := New(Config{Dialect: DialectOllama, BaseURL: server.URL, Model: "m"}, server.Client(), nil, nil, nil)
	require.NoError(t, err)

	_, err = dm.ChooseCommand(context.Background(), domain.GameState{})
	require.ErrorContains(t, err, "no command")
}

func TestLatencyUsesClock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"message":{"content":"wait"}}`)
	}))
	defer server.Close()

	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(start).Once()
	clock.EXPECT().Now().Return(start.Add(1500 * time.Millisecond)).Once()

	dm, err := New(Config{Dialect: DialectOllama, BaseURL: server.URL, Model: "m"}, server.Client(), nil, clock, nil)
	require.NoError(t, err)

	_, err = dm.ChooseCommand(context.Background(), domain.GameState{})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), dm.Metrics()["total_latency_ms"])

	require.NoError(t, dm.Reset(context.Background()))
	assert.Equal(t, int64(0), dm.Metrics()["requests"])
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{Dialect: "gemini", BaseURL: "http://x", Model: "m"}, nil, nil, nil, nil)
	require.ErrorContains(t, err, "unsupported llm dialect")

	_, err = New(Config{Dialect: DialectOllama, Model: "m"}, nil, nil, nil, nil)
	require.ErrorContains(t, err, "base url is required")

	_, err = New(Config{Dialect: DialectOllama, BaseURL: "http://x"}, nil, nil, nil, nil)
	require.ErrorContains(t, err, "model is required")
}
