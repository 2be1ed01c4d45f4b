package transcript

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/glkpilot/internal/application"
	"github.com/bnema/glkpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var started = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func finishedSession() domain.SessionResult {
	return domain.SessionResult{
		ID:         "20261019-093000.000",
		StartedAt:  started,
		FinishedAt: started.Add(95 * time.Second),
		Success:    true,
		Turns:      2,
		History: []domain.GameTurn{
			{Number: 1, Command: "west", Response: "Cloakroom\nThe walls are lined with hooks."},
			{Number: 2, Command: "z", Response: ""},
		},
		Metrics:    domain.Metrics{"requests": int64(2), "failures": int64(0)},
		Warnings:   []string{"observe turn 1: memory full"},
		GameEnded:  true,
		StopReason: domain.StopReasonGameEnded,
		Metadata:   map[string]string{application.MetadataStory: "cloak.toml", application.MetadataDecision: "llm"},
	}
}

func TestRenderFinishedSession(t *testing.T) {
	output, err := Render(finishedSession(), RenderOptions{MaxTurns: 4})
	require.NoError(t, err)

	assert.Contains(t, output, "Session 20261019-093000.000 · cloak.toml")
	assert.Contains(t, output, "started 2026-10-19 09:30:00 UTC | 1m35s | 2 turns | decision: llm")
	assert.Contains(t, output, "finished: game ended")
	assert.Contains(t, output, "[============------------] 2/4 turns")
	assert.Contains(t, output, "warning: observe turn 1: memory full")
	assert.Contains(t, output, "#1 > west")
	assert.Contains(t, output, "The walls are lined with hooks.")
	assert.Contains(t, output, "#2 > z")
	assert.Contains(t, output, noOutputMarker)
	assert.Contains(t, output, "failures: 0")
	assert.Contains(t, output, "requests: 2")
	assert.Less(t, strings.Index(output, "failures"), strings.Index(output, "requests"))
}

func TestRenderBriefOmitsTurns(t *testing.T) {
	output, err := Render(finishedSession(), RenderOptions{Brief: true})
	require.NoError(t, err)

	assert.NotContains(t, output, "> west")
	assert.NotContains(t, output, "#1")
	assert.Contains(t, output, "finished: game ended")
}

func TestRenderFailedSession(t *testing.T) {
	output, err := Render(domain.SessionResult{
		ID:         "s-1",
		Error:      "start interpreter: engine boot failure",
		StopReason: domain.StopReasonError,
	}, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "failed: start interpreter: engine boot failure")
	assert.Contains(t, output, "0 turns")
	assert.Contains(t, output, "No turns played.")
}

func TestRenderList(t *testing.T) {
	output, err := RenderList([]application.TranscriptSummary{
		{ID: "20261019-093000.000", StartedAt: started, Turns: 4, Success: true, StopReason: domain.StopReasonMaxTurns, Story: "zork1.z5"},
		{ID: "20261018-120000.000", StartedAt: started.Add(-24 * time.Hour), Turns: 1, StopReason: domain.StopReasonError},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "sessions: 2")
	assert.Contains(t, output, "2026-10-19 09:30")
	assert.Contains(t, output, "turn limit reached zork1.z5")
	assert.Contains(t, output, "1 turn")
	assert.Contains(t, output, "failed")
}

func TestRenderListEmpty(t *testing.T) {
	output, err := RenderList(nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No transcripts saved.")
}
