package application

import (
	"time"

	"github.com/bnema/glkpilot/internal/domain"
)

type KeyStatus struct {
	Ref    string
	Stored bool
}

// TranscriptSummary is one row of `transcript list`.
type TranscriptSummary struct {
	ID         domain.SessionID
	StartedAt  time.Time
	Duration   time.Duration
	Turns      int
	Success    bool
	StopReason domain.StopReason
	Story      string
}

func summarize(result domain.SessionResult) TranscriptSummary {
	return TranscriptSummary{
		ID:         result.ID,
		StartedAt:  result.StartedAt,
		Duration:   result.Duration(),
		Turns:      result.Turns,
		Success:    result.Success,
		StopReason: result.StopReason,
		Story:      result.Metadata[MetadataStory],
	}
}
