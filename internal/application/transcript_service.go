package application

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/ports"
)

type TranscriptService struct {
	repo  ports.TranscriptRepository
	clock ports.Clock
}

func NewTranscriptService(repo ports.TranscriptRepository, clock ports.Clock) *TranscriptService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &TranscriptService{repo: repo, clock: clock}
}

// Save stores a finished session and returns it with its id filled in.
func (s *TranscriptService) Save(ctx context.Context, result domain.SessionResult) (domain.SessionResult, error) {
	if strings.TrimSpace(string(result.ID)) == "" {
		started := result.StartedAt
		if started.IsZero() {
			started = s.clock.Now()
		}
		result.ID = NewSessionID(started)
	}
	if err := result.Validate(); err != nil {
		return domain.SessionResult{}, fmt.Errorf("validate transcript: %w", err)
	}

	if err := s.repo.Save(ctx, result); err != nil {
		return domain.SessionResult{}, fmt.Errorf("save transcript: %w", err)
	}

	return result, nil
}

func (s *TranscriptService) Get(ctx context.Context, id domain.SessionID) (domain.SessionResult, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.SessionResult{}, fmt.Errorf("get transcript by id: %w", err)
	}

	return result, nil
}

// Latest returns the most recently started transcript.
func (s *TranscriptService) Latest(ctx context.Context) (domain.SessionResult, error) {
	results, err := s.repo.List(ctx)
	if err != nil {
		return domain.SessionResult{}, fmt.Errorf("list transcripts: %w", err)
	}
	if len(results) == 0 {
		return domain.SessionResult{}, domain.ErrTranscriptNotFound
	}

	sortNewestFirst(results)
	return results[0], nil
}

// List returns summaries, newest first.
func (s *TranscriptService) List(ctx context.Context) ([]TranscriptSummary, error) {
	results, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}

	sortNewestFirst(results)

	summaries := make([]TranscriptSummary, 0, len(results))
	for _, result := range results {
		summaries = append(summaries, summarize(result))
	}

	return summaries, nil
}

func sortNewestFirst(results []domain.SessionResult) {
	slices.SortStableFunc(results, func(a, b domain.SessionResult) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return strings.Compare(string(b.ID), string(a.ID))
	})
}
