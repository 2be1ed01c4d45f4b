package ports

import (
	"context"

	"github.com/bnema/glkpilot/internal/domain"
)

type TranscriptRepository interface {
	GetByID(ctx context.Context, id domain.SessionID) (domain.SessionResult, error)
	List(ctx context.Context) ([]domain.SessionResult, error)
	Save(ctx context.Context, result domain.SessionResult) error
}
