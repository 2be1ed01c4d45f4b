package toml

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	TranscriptsPathKey   = "transcripts.path"
	transcriptsFileMode  = 0o600
	transcriptsDirMode   = 0o700
	transcriptsConfigDir = ".glkpilot"
	transcriptsFile      = "transcripts.toml"
	tempFilePattern      = ".transcripts-*.toml.tmp"
)

type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.TranscriptRepository = (*Repository)(nil)

// NewRepository resolves the transcripts file from transcripts.path, defaulting to
// ~/.glkpilot/transcripts.toml.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if cfg.GetString(TranscriptsPathKey) == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetDefault(TranscriptsPathKey, filepath.Join(homeDir, transcriptsConfigDir, transcriptsFile))
	}

	path := cfg.GetString(TranscriptsPathKey)
	if path == "" {
		return nil, errors.New("transcripts path is empty")
	}
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

// Save inserts the session or replaces the stored one with the same id.
func (r *Repository) Save(ctx context.Context, result domain.SessionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(result)
	index := slices.IndexFunc(file.Sessions, func(s sessionSchema) bool { return s.ID == encoded.ID })
	if index >= 0 {
		file.Sessions[index] = encoded
	} else {
		file.Sessions = append(file.Sessions, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.SessionID) (domain.SessionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SessionResult{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.SessionResult{}, err
	}

	for _, entry := range file.Sessions {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.SessionResult{}, fmt.Errorf("%w: %s", domain.ErrTranscriptNotFound, id)
}

func (r *Repository) List(ctx context.Context) ([]domain.SessionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	results := make([]domain.SessionResult, 0, len(file.Sessions))
	for _, entry := range file.Sessions {
		results = append(results, fromSchema(entry))
	}

	return results, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read transcripts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode transcripts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), transcriptsDirMode); err != nil {
		return fmt.Errorf("create transcripts directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode transcripts file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp transcripts file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp transcripts file: %w", err)
	}
	if err := tempFile.Chmod(transcriptsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp transcripts file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp transcripts file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace transcripts file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve transcripts path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(result domain.SessionResult) sessionSchema {
	turns := make([]turnSchema, 0, len(result.History))
	for _, turn := range result.History {
		turns = append(turns, turnSchema{
			Number:    turn.Number,
			Command:   turn.Command,
			Response:  turn.Response,
			CreatedAt: formatTime(turn.CreatedAt),
		})
	}

	return sessionSchema{
		ID:         string(result.ID),
		StartedAt:  formatTime(result.StartedAt),
		FinishedAt: formatTime(result.FinishedAt),
		Success:    result.Success,
		StopReason: string(result.StopReason),
		GameEnded:  result.GameEnded,
		Error:      result.Error,
		Warnings:   slices.Clone(result.Warnings),
		Metadata:   maps.Clone(result.Metadata),
		Metrics:    maps.Clone(map[string]any(result.Metrics)),
		Turns:      turns,
	}
}

func fromSchema(entry sessionSchema) domain.SessionResult {
	history := make([]domain.GameTurn, 0, len(entry.Turns))
	for _, turn := range entry.Turns {
		history = append(history, domain.GameTurn{
			Number:    turn.Number,
			Command:   turn.Command,
			Response:  turn.Response,
			CreatedAt: parseTime(turn.CreatedAt),
		})
	}

	return domain.SessionResult{
		ID:         domain.SessionID(entry.ID),
		StartedAt:  parseTime(entry.StartedAt),
		FinishedAt: parseTime(entry.FinishedAt),
		Success:    entry.Success,
		Turns:      len(history),
		History:    history,
		Metrics:    domain.Metrics(entry.Metrics),
		Error:      entry.Error,
		Warnings:   entry.Warnings,
		GameEnded:  entry.GameEnded,
		StopReason: domain.StopReason(entry.StopReason),
		Metadata:   entry.Metadata,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
