package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/ports"
)

// CredentialService manages chat-model API keys in the secret store.
type CredentialService struct {
	store ports.SecretStore
}

func NewCredentialService(store ports.SecretStore) *CredentialService {
	return &CredentialService{store: store}
}

// KeyRef is the secret name holding the API key for an llm dialect.
func KeyRef(dialect string) string {
	return "glkpilot/" + strings.ToLower(strings.TrimSpace(dialect)) + "/api_key"
}

// SetKey stores the key, replacing any previous value.
func (s *CredentialService) SetKey(ctx context.Context, cmd SetKeyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := s.store.Put(ctx, cmd.Ref, strings.TrimSpace(cmd.Value)); err != nil {
		return fmt.Errorf("store key: %w", err)
	}

	return nil
}

// RemoveKey deletes the key. Removing a missing key is not an error.
func (s *CredentialService) RemoveKey(ctx context.Context, cmd RemoveKeyCommand) error {
	if strings.TrimSpace(cmd.Ref) == "" {
		return fmt.Errorf("key ref is required")
	}

	if err := s.store.Delete(ctx, cmd.Ref); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		return fmt.Errorf("delete key: %w", err)
	}

	return nil
}

func (s *CredentialService) CheckKey(ctx context.Context, ref string) (KeyStatus, error) {
	value, err := s.store.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return KeyStatus{Ref: ref}, nil
		}
		return KeyStatus{}, fmt.Errorf("read key: %w", err)
	}

	return KeyStatus{Ref: ref, Stored: strings.TrimSpace(value) != ""}, nil
}
