package services

import (
	"errors"

	"github.com/zalando/go-keyring"

	"ridgeai/internal/models"
)

const serviceName = "ridgeai"

// KeyringService stores provider API keys in the OS keyring. Exactly two
// providers exist, so no side list of known providers is kept.
type KeyringService struct {
}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) StoreApiKey(provider, apiKey string) error {
	if apiKey == "" {
		return errors.New("API key is empty")
	}
	if err := validProvider(provider); err != nil {
		return err
	}
	return keyring.Set(serviceName, provider, apiKey)
}

// GetApiKey returns the stored key, or "" when none is stored.
func (s *KeyringService) GetApiKey(provider string) (string, error) {
	if err := validProvider(provider); err != nil {
		return "", err
	}
	secret, err := keyring.Get(serviceName, provider)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return secret, nil
}

func (s *KeyringService) DeleteApiKey(provider string) error {
	if err := validProvider(provider); err != nil {
		return err
	}
	err := keyring.Delete(serviceName, provider)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// HasApiKey lets the settings screen show key state without exposing the key.
func (s *KeyringService) HasApiKey(provider string) (bool, error) {
	secret, err := s.GetApiKey(provider)
	if err != nil {
		return false, err
	}
	return secret != "", nil
}

func validProvider(provider string) error {
	if provider != models.ProviderGemini && provider != models.ProviderOpenRouter {
		return errors.New("provider must be 'gemini' or 'openrouter'")
	}
	return nil
}
