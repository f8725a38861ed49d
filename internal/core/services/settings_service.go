package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/exchange_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
)

type settingsService struct {
	BaseService
}

// NewSettingsService creates a settings service persisting into the snapshot store.
func NewSettingsService(base BaseService) portssvc.SettingsSvc {
	return &settingsService{BaseService: base}
}

// GetLanguage returns the stored language, or the default when none was chosen.
func (s *settingsService) GetLanguage(ctx context.Context, providerID string) (string, error) {
	if err := requireProvider(providerID); err != nil {
		return "", err
	}
	var lang string
	if !s.loadSnapshot(ctx, portsrepo.KeyLanguage, portsrepo.ScopedKey(portsrepo.KeyLanguage, providerID), &lang) {
		return string(domain.DefaultLanguage), nil
	}
	parsed, err := domain.ParseLanguage(lang)
	if err != nil {
		return string(domain.DefaultLanguage), nil
	}
	return string(parsed), nil
}

func (s *settingsService) SetLanguage(ctx context.Context, providerID, language string) (string, error) {
	if err := requireProvider(providerID); err != nil {
		return "", err
	}
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return "", err
	}
	if err := s.storeState(ctx, portsrepo.ScopedKey(portsrepo.KeyLanguage, providerID), string(lang), 0); err != nil {
		return "", fmt.Errorf("failed to save language: %w", err)
	}
	return string(lang), nil
}
