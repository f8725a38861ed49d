package services

import (
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_desk/internal/core/ports/services"
	"github.com/SscSPs/exchange_desk/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	base := BaseService{Snapshots: repos.SnapshotStore, SnapshotTTL: cfg.CacheTTL}

	container := &portssvc.ServiceContainer{}

	// Currencies first since rates, drafts and requests read them
	container.Currency = NewCurrencyService(repos.CurrencyRepo, base)
	container.Settings = NewSettingsService(base)
	container.Rate = NewRateService(container.Currency, repos.CurrencyRepo, base)
	container.Draft = NewDraftService(container.Currency, repos.RequestRepo, base, cfg.DraftTTL)
	container.Request = NewRequestService(repos.RequestRepo, container.Currency, container.Settings, base)
	container.Auth = NewAuthService(repos.ProviderRepo, base, AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		JWTIssuer:     cfg.JWTIssuer,
		JWTExpiry:     cfg.JWTExpiryDuration,
		OTPTTL:        cfg.OTPTTL,
		ExposeOTPHint: cfg.ExposeOTPHint,
	})

	return container
}
