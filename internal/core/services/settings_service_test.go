package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/exchange_desk/internal/adapters/cache"
	"github.com/SscSPs/exchange_desk/internal/apperrors"
	"github.com/SscSPs/exchange_desk/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Language(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	defer store.Close()
	service := services.NewSettingsService(services.BaseService{Snapshots: store})

	lang, err := service.GetLanguage(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "ar", lang, "arabic until changed")

	lang, err = service.SetLanguage(ctx, "1", " EN ")
	require.NoError(t, err)
	assert.Equal(t, "en", lang)

	lang, err = service.GetLanguage(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "en", lang)

	other, err := service.GetLanguage(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "ar", other, "languages are per provider")

	_, err = service.SetLanguage(ctx, "1", "fr")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSettingsService_SetLanguageStoreFailure(t *testing.T) {
	store := &brokenStore{MemoryStore: cache.NewMemoryStore(), failSet: "lang:"}
	defer store.Close()
	service := services.NewSettingsService(services.BaseService{Snapshots: store})

	_, err := service.SetLanguage(context.Background(), "1", "en")

	assert.ErrorIs(t, err, errStoreDown)
}
