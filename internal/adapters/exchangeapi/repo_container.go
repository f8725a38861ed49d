package exchangeapi

import (
	portsrepo "github.com/SscSPs/exchange_desk/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the upstream repositories around one client, with store as the local snapshot cache.
func NewRepositoryProvider(client *Client, store portsrepo.SnapshotStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:  NewCurrencyRepository(client),
		RequestRepo:   NewRequestRepository(client),
		ProviderRepo:  NewProviderRepository(client),
		SnapshotStore: store,
	}
}
