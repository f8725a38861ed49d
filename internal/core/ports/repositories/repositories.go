package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Currencies, requests and providers live behind the upstream exchange API;
// the snapshot store is the local cache of its last answers and of drafts.
type RepositoryProvider struct {
	CurrencyRepo  CurrencyRepositoryFacade
	RequestRepo   ExchangeRequestRepositoryFacade
	ProviderRepo  ProviderVerifier
	SnapshotStore SnapshotStore
}
