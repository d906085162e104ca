package providers

import "testing"

func TestDataProviderInterfaceImplemented(t *testing.T) {
	var _ DataProvider = (*scriptedProvider)(nil)
	var _ DataProvider = (*retryingProvider)(nil)
	var _ DataProvider = (*rateLimitedProvider)(nil)
	var _ GameLogLookup = (*gameLogLookup)(nil)
}
