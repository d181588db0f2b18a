package steam

import (
	"context"
	"log/slog"

	"github.com/PawVamp/SteamDatabaseBackend/internal/backpressure"
)

// Fetcher is the body of a token acquisition job: it requests access tokens
// for a chunk of products, records the grants, and follows up with a product
// info request carrying the tokens it holds. The in-flight gauge it
// increments is one of the saturation signals sampled by the backpressure
// gate.
type Fetcher struct {
	client   Client
	cache    *TokenCache
	inFlight *backpressure.Gauge
}

// NewFetcher creates a fetcher over the given client and token cache.
func NewFetcher(client Client, cache *TokenCache, inFlight *backpressure.Gauge) *Fetcher {
	return &Fetcher{
		client:   client,
		cache:    cache,
		inFlight: inFlight,
	}
}

// FetchTokens acquires tokens for the given products and requests their
// metadata. Remote failures are logged, not returned: a failed chunk is
// retried naturally on the next change or full run that touches it.
func (f *Fetcher) FetchTokens(ctx context.Context, appIDs, packageIDs []uint32) {
	tokens, err := f.client.GetAccessTokens(ctx, appIDs, packageIDs)
	if err != nil {
		slog.Warn("Access token request failed",
			"apps", len(appIDs),
			"packages", len(packageIDs),
			"error", err)
		return
	}

	f.cache.Absorb(tokens)

	apps := make([]ProductInfoRequest, 0, len(appIDs))
	for _, id := range appIDs {
		req := ProductInfoRequest{ID: id}
		if token, ok := f.cache.AppToken(id); ok {
			req.AccessToken = token
		}
		apps = append(apps, req)
	}

	packages := make([]ProductInfoRequest, 0, len(packageIDs))
	for _, id := range packageIDs {
		req := ProductInfoRequest{ID: id}
		if token, ok := f.cache.PackageToken(id); ok {
			req.AccessToken = token
		}
		packages = append(packages, req)
	}

	f.inFlight.Add(int64(len(apps) + len(packages)))
	defer f.inFlight.Add(-int64(len(apps) + len(packages)))

	result, err := f.client.GetProductInfo(ctx, apps, packages)
	if err != nil {
		slog.Warn("Product info request failed",
			"apps", len(apps),
			"packages", len(packages),
			"error", err)
		return
	}

	missing := 0
	for _, info := range result.Apps {
		if info.MissingToken {
			missing++
		}
	}
	for _, info := range result.Packages {
		if info.MissingToken {
			missing++
		}
	}
	if missing > 0 {
		slog.Debug("Product info returned unknown products", "missing_token", missing)
	}
}
