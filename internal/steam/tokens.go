package steam

import (
	"slices"
	"sync"
)

// TokenCache records the access tokens granted so far, plus the products the
// remote refused to issue one for. It is safe for concurrent use; token
// acquisition jobs write into it while the full-run enumerator and product
// info requests read from it.
type TokenCache struct {
	mu sync.RWMutex

	appTokens     map[uint32]uint64
	packageTokens map[uint32]uint64
	appsDenied    map[uint32]struct{}
}

// NewTokenCache creates an empty token cache.
func NewTokenCache() *TokenCache {
	return &TokenCache{
		appTokens:     make(map[uint32]uint64),
		packageTokens: make(map[uint32]uint64),
		appsDenied:    make(map[uint32]struct{}),
	}
}

// Absorb merges the result of a token acquisition request into the cache.
// Zero-valued tokens are recorded too: a granted token of zero still means
// the product needs no token.
func (c *TokenCache) Absorb(tokens *AccessTokens) {
	if tokens == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for id, token := range tokens.AppTokens {
		c.appTokens[id] = token
	}
	for id, token := range tokens.PackageTokens {
		c.packageTokens[id] = token
	}
	for _, id := range tokens.AppsDenied {
		c.appsDenied[id] = struct{}{}
	}
}

// AppToken returns the cached token for an app, if one was granted.
func (c *TokenCache) AppToken(id uint32) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	token, ok := c.appTokens[id]
	return token, ok
}

// PackageToken returns the cached token for a package, if one was granted.
func (c *TokenCache) PackageToken(id uint32) (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	token, ok := c.packageTokens[id]
	return token, ok
}

// AppsWithTokens returns the app identifiers holding a non-zero token, in
// descending identifier order.
func (c *TokenCache) AppsWithTokens() []uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]uint32, 0, len(c.appTokens))
	for id, token := range c.appTokens {
		if token != 0 {
			ids = append(ids, id)
		}
	}
	sortDescending(ids)
	return ids
}

// PackagesWithTokens returns the package identifiers holding a non-zero
// token, in descending identifier order.
func (c *TokenCache) PackagesWithTokens() []uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]uint32, 0, len(c.packageTokens))
	for id, token := range c.packageTokens {
		if token != 0 {
			ids = append(ids, id)
		}
	}
	sortDescending(ids)
	return ids
}

// AppDenied reports whether the remote has refused a token for this app.
func (c *TokenCache) AppDenied(id uint32) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.appsDenied[id]
	return ok
}

func sortDescending(ids []uint32) {
	slices.SortFunc(ids, func(a, b uint32) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
}
