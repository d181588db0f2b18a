package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenCache_Absorb(t *testing.T) {
	t.Parallel()

	c := NewTokenCache()
	c.Absorb(&AccessTokens{
		AppTokens:     map[uint32]uint64{730: 111, 440: 0},
		PackageTokens: map[uint32]uint64{303386: 222},
		AppsDenied:    []uint32{570},
	})

	token, ok := c.AppToken(730)
	assert.True(t, ok)
	assert.Equal(t, uint64(111), token)

	token, ok = c.AppToken(440)
	assert.True(t, ok, "a granted zero token is still a grant")
	assert.Equal(t, uint64(0), token)

	_, ok = c.AppToken(570)
	assert.False(t, ok)
	assert.True(t, c.AppDenied(570))

	token, ok = c.PackageToken(303386)
	assert.True(t, ok)
	assert.Equal(t, uint64(222), token)
}

func TestTokenCache_AbsorbNilIsNoOp(t *testing.T) {
	t.Parallel()

	c := NewTokenCache()
	c.Absorb(nil)
	assert.Empty(t, c.AppsWithTokens())
}

func TestTokenCache_WithTokensExcludesZeroTokens(t *testing.T) {
	t.Parallel()

	c := NewTokenCache()
	c.Absorb(&AccessTokens{
		AppTokens:     map[uint32]uint64{10: 1, 730: 2, 440: 0, 570: 3},
		PackageTokens: map[uint32]uint64{50: 0, 40: 9, 60: 8},
	})

	assert.Equal(t, []uint32{730, 570, 10}, c.AppsWithTokens(), "non-zero tokens only, descending")
	assert.Equal(t, []uint32{60, 40}, c.PackagesWithTokens())
}

func TestTokenCache_AbsorbOverwrites(t *testing.T) {
	t.Parallel()

	c := NewTokenCache()
	c.Absorb(&AccessTokens{AppTokens: map[uint32]uint64{730: 1}})
	c.Absorb(&AccessTokens{AppTokens: map[uint32]uint64{730: 2}})

	token, ok := c.AppToken(730)
	assert.True(t, ok)
	assert.Equal(t, uint64(2), token, "a re-granted token replaces the cached one")
}

func TestChangesResponse_Empty(t *testing.T) {
	t.Parallel()

	resp := &ChangesResponse{CurrentChangeNumber: 100}
	assert.True(t, resp.Empty())

	resp.AppChanges = map[uint32]FeedChange{730: {ID: 730, ChangeNumber: 100}}
	assert.False(t, resp.Empty())
}
