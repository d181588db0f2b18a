package resync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawVamp/SteamDatabaseBackend/internal/dispatch"
)

type stubStore struct {
	appIDs      []uint32
	packageIDs  []uint32
	ownedAppIDs []uint32
	maxAppID    uint32
	maxSubID    uint32
	err         error
}

func (s *stubStore) AllAppIDs(_ context.Context) ([]uint32, error)      { return s.appIDs, s.err }
func (s *stubStore) AllPackageIDs(_ context.Context) ([]uint32, error)  { return s.packageIDs, s.err }
func (s *stubStore) AllOwnedAppIDs(_ context.Context) ([]uint32, error) { return s.ownedAppIDs, s.err }
func (s *stubStore) MaxAppID(_ context.Context) (uint32, error)         { return s.maxAppID, s.err }
func (s *stubStore) MaxPackageID(_ context.Context) (uint32, error)     { return s.maxSubID, s.err }

type stubTokens struct {
	apps     []uint32
	packages []uint32
}

func (s *stubTokens) AppsWithTokens() []uint32     { return s.apps }
func (s *stubTokens) PackagesWithTokens() []uint32 { return s.packages }

type dispatchCall struct {
	identifiers []uint32
	kind        dispatch.Kind
	chunkSize   int
}

type recordingDispatcher struct {
	calls []dispatchCall
	err   error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, identifiers []uint32, kind dispatch.Kind, chunkSize int) error {
	d.calls = append(d.calls, dispatchCall{
		identifiers: append([]uint32(nil), identifiers...),
		kind:        kind,
		chunkSize:   chunkSize,
	})
	return d.err
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input       string
		expected    Mode
		expectError bool
	}{
		{input: "", expected: ModeFull},
		{input: "full", expected: ModeFull},
		{input: "enumerate", expected: ModeEnumerate},
		{input: "tokens-only", expected: ModeTokensOnly},
		{input: "packages-normal", expected: ModePackagesNormal},
		{input: "forced-depots", expected: ModeWithForcedDepots},
		{input: "bogus", expectError: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("mode "+tt.input, func(t *testing.T) {
			t.Parallel()

			mode, err := ParseMode(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestEnumerator_FullMode(t *testing.T) {
	t.Parallel()

	store := &stubStore{
		appIDs:      []uint32{730, 440, 10},
		ownedAppIDs: []uint32{570, 440},
		packageIDs:  []uint32{303386, 0},
	}
	dispatcher := &recordingDispatcher{}

	e := New(ModeFull, store, &stubTokens{}, dispatcher)
	require.NoError(t, e.Run(context.Background()))

	require.Len(t, dispatcher.calls, 2)

	apps := dispatcher.calls[0]
	assert.Equal(t, dispatch.Apps, apps.kind)
	assert.Equal(t, 200, apps.chunkSize)
	assert.Equal(t, []uint32{730, 570, 440, 10}, apps.identifiers, "stored and owned apps merged, descending, no duplicates")

	packages := dispatcher.calls[1]
	assert.Equal(t, dispatch.Packages, packages.kind)
	assert.Equal(t, 1000, packages.chunkSize)
	assert.Equal(t, []uint32{303386, 0}, packages.identifiers)
}

func TestEnumerator_EnumerateMode(t *testing.T) {
	t.Parallel()

	store := &stubStore{maxAppID: 100, maxSubID: 10}
	dispatcher := &recordingDispatcher{}

	e := New(ModeEnumerate, store, &stubTokens{}, dispatcher)
	require.NoError(t, e.Run(context.Background()))

	require.Len(t, dispatcher.calls, 2)

	apps := dispatcher.calls[0].identifiers
	require.Len(t, apps, 100+50000)
	assert.Equal(t, uint32(50099), apps[0], "range starts past the highest known app")
	assert.Equal(t, uint32(0), apps[len(apps)-1])

	packages := dispatcher.calls[1].identifiers
	require.Len(t, packages, 10+10000)
	assert.Equal(t, uint32(10009), packages[0])
	assert.Equal(t, uint32(0), packages[len(packages)-1])
}

func TestEnumerator_TokensOnlyMode(t *testing.T) {
	t.Parallel()

	tokens := &stubTokens{apps: []uint32{730, 440}, packages: []uint32{303386}}
	dispatcher := &recordingDispatcher{}

	e := New(ModeTokensOnly, &stubStore{}, tokens, dispatcher)
	require.NoError(t, e.Run(context.Background()))

	require.Len(t, dispatcher.calls, 2)
	assert.Equal(t, []uint32{730, 440}, dispatcher.calls[0].identifiers)
	assert.Equal(t, []uint32{303386}, dispatcher.calls[1].identifiers)
}

func TestEnumerator_PackagesNormalMode(t *testing.T) {
	t.Parallel()

	store := &stubStore{
		appIDs:     []uint32{730},
		packageIDs: []uint32{50, 40, 30},
	}
	dispatcher := &recordingDispatcher{}

	e := New(ModePackagesNormal, store, &stubTokens{}, dispatcher)
	require.NoError(t, e.Run(context.Background()))

	require.Len(t, dispatcher.calls, 2)
	assert.Empty(t, dispatcher.calls[0].identifiers, "apps are skipped")
	assert.Equal(t, []uint32{50, 40, 30}, dispatcher.calls[1].identifiers)
}

func TestEnumerator_ForcedDepotsSkipsPackages(t *testing.T) {
	t.Parallel()

	store := &stubStore{
		appIDs:     []uint32{730, 440},
		packageIDs: []uint32{50, 40},
	}
	dispatcher := &recordingDispatcher{}

	e := New(ModeWithForcedDepots, store, &stubTokens{}, dispatcher)
	require.NoError(t, e.Run(context.Background()))

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, dispatch.Apps, dispatcher.calls[0].kind)
	assert.Equal(t, []uint32{730, 440}, dispatcher.calls[0].identifiers)
}

func TestEnumerator_StoreErrorStopsTheRun(t *testing.T) {
	t.Parallel()

	store := &stubStore{err: errors.New("connection refused")}
	dispatcher := &recordingDispatcher{}

	e := New(ModeFull, store, &stubTokens{}, dispatcher)
	assert.Error(t, e.Run(context.Background()))
	assert.Empty(t, dispatcher.calls)
}

func TestEnumerator_DispatchErrorPropagates(t *testing.T) {
	t.Parallel()

	dispatcher := &recordingDispatcher{err: errors.New("cancelled")}

	e := New(ModeFull, &stubStore{appIDs: []uint32{1}}, &stubTokens{}, dispatcher)
	assert.Error(t, e.Run(context.Background()))
}
