package target

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedCells = map[Flavor]map[Channel][]string{
	Mainline: {
		Live:  {"retail"},
		PTR:   {"ptr", "xptr"},
		Beta:  {"beta"},
		Alpha: {"alpha"},
	},
	Classic: {
		Live:  {"classic", "classic_era"},
		PTR:   {"classic_ptr", "classic_era_ptr"},
		Beta:  {"classic_beta", "classic_era_beta"},
		Alpha: {"classic_alpha", "classic_era_alpha"},
	},
}

func allKeys() []Key {
	var out []Key
	for _, f := range AllFlavors {
		for _, c := range AllChannels {
			out = append(out, KeysFor(f, c)...)
		}
	}
	return out
}

func writeInstallRoot(t *testing.T, keys []Key) string {
	t.Helper()
	root := t.TempDir()
	for _, k := range keys {
		require.NoError(t, os.MkdirAll(AddOnsDir(root, k), 0o755))
	}
	return root
}

func subsets[T any](items []T) [][]T {
	var out [][]T
	for mask := 1; mask < 1<<len(items); mask++ {
		var s []T
		for i, item := range items {
			if mask&(1<<i) != 0 {
				s = append(s, item)
			}
		}
		out = append(out, s)
	}
	return out
}

func TestKeysFor_MatchesTable(t *testing.T) {
	for f, row := range expectedCells {
		for c, want := range row {
			var got []string
			for _, k := range KeysFor(f, c) {
				got = append(got, string(k))
			}
			assert.ElementsMatch(t, want, got, "%s/%s", f, c)
		}
	}
	assert.Nil(t, KeysFor("bogus", Live))
	assert.Len(t, allKeys(), 13)
}

func TestKeysFor_ReturnsCopy(t *testing.T) {
	keys := KeysFor(Mainline, PTR)
	keys[0] = "mutated"
	assert.Equal(t, []Key{KeyPTR, KeyXPTR}, KeysFor(Mainline, PTR))
}

func TestResolve_EverySubsetMatchesTableUnion(t *testing.T) {
	root := writeInstallRoot(t, allKeys())

	for _, flavors := range subsets(AllFlavors) {
		for _, channels := range subsets(AllChannels) {
			want := map[string]bool{}
			for _, f := range flavors {
				for _, c := range channels {
					for _, k := range expectedCells[f][c] {
						want[k] = true
					}
				}
			}

			dests, err := Resolve(root, Select(Selection{Flavors: flavors, Channels: channels}))
			require.NoError(t, err)

			got := map[string]bool{}
			for _, d := range dests {
				got[string(d.Key)] = true
				assert.Equal(t, AddOnsDir(root, d.Key), d.Path)
			}
			assert.Equal(t, want, got, "flavors=%v channels=%v", flavors, channels)
		}
	}
}

func TestSelect_EmptyDefaults(t *testing.T) {
	empty := Select(Selection{})
	explicit := Select(Selection{Flavors: []Flavor{Mainline, Classic}, Channels: []Channel{Live}})
	assert.Equal(t, explicit.Sorted(), empty.Sorted())
	assert.Equal(t, []Key{KeyClassic, KeyClassicEra, KeyRetail}, empty.Sorted())
}

func TestSelect_DuplicatesCollapse(t *testing.T) {
	set := Select(Selection{
		Flavors:  []Flavor{Mainline, Mainline},
		Channels: []Channel{PTR, PTR, Live},
	})
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(KeyXPTR))
	assert.False(t, set.Contains(KeyClassic))
}

func TestResolve_SkipsMissingAndNonDirectories(t *testing.T) {
	root := writeInstallRoot(t, []Key{KeyRetail})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "_classic_", "Interface"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "_classic_", "Interface", "AddOns"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "_classic_era_"), []byte("x"), 0o644))

	dests, err := Resolve(root, Select(Selection{}))
	require.NoError(t, err)
	require.Len(t, dests, 1)
	assert.Equal(t, KeyRetail, dests[0].Key)
}

func TestResolve_NothingInstalled(t *testing.T) {
	dests, err := Resolve(t.TempDir(), Select(Selection{}))
	require.NoError(t, err)
	assert.Empty(t, dests)
}

func TestResolve_DoesNotCreateDirectories(t *testing.T) {
	root := t.TempDir()
	_, err := Resolve(root, Select(Selection{Flavors: AllFlavors, Channels: AllChannels}))
	require.NoError(t, err)
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResolve_SortedByKey(t *testing.T) {
	root := writeInstallRoot(t, allKeys())
	dests, err := Resolve(root, Select(Selection{Flavors: AllFlavors, Channels: AllChannels}))
	require.NoError(t, err)
	require.Len(t, dests, 13)
	for i := 1; i < len(dests); i++ {
		assert.Less(t, string(dests[i-1].Key), string(dests[i].Key))
	}
}

func TestResolve_StatErrorIsReturned(t *testing.T) {
	orig := osStat
	osStat = func(string) (os.FileInfo, error) { return nil, os.ErrPermission }
	t.Cleanup(func() { osStat = orig })

	_, err := Resolve(t.TempDir(), Select(Selection{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check")
}
