package mirror

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/wowpub/internal/testutil"
)

func changeStrings(changes []Change) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.String())
	}
	return out
}

func TestPlan_FreshDestination(t *testing.T) {
	_, src := writeComponent(t)

	changes, err := Plan(src, t.TempDir(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+ MyAddon/",
		"+ MyAddon/MyAddon.toc",
		"+ MyAddon/core.lua",
		"+ MyAddon/libs/",
		"+ MyAddon/libs/LibStub.lua",
		"+ MyAddon/media/",
	}, changeStrings(changes))
}

func TestPlan_UpToDateAfterMirror(t *testing.T) {
	_, src := writeComponent(t)
	dest := t.TempDir()
	require.NoError(t, Native{}.Mirror(context.Background(), src, dest))

	changes, err := Plan(src, dest, true)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestPlan_DeletesAndUpdatesWithDiff(t *testing.T) {
	_, src := writeComponent(t)
	dest := t.TempDir()
	require.NoError(t, Native{}.Mirror(context.Background(), src, dest))
	testutil.WriteTree(t, dest, map[string]string{
		"MyAddon/stale.lua": "old",
		"MyAddon/oldlibs/":  "",
	})
	file := filepath.Join(src, "core.lua")
	require.NoError(t, os.WriteFile(file, []byte("print('bye')\n"), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(file, later, later))

	before := testutil.Snapshot(t, dest)
	changes, err := Plan(src, dest, true)
	require.NoError(t, err)
	assert.Equal(t, before, testutil.Snapshot(t, dest), "plan must not modify the destination")

	assert.Equal(t, []string{
		"- MyAddon/oldlibs/",
		"- MyAddon/stale.lua",
		"~ MyAddon/core.lua",
	}, changeStrings(changes))
	diff := changes[2].Diff
	assert.Contains(t, diff, "-print('hi')")
	assert.Contains(t, diff, "+print('bye')")
	assert.Contains(t, diff, "b/MyAddon/core.lua")
}

func TestPlan_NoDiffForBinary(t *testing.T) {
	_, src := writeComponent(t)
	dest := t.TempDir()
	require.NoError(t, Native{}.Mirror(context.Background(), src, dest))
	file := filepath.Join(src, "core.lua")
	require.NoError(t, os.WriteFile(file, []byte{0, 1, 2}, 0o644))

	changes, err := Plan(src, dest, true)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, OpUpdate, changes[0].Op)
	assert.Empty(t, changes[0].Diff)
}

func TestPlan_PermissionOnlyChange(t *testing.T) {
	_, src := writeComponent(t)
	dest := t.TempDir()
	require.NoError(t, Native{}.Mirror(context.Background(), src, dest))
	require.NoError(t, os.Chmod(filepath.Join(src, "core.lua"), 0o600))

	changes, err := Plan(src, dest, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"~ MyAddon/core.lua"}, changeStrings(changes))
	assert.Empty(t, changes[0].Diff)
}

func TestPlan_Errors(t *testing.T) {
	staging, _ := writeComponent(t)
	_, err := Plan("", "d", false)
	assert.Error(t, err)
	_, err = Plan(staging, "", false)
	assert.Error(t, err)
	_, err = Plan(filepath.Join(staging, "MyAddon", "core.lua"), t.TempDir(), false)
	assert.ErrorContains(t, err, "not a directory")
}
