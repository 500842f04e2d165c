package packager

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/wowpub/internal/command"
	"github.com/conn-castle/wowpub/internal/testutil"
)

func TestInvoke_PassesFixedFlags(t *testing.T) {
	var got command.Spec
	runner := command.RunnerFunc(func(_ context.Context, spec command.Spec) error {
		got = spec
		return nil
	})
	var out bytes.Buffer

	err := Invoke(context.Background(), runner, Request{
		Tool:       "/tmp/wowp/release.sh",
		ProjectDir: "/src/MyAddon",
		ReleaseDir: "/tmp/wowp/release",
		Stdout:     &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/wowp/release.sh", got.Name)
	assert.Equal(t, []string{"-dlzS", "-t", "/src/MyAddon", "-r", "/tmp/wowp/release"}, got.Args)
	assert.Equal(t, "/src/MyAddon", got.Dir)
	assert.Same(t, &out, got.Stdout)
}

func TestInvoke_RealScriptPopulatesRelease(t *testing.T) {
	dir := t.TempDir()
	project := t.TempDir()
	release := filepath.Join(dir, "release")
	tool := testutil.WriteFakePackager(t, dir, "release.sh", 0, "MyAddon")

	err := Invoke(context.Background(), command.Exec{}, Request{
		Tool:       tool,
		ProjectDir: project,
		ReleaseDir: release,
	})
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(release, "MyAddon"))
}

func TestInvoke_ExpectsCombinedFlag(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubExpectArg(t, dir, "release.sh", Flags)

	err := Invoke(context.Background(), nil, Request{
		Tool:       filepath.Join(dir, "release.sh"),
		ProjectDir: t.TempDir(),
		ReleaseDir: filepath.Join(dir, "release"),
	})
	require.NoError(t, err)
}

func TestInvoke_NonZeroExitPropagatesCode(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "release.sh", 2)

	err := Invoke(context.Background(), command.Exec{}, Request{
		Tool:       filepath.Join(dir, "release.sh"),
		ProjectDir: t.TempDir(),
		ReleaseDir: filepath.Join(dir, "release"),
	})
	require.Error(t, err)
	var exitErr *command.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	_, statErr := os.Stat(filepath.Join(dir, "release"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInvoke_RequiresPaths(t *testing.T) {
	for name, req := range map[string]Request{
		"tool":    {ProjectDir: "p", ReleaseDir: "r"},
		"project": {Tool: "t", ReleaseDir: "r"},
		"release": {Tool: "t", ProjectDir: "p"},
	} {
		t.Run(name, func(t *testing.T) {
			err := Invoke(context.Background(), command.Exec{}, req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}
