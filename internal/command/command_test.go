package command

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/wowpub/internal/testutil"
)

func TestExecRun_Success(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStub(t, dir, "ok")

	err := Exec{}.Run(context.Background(), Spec{Name: filepath.Join(dir, "ok")})
	require.NoError(t, err)
}

func TestExecRun_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "fail", 3)
	name := filepath.Join(dir, "fail")

	err := Exec{}.Run(context.Background(), Spec{Name: name, Args: []string{"-x", "y"}})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, []string{"-x", "y"}, exitErr.Args)
	assert.Contains(t, err.Error(), "exited with code 3")

	code, ok := ExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestExecRun_StreamsOutputAndUsesDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteScript(t, dir, "pwd-echo", "pwd\necho err >&2\n")

	var stdout, stderr bytes.Buffer
	err := Exec{}.Run(context.Background(), Spec{
		Name:   filepath.Join(dir, "pwd-echo"),
		Dir:    dir,
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), resolved)
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecRun_StartFailure(t *testing.T) {
	err := Exec{}.Run(context.Background(), Spec{Name: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	_, ok := ExitCode(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "start")
}

func TestExecRun_EmptyName(t *testing.T) {
	err := Exec{}.Run(context.Background(), Spec{})
	require.Error(t, err)
}

func TestSpecString(t *testing.T) {
	assert.Equal(t, "rsync", Spec{Name: "rsync"}.String())
	assert.Equal(t, "rsync -a --delete", Spec{Name: "rsync", Args: []string{"-a", "--delete"}}.String())
}

func TestRunnerFunc(t *testing.T) {
	var got Spec
	r := RunnerFunc(func(_ context.Context, spec Spec) error {
		got = spec
		return nil
	})
	require.NoError(t, r.Run(context.Background(), Spec{Name: "x"}))
	assert.Equal(t, "x", got.Name)
}
