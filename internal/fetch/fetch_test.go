package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSystem struct {
	env map[string]string
}

func (s testSystem) Getenv(key string) string {
	return s.env[key]
}

func digestOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func serve(t *testing.T, version string, body []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+version+"/release.sh" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func artifactFor(server *httptest.Server, version string, digest string) Artifact {
	return Artifact{
		Version:     version,
		SHA256:      digest,
		URLTemplate: server.URL + "/{version}/release.sh",
	}
}

func TestArtifactURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/BigWigsMods/packager/v2.3.1/release.sh",
		DefaultArtifact().URL())
}

func TestFetch_VerifiesAndMarksExecutable(t *testing.T) {
	body := []byte("#!/bin/sh\necho packager\n")
	server := serve(t, "v9.9.9", body)
	dir := t.TempDir()

	var progress strings.Builder
	path, err := Fetch(context.Background(), artifactFor(server, "v9.9.9", digestOf(body)), dir, &progress)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, PackagerFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100, "owner exec bit")
	assert.NotZero(t, info.Mode().Perm()&0o400, "owner read bit kept")
	assert.Contains(t, progress.String(), "Downloading packager v9.9.9")
	assert.Contains(t, progress.String(), "Downloaded packager v9.9.9")
}

func TestFetch_UpperCaseDigestAccepted(t *testing.T) {
	body := []byte("payload")
	server := serve(t, "v1", body)

	_, err := Fetch(context.Background(), artifactFor(server, "v1", strings.ToUpper(digestOf(body))), t.TempDir(), io.Discard)
	require.NoError(t, err)
}

func TestFetch_DigestMismatchLeavesFileWithoutExecBit(t *testing.T) {
	body := []byte("payload")
	tampered := append([]byte(nil), body...)
	tampered[0] ^= 0x01
	server := serve(t, "v1", tampered)
	dir := t.TempDir()

	chmodCalls := 0
	origChmod := osChmod
	osChmod = func(name string, mode os.FileMode) error {
		chmodCalls++
		return origChmod(name, mode)
	}
	t.Cleanup(func() { osChmod = origChmod })

	_, err := Fetch(context.Background(), artifactFor(server, "v1", digestOf(body)), dir, io.Discard)
	require.Error(t, err)

	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, digestOf(body), integrity.Expected)
	assert.Equal(t, digestOf(tampered), integrity.Actual)
	assert.Zero(t, chmodCalls)

	info, err := os.Stat(filepath.Join(dir, PackagerFileName))
	require.NoError(t, err, "partial file stays in place")
	assert.Zero(t, info.Mode().Perm()&0o111)
}

func TestFetch_HTTPStatusIsNetworkError(t *testing.T) {
	server := serve(t, "v1", []byte("x"))

	_, err := Fetch(context.Background(), artifactFor(server, "v2", digestOf([]byte("x"))), t.TempDir(), io.Discard)
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Contains(t, netErr.Status, "404")
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestFetch_ConnectionFailureIsNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), artifactFor(server, "v1", digestOf(nil)), t.TempDir(), io.Discard)
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	server.Close()
	_, err = Fetch(context.Background(), artifactFor(server, "v1", digestOf(nil)), t.TempDir(), io.Discard)
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.NotNil(t, errors.Unwrap(err))
}

func TestFetch_TooLarge(t *testing.T) {
	body := []byte("0123456789")
	server := serve(t, "v1", body)
	sys := testSystem{env: map[string]string{EnvMaxDownloadBytes: "4"}}

	_, err := FetchWithSystem(context.Background(), sys, artifactFor(server, "v1", digestOf(body)), t.TempDir(), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestFetch_ValidatesInputs(t *testing.T) {
	art := DefaultArtifact()
	dir := t.TempDir()
	tests := []struct {
		name string
		sys  System
		art  Artifact
		dir  string
		want string
	}{
		{name: "nil system", sys: nil, art: art, dir: dir, want: "system"},
		{name: "version", sys: RealSystem{}, art: Artifact{SHA256: "x", URLTemplate: "u"}, dir: dir, want: "version"},
		{name: "digest", sys: RealSystem{}, art: Artifact{Version: "v", URLTemplate: "u"}, dir: dir, want: "sha256"},
		{name: "url", sys: RealSystem{}, art: Artifact{Version: "v", SHA256: "x"}, dir: dir, want: "url"},
		{name: "dest", sys: RealSystem{}, art: art, dir: "", want: "directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FetchWithSystem(context.Background(), tt.sys, tt.art, tt.dir, io.Discard)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFetch_MissingDestDir(t *testing.T) {
	_, err := Fetch(context.Background(), DefaultArtifact(), filepath.Join(t.TempDir(), "missing"), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create")
}

func TestDigest_ChunkedMatchesWholeFile(t *testing.T) {
	data := []byte(strings.Repeat("abcdefghij", 2000))
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Digest(path)
	require.NoError(t, err)
	assert.Equal(t, digestOf(data), got)
}

func TestMaxDownloadBytes(t *testing.T) {
	var warn strings.Builder
	assert.Equal(t, defaultMaxDownloadBytes, maxDownloadBytes(testSystem{}, &warn))
	assert.Empty(t, warn.String())
	assert.Equal(t, int64(42), maxDownloadBytes(testSystem{env: map[string]string{EnvMaxDownloadBytes: " 42 "}}, &warn))
	assert.Empty(t, warn.String())

	for _, raw := range []string{"nope", "-1", "0"} {
		warn.Reset()
		assert.Equal(t, defaultMaxDownloadBytes, maxDownloadBytes(testSystem{env: map[string]string{EnvMaxDownloadBytes: raw}}, &warn))
		assert.Contains(t, warn.String(), EnvMaxDownloadBytes)
	}
}

func TestMarkExecutable_PreservesOtherBits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, os.Chmod(path, 0o640))

	require.NoError(t, markExecutable(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o740), info.Mode().Perm())
}
