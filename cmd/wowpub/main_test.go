package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"wowpub", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"wowpub", "unknown"}, &out, &out); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"wowpub", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"wowpub", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainMapsEveryErrorToExitOne(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return errors.New("Packager execution failed with return code 2")
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"wowpub", "publish"}, &out, &out, func(c int) { code = c })

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "return code 2") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"wowpub", "--version"}
	main()
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuild
	})

	Version, Commit, BuildDate = "v1.0.0", "unknown", "unknown"
	if got := versionString(); got != "v1.0.0" {
		t.Fatalf("unexpected version: %q", got)
	}

	Commit, BuildDate = "abc123", "2026-01-02"
	if got := versionString(); got != "v1.0.0 (commit abc123, built 2026-01-02)" {
		t.Fatalf("unexpected version: %q", got)
	}
}
