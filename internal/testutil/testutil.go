package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	WriteScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) {
	t.Helper()
	WriteScript(t, dir, name, fmt.Sprintf("for arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg))
}

// WriteScript writes an executable /bin/sh script with body after the shebang.
func WriteScript(t *testing.T, dir string, name string, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(PackagerScriptHeader+body), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// PackagerScriptHeader is the shebang shared by generated scripts.
const PackagerScriptHeader = "#!/bin/sh\n"

// FakePackagerScript returns a script that mimics the packager contract: it
// reads -r <dir> and creates one component directory per name with a
// marker file inside, then exits with exitCode.
func FakePackagerScript(exitCode int, components ...string) string {
	body := PackagerScriptHeader + "release=\"\"\nwhile [ $# -gt 0 ]; do\n  if [ \"$1\" = \"-r\" ]; then release=\"$2\"; shift; fi\n  shift\ndone\n"
	if exitCode != 0 {
		return body + fmt.Sprintf("exit %d\n", exitCode)
	}
	body += "mkdir -p \"$release\"\n"
	for _, c := range components {
		body += fmt.Sprintf("mkdir -p \"$release/%s\"\necho %s > \"$release/%s/%s.toc\"\n", c, c, c, c)
	}
	return body + "exit 0\n"
}

// WriteFakePackager writes FakePackagerScript as an executable named name in dir.
func WriteFakePackager(t *testing.T, dir string, name string, exitCode int, components ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(FakePackagerScript(exitCode, components...)), 0o755); err != nil {
		t.Fatalf("write fake packager: %v", err)
	}
	return path
}

// WriteTree creates files under root. Keys are slash-separated relative
// paths; a key ending in "/" creates an empty directory.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", rel, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

// Snapshot returns every entry under root keyed by slash-separated relative
// path. Directories map to "/" plus their mode, files to their mode and content.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if d.IsDir() {
			out[key] = fmt.Sprintf("/ %v", info.Mode().Perm())
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[key] = fmt.Sprintf("%v %d %s", info.Mode().Perm(), info.ModTime().UnixNano(), data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return out
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
