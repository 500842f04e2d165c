// Package workdir owns the ephemeral per-run working directory.
package workdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/sys/unix"

	"github.com/conn-castle/wowpub/internal/messages"
)

// DirName is the default working directory name under the temp dir.
const DirName = "wowp"

// ReleaseDirName is the staging subdirectory the packager writes into.
const ReleaseDirName = "release"

// MarkerName is written into every working directory Acquire creates. A
// non-empty directory without it is never wiped.
const MarkerName = ".wowpub-workdir"

var (
	flockFn   = unix.Flock
	removeAll = os.RemoveAll
	homeDir   = homedir.Dir
)

// Default returns <tmp>/wowp.
func Default() string {
	return filepath.Join(os.TempDir(), DirName)
}

// Dir is a freshly recreated working directory held under an exclusive lock.
type Dir struct {
	Path string
	lock *os.File
}

// ReleaseDir returns the packager output directory inside d.
func (d *Dir) ReleaseDir() string {
	return filepath.Join(d.Path, ReleaseDirName)
}

// Acquire locks <path>.lock, then wipes and recreates path. The lock lives
// beside the directory so it survives the wipe. A second run fails fast
// instead of waiting. A non-empty path without MarkerName is left alone.
func Acquire(path string) (*Dir, error) {
	if path == "" {
		return nil, errors.New(messages.WorkdirRequired)
	}
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.WorkdirCreateFmt, filepath.Dir(path), err)
	}

	lockPath := path + ".lock"
	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.WorkdirOpenLockFmt, lockPath, err)
	}
	if err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = file.Close()
		if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN) {
			return nil, fmt.Errorf(messages.WorkdirBusyFmt, path, lockPath)
		}
		return nil, fmt.Errorf(messages.WorkdirLockFmt, lockPath, err)
	}

	d := &Dir{Path: path, lock: file}
	if err := checkOwned(path); err != nil {
		_ = d.Release()
		return nil, err
	}
	if err := removeAll(path); err != nil {
		_ = d.Release()
		return nil, fmt.Errorf(messages.WorkdirResetFmt, path, err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		_ = d.Release()
		return nil, fmt.Errorf(messages.WorkdirCreateFmt, path, err)
	}
	marker := filepath.Join(path, MarkerName)
	if err := os.WriteFile(marker, nil, 0o644); err != nil {
		_ = d.Release()
		return nil, fmt.Errorf(messages.WorkdirMarkerFmt, path, err)
	}
	return d, nil
}

// checkOwned allows wiping path only when it is missing, empty, or carries
// the marker from an earlier Acquire.
func checkOwned(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(messages.WorkdirResetFmt, path, err)
	}
	if len(entries) == 0 {
		return nil
	}
	if info, err := os.Lstat(filepath.Join(path, MarkerName)); err == nil && info.Mode().IsRegular() {
		return nil
	}
	return fmt.Errorf(messages.WorkdirNotOwnedFmt, path, MarkerName)
}

// Guard rejects a working directory whose wipe could reach user data: the
// filesystem root, the home directory, the project or the install root, any
// ancestor of those, and anything inside the project or the install root.
// Empty protected paths are skipped.
func Guard(path string, projectDir string, installRoot string) error {
	if path == "" {
		return errors.New(messages.WorkdirRequired)
	}
	work, err := canonical(path)
	if err != nil {
		return fmt.Errorf(messages.WorkdirResolveFmt, path, err)
	}

	protected := []string{string(filepath.Separator)}
	if home, err := homeDir(); err == nil && home != "" {
		protected = append(protected, home)
	}
	protected = append(protected, projectDir, installRoot)
	for _, prot := range protected {
		if prot == "" {
			continue
		}
		resolved, err := canonical(prot)
		if err != nil {
			return fmt.Errorf(messages.WorkdirResolveFmt, prot, err)
		}
		if within(resolved, work) {
			return fmt.Errorf(messages.WorkdirOverlapsFmt, path, prot)
		}
	}

	for _, owner := range []string{projectDir, installRoot} {
		if owner == "" {
			continue
		}
		resolved, err := canonical(owner)
		if err != nil {
			return fmt.Errorf(messages.WorkdirResolveFmt, owner, err)
		}
		if within(work, resolved) {
			return fmt.Errorf(messages.WorkdirInsideFmt, path, owner)
		}
	}
	return nil
}

// canonical returns the absolute, symlink-free form of path. A missing final
// element is resolved through its parent.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	parent, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return abs, nil
	}
	return filepath.Join(parent, filepath.Base(abs)), nil
}

// within reports whether child is parent or lies below it.
func within(child string, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Release unlocks the directory. The contents are left for inspection and
// are wiped by the next run.
func (d *Dir) Release() error {
	if d == nil || d.lock == nil {
		return nil
	}
	file := d.lock
	d.lock = nil
	if err := flockFn(int(file.Fd()), unix.LOCK_UN); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Busy reports whether another run holds the lock for path. It neither
// creates nor wipes path.
func Busy(path string) (bool, error) {
	if path == "" {
		return false, errors.New(messages.WorkdirRequired)
	}
	lockPath := filepath.Clean(path) + ".lock"
	file, err := os.OpenFile(lockPath, os.O_RDWR, 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.WorkdirOpenLockFmt, lockPath, err)
	}
	defer func() { _ = file.Close() }()
	if err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN) {
			return true, nil
		}
		return false, fmt.Errorf(messages.WorkdirLockFmt, lockPath, err)
	}
	_ = flockFn(int(file.Fd()), unix.LOCK_UN)
	return false, nil
}
