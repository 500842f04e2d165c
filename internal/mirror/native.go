package mirror

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/wowpub/internal/messages"
)

// Native mirrors in-process. Regular files, directories and symlinks are
// handled; other file types in the source are skipped. Files whose size
// and modification time already match are left alone.
type Native struct{}

type kind int

const (
	kindOther kind = iota
	kindDir
	kindFile
	kindSymlink
)

func kindOf(mode fs.FileMode) kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return kindSymlink
	case mode.IsDir():
		return kindDir
	case mode.IsRegular():
		return kindFile
	default:
		return kindOther
	}
}

// Mirror makes destParent/<base(src)> an exact copy of src.
func (Native) Mirror(ctx context.Context, src string, destParent string) error {
	if src == "" {
		return errors.New(messages.MirrorSourceRequired)
	}
	if destParent == "" {
		return errors.New(messages.MirrorDestRequired)
	}
	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf(messages.MirrorStatFmt, src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.MirrorSourceNotDir, src)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return mirrorDir(ctx, src, filepath.Join(destParent, filepath.Base(src)), info)
}

func mirrorDir(ctx context.Context, src string, dst string, srcInfo fs.FileInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ensureDir(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	srcEntries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf(messages.MirrorReadDirFmt, src, err)
	}
	dstEntries, err := os.ReadDir(dst)
	if err != nil {
		return fmt.Errorf(messages.MirrorReadDirFmt, dst, err)
	}

	want := make(map[string]kind, len(srcEntries))
	infos := make(map[string]fs.FileInfo, len(srcEntries))
	for _, entry := range srcEntries {
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf(messages.MirrorStatFmt, filepath.Join(src, entry.Name()), err)
		}
		if k := kindOf(info.Mode()); k != kindOther {
			want[entry.Name()] = k
			infos[entry.Name()] = info
		}
	}

	for _, entry := range dstEntries {
		k, ok := want[entry.Name()]
		if ok && k == kindOf(entry.Type()) {
			continue
		}
		path := filepath.Join(dst, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf(messages.MirrorRemoveFmt, path, err)
		}
	}

	for _, entry := range srcEntries {
		info, ok := infos[entry.Name()]
		if !ok {
			continue
		}
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		switch kindOf(info.Mode()) {
		case kindDir:
			err = mirrorDir(ctx, from, to, info)
		case kindFile:
			err = syncFile(from, to, info)
		case kindSymlink:
			err = syncSymlink(from, to)
		}
		if err != nil {
			return err
		}
	}

	if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf(messages.MirrorAttrsFmt, dst, err)
	}
	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf(messages.MirrorAttrsFmt, dst, err)
	}
	return nil
}

// ensureDir makes dst a directory that the owner can write into while it is
// being filled. Final permissions are applied after the children.
func ensureDir(dst string, perm fs.FileMode) error {
	info, err := os.Lstat(dst)
	switch {
	case err == nil && info.IsDir():
	case err == nil:
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf(messages.MirrorRemoveFmt, dst, err)
		}
		if err := os.Mkdir(dst, 0o700); err != nil {
			return fmt.Errorf(messages.MirrorMkdirFmt, dst, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(dst, 0o700); err != nil {
			return fmt.Errorf(messages.MirrorMkdirFmt, dst, err)
		}
	default:
		return fmt.Errorf(messages.MirrorStatFmt, dst, err)
	}
	if err := os.Chmod(dst, perm|0o700); err != nil {
		return fmt.Errorf(messages.MirrorAttrsFmt, dst, err)
	}
	return nil
}

// upToDate reports whether dst already matches src by size and mtime.
func upToDate(dst string, srcInfo fs.FileInfo) (fs.FileInfo, bool) {
	info, err := os.Lstat(dst)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	return info, info.Size() == srcInfo.Size() && info.ModTime().Equal(srcInfo.ModTime())
}

func syncFile(src string, dst string, srcInfo fs.FileInfo) error {
	perm := srcInfo.Mode().Perm()
	if info, ok := upToDate(dst, srcInfo); ok {
		if info.Mode().Perm() == perm {
			return nil
		}
		if err := os.Chmod(dst, perm); err != nil {
			return fmt.Errorf(messages.MirrorAttrsFmt, dst, err)
		}
		return nil
	}
	if err := copyFile(src, dst, perm); err != nil {
		return fmt.Errorf(messages.MirrorCopyFmt, src, dst, err)
	}
	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf(messages.MirrorAttrsFmt, dst, err)
	}
	return nil
}

// copyFile writes src to a temp file next to dst and renames it into place.
func copyFile(src string, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return err
	}
	committed = true
	return nil
}

func syncSymlink(src string, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf(messages.MirrorSymlinkFmt, src, err)
	}
	if existing, err := os.Readlink(dst); err == nil && existing == target {
		return nil
	}
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf(messages.MirrorRemoveFmt, dst, err)
	}
	if err := os.Symlink(target, dst); err != nil {
		return fmt.Errorf(messages.MirrorSymlinkFmt, dst, err)
	}
	return nil
}
