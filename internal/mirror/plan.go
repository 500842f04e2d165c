package mirror

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/wowpub/internal/messages"
)

// Op is the kind of change a mirror would make.
type Op string

// Planned operations.
const (
	OpAdd    Op = "+"
	OpUpdate Op = "~"
	OpDelete Op = "-"
)

// maxDiffBytes bounds the files that get a text diff.
const maxDiffBytes = 1 << 20

// Change is one planned mirror operation. Path is slash-separated and
// relative to the destination parent; directories end in "/".
type Change struct {
	Op   Op
	Path string
	Diff string
}

// String renders the change as "<op> <path>".
func (c Change) String() string {
	return string(c.Op) + " " + c.Path
}

// Plan lists what mirroring src into destParent would change, without
// touching the destination. With diffs set, updated text files carry a
// unified diff of destination against source.
func Plan(src string, destParent string, diffs bool) ([]Change, error) {
	if src == "" {
		return nil, errors.New(messages.MirrorSourceRequired)
	}
	if destParent == "" {
		return nil, errors.New(messages.MirrorDestRequired)
	}
	info, err := os.Lstat(src)
	if err != nil {
		return nil, fmt.Errorf(messages.MirrorStatFmt, src, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(messages.MirrorSourceNotDir, src)
	}
	p := planner{diffs: diffs}
	name := filepath.Base(src)
	if err := p.dir(src, filepath.Join(destParent, name), name); err != nil {
		return nil, err
	}
	return p.changes, nil
}

type planner struct {
	diffs   bool
	changes []Change
}

func (p *planner) add(op Op, rel string, isDir bool) {
	if isDir {
		rel += "/"
	}
	p.changes = append(p.changes, Change{Op: op, Path: rel})
}

func (p *planner) dir(src string, dst string, rel string) error {
	dstExists := false
	info, err := os.Lstat(dst)
	switch {
	case err == nil && info.IsDir():
		dstExists = true
	case err == nil:
		p.add(OpDelete, rel, false)
		p.add(OpAdd, rel, true)
	case errors.Is(err, fs.ErrNotExist):
		p.add(OpAdd, rel, true)
	default:
		return fmt.Errorf(messages.MirrorStatFmt, dst, err)
	}

	srcEntries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf(messages.MirrorReadDirFmt, src, err)
	}
	want := make(map[string]kind, len(srcEntries))
	for _, entry := range srcEntries {
		if k := kindOf(entry.Type()); k != kindOther {
			want[entry.Name()] = k
		}
	}

	existing := map[string]kind{}
	if dstExists {
		dstEntries, err := os.ReadDir(dst)
		if err != nil {
			return fmt.Errorf(messages.MirrorReadDirFmt, dst, err)
		}
		for _, entry := range dstEntries {
			k := kindOf(entry.Type())
			if w, ok := want[entry.Name()]; ok && w == k {
				existing[entry.Name()] = k
				continue
			}
			p.add(OpDelete, path.Join(rel, entry.Name()), k == kindDir)
		}
	}

	for _, entry := range srcEntries {
		k, ok := want[entry.Name()]
		if !ok {
			continue
		}
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		childRel := path.Join(rel, entry.Name())
		_, present := existing[entry.Name()]
		switch k {
		case kindDir:
			if err := p.dir(from, to, childRel); err != nil {
				return err
			}
		case kindFile:
			if err := p.file(from, to, childRel, present); err != nil {
				return err
			}
		case kindSymlink:
			if err := p.symlink(from, to, childRel, present); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *planner) file(src string, dst string, rel string, present bool) error {
	if !present {
		p.add(OpAdd, rel, false)
		return nil
	}
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf(messages.MirrorStatFmt, src, err)
	}
	dstInfo, same := upToDate(dst, srcInfo)
	if same && dstInfo.Mode().Perm() == srcInfo.Mode().Perm() {
		return nil
	}
	change := Change{Op: OpUpdate, Path: rel}
	if p.diffs && !same {
		diff, err := textDiff(src, dst, rel)
		if err != nil {
			return err
		}
		change.Diff = diff
	}
	p.changes = append(p.changes, change)
	return nil
}

func (p *planner) symlink(src string, dst string, rel string, present bool) error {
	if !present {
		p.add(OpAdd, rel, false)
		return nil
	}
	want, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf(messages.MirrorSymlinkFmt, src, err)
	}
	got, err := os.Readlink(dst)
	if err != nil || got != want {
		p.add(OpUpdate, rel, false)
	}
	return nil
}

// textDiff returns a unified diff for small text files and "" otherwise.
func textDiff(src string, dst string, rel string) (string, error) {
	newData, err := readSmall(src)
	if err != nil || newData == nil {
		return "", err
	}
	oldData, err := readSmall(dst)
	if err != nil || oldData == nil {
		return "", err
	}
	if !isText(newData) || !isText(oldData) {
		return "", nil
	}
	return udiff.Unified("a/"+rel, "b/"+rel, string(oldData), string(newData)), nil
}

func readSmall(name string) ([]byte, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf(messages.MirrorStatFmt, name, err)
	}
	if info.Size() > maxDiffBytes {
		return nil, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf(messages.MirrorReadFileFmt, name, err)
	}
	return data, nil
}

func isText(data []byte) bool {
	return utf8.Valid(data) && !bytes.ContainsRune(data, 0)
}
