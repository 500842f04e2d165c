package target

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/conn-castle/wowpub/internal/messages"
)

// Destination is an installed AddOns directory for one key.
type Destination struct {
	Key  Key
	Path string
}

// osStat is a seam for tests.
var osStat = os.Stat

// AddOnsDir returns <root>/_<key>_/Interface/AddOns.
func AddOnsDir(root string, k Key) string {
	return filepath.Join(root, "_"+string(k)+"_", "Interface", "AddOns")
}

// Resolve keeps the keys whose AddOns directory exists under root, sorted by key.
// Missing variants are skipped; nothing is created.
func Resolve(root string, keys KeySet) ([]Destination, error) {
	out := []Destination{}
	for _, k := range keys.Sorted() {
		path := AddOnsDir(root, k)
		info, err := osStat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
				continue
			}
			return nil, fmt.Errorf(messages.TargetCheckPathFmt, path, err)
		}
		if !info.IsDir() {
			continue
		}
		out = append(out, Destination{Key: k, Path: path})
	}
	return out, nil
}
