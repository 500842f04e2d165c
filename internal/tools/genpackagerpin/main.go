//go:build tools
// +build tools

// genpackagerpin downloads a packager release and prints the [packager]
// table that pins it, ready to paste into .wowpub.toml or to update the
// built-in defaults.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/wowpub/internal/config"
	"github.com/conn-castle/wowpub/internal/fetch"
)

type pinFile struct {
	Packager config.PackagerConfig `toml:"packager"`
}

func main() {
	ver := flag.String("version", "", "packager release tag (for example v2.3.1)")
	urlTemplate := flag.String("url", fetch.PackagerURLTemplate, "download URL template containing {version}")
	output := flag.String("output", "", "output path (defaults to stdout)")
	flag.Parse()

	if strings.TrimSpace(*ver) == "" {
		fatalf("--version is required")
	}
	art := fetch.Artifact{Version: strings.TrimSpace(*ver), URLTemplate: *urlTemplate}

	dir, err := os.MkdirTemp("", "genpackagerpin-")
	if err != nil {
		fatalf("create temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, fetch.PackagerFileName)
	if err := download(art.URL(), path); err != nil {
		fatalf("download %s: %v", art.URL(), err)
	}
	digest, err := fetch.Digest(path)
	if err != nil {
		fatalf("hash %s: %v", path, err)
	}

	data, err := toml.Marshal(pinFile{Packager: config.PackagerConfig{
		Version: art.Version,
		SHA256:  digest,
		URL:     art.URLTemplate,
	}})
	if err != nil {
		fatalf("encode pin: %v", err)
	}
	if *output == "" {
		_, _ = os.Stdout.Write(data)
		return
	}
	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		fatalf("mkdir output dir: %v", err)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fatalf("write %s: %v", *output, err)
	}
}

func download(url string, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
