package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/conn-castle/wowpub/internal/messages"
)

// EnvMaxDownloadBytes overrides the download size cap.
const EnvMaxDownloadBytes = "WOWPUB_MAX_DOWNLOAD_BYTES"

const (
	defaultMaxDownloadBytes = int64(100 * 1024 * 1024) // 100 MiB
	hashChunkSize           = 4096
	execBit                 = fs.FileMode(0o100)
)

var (
	httpClient = &http.Client{Timeout: 30 * time.Second}
	osChmod    = os.Chmod
	osStat     = os.Stat
	osOpenFile = os.OpenFile
)

// Fetch downloads art into destDir, verifies its digest and marks it executable.
// Progress lines are written to progressOut.
func Fetch(ctx context.Context, art Artifact, destDir string, progressOut io.Writer) (string, error) {
	return FetchWithSystem(ctx, RealSystem{}, art, destDir, progressOut)
}

// FetchWithSystem is Fetch with an explicit System.
// On a digest mismatch the file stays in destDir without the executable bit.
func FetchWithSystem(ctx context.Context, sys System, art Artifact, destDir string, progressOut io.Writer) (string, error) {
	if sys == nil {
		return "", errors.New(messages.FetchSystemRequired)
	}
	if strings.TrimSpace(art.Version) == "" {
		return "", errors.New(messages.FetchVersionRequired)
	}
	if strings.TrimSpace(art.SHA256) == "" {
		return "", errors.New(messages.FetchDigestRequired)
	}
	if strings.TrimSpace(art.URLTemplate) == "" {
		return "", errors.New(messages.FetchURLTemplateMissing)
	}
	if destDir == "" {
		return "", errors.New(messages.FetchDestDirRequired)
	}
	if progressOut == nil {
		progressOut = io.Discard
	}

	path := filepath.Join(destDir, PackagerFileName)
	out, err := osOpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf(messages.FetchCreateFileFmt, path, err)
	}

	_, _ = fmt.Fprintf(progressOut, messages.FetchDownloadingFmt, art.Version)
	if err := download(ctx, art.URL(), out, maxDownloadBytes(sys, progressOut)); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf(messages.FetchCloseFileFmt, path, err)
	}

	if err := verifyChecksum(path, art.SHA256); err != nil {
		return "", err
	}
	if err := markExecutable(path); err != nil {
		return "", err
	}
	_, _ = fmt.Fprintf(progressOut, messages.FetchDownloadedFmt, art.Version)
	return path, nil
}

// download streams url into dest. A failure of any kind is final.
func download(ctx context.Context, url string, dest io.Writer, maxBytes int64) error {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Timeout: isTimeoutError(err), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{URL: url, Status: resp.Status}
	}

	n, err := io.Copy(dest, io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return &NetworkError{URL: url, Timeout: isTimeoutError(err), Err: err}
	}
	if n > maxBytes {
		return &NetworkError{URL: url, Err: fmt.Errorf(messages.FetchDownloadTooLargeFmt, url, n, maxBytes)}
	}
	return nil
}

// isTimeoutError reports whether err is a network timeout.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

func maxDownloadBytes(sys System, warnOut io.Writer) int64 {
	raw := strings.TrimSpace(sys.Getenv(EnvMaxDownloadBytes))
	if raw == "" {
		return defaultMaxDownloadBytes
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		_, _ = fmt.Fprintf(warnOut, messages.FetchInvalidMaxDownloadWarn, EnvMaxDownloadBytes, raw)
		return defaultMaxDownloadBytes
	}
	return v
}

// Digest returns the lower-case hex SHA-256 of path, read in fixed-size chunks.
func Digest(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf(messages.FetchOpenFileFmt, path, err)
	}
	defer func() { _ = file.Close() }()

	hasher := sha256.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(hasher, struct{ io.Reader }{file}, buf); err != nil {
		return "", fmt.Errorf(messages.FetchHashFileFmt, path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// verifyChecksum compares the digest of path with expected.
func verifyChecksum(path string, expected string) error {
	actual, err := Digest(path)
	if err != nil {
		return err
	}
	want := strings.ToLower(strings.TrimSpace(expected))
	if actual != want {
		return &IntegrityError{Path: path, Expected: want, Actual: actual}
	}
	return nil
}

// markExecutable adds the owner execute bit, keeping the other permission bits.
func markExecutable(path string) error {
	info, err := osStat(path)
	if err != nil {
		return fmt.Errorf(messages.FetchStatFileFmt, path, err)
	}
	if err := osChmod(path, info.Mode()|execBit); err != nil {
		return fmt.Errorf(messages.FetchChmodFmt, path, err)
	}
	return nil
}
