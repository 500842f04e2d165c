package fetch

import (
	"fmt"

	"github.com/conn-castle/wowpub/internal/messages"
)

// IntegrityError reports a downloaded file whose digest does not match the pin.
type IntegrityError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf(messages.FetchChecksumMismatchFmt, e.Path, e.Expected, e.Actual)
}

// NetworkError reports a failed download. Downloads are never retried.
type NetworkError struct {
	URL     string
	Status  string
	Timeout bool
	Err     error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf(messages.FetchDownloadTimeoutFmt, e.URL)
	case e.Status != "":
		return fmt.Sprintf(messages.FetchUnexpectedStatusFmt, e.URL, e.Status)
	default:
		return fmt.Sprintf(messages.FetchDownloadFailedFmt, e.URL, e.Err)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
