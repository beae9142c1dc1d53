package weather

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// FetchError reports a failed lookup: transport errors, non-2xx statuses and
// bodies that do not have the expected shape all end up here.
type FetchError struct {
	// Op is the stage that failed: "request", "status" or "decode".
	Op string
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch weather: %s (HTTP %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch weather: %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// redact strips the API key from err before it is surfaced. The appid
// parameter of any *url.Error in the chain is replaced, and as a last resort
// the key is masked in the message text.
func redact(err error, apiKey string) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if u, perr := url.Parse(uerr.URL); perr == nil {
			q := u.Query()
			if q.Has("appid") {
				q.Set("appid", "REDACTED")
				u.RawQuery = q.Encode()
			}
			uerr.URL = u.String()
		} else {
			uerr.URL = "<redacted>"
		}
	}
	if apiKey != "" && strings.Contains(err.Error(), apiKey) {
		return &redactedError{msg: strings.ReplaceAll(err.Error(), apiKey, "REDACTED"), err: err}
	}
	return err
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }
