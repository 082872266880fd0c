// package api contains the code required to locate and request model files from a hub
// that serves them with the "{model}/resolve/{revision}/{file}" layout (huggingface.co).
package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultHost     = "https://huggingface.co"
	DefaultModelID  = "distil-whisper/distil-large-v3.5-ONNX"
	DefaultRevision = "main"
)

var ErrUnexpectedStatus = errors.New("unexpected status in response")

// StatusError is returned by GetFile when the hub answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (se *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s (url=%s)", ErrUnexpectedStatus, se.StatusCode, http.StatusText(se.StatusCode), se.URL)
}

func (se *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// NewRepoURL returns the base URL that every file of the model is resolved against.
func NewRepoURL(host, modelID, revision string) (*url.URL, error) {
	modelID = strings.Trim(modelID, "/")
	if modelID == "" {
		return nil, errors.New("model id can not be empty")
	}
	if revision == "" {
		revision = DefaultRevision
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid host(host=%s)", err, host)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("host must be an absolute url(host=%s)", host)
	}

	return u.JoinPath(modelID, "resolve", revision), nil
}

// IsSuccess reports whether the status code is in the 2xx range.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}
