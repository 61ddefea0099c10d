package httpclient

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// ReadBody reads and closes resp.Body, up to 1 MB.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}

// DecodeMessage extracts a human-readable message from an error body of the
// form {"message": "..."} or {"message": ["...", ...]}. For a list the first
// non-empty entry wins. It returns "" when no message is present.
func DecodeMessage(body []byte) string {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(envelope.Message, &single); err == nil {
		return strings.TrimSpace(single)
	}

	var list []string
	if err := json.Unmarshal(envelope.Message, &list); err == nil {
		for _, m := range list {
			if m = strings.TrimSpace(m); m != "" {
				return m
			}
		}
	}
	return ""
}

// IsSuccess returns true for 2xx status codes.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
