package httpclient

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string message", `{"message":"Invalid credentials"}`, "Invalid credentials"},
		{"array message takes first", `{"message":["Email already exists","Too short"]}`, "Email already exists"},
		{"array skips blanks", `{"message":["","  ","Second"]}`, "Second"},
		{"empty array", `{"message":[]}`, ""},
		{"missing field", `{"error":"nope"}`, ""},
		{"numeric message", `{"message":42}`, ""},
		{"not json", `<html>Bad Gateway</html>`, ""},
		{"empty body", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeMessage([]byte(tt.body)))
		})
	}
}

func TestReadBody_ClosesBody(t *testing.T) {
	rc := &trackingCloser{Reader: strings.NewReader("payload")}
	body, err := ReadBody(&http.Response{Body: rc})
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))
	assert.True(t, rc.closed)
}

type trackingCloser struct {
	io.Reader
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

func TestStatusClasses(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.False(t, IsSuccess(400))
	assert.True(t, IsSuccess(201))
	assert.False(t, IsSuccess(302))
}
