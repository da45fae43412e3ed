package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/homeboard/internal/common"
)

func newUploadServer(t *testing.T, status int, respond any) (*httptest.Server, *envelope) {
	t.Helper()
	var got envelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "token-1", r.Header.Get(common.AuthTokenHeaderName))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(respond)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestUpload_Success_ProgressMonotonicEndsAt100(t *testing.T) {
	payload := bytes.Repeat([]byte("homeboard"), 64*1024)
	srv, got := newUploadServer(t, http.StatusCreated, map[string]any{
		"id": 7, "filename": "u_test.mp4", "original_filename": "test.mp4",
		"file_size": len(payload), "mime_type": "video/mp4", "file_url": "http://x/u_test.mp4",
	})

	p := NewPipeline(srv.Client(), srv.URL)

	var reported []int
	record, err := p.Upload(context.Background(), Input{
		Name:   "test.mp4",
		Reader: bytes.NewReader(payload),
		Size:   int64(len(payload)),
	}, "token-1", func(pct int) { reported = append(reported, pct) })

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, int64(7), record.ID)

	// envelope carries the inferred type under both field names
	assert.Equal(t, "test.mp4", got.Filename)
	assert.Equal(t, "video/mp4", got.FileType)
	assert.Equal(t, "video/mp4", got.MimeType)

	decoded, err := base64.StdEncoding.DecodeString(got.Content)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	require.NotEmpty(t, reported)
	for i := 1; i < len(reported); i++ {
		require.GreaterOrEqual(t, reported[i], reported[i-1],
			"progress must be monotonically non-decreasing")
	}
	assert.Equal(t, 100, reported[len(reported)-1])

	// read phase never exceeds its ceiling
	sawRead := false
	for _, pct := range reported {
		if pct > 0 && pct < sendPhaseFloor {
			require.LessOrEqual(t, pct, readPhaseCeil)
			sawRead = true
		}
	}
	assert.True(t, sawRead, "expected read-phase progress below the send floor")
}

func TestUpload_ServerError_SurfacesMessage(t *testing.T) {
	srv, _ := newUploadServer(t, http.StatusBadRequest, map[string]string{
		"error": "Filename and content are required",
	})

	p := NewPipeline(srv.Client(), srv.URL)
	_, err := p.Upload(context.Background(), Input{
		Name:   "x.txt",
		Reader: strings.NewReader("abc"),
		Size:   3,
	}, "token-1", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload failed")
	assert.Contains(t, err.Error(), "Filename and content are required")
}

func TestUpload_NoToken_FailsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	p := NewPipeline(srv.Client(), srv.URL)
	_, err := p.Upload(context.Background(), Input{Name: "x", Reader: strings.NewReader("a"), Size: 1}, "", nil)

	require.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.False(t, called)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestUpload_ReadError_Aborts(t *testing.T) {
	srv, _ := newUploadServer(t, http.StatusCreated, nil)

	p := NewPipeline(srv.Client(), srv.URL)
	_, err := p.Upload(context.Background(), Input{Name: "x", Reader: failingReader{}, Size: 10}, "token-1", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
