// Package upload implements the file upload pipeline: read the whole file,
// base64-encode it, and POST a JSON envelope to the files service while
// reporting two-phase progress (local read 0–30, network transfer 35–100).
//
// The whole file is held in memory and the envelope carries a ~33% base64
// overhead, which is acceptable for small-to-medium files only. There is
// no chunking, no resume and no retry; any interruption restarts the
// upload from zero and the caller decides whether to try again.
package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/homeboard/internal/client/models"
	"github.com/dmitrijs2005/homeboard/internal/common"
)

// Input describes the file to upload. Size may be zero when unknown; the
// read phase then jumps straight to its ceiling once the read completes.
type Input struct {
	Name   string
	Reader io.Reader
	Size   int64
	MIME   string
}

// Pipeline posts upload envelopes to the files service.
type Pipeline struct {
	client   *http.Client
	endpoint string
}

func NewPipeline(client *http.Client, endpoint string) *Pipeline {
	if client == nil {
		client = http.DefaultClient
	}
	return &Pipeline{client: client, endpoint: endpoint}
}

// envelope is the JSON body of the create-file request. The MIME type is
// sent under both file_type and mime_type for backward compatibility with
// the older schema.
type envelope struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	FileType string `json:"file_type"`
	MimeType string `json:"mime_type"`
}

// Upload runs the pipeline and returns the created record. onProgress may
// be nil. Progress values are monotonically non-decreasing and the final
// reported value is exactly 100 on success.
func (p *Pipeline) Upload(ctx context.Context, in Input, token string, onProgress ProgressFunc) (*models.FileRecord, error) {
	if token == "" {
		return nil, common.ErrUnauthenticated
	}
	if in.Name == "" {
		return nil, common.ErrNameRequired
	}

	rep := &progressReporter{fn: onProgress}
	rep.report(0)

	raw, err := readAll(in, rep)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	rep.report(readPhaseCeil)

	mimeType := ResolveMIME(in.Name, in.MIME)
	body, err := json.Marshal(envelope{
		Filename: in.Name,
		Content:  base64.StdEncoding.EncodeToString(raw),
		FileType: mimeType,
		MimeType: mimeType,
	})
	if err != nil {
		return nil, err
	}

	rep.report(sendPhaseFloor)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, &countingReader{
		r:     bytes.NewReader(body),
		total: int64(len(body)),
		rep:   rep,
	})
	if err != nil {
		return nil, err
	}
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.AuthTokenHeaderName, token)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upload failed: %s", serverMessage(resp.Body, resp.StatusCode))
	}

	var record models.FileRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("upload failed: invalid response: %w", err)
	}

	rep.report(100)
	return &record, nil
}

// readAll consumes the input, reporting read progress proportional to
// bytes seen so far, bounded to never exceed the read-phase ceiling.
func readAll(in Input, rep *progressReporter) ([]byte, error) {
	var buf bytes.Buffer
	if in.Size > 0 {
		buf.Grow(int(in.Size))
	}

	chunk := make([]byte, 32*1024)
	var read int64
	for {
		n, err := in.Reader.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			read += int64(n)
			if in.Size > 0 {
				pct := int(int64(readPhaseCeil) * read / in.Size)
				if pct > readPhaseCeil {
					pct = readPhaseCeil
				}
				rep.report(pct)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// countingReader reports network-phase progress as the request body is
// consumed by the transport. It stops short of 100; the pipeline reports
// the final value only after a success status.
type countingReader struct {
	r     *bytes.Reader
	total int64
	sent  int64
	rep   *progressReporter
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.sent += int64(n)
		pct := sendPhaseFloor + int(int64(100-sendPhaseFloor)*c.sent/c.total)
		if pct > 99 {
			pct = 99
		}
		c.rep.report(pct)
	}
	return n, err
}

func serverMessage(r io.Reader, status int) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("http status %d", status)
}
