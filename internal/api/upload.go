package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

// ProgressFunc receives the number of bytes sent so far and the total
// payload size after each write.
type ProgressFunc func(sent, total int64)

// UploadService sends files as multipart form data.
type UploadService struct{ c *Client }

// File uploads the contents of r under the "file" form field. When
// onProgress is non-nil it is called as the encoded payload is written
// to the wire.
func (s UploadService) File(ctx context.Context, filename string, r io.Reader, onProgress ProgressFunc) (*Response, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, &Error{Kind: KindLocal, Err: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, &Error{Kind: KindLocal, Err: err}
	}
	if err := mw.Close(); err != nil {
		return nil, &Error{Kind: KindLocal, Err: err}
	}

	total := int64(buf.Len())
	var body io.Reader = &buf
	if onProgress != nil {
		body = &progressReader{r: &buf, total: total, onProgress: onProgress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.baseURL+"/api/upload", body)
	if err != nil {
		return nil, &Error{Kind: KindLocal, Err: err}
	}
	s.c.intercept(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.ContentLength = total

	return s.c.send(req)
}

// progressReader reports cumulative bytes read to the progress callback.
type progressReader struct {
	r          io.Reader
	sent       int64
	total      int64
	onProgress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.onProgress(p.sent, p.total)
	}
	return n, err
}
