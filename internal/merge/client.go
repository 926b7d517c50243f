package merge

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Multipart field names expected by the merge endpoint
const (
	FieldVideoA     = "videoA"
	FieldVideoB     = "videoB"
	FieldResolution = "resolution"
)

// DefaultEndpoint is the merge backend used when nothing else is configured
const DefaultEndpoint = "http://localhost:4000/api/videos/merge"

// maxErrorBody caps how much of a failed response is kept for logs
const maxErrorBody = 512

// Client posts merge requests to a single endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a merge client. No timeout is set on the underlying
// http.Client; merges of large inputs can legitimately take minutes.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

// WithHTTPClient swaps the transport, mostly for tests
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Endpoint returns the URL requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Merge streams both videos and the resolution to the endpoint and returns
// the response body on a 2xx status.
func (c *Client) Merge(ctx context.Context, req Request) (io.ReadCloser, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeParts(mw, req))
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, pr)
	if err != nil {
		_ = pr.CloseWithError(err)
		return nil, &TransportError{Err: fmt.Errorf("request creation failed: %w", err)}
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Accept", "application/octet-stream")

	resp, err := c.httpClient.Do(httpReq)
	// Unblocks the writer goroutine if the server answered without draining the body.
	_ = pr.Close()
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return resp.Body, nil
}

// writeParts encodes videoA, videoB and resolution in that order
func writeParts(mw *multipart.Writer, req Request) error {
	if err := writeFilePart(mw, FieldVideoA, req); err != nil {
		return err
	}
	if err := writeFilePart(mw, FieldVideoB, req); err != nil {
		return err
	}
	if err := mw.WriteField(FieldResolution, req.Resolution); err != nil {
		return fmt.Errorf("failed to write resolution: %w", err)
	}
	return mw.Close()
}

func writeFilePart(mw *multipart.Writer, field string, req Request) error {
	sel := req.VideoA
	if field == FieldVideoB {
		sel = req.VideoB
	}

	src, err := sel.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer func() { _ = src.Close() }()

	part, err := mw.CreateFormFile(field, sel.GetDisplayName())
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("failed to stream %s: %w", field, err)
	}
	return nil
}
