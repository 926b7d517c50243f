package form

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-merger/internal/merge"
	"github.com/ytget/video-merger/internal/model"
)

// mergeServer records every multipart request it receives
type mergeServer struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest

	status int
	body   []byte
}

type recordedRequest struct {
	files      map[string]string // field -> content
	fileNames  map[string]string // field -> filename
	resolution string
}

func newMergeServer(t *testing.T, status int, body []byte) *mergeServer {
	t.Helper()
	m := &mergeServer{t: t, status: status, body: body}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)
	return m
}

func (m *mergeServer) handle(w http.ResponseWriter, r *http.Request) {
	rec := recordedRequest{files: map[string]string{}, fileNames: map[string]string{}}

	if assert.NoError(m.t, r.ParseMultipartForm(32<<20)) {
		rec.resolution = r.FormValue(merge.FieldResolution)
		for field, headers := range r.MultipartForm.File {
			f, err := headers[0].Open()
			if !assert.NoError(m.t, err) {
				continue
			}
			data, _ := io.ReadAll(f)
			_ = f.Close()
			rec.files[field] = string(data)
			rec.fileNames[field] = headers[0].Filename
		}
	}

	m.mu.Lock()
	m.requests = append(m.requests, rec)
	m.mu.Unlock()

	w.WriteHeader(m.status)
	_, _ = w.Write(m.body)
}

func (m *mergeServer) URL() string {
	return m.server.URL + "/api/videos/merge"
}

func (m *mergeServer) Requests() []recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]recordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// recordingPresenter captures presented files instead of writing them
type recordingPresenter struct {
	mu    sync.Mutex
	names []string
	data  [][]byte
	err   error
}

func (p *recordingPresenter) Present(_ context.Context, name string, r io.Reader) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.names = append(p.names, name)
	p.data = append(p.data, data)
	return "/downloads/" + name, nil
}

func (p *recordingPresenter) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.names)
}

func videoFile(t *testing.T, name, content string) *model.VideoSelection {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	sel, err := model.SelectionFromPath(path)
	require.NoError(t, err)
	return sel
}

func quietLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func newTestForm(t *testing.T, srv *mergeServer, p Presenter) *Form {
	t.Helper()
	return New(merge.NewClient(srv.URL()), p, Options{Logger: quietLogger()})
}
