package merge

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-merger/internal/model"
)

func writeVideo(t *testing.T, name, content string) *model.VideoSelection {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	sel, err := model.SelectionFromPath(path)
	require.NoError(t, err)
	return sel
}

func TestNewClient_DefaultEndpoint(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultEndpoint, c.Endpoint())
	assert.Zero(t, c.httpClient.Timeout)
}

func TestClient_Merge_SendsMultipart(t *testing.T) {
	var (
		gotA, gotB, gotRes string
		gotNameA           string
		fieldOrder         []string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/videos/merge", r.URL.Path)

		mr, err := r.MultipartReader()
		if !assert.NoError(t, err) {
			return
		}
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if !assert.NoError(t, err) {
				return
			}
			data, _ := io.ReadAll(part)
			fieldOrder = append(fieldOrder, part.FormName())
			switch part.FormName() {
			case FieldVideoA:
				gotA = string(data)
				gotNameA = part.FileName()
			case FieldVideoB:
				gotB = string(data)
			case FieldResolution:
				gotRes = string(data)
			}
		}

		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("merged-bytes"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/api/videos/merge")
	body, err := client.Merge(context.Background(), Request{
		VideoA:     writeVideo(t, "fileA.mp4", "AAAA"),
		VideoB:     writeVideo(t, "fileB.mp4", "BBBB"),
		Resolution: "1920x1080",
	})
	require.NoError(t, err)
	defer func() { _ = body.Close() }()

	merged, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "merged-bytes", string(merged))

	assert.Equal(t, []string{FieldVideoA, FieldVideoB, FieldResolution}, fieldOrder)
	assert.Equal(t, "AAAA", gotA)
	assert.Equal(t, "fileA.mp4", gotNameA)
	assert.Equal(t, "BBBB", gotB)
	assert.Equal(t, "1920x1080", gotRes)
}

func TestClient_Merge_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		http.Error(w, "ffmpeg exited with status 1", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Merge(context.Background(), Request{
		VideoA:     writeVideo(t, "a.mp4", "A"),
		VideoB:     writeVideo(t, "b.mp4", "B"),
		Resolution: "640x480",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Equal(t, "ffmpeg exited with status 1", te.Body)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Merge_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Merge(context.Background(), Request{
		VideoA:     writeVideo(t, "a.mp4", "A"),
		VideoB:     writeVideo(t, "b.mp4", "B"),
		Resolution: "640x480",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Zero(t, te.StatusCode)
}

func TestClient_Merge_UnreadableInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
	}))
	defer srv.Close()

	broken := model.NewSelection("broken.mp4", -1, func() (io.ReadCloser, error) {
		return nil, errors.New("permission denied")
	})

	_, err := NewClient(srv.URL).Merge(context.Background(), Request{
		VideoA:     broken,
		VideoB:     writeVideo(t, "b.mp4", "B"),
		Resolution: "640x480",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Contains(t, err.Error(), "permission denied")
}

func TestClient_Merge_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).Merge(ctx, Request{
		VideoA:     writeVideo(t, "a.mp4", "A"),
		VideoB:     writeVideo(t, "b.mp4", "B"),
		Resolution: "640x480",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTransportError_Messages(t *testing.T) {
	assert.Equal(t, "server error 502", (&TransportError{StatusCode: 502}).Error())
	assert.True(t, strings.HasPrefix((&TransportError{Err: io.ErrUnexpectedEOF}).Error(), "request failed"))
	assert.Equal(t, ErrTransport.Error(), (&TransportError{}).Error())
}

func TestValidationError(t *testing.T) {
	var err error = &ValidationError{Message: "Please select both videos"}
	assert.Equal(t, "Please select both videos", err.Error())
	assert.False(t, errors.Is(err, ErrTransport))
}
