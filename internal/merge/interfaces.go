package merge

import (
	"context"
	"io"

	"github.com/ytget/video-merger/internal/model"
)

// Request is everything sent to the merge endpoint
type Request struct {
	VideoA     *model.VideoSelection
	VideoB     *model.VideoSelection
	Resolution string
}

// Merger defines the interface for the merge service.
type Merger interface {
	// Merge sends the request and returns the merged file body.
	// The caller must close the returned reader.
	Merge(ctx context.Context, req Request) (io.ReadCloser, error)
}
