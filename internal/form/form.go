package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/ytget/video-merger/internal/merge"
	"github.com/ytget/video-merger/internal/model"
)

// SuggestedFileName is the name offered for every merged result
const SuggestedFileName = "merged-video.mp4"

// User-visible messages
const (
	MsgSelectBothVideos = "Please select both videos"
	MsgSelectResolution = "Please select a resolution"
	MsgMergeFailed      = "Video merging failed"
)

// ErrInFlight is returned by Submit while another submission is outstanding
var ErrInFlight = errors.New("a merge is already in progress")

// Presenter makes bytes available to the user as a file named name and
// returns where they ended up.
type Presenter interface {
	Present(ctx context.Context, name string, r io.Reader) (string, error)
}

// State is a snapshot of the form
type State struct {
	VideoA     *model.VideoSelection
	VideoB     *model.VideoSelection
	Resolution string
	Loading    bool
	Error      string            // "" when no error is shown
	Last       *model.Submission // most recent submission that passed validation, nil before
}

// Options tune a Form. The zero value is usable.
type Options struct {
	Catalog    *model.Catalog  // nil means model.DefaultCatalog()
	Resolution string          // initial choice, defaults to the catalog's first entry
	FileName   string          // defaults to SuggestedFileName
	Logger     *zerolog.Logger // defaults to the global logger
}

// Form is the merge form: two video slots, a resolution, and a submit action
type Form struct {
	merger    merge.Merger
	presenter Presenter
	catalog   model.Catalog
	fileName  string
	logger    zerolog.Logger

	inFlight *semaphore.Weighted

	mu       sync.Mutex
	state    State
	onUpdate func(State)
}

// New creates a form in its default state
func New(merger merge.Merger, presenter Presenter, opts Options) *Form {
	catalog := model.DefaultCatalog()
	if opts.Catalog != nil {
		catalog = *opts.Catalog
	}

	resolution := opts.Resolution
	if resolution == "" {
		resolution = catalog.Default()
	}

	fileName := opts.FileName
	if fileName == "" {
		fileName = SuggestedFileName
	}

	logger := log.With().Str("component", "merge-form").Logger()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Form{
		merger:    merger,
		presenter: presenter,
		catalog:   catalog,
		fileName:  fileName,
		logger:    logger,
		inFlight:  semaphore.NewWeighted(1),
		state:     State{Resolution: resolution},
	}
}

// SetUpdateCallback sets the function called after every state change.
// It runs on the goroutine that caused the change, outside the form's lock.
func (f *Form) SetUpdateCallback(callback func(State)) {
	f.mu.Lock()
	f.onUpdate = callback
	f.mu.Unlock()
}

// Catalog returns the resolution presets offered by this form
func (f *Form) Catalog() model.Catalog {
	return f.catalog
}

// State returns a snapshot of the current state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// SetVideoA replaces slot A and clears any shown error
func (f *Form) SetVideoA(sel *model.VideoSelection) {
	f.update(func(s *State) {
		s.VideoA = sel
		s.Error = ""
	})
}

// SetVideoB replaces slot B and clears any shown error
func (f *Form) SetVideoB(sel *model.VideoSelection) {
	f.update(func(s *State) {
		s.VideoB = sel
		s.Error = ""
	})
}

// ClearVideoA empties slot A. The error message is left as is.
func (f *Form) ClearVideoA() {
	f.update(func(s *State) { s.VideoA = nil })
}

// ClearVideoB empties slot B. The error message is left as is.
func (f *Form) ClearVideoB() {
	f.update(func(s *State) { s.VideoB = nil })
}

// SetResolution changes the resolution sent on the next submit
func (f *Form) SetResolution(resolution string) {
	f.update(func(s *State) { s.Resolution = resolution })
}

// SetError replaces the shown error message; "" hides it
func (f *Form) SetError(msg string) {
	f.update(func(s *State) { s.Error = msg })
}

// Submit validates the form, sends both videos to the merge endpoint and
// presents the result as SuggestedFileName. It blocks until the submission
// resolves; UIs call it from a goroutine.
//
// The returned error is a *merge.ValidationError, ErrInFlight, or the
// transport failure. The message for the user is always State().Error.
func (f *Form) Submit(ctx context.Context) error {
	if !f.inFlight.TryAcquire(1) {
		f.logger.Debug().Msg("submit ignored, merge already in flight")
		return ErrInFlight
	}
	defer f.inFlight.Release(1)

	f.mu.Lock()
	req := merge.Request{
		VideoA:     f.state.VideoA,
		VideoB:     f.state.VideoB,
		Resolution: f.state.Resolution,
	}
	if verr := validate(req); verr != nil {
		f.state.Error = verr.Message
		snapshot, cb := f.snapshotLocked(), f.onUpdate
		f.mu.Unlock()
		notify(cb, snapshot)
		return verr
	}

	sub := &model.Submission{
		ID:         uuid.NewString(),
		Resolution: req.Resolution,
		VideoA:     req.VideoA.GetDisplayName(),
		VideoB:     req.VideoB.GetDisplayName(),
		Status:     model.SubmissionInFlight,
		StartedAt:  time.Now(),
	}
	f.state.Loading = true
	f.state.Error = ""
	f.state.Last = sub
	snapshot, cb := f.snapshotLocked(), f.onUpdate
	f.mu.Unlock()
	notify(cb, snapshot)

	f.logger.Info().
		Str("submission", sub.ID).
		Str("resolution", sub.Resolution).
		Str("video_a", sub.VideoA).
		Str("video_b", sub.VideoB).
		Msg("merge started")

	path, err := f.send(ctx, req)

	f.mu.Lock()
	done := *sub
	done.FinishedAt = time.Now()
	if err != nil {
		done.Status = model.SubmissionFailed
		done.LastError = err.Error()
		f.state.Error = MsgMergeFailed
	} else {
		done.Status = model.SubmissionSucceeded
		done.OutputPath = path
	}
	f.state.Loading = false
	f.state.Last = &done
	snapshot, cb = f.snapshotLocked(), f.onUpdate
	f.mu.Unlock()

	if err != nil {
		f.logFailure(&done, err)
	} else {
		f.logger.Info().
			Str("submission", done.ID).
			Str("output", path).
			Str("elapsed", done.GetElapsedString()).
			Msg("merge finished")
	}

	notify(cb, snapshot)
	return err
}

// send performs the request and hands the body to the presenter
func (f *Form) send(ctx context.Context, req merge.Request) (string, error) {
	body, err := f.merger.Merge(ctx, req)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	path, err := f.presenter.Present(ctx, f.fileName, body)
	if err != nil {
		return "", &merge.TransportError{Err: fmt.Errorf("failed to save merged video: %w", err)}
	}
	return path, nil
}

func (f *Form) logFailure(sub *model.Submission, err error) {
	ev := f.logger.Error().
		Err(err).
		Str("submission", sub.ID).
		Str("resolution", sub.Resolution)

	var te *merge.TransportError
	if errors.As(err, &te) && te.StatusCode != 0 {
		ev = ev.Int("status", te.StatusCode).Str("body", te.Body)
	}
	ev.Msg(MsgMergeFailed)
}

func (f *Form) update(mutate func(*State)) {
	f.mu.Lock()
	mutate(&f.state)
	snapshot, cb := f.snapshotLocked(), f.onUpdate
	f.mu.Unlock()
	notify(cb, snapshot)
}

func (f *Form) snapshotLocked() State {
	s := f.state
	if s.Last != nil {
		last := *s.Last
		s.Last = &last
	}
	return s
}

func notify(cb func(State), s State) {
	if cb != nil {
		cb(s)
	}
}

// validate checks inputs in order; the first failure wins
func validate(req merge.Request) *merge.ValidationError {
	if req.VideoA == nil || req.VideoB == nil {
		return &merge.ValidationError{Message: MsgSelectBothVideos}
	}
	if req.Resolution == "" {
		return &merge.ValidationError{Message: MsgSelectResolution}
	}
	return nil
}
