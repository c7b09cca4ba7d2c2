package resource

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/accredipro/institute/core"
)

// DefaultSaveDebounce is how long a session waits after the last change before saving.
const DefaultSaveDebounce = time.Second

type SessionOptions struct {
	Debounce time.Duration // DefaultSaveDebounce when 0
	ClientID string
	Initial  []byte
	// OnSave, when set, is called with every envelope the session saves.
	OnSave func(Envelope)
}

// Session is one live widget instance. Mutations are serialised and saved after a quiet period;
// each new change restarts the wait so only the latest state is written.
type Session struct {
	mu        sync.Mutex
	owner     string
	kind      Kind
	widget    Widget
	repo      StateRepository
	logger    core.Logger
	opts      SessionOptions
	timer     *time.Timer
	dirty     bool
	lastSaved time.Time
	closed    bool
	now       func() time.Time
}

func newSession(owner string, k Kind, w Widget, repo StateRepository, logger core.Logger, opts SessionOptions, now func() time.Time) *Session {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultSaveDebounce
	}
	return &Session{
		owner:  owner,
		kind:   k,
		widget: w,
		repo:   repo,
		logger: logger,
		opts:   opts,
		now:    now,
	}
}

func (s *Session) Kind() Kind { return s.kind }

// View calls fn with the current widget. fn must not retain it.
func (s *Session) View(fn func(Widget)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.widget)
}

// Evaluate scores the current state.
func (s *Session) Evaluate() Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widget.Evaluate()
}

// Update applies fn to the widget and schedules a save.
func (s *Session) Update(fn func(Widget)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	fn(s.widget)
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.opts.Debounce, s.fire)
}

func (s *Session) fire() {
	// errors are already logged
	_ = s.Flush(context.Background())
}

// nextSavedAt keeps save stamps strictly increasing within the session.
func (s *Session) nextSavedAt() time.Time {
	t := s.now().UTC().Truncate(time.Microsecond)
	if !t.After(s.lastSaved) {
		t = s.lastSaved.Add(time.Microsecond)
	}
	s.lastSaved = t
	return t
}

// Flush saves pending changes now. Nothing is retried: a failed save is logged and returned.
// The session lock is released before the repository and OnSave are called, so OnSave may use the session.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.dirty || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	env, err := NewEnvelope(s.widget, s.nextSavedAt(), s.opts.ClientID)
	repo, onSave := s.repo, s.opts.OnSave
	s.mu.Unlock()

	if err != nil {
		s.logger.Error(fmt.Sprintf("resource: serialising %s state", s.kind), err)
		return err
	}
	if repo != nil {
		if _, err = repo.SaveState(ctx, s.owner, env); err != nil {
			s.logger.Error(fmt.Sprintf("resource: saving %s state", s.kind), err)
			return errors.Wrap(err, "saving widget state")
		}
	}
	if onSave != nil {
		onSave(env)
	}
	return nil
}

// Pending reports whether changes are waiting to be saved.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Clear discards the saved state and resets the widget to its defaults and initial data.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.dirty = false

	w, err := Load(s.kind, s.opts.Initial, nil, s.logger)
	if err != nil {
		return err
	}
	s.widget = w
	if s.repo == nil {
		return nil
	}
	if err = s.repo.DeleteState(ctx, s.owner, s.kind); err != nil && errors.Cause(err) != ErrStateNotFound {
		return errors.Wrap(err, "deleting widget state")
	}
	return nil
}

// Close stops the session. Changes still waiting for their save are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.closed = true
}
