package resource

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/accredipro/institute/core"
)

// Description is what a client needs to render a widget.
type Description struct {
	Info
	Defaults Widget      `json:"defaults"`
	Options  interface{} `json:"options,omitempty"`
}

type Service struct {
	repo     StateRepository
	logger   core.Logger
	validate *validator.Validate
	debounce time.Duration
	now      func() time.Time
}

func NewService(repo StateRepository, logger core.Logger, validate *validator.Validate, conf *core.Config) *Service {
	debounce := DefaultSaveDebounce
	if conf != nil && conf.Resource.SaveDebounce > 0 {
		debounce = conf.Resource.SaveDebounce
	}
	return &Service{
		repo:     repo,
		logger:   logger,
		validate: validate,
		debounce: debounce,
		now:      time.Now,
	}
}

func (svc *Service) Describe(k Kind) (Description, error) {
	w, err := Defaults(k)
	if err != nil {
		return Description{}, err
	}
	d := Description{
		Info:     Info{Type: k, Title: k.Title(), SchemaVersion: k.SchemaVersion()},
		Defaults: w,
	}
	if o, ok := w.(optioner); ok {
		d.Options = o.Options()
	}
	return d, nil
}

// Decode spreads body over the widget defaults.
func (svc *Service) Decode(k Kind, body []byte) (Widget, error) {
	w, err := Defaults(k)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return w, nil
	}
	w, err = overlay(k, w, body)
	if err != nil {
		return nil, core.NewValidationError(errors.New("invalid " + k.Key() + " data"))
	}
	return w, nil
}

// Validate checks the widget's field rules.
func (svc *Service) Validate(w Widget) error {
	if svc.validate == nil {
		return nil
	}
	return svc.validate.Struct(w)
}

func (svc *Service) decodeValid(k Kind, body []byte) (Widget, error) {
	w, err := svc.Decode(k, body)
	if err != nil {
		return nil, err
	}
	if err = svc.Validate(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Evaluate decodes and validates body then scores it.
func (svc *Service) Evaluate(k Kind, body []byte) (Evaluation, error) {
	w, err := svc.decodeValid(k, body)
	if err != nil {
		return nil, err
	}
	return w.Evaluate(), nil
}

// Report evaluates body and returns its printable report.
func (svc *Service) Report(k Kind, body []byte) (Report, error) {
	ev, err := svc.Evaluate(k, body)
	if err != nil {
		return Report{}, err
	}
	r := ev.Report()
	r.GeneratedAt = svc.now().UTC()
	if r.Reference, err = NewReference(); err != nil {
		return Report{}, errors.Wrap(err, "generating report reference")
	}
	return r, nil
}

// LoadState returns the owner's widget: defaults, then initial, then any saved state.
func (svc *Service) LoadState(ctx context.Context, ownerID string, k Kind, initial []byte) (Widget, *Envelope, error) {
	if _, err := Defaults(k); err != nil {
		return nil, nil, err
	}
	var stored *Envelope
	env, err := svc.repo.GetState(ctx, ownerID, k)
	switch {
	case err == nil:
		stored = &env
	case errors.Cause(err) == ErrStateNotFound:
	default:
		svc.logger.Error(fmt.Sprintf("resource: reading %s state", k), err)
	}
	w, err := Load(k, initial, stored, svc.logger)
	return w, stored, err
}

// SaveState validates and stores data for the owner. A zero savedAt is stamped with the current time.
// saved is false when a newer state was already stored.
func (svc *Service) SaveState(ctx context.Context, ownerID string, k Kind, data []byte, savedAt time.Time, clientID string) (env Envelope, saved bool, err error) {
	w, err := svc.decodeValid(k, data)
	if err != nil {
		return Envelope{}, false, err
	}
	if savedAt.IsZero() {
		savedAt = svc.now()
	}
	if env, err = NewEnvelope(w, savedAt, clientID); err != nil {
		return Envelope{}, false, err
	}
	if saved, err = svc.repo.SaveState(ctx, ownerID, env); err != nil {
		return Envelope{}, false, errors.Wrap(err, "saving widget state")
	}
	return env, saved, nil
}

func (svc *Service) DeleteState(ctx context.Context, ownerID string, k Kind) error {
	if _, err := Defaults(k); err != nil {
		return err
	}
	return svc.repo.DeleteState(ctx, ownerID, k)
}

// PurgeExpired removes states not saved within retention. A non-positive retention keeps everything.
func (svc *Service) PurgeExpired(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, nil
	}
	n, err := svc.repo.PurgeStates(ctx, svc.now().Add(-retention))
	if err != nil {
		return 0, errors.Wrap(err, "purging widget states")
	}
	return n, nil
}

// OpenSession starts a live session over the owner's saved widget state.
func (svc *Service) OpenSession(ctx context.Context, ownerID string, k Kind, opts SessionOptions) (*Session, error) {
	w, stored, err := svc.LoadState(ctx, ownerID, k, opts.Initial)
	if err != nil {
		return nil, err
	}
	if opts.Debounce <= 0 {
		opts.Debounce = svc.debounce
	}
	s := newSession(ownerID, k, w, svc.repo, svc.logger, opts, svc.now)
	if stored != nil {
		s.lastSaved = stored.SavedAt
	}
	return s, nil
}
