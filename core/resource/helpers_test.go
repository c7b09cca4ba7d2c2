package resource

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/accredipro/institute/core"
)

type memRepo struct {
	mu     sync.Mutex
	states map[string]Envelope
	saves  int
	err    error
}

func newMemRepo() *memRepo {
	return &memRepo{states: make(map[string]Envelope)}
}

func (r *memRepo) key(owner string, k Kind) string { return owner + "/" + k.Key() }

func (r *memRepo) GetState(_ context.Context, owner string, k Kind) (Envelope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	env, ok := r.states[r.key(owner, k)]
	if !ok {
		return Envelope{}, ErrStateNotFound
	}
	return env, nil
}

func (r *memRepo) SaveState(_ context.Context, owner string, env Envelope) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	r.saves++
	if cur, ok := r.states[r.key(owner, env.Kind)]; ok && !env.Supersedes(cur) {
		return false, nil
	}
	r.states[r.key(owner, env.Kind)] = env
	return true, nil
}

func (r *memRepo) DeleteState(_ context.Context, owner string, k Kind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.states[r.key(owner, k)]; !ok {
		return ErrStateNotFound
	}
	delete(r.states, r.key(owner, k))
	return nil
}

func (r *memRepo) PurgeStates(_ context.Context, olderThan time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int
	for key, env := range r.states {
		if env.SavedAt.Before(olderThan) {
			delete(r.states, key)
			n++
		}
	}
	return n, nil
}

func (r *memRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func newValidate() (*validator.Validate, ut.Translator) {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate, translator
}

func newTestService(repo StateRepository) *Service {
	validate, _ := newValidate()
	return NewService(repo, core.NewNopLogger(), validate, nil)
}

func f64(f float64) *float64 { return &f }
