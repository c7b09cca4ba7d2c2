package inmemdb

import (
	"context"
	"sync"
	"time"

	"github.com/accredipro/institute/core/resource"
)

type stateKey struct {
	owner string
	kind  resource.Kind
}

type widgetStateRepository struct {
	mutex sync.RWMutex
	table map[stateKey]resource.Envelope
}

var _ resource.StateRepository = (*widgetStateRepository)(nil)

// NewWidgetStateRepository keeps widget states in memory. Contents are lost on restart.
func NewWidgetStateRepository() resource.StateRepository {
	return &widgetStateRepository{table: make(map[stateKey]resource.Envelope)}
}

func (repo *widgetStateRepository) GetState(_ context.Context, ownerID string, kind resource.Kind) (resource.Envelope, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()
	env, ok := repo.table[stateKey{ownerID, kind}]
	if !ok {
		return resource.Envelope{}, resource.ErrStateNotFound
	}
	return copyEnvelope(env), nil
}

func (repo *widgetStateRepository) SaveState(_ context.Context, ownerID string, env resource.Envelope) (bool, error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()
	key := stateKey{ownerID, env.Kind}
	if cur, ok := repo.table[key]; ok && !env.Supersedes(cur) {
		return false, nil
	}
	repo.table[key] = copyEnvelope(env)
	return true, nil
}

func (repo *widgetStateRepository) DeleteState(_ context.Context, ownerID string, kind resource.Kind) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()
	key := stateKey{ownerID, kind}
	if _, ok := repo.table[key]; !ok {
		return resource.ErrStateNotFound
	}
	delete(repo.table, key)
	return nil
}

func (repo *widgetStateRepository) PurgeStates(_ context.Context, olderThan time.Time) (int, error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()
	var n int
	for key, env := range repo.table {
		if env.SavedAt.Before(olderThan) {
			delete(repo.table, key)
			n++
		}
	}
	return n, nil
}

func copyEnvelope(env resource.Envelope) resource.Envelope {
	env.Data = append([]byte(nil), env.Data...)
	return env
}
