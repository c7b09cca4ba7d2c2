package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/accredipro/institute/core"
)

// ErrStateNotFound is returned when no state was saved for an owner and kind.
var ErrStateNotFound = errors.New("widget state not found")

// Envelope is the persisted form of a widget's data, versioned by schema and stamped with its save time.
type Envelope struct {
	Kind          Kind            `json:"type"`
	SchemaVersion int             `json:"schemaVersion"`
	SavedAt       time.Time       `json:"savedAt"`
	ClientID      string          `json:"clientId,omitempty"`
	Data          json.RawMessage `json:"data"`
}

// NewEnvelope serialises the full widget state.
func NewEnvelope(w Widget, savedAt time.Time, clientID string) (Envelope, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return Envelope{}, errors.Wrap(err, "marshalling widget state")
	}
	return Envelope{
		Kind:          w.Kind(),
		SchemaVersion: w.Kind().SchemaVersion(),
		SavedAt:       savedAt.UTC().Truncate(time.Microsecond),
		ClientID:      clientID,
		Data:          data,
	}, nil
}

// Supersedes reports whether e wins over other under last-write-wins. Ties go to e.
func (e Envelope) Supersedes(other Envelope) bool {
	return !e.SavedAt.Before(other.SavedAt)
}

// StateRepository persists one envelope per owner and kind.
type StateRepository interface {
	GetState(ctx context.Context, ownerID string, kind Kind) (Envelope, error)
	// SaveState stores env unless a newer envelope is already stored; saved reports which happened.
	SaveState(ctx context.Context, ownerID string, env Envelope) (saved bool, err error)
	DeleteState(ctx context.Context, ownerID string, kind Kind) error
	// PurgeStates removes every envelope saved before olderThan.
	PurgeStates(ctx context.Context, olderThan time.Time) (int, error)
}

// stateMigrations upgrades stored data one schema version at a time: kind -> from version -> upgrade.
var stateMigrations = map[Kind]map[int]func(json.RawMessage) (json.RawMessage, error){}

func migrateData(k Kind, from int, data json.RawMessage) (json.RawMessage, error) {
	target := k.SchemaVersion()
	for v := from; v < target; v++ {
		up, ok := stateMigrations[k][v]
		if !ok {
			return nil, fmt.Errorf("no migration for %s from schema version %d", k, v)
		}
		var err error
		if data, err = up(data); err != nil {
			return nil, errors.Wrapf(err, "migrating %s from schema version %d", k, v)
		}
	}
	return data, nil
}

// overlay returns a copy of base with the JSON object layer spread over it.
// Top-level fields present in layer replace the base value whole, so a map or list in layer is
// never merged with the base one. Fields absent from layer keep their value; base is left untouched.
func overlay(k Kind, base Widget, layer []byte) (Widget, error) {
	cur, err := json.Marshal(base)
	if err != nil {
		return base, errors.Wrap(err, "marshalling widget")
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(cur, &fields); err != nil {
		return base, errors.Wrap(err, "copying widget")
	}
	var top map[string]json.RawMessage
	if err = json.Unmarshal(layer, &top); err != nil {
		return base, errors.Wrap(err, "decoding widget data")
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage, len(top))
	}
	for key, v := range top {
		fields[key] = v
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return base, errors.Wrap(err, "merging widget data")
	}

	next, err := Defaults(k)
	if err != nil {
		return base, err
	}
	if err = json.Unmarshal(merged, next); err != nil {
		return base, errors.Wrap(err, "decoding widget data")
	}
	return next, nil
}

// Load builds a widget from its defaults, then initial data, then the stored envelope.
// A layer that cannot be decoded, or a stored envelope of another schema version that cannot be
// migrated, is logged and skipped so the previous layers are kept.
func Load(k Kind, initial []byte, stored *Envelope, logger core.Logger) (Widget, error) {
	w, err := Defaults(k)
	if err != nil {
		return nil, err
	}

	if len(initial) > 0 {
		if next, err := overlay(k, w, initial); err != nil {
			logger.Warn(fmt.Sprintf("resource: ignoring initial data for %s", k), err)
		} else {
			w = next
		}
	}

	if stored == nil || len(stored.Data) == 0 {
		return w, nil
	}
	if stored.Kind != k {
		logger.Warn(fmt.Sprintf("resource: discarding stored %s state loaded as %s", stored.Kind, k))
		return w, nil
	}

	data := stored.Data
	switch v := stored.SchemaVersion; {
	case v == k.SchemaVersion():
	case v < k.SchemaVersion():
		if data, err = migrateData(k, v, data); err != nil {
			logger.Warn(fmt.Sprintf("resource: discarding stored %s state", k), err)
			return w, nil
		}
	default:
		logger.Warn(fmt.Sprintf("resource: discarding stored %s state with unknown schema version %d", k, v))
		return w, nil
	}

	if next, err := overlay(k, w, data); err != nil {
		logger.Warn(fmt.Sprintf("resource: discarding unreadable stored %s state", k), err)
	} else {
		w = next
	}
	return w, nil
}
