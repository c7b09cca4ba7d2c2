package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/accredipro/institute/core/resource"
)

type widgetStateRow struct {
	ID            string      `db:"id"`
	OwnerID       string      `db:"owner_id"`
	Kind          string      `db:"kind"`
	SchemaVersion null.Int    `db:"schema_version"`
	ClientID      null.String `db:"client_id"`
	Data          string      `db:"data"`
	SavedAt       time.Time   `db:"saved_at"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

func (r widgetStateRow) envelope() resource.Envelope {
	return resource.Envelope{
		Kind:          resource.ParseKind(r.Kind),
		SchemaVersion: r.SchemaVersion.Int,
		SavedAt:       r.SavedAt.UTC(),
		ClientID:      r.ClientID.String,
		Data:          []byte(r.Data),
	}
}

type widgetStateRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ resource.StateRepository = (*widgetStateRepository)(nil)

// NewWidgetStateRepository stores widget states in the widget_states table. Works on postgres and sqlite.
func NewWidgetStateRepository(db *sqlx.DB) resource.StateRepository {
	return &widgetStateRepository{db: db, now: time.Now}
}

const selectState = `
SELECT id, owner_id, kind, schema_version, client_id, data, saved_at, created_at, updated_at
FROM widget_states
WHERE owner_id = ? AND kind = ?`

func (repo *widgetStateRepository) GetState(ctx context.Context, ownerID string, kind resource.Kind) (resource.Envelope, error) {
	var row widgetStateRow
	err := repo.db.GetContext(ctx, &row, repo.db.Rebind(selectState), ownerID, kind.Key())
	if err == sql.ErrNoRows {
		return resource.Envelope{}, resource.ErrStateNotFound
	}
	if err != nil {
		return resource.Envelope{}, errors.Wrap(err, "selecting widget state")
	}
	return row.envelope(), nil
}

// the WHERE clause keeps a newer stored state: last write wins, ties go to the incoming write
const upsertState = `
INSERT INTO widget_states (id, owner_id, kind, schema_version, client_id, data, saved_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (owner_id, kind) DO UPDATE SET
	schema_version = excluded.schema_version,
	client_id = excluded.client_id,
	data = excluded.data,
	saved_at = excluded.saved_at,
	updated_at = excluded.updated_at
WHERE widget_states.saved_at <= excluded.saved_at`

func (repo *widgetStateRepository) SaveState(ctx context.Context, ownerID string, env resource.Envelope) (bool, error) {
	now := repo.now().UTC()
	res, err := repo.db.ExecContext(ctx, repo.db.Rebind(upsertState),
		uuid.New().String(),
		ownerID,
		env.Kind.Key(),
		null.NewInt(env.SchemaVersion, env.SchemaVersion > 0),
		null.NewString(env.ClientID, env.ClientID != ""),
		string(env.Data),
		env.SavedAt.UTC(),
		now,
		now,
	)
	if err != nil {
		return false, errors.Wrap(err, "upserting widget state")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "upserting widget state")
	}
	return n > 0, nil
}

func (repo *widgetStateRepository) DeleteState(ctx context.Context, ownerID string, kind resource.Kind) error {
	q := repo.db.Rebind(`DELETE FROM widget_states WHERE owner_id = ? AND kind = ?`)
	res, err := repo.db.ExecContext(ctx, q, ownerID, kind.Key())
	if err != nil {
		return errors.Wrap(err, "deleting widget state")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return resource.ErrStateNotFound
	}
	return nil
}

func (repo *widgetStateRepository) PurgeStates(ctx context.Context, olderThan time.Time) (int, error) {
	q := repo.db.Rebind(`DELETE FROM widget_states WHERE saved_at < ?`)
	res, err := repo.db.ExecContext(ctx, q, olderThan.UTC())
	if err != nil {
		return 0, errors.Wrap(err, "purging widget states")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "purging widget states")
	}
	return int(n), nil
}
