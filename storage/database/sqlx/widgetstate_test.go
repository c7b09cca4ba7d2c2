package sqlxrepos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/resource"
	"github.com/accredipro/institute/storage/database"
)

func newTestRepo(t *testing.T) resource.StateRepository {
	conf := &core.Config{Database: core.DatabaseConfig{Engine: database.EngineSQLite, Name: ":memory:"}}
	db, err := database.Open(conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewWidgetStateRepository(db)
}

func envelope(k resource.Kind, data string, savedAt time.Time, client string) resource.Envelope {
	return resource.Envelope{Kind: k, SchemaVersion: k.SchemaVersion(), SavedAt: savedAt, ClientID: client, Data: []byte(data)}
}

func TestWidgetStateRepository(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := repo.GetState(ctx, "u1", resource.KindStress)
	assert.Equal(t, resource.ErrStateNotFound, err)

	saved, err := repo.SaveState(ctx, "u1", envelope(resource.KindStress, `{"answers":{"sleep":2}}`, t0, "tab-1"))
	require.NoError(t, err)
	assert.True(t, saved)

	got, err := repo.GetState(ctx, "u1", resource.KindStress)
	require.NoError(t, err)
	assert.Equal(t, envelope(resource.KindStress, `{"answers":{"sleep":2}}`, t0, "tab-1"), got)

	t.Run("older write loses", func(t *testing.T) {
		saved, err := repo.SaveState(ctx, "u1", envelope(resource.KindStress, `{"answers":{}}`, t0.Add(-time.Millisecond), "tab-2"))
		require.NoError(t, err)
		assert.False(t, saved)
		got, _ := repo.GetState(ctx, "u1", resource.KindStress)
		assert.Equal(t, "tab-1", got.ClientID)
	})

	t.Run("newer write wins", func(t *testing.T) {
		later := t0.Add(1500 * time.Microsecond)
		saved, err := repo.SaveState(ctx, "u1", envelope(resource.KindStress, `{"answers":{"sleep":4}}`, later, ""))
		require.NoError(t, err)
		assert.True(t, saved)
		got, _ := repo.GetState(ctx, "u1", resource.KindStress)
		assert.Equal(t, later, got.SavedAt)
		assert.Equal(t, "", got.ClientID)
		assert.JSONEq(t, `{"answers":{"sleep":4}}`, string(got.Data))
	})

	t.Run("owners and kinds are separate", func(t *testing.T) {
		_, err := repo.GetState(ctx, "u2", resource.KindStress)
		assert.Equal(t, resource.ErrStateNotFound, err)
		_, err = repo.GetState(ctx, "u1", resource.KindHormone)
		assert.Equal(t, resource.ErrStateNotFound, err)
	})

	t.Run("legacy version is stored as null", func(t *testing.T) {
		env := envelope(resource.KindHormone, `{}`, t0, "")
		env.SchemaVersion = 0
		_, err := repo.SaveState(ctx, "u1", env)
		require.NoError(t, err)
		got, err := repo.GetState(ctx, "u1", resource.KindHormone)
		require.NoError(t, err)
		assert.Equal(t, 0, got.SchemaVersion)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteState(ctx, "u1", resource.KindHormone))
		assert.Equal(t, resource.ErrStateNotFound, repo.DeleteState(ctx, "u1", resource.KindHormone))
	})
}

func TestWidgetStateRepository_Purge(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	for owner, age := range map[string]time.Duration{"a": 40 * 24 * time.Hour, "b": 31 * 24 * time.Hour, "c": time.Hour} {
		_, err := repo.SaveState(ctx, owner, envelope(resource.KindNutrition, `{}`, now.Add(-age), ""))
		require.NoError(t, err)
	}

	n, err := repo.PurgeStates(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = repo.GetState(ctx, "c", resource.KindNutrition)
	assert.NoError(t, err)
}

func TestWidgetStateRepository_WithService(t *testing.T) {
	svc := resource.NewService(newTestRepo(t), core.NewNopLogger(), nil, nil)
	ctx := context.Background()

	_, saved, err := svc.SaveState(ctx, "u1", resource.KindPricingCalculator, []byte(`{"annualIncomeGoal": 90000}`), time.Now(), "")
	require.NoError(t, err)
	assert.True(t, saved)

	w, env, err := svc.LoadState(ctx, "u1", resource.KindPricingCalculator, nil)
	require.NoError(t, err)
	require.NotNil(t, env)
	assert.Equal(t, 90000.0, w.(*resource.PricingCalculator).AnnualIncomeGoal)
	assert.Equal(t, 1500.0, w.(*resource.PricingCalculator).MonthlyOverhead)
}
