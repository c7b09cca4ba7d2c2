package resource

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accredipro/institute/core"
)

func TestService_Evaluate(t *testing.T) {
	svc := newTestService(newMemRepo())

	ev, err := svc.Evaluate(KindPricingCalculator, []byte(`{"annualIncomeGoal": 100000, "monthlyOverhead": 1500, "taxRate": 25}`))
	require.NoError(t, err)
	assert.InDelta(t, 157333.33, ev.(*PricingEvaluation).GrossNeeded, 0.01)

	t.Run("invalid tax rate", func(t *testing.T) {
		_, err := svc.Evaluate(KindPricingCalculator, []byte(`{"taxRate": 100}`))
		require.Error(t, err)
		vErrs, ok := err.(validator.ValidationErrors)
		require.True(t, ok)
		_, translator := newValidate()
		assert.Equal(t, map[string]string{"taxRate": "taxRate must be at least 0 and below 100"}, core.TranslateErrors(vErrs, translator))
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := svc.Evaluate(KindStress, []byte(`{"answers": [`))
		_, ok := err.(*core.ValidationError)
		assert.True(t, ok)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.Evaluate(KindUnknown, nil)
		assert.Equal(t, ErrUnknownKind, err)
	})
}

func TestService_Describe(t *testing.T) {
	svc := newTestService(newMemRepo())

	d, err := svc.Describe(KindGutHealth)
	require.NoError(t, err)
	assert.Equal(t, KindGutHealth, d.Type)
	assert.Equal(t, gutChecklist, d.Options)

	d, err = svc.Describe(KindNutrition)
	require.NoError(t, err)
	assert.Nil(t, d.Options)
}

func TestService_Report(t *testing.T) {
	svc := newTestService(newMemRepo())
	fixed := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	r, err := svc.Report(KindHormone, []byte(`{"clientName": "Mia", "checked": ["skin-tags"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Mia", r.ClientName)
	assert.Equal(t, fixed, r.GeneratedAt)
	assert.Len(t, r.Reference, 10)
	want := defaultHormone()
	want.Checked = []string{"skin-tags"}
	require.NotNil(t, r.Score)
	assert.Equal(t, want.Evaluate().(*HormoneEvaluation).Score, *r.Score)
}

func TestService_PurgeExpired(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, _, err := svc.SaveState(ctx, "old", KindStress, nil, now.Add(-40*24*time.Hour), "")
	require.NoError(t, err)
	_, _, err = svc.SaveState(ctx, "new", KindStress, nil, now.Add(-time.Hour), "")
	require.NoError(t, err)

	n, err := svc.PurgeExpired(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = svc.PurgeExpired(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = repo.GetState(ctx, "old", KindStress)
	assert.Equal(t, ErrStateNotFound, err)
}
