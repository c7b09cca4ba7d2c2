package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accredipro/institute/core/nurture"
)

func TestEntries_Valid(t *testing.T) {
	require.NoError(t, Validate())

	for _, e := range All() {
		t.Run(e.Slug, func(t *testing.T) {
			seen := make(map[int]bool)
			for i, l := range e.Lessons {
				assert.Equal(t, i+1, l.ID)
				assert.False(t, seen[l.ID])
				seen[l.ID] = true
			}
			assert.NotEmpty(t, e.NurtureSequence)
			assert.NotEmpty(t, e.DMSequence)
			assert.True(t, strings.HasPrefix(e.CheckoutURL, "https://"))
		})
	}
}

func TestValidate_ReportsProblems(t *testing.T) {
	bad := map[string]Entry{
		"b": {
			Slug:       "b",
			PortalSlug: "p",
			Lessons:    []Lesson{{ID: 1}, {ID: 3}},
			DMSequence: nurture.DMSequence{{ID: "d", Day: 1, Message: "hi"}},
		},
		"a": {
			Slug:            "a",
			PortalSlug:      "p",
			Lessons:         []Lesson{{ID: 1}},
			CheckoutURL:     "https://example.com",
			NurtureSequence: nurture.Sequence{{ID: "e", Phase: nurture.PhaseValue, Day: 1, Subject: "s", Content: "c"}},
		},
	}

	err := validate(bad)
	require.Error(t, err)
	assert.Equal(t, nurture.Problems{
		"a: dm: dm sequence is empty",
		`b: portal slug "p" already used by a`,
		"b: lesson 2 has id 3",
		"b: missing checkout url",
		"b: nurture: sequence is empty",
	}, err)
}

func TestLookups(t *testing.T) {
	e, err := Get("gut-health")
	require.NoError(t, err)
	assert.Equal(t, "gut-mini-diploma", e.PortalSlug)

	_, err = Get("gut-mini-diploma")
	assert.Equal(t, ErrNotFound, err)

	e, err = GetByPortalSlug("hormone-mini-diploma")
	require.NoError(t, err)
	assert.Equal(t, "womens-hormones", e.Slug)

	tests := []struct {
		in   string
		want string
		err  error
	}{
		{in: "functional-medicine", want: "functional-medicine"},
		{in: "fm-mini-diploma", want: "functional-medicine"},
		{in: " Gut-Health ", want: "gut-health"},
		{in: "astrology", err: ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			e, err := Find(tc.in)
			assert.Equal(t, tc.err, err)
			assert.Equal(t, tc.want, e.Slug)
		})
	}
}

func TestDMFallbacks(t *testing.T) {
	meno, err := Get("menopause-support")
	require.NoError(t, err)
	hormones, err := Get("womens-hormones")
	require.NoError(t, err)
	assert.Equal(t, hormones.DMSequence, meno.DMSequence)
	assert.NotEqual(t, hormones.NurtureSequence, meno.NurtureSequence)
}

func TestAll_Sorted(t *testing.T) {
	all := All()
	require.Len(t, all, len(entries))
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Slug, all[i].Slug)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "gut-helth", want: "gut-health"},
		{in: "functional-medecine", want: "functional-medicine"},
		{in: "nutrition-mini-diplma", want: "holistic-nutrition"},
		{in: "xyz", want: ""},
		{in: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Suggest(tc.in))
		})
	}
}

func TestEntry_Summary(t *testing.T) {
	e, err := Get("autoimmune-wellness")
	require.NoError(t, err)
	s := e.Summary()
	assert.Equal(t, 3, s.LessonCount)
	assert.Equal(t, 59, s.TotalMinutes)
	assert.Equal(t, len(nurture.GutHealthEmails), s.NurtureEmails)

	l, ok := e.Lesson(2)
	assert.True(t, ok)
	assert.Equal(t, "intestinal-permeability", l.Slug)
	_, ok = e.Lesson(9)
	assert.False(t, ok)
}
