// Package registry lists the mini-diploma courses and the funnel content attached to each.
package registry

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/nurture"
)

// suggestCutoff is the minimum similarity for Suggest to offer a slug.
const suggestCutoff = 0.6

var ErrNotFound = errors.New("mini diploma not found")

type (
	Lesson struct {
		ID              int    `json:"id"`
		Title           string `json:"title"`
		Slug            string `json:"slug"`
		DurationMinutes int    `json:"durationMinutes"`
	}

	Entry struct {
		Slug            string             `json:"slug"`
		PortalSlug      string             `json:"portalSlug"`
		DisplayName     string             `json:"displayName"`
		Certification   string             `json:"certification"`
		Lessons         []Lesson           `json:"lessons"`
		CheckoutURL     string             `json:"checkoutUrl"`
		ExamCategory    string             `json:"examCategory"`
		NurtureSequence nurture.Sequence   `json:"-"`
		DMSequence      nurture.DMSequence `json:"-"`
	}

	Summary struct {
		Slug          string `json:"slug"`
		PortalSlug    string `json:"portalSlug"`
		DisplayName   string `json:"displayName"`
		Certification string `json:"certification"`
		LessonCount   int    `json:"lessonCount"`
		TotalMinutes  int    `json:"totalMinutes"`
		CheckoutURL   string `json:"checkoutUrl"`
		ExamCategory  string `json:"examCategory"`
		NurtureEmails int    `json:"nurtureEmails"`
		DMs           int    `json:"dms"`
	}
)

func (e Entry) Summary() Summary {
	s := Summary{
		Slug:          e.Slug,
		PortalSlug:    e.PortalSlug,
		DisplayName:   e.DisplayName,
		Certification: e.Certification,
		LessonCount:   len(e.Lessons),
		CheckoutURL:   e.CheckoutURL,
		ExamCategory:  e.ExamCategory,
		NurtureEmails: len(e.NurtureSequence),
		DMs:           len(e.DMSequence),
	}
	for _, l := range e.Lessons {
		s.TotalMinutes += l.DurationMinutes
	}
	return s
}

// Lesson returns the lesson with the given id.
func (e Entry) Lesson(id int) (Lesson, bool) {
	for _, l := range e.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

func Get(slug string) (Entry, error) {
	if e, ok := entries[slug]; ok {
		return e, nil
	}
	return Entry{}, ErrNotFound
}

func GetByPortalSlug(portalSlug string) (Entry, error) {
	for _, e := range entries {
		if e.PortalSlug == portalSlug {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

// Find looks slugOrPortal up as a course slug first, then as a portal slug.
func Find(slugOrPortal string) (Entry, error) {
	slugOrPortal = core.CleanString(slugOrPortal, true /* lower */)
	if e, err := Get(slugOrPortal); err == nil {
		return e, nil
	}
	return GetByPortalSlug(slugOrPortal)
}

// All returns every entry ordered by slug.
func All() []Entry {
	return sortedEntries(entries)
}

// Suggest returns the known slug closest to slug, or "" when nothing is similar enough.
func Suggest(slug string) string {
	slug = core.CleanString(slug, true /* lower */)
	if slug == "" {
		return ""
	}
	var (
		best      string
		bestRatio float64
	)
	for _, e := range All() {
		for _, candidate := range []string{e.Slug, e.PortalSlug} {
			ratio := difflib.NewMatcher(chars(slug), chars(candidate)).Ratio()
			if ratio > bestRatio {
				best, bestRatio = e.Slug, ratio
			}
		}
	}
	if bestRatio < suggestCutoff {
		return ""
	}
	return best
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Validate checks every entry: lesson ids unique and contiguous from 1, sequences present and well formed.
func Validate() error {
	return validate(entries)
}

func validate(entries map[string]Entry) error {
	var probs nurture.Problems
	portals := make(map[string]string, len(entries))

	for _, e := range sortedEntries(entries) {
		if e.Slug == "" {
			probs = append(probs, "entry with empty slug")
			continue
		}
		if other, ok := portals[e.PortalSlug]; ok {
			probs = append(probs, fmt.Sprintf("%s: portal slug %q already used by %s", e.Slug, e.PortalSlug, other))
		}
		portals[e.PortalSlug] = e.Slug

		if len(e.Lessons) == 0 {
			probs = append(probs, e.Slug+": no lessons")
		}
		for i, l := range e.Lessons {
			if l.ID != i+1 {
				probs = append(probs, fmt.Sprintf("%s: lesson %d has id %d", e.Slug, i+1, l.ID))
			}
		}
		if e.CheckoutURL == "" {
			probs = append(probs, e.Slug+": missing checkout url")
		}
		if err := nurture.Validate(e.NurtureSequence); err != nil {
			probs = append(probs, fmt.Sprintf("%s: nurture: %v", e.Slug, err))
		}
		if err := nurture.ValidateDMs(e.DMSequence); err != nil {
			probs = append(probs, fmt.Sprintf("%s: dm: %v", e.Slug, err))
		}
	}
	return probs.Err()
}

func sortedEntries(m map[string]Entry) []Entry {
	out := make([]Entry, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
