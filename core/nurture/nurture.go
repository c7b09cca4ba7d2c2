// Package nurture holds the email and DM copy sent to mini-diploma students who have not yet
// purchased a certification. Scheduling and delivery belong to the drip engine.
package nurture

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// WindowDays is the length of every nurture sequence, counted from enrollment.
const WindowDays = 60

type Phase string

const (
	PhaseValue    Phase = "value"
	PhaseDesire   Phase = "desire"
	PhaseDecision Phase = "decision"
	PhaseReEngage Phase = "re-engage"
)

type (
	Email struct {
		ID      string `json:"id"`
		Phase   Phase  `json:"phase"`
		Day     int    `json:"day"`
		Subject string `json:"subject"`
		Content string `json:"content"`
	}

	DM struct {
		ID      string `json:"id"`
		Day     int    `json:"day"`
		Message string `json:"message"`
	}

	// Sequence is ordered by day. Several emails may share a day.
	Sequence []Email

	DMSequence []DM
)

var (
	emojiRe       = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}\x{2300}-\x{23FF}\x{FE0F}\x{200D}]+ ?`)
	strongRe      = regexp.MustCompile(`\*\*|__`)
	emphasisRe    = regexp.MustCompile(`\*([^*\s](?:[^*]*[^*\s])?)\*`)
	placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z][A-Za-z0-9_]*)\s*\}\}`)
)

// CleanContent strips emoji and markdown emphasis markers, keeping every other character.
func CleanContent(s string) string {
	s = emojiRe.ReplaceAllString(s, "")
	s = strongRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

func cleanSequence(seq Sequence) Sequence {
	out := make(Sequence, len(seq))
	for i, e := range seq {
		e.Subject = CleanContent(e.Subject)
		e.Content = CleanContent(e.Content)
		out[i] = e
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func cleanDMs(seq DMSequence) DMSequence {
	out := make(DMSequence, len(seq))
	for i, dm := range seq {
		dm.Message = CleanContent(dm.Message)
		out[i] = dm
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Due returns every email scheduled on day.
func (s Sequence) Due(day int) Sequence {
	return s.Between(day, day)
}

// Between returns the emails scheduled from day `from` to day `to`, both inclusive.
func (s Sequence) Between(from, to int) Sequence {
	out := Sequence{}
	for _, e := range s {
		if e.Day >= from && e.Day <= to {
			out = append(out, e)
		}
	}
	return out
}

// Window returns the day of the last email.
func (s Sequence) Window() int {
	var last int
	for _, e := range s {
		if e.Day > last {
			last = e.Day
		}
	}
	return last
}

func (s Sequence) ByID(id string) (Email, bool) {
	for _, e := range s {
		if e.ID == id {
			return e, true
		}
	}
	return Email{}, false
}

// Phases returns the emails grouped by phase.
func (s Sequence) Phases() map[Phase]Sequence {
	out := make(map[Phase]Sequence)
	for _, e := range s {
		out[e.Phase] = append(out[e.Phase], e)
	}
	return out
}

func (s DMSequence) Between(from, to int) DMSequence {
	out := DMSequence{}
	for _, dm := range s {
		if dm.Day >= from && dm.Day <= to {
			out = append(out, dm)
		}
	}
	return out
}

// Render substitutes {{name}} placeholders. Placeholders without a value are left as they are.
func Render(content string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(content, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// Rendered is an email with its placeholders filled in, ready for a mail template.
type Rendered struct {
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Paragraphs []string `json:"paragraphs"`
}

func (e Email) Render(vars map[string]string) Rendered {
	r := Rendered{
		Subject: Render(e.Subject, vars),
		Body:    Render(e.Content, vars),
	}
	for _, p := range strings.Split(r.Body, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			r.Paragraphs = append(r.Paragraphs, p)
		}
	}
	return r
}

// Placeholders lists the distinct placeholder names used in content, in order of appearance.
func Placeholders(content string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Problems collects data errors found while validating static content.
type Problems []string

func (p Problems) Error() string { return strings.Join(p, "; ") }

func (p Problems) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

var phases = map[Phase]bool{PhaseValue: true, PhaseDesire: true, PhaseDecision: true, PhaseReEngage: true}

// Validate reports malformed emails. Emails sharing a day are allowed.
func Validate(seq Sequence) error {
	var probs Problems
	if len(seq) == 0 {
		return append(probs, "sequence is empty")
	}
	ids := make(map[string]bool, len(seq))
	for i, e := range seq {
		ref := e.ID
		if ref == "" {
			ref = fmt.Sprintf("#%d", i)
			probs = append(probs, ref+": missing id")
		} else if ids[e.ID] {
			probs = append(probs, ref+": duplicate id")
		}
		ids[e.ID] = true

		if e.Day < 0 || e.Day > WindowDays {
			probs = append(probs, fmt.Sprintf("%s: day %d outside the %d day window", ref, e.Day, WindowDays))
		}
		if !phases[e.Phase] {
			probs = append(probs, fmt.Sprintf("%s: unknown phase %q", ref, e.Phase))
		}
		if e.Subject == "" {
			probs = append(probs, ref+": empty subject")
		}
		if e.Content == "" {
			probs = append(probs, ref+": empty content")
		}
	}
	return probs.Err()
}

func ValidateDMs(seq DMSequence) error {
	var probs Problems
	if len(seq) == 0 {
		return append(probs, "dm sequence is empty")
	}
	ids := make(map[string]bool, len(seq))
	for _, dm := range seq {
		if ids[dm.ID] {
			probs = append(probs, dm.ID+": duplicate id")
		}
		ids[dm.ID] = true
		if dm.Day < 0 || dm.Day > WindowDays {
			probs = append(probs, fmt.Sprintf("%s: day %d outside the %d day window", dm.ID, dm.Day, WindowDays))
		}
		if dm.Message == "" {
			probs = append(probs, dm.ID+": empty message")
		}
	}
	return probs.Err()
}
