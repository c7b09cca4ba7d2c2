package scoring

// Advice collects recommendation strings from an ordered rule list.
// Rules are evaluated in the order they are added; the first matches win and duplicates are dropped.
type Advice struct {
	items []string
	seen  map[string]struct{}
}

func (a *Advice) Add(cond bool, text string) {
	if !cond || text == "" {
		return
	}
	if a.seen == nil {
		a.seen = make(map[string]struct{})
	}
	if _, ok := a.seen[text]; ok {
		return
	}
	a.seen[text] = struct{}{}
	a.items = append(a.items, text)
}

// Top returns at most n recommendations.
func (a *Advice) Top(n int) []string {
	if n < 0 || n > len(a.items) {
		n = len(a.items)
	}
	out := make([]string, n)
	copy(out, a.items[:n])
	return out
}

func (a *Advice) Len() int { return len(a.items) }

// Points accumulates additive/subtractive rules over a baseline, clamped to [0, 100].
type Points struct {
	total int
}

func NewPoints(base int) *Points {
	return &Points{total: base}
}

func (p *Points) Add(cond bool, n int) {
	if cond {
		p.total += n
	}
}

func (p *Points) Sub(cond bool, n int) {
	if cond {
		p.total -= n
	}
}

func (p *Points) Total() int {
	return Clamp(p.total, 0, 100)
}
