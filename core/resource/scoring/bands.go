// Package scoring holds the pure scoring helpers shared by every resource widget.
package scoring

import "math"

// Status is the three-way classification of a measured value.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusSuboptimal Status = "suboptimal"
	StatusConcern    Status = "concern"
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Bands pairs the narrow optimal range with the wider conventional reference range.
type Bands struct {
	Optimal      Range `json:"optimal"`
	Conventional Range `json:"conventional"`
}

// Classify bands v. Both ends of each range are inclusive and optimal wins on a shared boundary.
func Classify(v float64, b Bands) Status {
	switch {
	case b.Optimal.Contains(v):
		return StatusOptimal
	case b.Conventional.Contains(v):
		return StatusSuboptimal
	default:
		return StatusConcern
	}
}

// StatusCounts tallies classifications.
type StatusCounts struct {
	Optimal    int `json:"optimal"`
	Suboptimal int `json:"suboptimal"`
	Concern    int `json:"concern"`
}

func (c *StatusCounts) Add(s Status) {
	switch s {
	case StatusOptimal:
		c.Optimal++
	case StatusSuboptimal:
		c.Suboptimal++
	case StatusConcern:
		c.Concern++
	}
}

func (c StatusCounts) Total() int {
	return c.Optimal + c.Suboptimal + c.Concern
}

// Percent returns round(part/total*100), 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round2 rounds to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
